/*
Copyright 2025 Trident Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package uri

import (
	"fmt"
)

// ErrTrailingInput is matched (with errors.Is) by the error Parse returns
// when the grammar accepted only a prefix of the input.
var ErrTrailingInput = &kindError{message: "Unexpected input after URI"}

// ParseError is the error type returned by Parse. It wraps either the
// grammar failure (a *parse.Error) or a trailing-input error.
type ParseError struct {
	Message string
	Err     error
}

// newParseError creates a new ParseError wrapping err. It returns nil if err
// is nil.
func newParseError(err error) *ParseError {
	if err == nil {
		return nil
	}
	return &ParseError{Message: err.Error(), Err: err}
}

// Error returns the string representation of the parse error.
func (e *ParseError) Error() string {
	return fmt.Sprintf("URI parse error: %s", e.Message)
}

// Unwrap provides compatibility with Go's standard errors package.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// kindError describes a failure found outside the grammar itself.
type kindError struct {
	message string
	details string
}

func (e *kindError) Error() string {
	if e.details != "" {
		return fmt.Sprintf("%s '%s'", e.message, e.details)
	}
	return e.message
}

// Is matches kindErrors by message, so a sentinel matches its detailed copies.
func (e *kindError) Is(target error) bool {
	t, ok := target.(*kindError)
	return ok && t.message == e.message
}

func (e *kindError) withDetails(details string) *kindError {
	return &kindError{message: e.message, details: details}
}
