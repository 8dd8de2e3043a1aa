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

// Package ident parses identifier tokens such as UUIDs out of text.
package ident

import (
	"github.com/google/uuid"

	"github.com/jplu/weburi/parse"
)

// Token consumes a maximal run of ASCII letters, digits and hyphens.
func Token(input string) (string, string, error) {
	return parse.AlphanumericHyphen1(input)
}

var uuidToken = parse.MapRes(parse.Recognize(parse.AlphanumericHyphen1), uuid.Parse)

// ParseUUID consumes a token and validates it as a UUID, either hyphenated
// or as 32 bare hex digits. A token that is not a UUID fails with a MapRes
// entry.
func ParseUUID(input string) (string, uuid.UUID, error) {
	return uuidToken(input)
}
