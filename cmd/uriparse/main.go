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

// Command uriparse parses http and https URIs from the command line or over
// HTTP.
package main

import (
	"os"

	"github.com/rs/zerolog"

	"github.com/jplu/weburi/internal/clicmds"
)

func main() {
	if err := clicmds.NewApp().Run(os.Args); err != nil {
		log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
		log.Error().Err(err).Msg("uriparse failed")
		os.Exit(1)
	}
}
