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

package clicmds

import (
	"github.com/urfave/cli/v2"
)

// NewApp returns the uriparse application.
func NewApp() *cli.App {
	app := cli.NewApp()
	app.Name = "uriparse"
	app.Version = "0.1"
	app.Usage = "Parses http and https URIs into their components"
	app.Commands = []*cli.Command{
		{
			Name:    "parse",
			Aliases: []string{"p"},
			Usage:   "parse URIs given as arguments or one per line on stdin",
			Action:  Parse,
			Flags:   ParseFlags(),
		},
		{
			Name:   "uuid",
			Usage:  "read UUID tokens",
			Action: UUID,
			Flags:  UUIDFlags(),
		},
		{
			Name:   "serve",
			Usage:  "serve the parser over HTTP",
			Action: Serve,
			Flags:  ServeFlags(),
		},
	}
	return app
}
