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
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/jplu/weburi/ident"
)

// UUIDFlags configures the uuid command.
func UUIDFlags() []cli.Flag {
	return []cli.Flag{configFlag(), logLevelFlag()}
}

// UUID reads a UUID token from the start of each input and prints it in
// canonical form, followed by any text after the token.
func UUID(cliCtx *cli.Context) error {
	cfg, err := loadConfig(cliCtx)
	if err != nil {
		return err
	}
	log := newLogger(cliCtx.App.ErrWriter, cfg)

	list, err := inputs(cliCtx, cliCtx.App.Reader)
	if err != nil {
		return err
	}

	failed := 0
	for _, input := range list {
		rest, id, err := ident.ParseUUID(input)
		if err != nil {
			failed++
			log.Debug().Str("input", input).Err(err).Msg("not a uuid")
			fmt.Fprintf(cliCtx.App.Writer, "%s: error: %v\n", input, err)
			continue
		}
		if rest != "" {
			fmt.Fprintf(cliCtx.App.Writer, "%s remainder=%q\n", id, rest)
			continue
		}
		fmt.Fprintln(cliCtx.App.Writer, id)
	}

	if failed > 0 {
		return cli.Exit(fmt.Sprintf("%d of %d inputs are not uuids", failed, len(list)), 1)
	}
	return nil
}
