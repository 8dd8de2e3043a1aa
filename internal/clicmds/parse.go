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
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/jplu/weburi/internal/config"
	"github.com/jplu/weburi/internal/render"
)

// ParseFlags configures the parse command.
func ParseFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "format",
			Aliases: []string{"f"},
			Usage:   strings.Join(config.Formats, ", "),
			Value:   config.FormatText,
			EnvVars: []string{envPrefix + "FORMAT"},
		},
		strictFlag(),
		configFlag(),
		logLevelFlag(),
	}
}

// Parse parses each argument, or each line of input, and writes one
// rendering per URI.
func Parse(cliCtx *cli.Context) error {
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
		v := render.Evaluate(input, cfg.Strict)
		if !v.OK() {
			failed++
			log.Debug().Str("input", input).Str("error", v.Error.Message).Msg("parse failed")
		}
		if err := render.Write(cliCtx.App.Writer, cfg.Format, v); err != nil {
			return err
		}
	}
	log.Debug().Int("inputs", len(list)).Int("failed", failed).Msg("done")

	if failed > 0 {
		return cli.Exit(fmt.Sprintf("%d of %d inputs failed to parse", failed, len(list)), 1)
	}
	return nil
}
