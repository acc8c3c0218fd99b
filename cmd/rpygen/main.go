/*
 * Copyright (C) 2023 by Coobik, https://github.com/Coobik
 * This file is part of rpy-tools, https://github.com/Coobik/rpy-tools
 * and is released under the GNU General Public License v3.0
 * https://github.com/Coobik/rpy-tools/blob/main/LICENSE
 */

// Command rpygen reads plain-text screenplay files and generates .rpy
// script files.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v3"

	"github.com/coobik/rpy-tools/internal/config"
	"github.com/coobik/rpy-tools/internal/generator"
	applog "github.com/coobik/rpy-tools/internal/log"
	"github.com/coobik/rpy-tools/internal/rpy"
	"github.com/coobik/rpy-tools/internal/version"
)

func run(ctx context.Context, cmd *cli.Command) error {
	if cmd.Bool("version") {
		fmt.Println("RPY generator " + version.String())
		return nil
	}

	applog.Init(applog.FromEnv())
	l := applog.WithComponent("rpygen")
	l.Info("RPY generator", slog.String("version", version.String()), slog.String("url", version.URL))

	opts := config.Options{
		InputDir:   cmd.String("input"),
		OutputDir:  cmd.String("output"),
		MainLabel:  cmd.String("main_label"),
		PageSize:   int(cmd.Int("label_page_size")),
		ConfigPath: cmd.String("config"),
	}

	rep, err := generator.Run(opts)
	if err != nil {
		return err
	}
	for _, w := range rep.Warnings {
		l.Warn("generation warning", slog.String("warning", w.Error()))
	}
	l.Info("summary",
		slog.Int("files", rep.Files),
		slog.Int("lines", rep.Lines),
		slog.Int("characters", rep.Characters),
		slog.Int("warnings", len(rep.Warnings)),
		slog.Int("outputs", len(rep.Outputs)))
	return nil
}

func main() {
	cmd := &cli.Command{
		Name:   "rpygen",
		Usage:  "Read plain text screenplay files and generate .rpy script files",
		Action: run,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "input",
				Aliases: []string{"i"},
				Usage:   "Input directory path",
				Sources: cli.EnvVars("RPY_INPUT_DIR"),
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Output directory path. Default: current directory",
				Sources: cli.EnvVars("RPY_OUTPUT_DIR"),
			},
			&cli.StringFlag{
				Name:    "main_label",
				Aliases: []string{"m"},
				Usage:   "Main label name",
				Value:   config.DefaultGenMainLabel,
			},
			&cli.IntFlag{
				Name:    "label_page_size",
				Aliases: []string{"s"},
				Usage:   "Max labels per menu page",
				Value:   rpy.DefaultPageSize,
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "YAML config file path with a characters mapping",
				Sources: cli.EnvVars("RPY_CONFIG_FILE"),
			},
			&cli.BoolFlag{
				Name:    "version",
				Aliases: []string{"v"},
				Usage:   "Show version",
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("generation failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
