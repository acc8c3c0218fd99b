/*
 * Copyright (C) 2023 by Coobik, https://github.com/Coobik
 * This file is part of rpy-tools, https://github.com/Coobik/rpy-tools
 * and is released under the GNU General Public License v3.0
 * https://github.com/Coobik/rpy-tools/blob/main/LICENSE
 */

// Command rpyindex collects labels from .rpy files and builds jump menus.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v3"

	"github.com/coobik/rpy-tools/internal/config"
	"github.com/coobik/rpy-tools/internal/indexer"
	applog "github.com/coobik/rpy-tools/internal/log"
	"github.com/coobik/rpy-tools/internal/rpy"
	"github.com/coobik/rpy-tools/internal/version"
)

func run(ctx context.Context, cmd *cli.Command) error {
	if cmd.Bool("version") {
		fmt.Println("RPY indexer " + version.String())
		return nil
	}

	applog.Init(applog.FromEnv())
	l := applog.WithComponent("rpyindex")
	l.Info("RPY indexer", slog.String("version", version.String()), slog.String("url", version.URL))

	opts := config.Options{
		InputDir:       cmd.String("input"),
		OutputDir:      cmd.String("output"),
		MainLabel:      cmd.String("main_label"),
		PageSize:       int(cmd.Int("label_page_size")),
		FileNamePrefix: cmd.String("file_name_prefix"),
	}

	rep, err := indexer.Run(opts)
	if err != nil {
		return err
	}
	for _, w := range rep.Warnings {
		l.Warn("indexing warning", slog.String("warning", w.Error()))
	}
	l.Info("summary",
		slog.Int("files", rep.Files),
		slog.Int("labels", rep.Labels),
		slog.Int("duplicates", rep.Duplicates),
		slog.Int("warnings", len(rep.Warnings)),
		slog.Int("outputs", len(rep.Outputs)))

	if rep.Incomplete() {
		return fmt.Errorf("index incomplete: %d duplicate label name(s) excluded", rep.Duplicates)
	}
	return nil
}

func main() {
	cmd := &cli.Command{
		Name:   "rpyindex",
		Usage:  "Collect labels from .rpy files and build jump menus",
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
				Value:   config.DefaultIndexMainLabel,
			},
			&cli.IntFlag{
				Name:    "label_page_size",
				Aliases: []string{"s"},
				Usage:   "Max labels per menu page",
				Value:   rpy.DefaultPageSize,
			},
			&cli.StringFlag{
				Name:    "file_name_prefix",
				Aliases: []string{"p"},
				Usage:   "Generated page file name prefix",
				Value:   config.DefaultFilePrefix,
			},
			&cli.BoolFlag{
				Name:    "version",
				Aliases: []string{"v"},
				Usage:   "Show version",
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("indexing failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
