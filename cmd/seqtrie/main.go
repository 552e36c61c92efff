// Copyright 2025 The WordServe Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main implements the seqtrie server and REPL application.

seqtrie indexes short fixed-alphabet (A/C/G/T/N) strings into a
branch-and-bound radix trie and answers bounded Levenshtein-distance
queries against it. It can operate as a MessagePack IPC server for
integration with other processes, or as an interactive REPL for manual
testing and debugging.

# Usage

Start the server with default settings:

	seqtrie

Ingest a barcode list at startup and run in REPL mode:

	seqtrie -c -ingest barcodes.txt -tau 2

# Configuration

Runtime configuration is managed through a TOML file with [trie],
[ingest], and [cli] tables; see pkg/config. The file is created with
defaults if it doesn't exist.

# Command Line Flags

	-c           Run the interactive REPL instead of the IPC server
	-tau int     Maximum Levenshtein distance the trie will support (default from config)
	-bottom int  Fixed length of indexed barcodes (default from config)
	-ingest string
	             Path to a newline-delimited barcode list to load at startup
	-d           Enable debug logging
	-config string
	             Path to a config.toml (default: platform config dir)
	-version     Print version information and exit
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/iyhaoo/starcode/internal/cli"
	"github.com/iyhaoo/starcode/pkg/config"
	"github.com/iyhaoo/starcode/pkg/ingest"
	"github.com/iyhaoo/starcode/pkg/ipc"
	"github.com/iyhaoo/starcode/pkg/trie"
)

const (
	Version = "0.1.0-beta"
	gh      = "https://github.com/iyhaoo/starcode"
)

func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

func main() {
	sigHandler()
	defaultConfig := config.DefaultConfig()

	showVersion := flag.Bool("version", false, "Show current version")
	cliMode := flag.Bool("c", false, "Run the interactive REPL instead of the IPC server")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	tau := flag.Int("tau", defaultConfig.Trie.MaxTau, "Maximum Levenshtein distance the trie will support")
	bottom := flag.Int("bottom", defaultConfig.Trie.Bottom, "Fixed length of indexed barcodes")
	ingestPath := flag.String("ingest", "", "Path to a newline-delimited barcode list to load at startup")
	configPath := flag.String("config", "", "Path to a config.toml")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	appConfig, resolvedConfigPath, err := config.LoadConfigWithPriority(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	log.Debugf("Using config at: %s", resolvedConfigPath)

	if *tau != defaultConfig.Trie.MaxTau {
		appConfig.Trie.MaxTau = *tau
	}
	if *bottom != defaultConfig.Trie.Bottom {
		appConfig.Trie.Bottom = *bottom
	}

	t, err := trie.New(appConfig.Trie.MaxTau, appConfig.Trie.Bottom)
	if err != nil {
		log.Fatalf("Failed to construct trie: %v", err)
	}

	if *ingestPath != "" {
		if err := ingestFile(t, *ingestPath, appConfig.Ingest); err != nil {
			log.Fatalf("Failed to ingest %s: %v", *ingestPath, err)
		}
	}

	if *cliMode {
		log.SetReportTimestamp(false)
		repl := cli.NewREPL(t, appConfig.CLI.DefaultTau, appConfig.CLI.ShowDistance)
		if err := repl.Start(); err != nil {
			log.Fatalf("REPL error: %v", err)
		}
		return
	}

	showStartupInfo(appConfig)
	srv := ipc.NewServer(t, os.Stdin, os.Stdout)
	if err := srv.Start(); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func ingestFile(t *trie.Trie, path string, opts config.IngestConfig) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	stats, err := ingest.Load(t, f, ingest.Options{
		BatchSize:    opts.BatchSize,
		SkipBadLines: opts.SkipBadLines,
	}, func(n *trie.Node, line string) {
		n.SetData(line)
	})
	if err != nil {
		return err
	}
	log.Infof("ingested %s: %d lines, %d inserted, %d duplicate, %d skipped",
		path, stats.Lines, stats.Inserted, stats.Duplicate, stats.Skipped)
	return nil
}

func printVersion() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    false,
		ReportTimestamp: false,
		Prefix:          "",
	})
	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	logger.SetStyles(styles)

	logger.Print("")
	logger.Print("[ seqtrie ] Bounded-distance search over fixed-alphabet strings")
	logger.Print("", "version", Version)
	logger.Print("")
	logger.Print("use -h or --help to see available options")
	logger.Print("Github Repo", "gh", gh)
}

func showStartupInfo(c *config.Config) {
	pid := os.Getpid()
	currentLevel := log.GetLevel()
	log.SetLevel(log.InfoLevel)

	println("=========")
	println(" seqtrie ")
	println("=========")
	log.Infof("Version: %s", Version)
	log.Infof("Process ID: [ %d ]", pid)
	log.Infof("maxTau: %d, bottom: %d", c.Trie.MaxTau, c.Trie.Bottom)
	log.Info("status: ready")
	println("=========")
	println("Press Ctrl+C to exit")

	log.SetLevel(currentLevel)
}
