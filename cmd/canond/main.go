// Package main is the canond CLI entry point.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/studyowl/canon/internal/cache"
	"github.com/studyowl/canon/internal/config"
	"github.com/studyowl/canon/internal/fingerprint"
	"github.com/studyowl/canon/internal/models"
	"github.com/studyowl/canon/internal/options"
	"github.com/studyowl/canon/internal/pipeline"
	"github.com/studyowl/canon/internal/server"
	"github.com/studyowl/canon/internal/watcher"
	"github.com/studyowl/canon/pkg/utils"
	"go.uber.org/zap"
)

var version = "dev"

const defaultConfigPath = "/usr/local/etc/canond/config.yaml"

// loadConfig loads config from path. When path is the default, a config.yaml
// in the current directory takes precedence so a dev checkout uses its own
// config. Returns the config and the path actually loaded.
func loadConfig(path string) (*config.Config, string, error) {
	if path == defaultConfigPath {
		if cwd, cwdErr := os.Getwd(); cwdErr == nil {
			fallback := filepath.Join(cwd, "config.yaml")
			if _, statErr := os.Stat(fallback); statErr == nil {
				cfg, loadErr := config.Load(fallback)
				if loadErr != nil {
					return nil, "", loadErr
				}
				return cfg, fallback, nil
			}
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, "", err
	}
	return cfg, path, nil
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}
	switch os.Args[1] {
	case "server":
		runServer()
	case "canonicalize":
		runCanonicalize()
	case "hash":
		runHash()
	case "version", "--version", "-v":
		fmt.Printf("canond version %s\n", version)
	case "help", "--help", "-h":
		printUsage()
	default:
		fmt.Printf("Unknown command: %s\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func runServer() {
	fs := flag.NewFlagSet("server", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	host := fs.String("host", "", "listen host (overrides config)")
	port := fs.Int("port", 0, "listen port (overrides config)")
	debug := fs.Bool("debug", false, "enable debug logging")
	_ = fs.Parse(os.Args[2:])

	cfg, resolvedConfigPath, err := loadConfig(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *host != "" {
		cfg.Server.Host = *host
	}
	if *port != 0 {
		cfg.Server.Port = *port
	}
	debugMode := cfg.Debug || *debug
	logger, err := utils.NewLogger(debugMode)
	if err != nil {
		fmt.Printf("Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("config loaded",
		zap.String("config_path", resolvedConfigPath),
		zap.Bool("debug", debugMode),
	)

	store, err := cache.NewSQLiteStore(cfg.Cache.DatabasePath, time.Duration(cfg.Cache.TTLSeconds)*time.Second)
	if err != nil {
		logger.Fatal("Failed to open answer cache", zap.Error(err))
	}
	defer store.Close()

	srv := server.NewServer(newPipeline(cfg), store, &cfg.Server, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Hot-reload extraction/classification limits on config edits.
	watchOpts := []watcher.Option{}
	if debugMode {
		watchOpts = append(watchOpts, watcher.WithLogger(logger))
	}
	cfgWatch := watcher.NewConfigWatcher(resolvedConfigPath, func(path string) {
		reloaded, loadErr := config.Load(path)
		if loadErr != nil {
			logger.Warn("config reload failed", zap.Error(loadErr))
			return
		}
		srv.SetPipeline(newPipeline(reloaded))
		logger.Info("pipeline limits reloaded")
	}, watchOpts...)
	if err := cfgWatch.Start(ctx); err != nil {
		logger.Warn("config watch unavailable", zap.Error(err))
	}
	defer cfgWatch.Stop()

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Start() }()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		logger.Info("shutting down", zap.String("signal", sig.String()))
	case err := <-errCh:
		if err != nil {
			logger.Error("server stopped", zap.Error(err))
		}
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Stop(shutdownCtx); err != nil {
		logger.Warn("graceful shutdown failed", zap.Error(err))
	}
}

// runCanonicalize runs the pipeline once over text from the argument or
// stdin and prints the result as JSON.
func runCanonicalize() {
	fs := flag.NewFlagSet("canonicalize", flag.ExitOnError)
	subject := fs.String("subject", "", "declared subject")
	grade := fs.String("grade", "", "declared grade level")
	lang := fs.String("lang", "", "declared source language")
	targetLang := fs.String("target-lang", "", "target output language")
	pdf := fs.Bool("pdf", false, "treat input as PDF-extracted text")
	_ = fs.Parse(os.Args[2:])

	text := readInput(fs.Args())
	meta := &models.Metadata{
		Subject:        *subject,
		Grade:          *grade,
		Language:       *lang,
		TargetLanguage: *targetLang,
	}

	pipe := pipeline.New(pipeline.Config{})
	var result pipeline.Result
	if *pdf {
		result = pipe.CanonicalizePDF(text, meta)
	} else {
		result = pipe.Canonicalize(text, meta)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(result)
}

// runHash prints the fingerprints for text from the argument or stdin.
func runHash() {
	fs := flag.NewFlagSet("hash", flag.ExitOnError)
	_ = fs.Parse(os.Args[2:])

	text := readInput(fs.Args())
	fmt.Printf("prompt:  %s\n", fingerprint.Prompt(text, nil))
	fmt.Printf("content: %s\n", fingerprint.Content(text))
	fmt.Printf("short:   %s\n", fingerprint.Short(text))
}

// readInput joins the remaining args, falling back to stdin when none given.
func readInput(args []string) string {
	if len(args) > 0 {
		text := ""
		for i, arg := range args {
			if i > 0 {
				text += " "
			}
			text += arg
		}
		return text
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		fmt.Printf("Failed to read stdin: %v\n", err)
		os.Exit(1)
	}
	return string(data)
}

func newPipeline(cfg *config.Config) *pipeline.Pipeline {
	return pipeline.New(pipeline.Config{
		ShortAnswerMaxLen: cfg.Classify.ShortAnswerMaxLen,
		Extract: options.Config{
			MinOptions:         cfg.Extract.MinOptions,
			MaxOptions:         cfg.Extract.MaxOptions,
			MaxOptionLength:    cfg.Extract.MaxOptionLength,
			MinValidLabelRatio: cfg.Extract.MinValidLabelRatio,
		},
	})
}

func printUsage() {
	fmt.Println(`canond - question canonicalization and fingerprinting service

Usage:
  canond server [-config path] [-host h] [-port n] [-debug]
                                              run the HTTP API server
  canond canonicalize [flags] [text]          canonicalize text (or stdin)
  canond hash [text]                          print fingerprints for text
  canond version                              print version
  canond help                                 show this help`)
}
