// Package main provides browserbot, an MCP server that exposes browser
// automation tools over stdio.
//
// Standard output carries the protocol stream. Everything meant for humans
// goes to stderr or the log file.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/RomanGod6/browserbot/pkg/config"
	"github.com/RomanGod6/browserbot/pkg/logging"
	"github.com/RomanGod6/browserbot/pkg/mcpserver"
	"github.com/RomanGod6/browserbot/pkg/tools/browser"
)

const version = mcpserver.DefaultVersion

// CLIConfig holds command-line configuration
type CLIConfig struct {
	ConfigFile  string
	LogDir      string
	Install     bool
	ShowVersion bool
}

func main() {
	cli := parseFlags()

	if cli.ShowVersion {
		fmt.Fprintf(os.Stderr, "browserbot v%s\n", version)
		return
	}

	ctx, cancel := context.WithCancel(context.Background())

	// Set up signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Fprintln(os.Stderr, "Shutting down gracefully...")
		cancel()
	}()

	if err := run(ctx, cli, os.Stdin, os.Stdout); err != nil {
		cancel()
		log.Printf("browserbot failed: %v", err)
		os.Exit(1)
	}
	cancel()
}

// parseFlags parses command line flags
func parseFlags() *CLIConfig {
	cli := &CLIConfig{}

	flag.StringVar(&cli.ConfigFile, "config", "", "Path to configuration file (YAML)")
	flag.StringVar(&cli.LogDir, "log-dir", "", "Log directory (default: ~/.browserbot/logs)")
	flag.BoolVar(&cli.Install, "install", false, "Install the Playwright driver and configured browser, then exit")
	flag.BoolVar(&cli.ShowVersion, "version", false, "Show version and exit")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "browserbot - browser automation tools over the Model Context Protocol\n\n")
		fmt.Fprintf(os.Stderr, "Usage: browserbot [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  # Install chromium once\n")
		fmt.Fprintf(os.Stderr, "  browserbot -install\n\n")
		fmt.Fprintf(os.Stderr, "  # Serve on stdio with a navigation allow list\n")
		fmt.Fprintf(os.Stderr, "  browserbot -config browserbot.yaml\n\n")
	}

	flag.Parse()
	return cli
}

// run wires config, logging, the browser session and the MCP server, then
// serves until stdin closes or ctx is cancelled.
func run(ctx context.Context, cli *CLIConfig, stdin io.Reader, stdout io.Writer) error {
	cfg, err := config.Load(cli.ConfigFile)
	if err != nil {
		return err
	}

	logDir := cfg.Logging.Dir
	if cli.LogDir != "" {
		logDir = cli.LogDir
	}
	logging.SetLogDirectory(logDir)

	logger, err := logging.NewLogger("browserbot")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	defer logger.Close()

	driver := browser.NewPlaywrightDriver(cfg.Browser, logger.With("playwright"))

	if cli.Install {
		if err := driver.Install(); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Installed Playwright %s\n", cfg.Browser.Engine)
		return nil
	}

	policy, err := browser.NewURLPolicy(cfg.Navigation.AllowedURLs, cfg.Navigation.DeniedURLs)
	if err != nil {
		return fmt.Errorf("invalid navigation policy: %w", err)
	}

	session := browser.NewSession(driver, logger.With("session"))
	defer func() {
		if err := session.Close(); err != nil {
			logger.Warnf("failed to close browser on shutdown: %v", err)
		}
	}()

	dispatcher := browser.NewDispatcher(browser.NewTools(session, policy), logger.With("dispatcher"))
	server, err := mcpserver.New(dispatcher, mcpserver.Options{
		Name:    mcpserver.DefaultName,
		Version: version,
		Logger:  logger.With("mcp"),
	})
	if err != nil {
		return fmt.Errorf("failed to create MCP server: %w", err)
	}

	logger.Infof("browserbot v%s starting (engine=%s, log=%s)", version, cfg.Browser.Engine, logger.LogPath())
	return server.Serve(ctx, stdin, stdout)
}
