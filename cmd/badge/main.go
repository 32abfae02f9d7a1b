// cmd/badge/main.go
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/tamzrod/led-badge/internal/badge"
	"github.com/tamzrod/led-badge/internal/config"
	"github.com/tamzrod/led-badge/internal/glyph"
	"github.com/tamzrod/led-badge/internal/log"
	"github.com/tamzrod/led-badge/internal/transport"
)

var (
	listIcons = flag.Bool("icons", false, "list available icon names and exit")
	dryRun    = flag.Bool("dry-run", false, "print the 64-byte packets instead of writing to the badge")
	preview   = flag.Bool("preview", false, "print each slot as pixel art before sending")
	logLevel  = flag.String("loglevel", "", "logging level: debug, info, warn, error")
	logDir    = flag.String("logdir", "", "log file directory")
	envFile   = flag.String("env", "", "dotenv file with BADGE_* overrides (default .env if present)")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: badge [flags] <message.yaml>\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if err := loadEnv(*envFile); err != nil {
		fatalf("env load failed: %v", err)
	}

	if *listIcons && flag.NArg() == 0 {
		printIcons(glyph.Default())
		return
	}

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	// --------------------
	// Load + validate config
	// --------------------

	cfg, err := config.Load(flag.Arg(0))
	if err != nil {
		fatalf("config load failed: %v", err)
	}

	if *logLevel != "" {
		cfg.Badge.Log.Level = *logLevel
	}
	if *logDir != "" {
		cfg.Badge.Log.Dir = *logDir
	}
	if err := config.ApplyEnv(cfg); err != nil {
		fatalf("config env failed: %v", err)
	}

	if err := config.Validate(cfg); err != nil {
		fatalf("config validation failed: %v", err)
	}
	config.Normalize(cfg)

	lg, err := log.New(cfg.Badge.Log.Level, cfg.Badge.Log.Dir)
	if err != nil {
		fatalf("log init failed: %v", err)
	}

	// --------------------
	// Build pipeline
	// --------------------

	var t transport.Transport
	if *dryRun {
		t = transport.NewDump(os.Stdout)
	} else {
		t = badge.BuildHID(cfg.Badge.Device, lg)
	}

	p, table, err := badge.Build(cfg.Badge, t, lg)
	if err != nil {
		lg.Errorf("pipeline build failed: %v", err)
		os.Exit(1)
	}

	if *listIcons {
		printIcons(table)
		return
	}

	msg, err := badge.BuildMessage(cfg.Badge, time.Now())
	if err != nil {
		lg.Errorf("message build failed: %v", err)
		os.Exit(1)
	}

	if *preview {
		bitmaps, _, err := p.Render(msg.Slots)
		if err != nil {
			lg.Errorf("render failed: %v", err)
			os.Exit(1)
		}
		for i, b := range bitmaps {
			fmt.Printf("slot %d (%d columns):\n%s\n", i+1, b.Cols, b)
		}
	}

	// --------------------
	// Send
	// --------------------

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := p.Send(ctx, msg); err != nil {
		if errors.Is(err, transport.ErrDeviceNotFound) {
			lg.Errorf("no badge found (vendor %04x product %04x): is it plugged in?",
				cfg.Badge.Device.VendorID, cfg.Badge.Device.ProductID)
		} else {
			lg.Errorf("send failed: %v", err)
		}
		stop()
		os.Exit(1)
	}
}

// loadEnv loads path, or ./.env when path is empty and the file exists.
func loadEnv(path string) error {
	if path != "" {
		return godotenv.Load(path)
	}
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

func printIcons(t glyph.Table) {
	for _, name := range t.IconNames() {
		fmt.Println(name)
	}
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
