// portgraph is a terminal node-link diagram editor: drag nodes around and
// drag from a port to draw a connector.
//
// Run: go run ./cmd/portgraph/ [-config portgraph.yaml] [-scene scenes/demo.yaml]
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	tea "charm.land/bubbletea/v2"
	"github.com/joho/godotenv"
	"github.com/wesen/portgraph/internal/config"
	"github.com/wesen/portgraph/internal/editorui"
	"github.com/wesen/portgraph/internal/scene"
	"github.com/wesen/portgraph/pkg/graphmodel"
)

// Setting envDebug logs to defaultDebugLog when no log file is configured.
const (
	envDebug        = "PORTGRAPH_DEBUG"
	defaultDebugLog = "portgraph-debug.log"
)

func main() {
	configPath := flag.String("config", "", "config file (default: $PORTGRAPH_CONFIG, ./portgraph.yaml, ~/.config/portgraph/config.yaml)")
	scenePath := flag.String("scene", "", "scene file (.yaml, .yml or .js), overrides the config")
	debugLog := flag.String("debug-log", "", "append debug logs to this file, overrides the config")
	flag.Parse()

	if err := run(*configPath, *scenePath, *debugLog); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath, scenePath, debugLog string) error {
	// A .env in the working directory may set PORTGRAPH_CONFIG or PORTGRAPH_DEBUG.
	_ = godotenv.Load()

	cfg, usedPath, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if scenePath != "" {
		cfg.Scene = scenePath
	}
	if debugLog != "" {
		cfg.DebugLog = debugLog
	}
	if cfg.DebugLog == "" && os.Getenv(envDebug) != "" {
		cfg.DebugLog = defaultDebugLog
	}

	// The TUI owns the terminal, so logs go to a file or nowhere.
	if cfg.DebugLog != "" {
		f, err := tea.LogToFile(cfg.DebugLog, "portgraph")
		if err != nil {
			return fmt.Errorf("open debug log: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}
	if usedPath != "" {
		log.Printf("config: %s", usedPath)
	}

	nodes, title := scene.Default(), "demo"
	if cfg.Scene != "" {
		if nodes, err = scene.LoadFile(cfg.Scene); err != nil {
			return err
		}
		title = filepath.Base(cfg.Scene)
	}

	state, err := graphmodel.AddNodes(graphmodel.CreateEmptyState(), nodes)
	if err != nil {
		return err
	}
	log.Printf("scene %s: %d nodes, %d ports", title, len(state.NodeIDs), len(state.PortIDs))

	p := tea.NewProgram(editorui.New(state, cfg, title))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run editor: %w", err)
	}
	return nil
}
