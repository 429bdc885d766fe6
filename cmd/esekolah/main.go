package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"

	"github.com/smaamdev/esekolah/internal/cli"
	"github.com/smaamdev/esekolah/internal/cloud"
	"github.com/smaamdev/esekolah/internal/intelligence"
	"github.com/smaamdev/esekolah/internal/llm"
	"github.com/smaamdev/esekolah/internal/notify"
	"github.com/smaamdev/esekolah/internal/state"
	"github.com/smaamdev/esekolah/internal/store"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// A .env in the working directory is a convenience for development;
	// missing is fine.
	_ = godotenv.Load()

	// Data directory: env var or default ~/.esekolah
	dataDir := os.Getenv("ESEKOLAH_HOME")
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".esekolah")
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	kv, err := store.Open(filepath.Join(dataDir, "esekolah.db"))
	if err != nil {
		return fmt.Errorf("opening store: %w", err)
	}
	defer kv.Close()

	session := store.NewSessionStore(dataDir)
	notifier := notify.New()

	st := state.New(kv, session, notifier)
	if err := st.Load(); err != nil {
		return fmt.Errorf("loading state: %w", err)
	}

	registry := store.DefaultRegistry()

	app := &cli.App{
		State:    st,
		Cloud:    cloud.New(st, kv, registry),
		Store:    kv,
		Registry: registry,
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	// The AI assistant is wired only when the generative API is enabled.
	llmCfg := llm.LoadConfig()
	if llmCfg.Enabled {
		var observer llm.Observer = llm.NoopObserver{}
		if llmCfg.LogCalls {
			observer = llm.NewLogObserver(os.Stderr)
		}
		app.Assistant = intelligence.NewAssistantService(llm.NewClient(llmCfg, observer))
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
