package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/termpong/internal/config"
	"github.com/vovakirdan/termpong/internal/platform/tui"
	"github.com/vovakirdan/termpong/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a round",
	Long: `Start a round of Pong in the current terminal.

Controls:
  W/S, arrows  - Move paddle
  Mouse        - Move paddle to pointer row
  Space        - Start round / acknowledge level banner
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Wider paddle, slower ball, faster levels
  normal - Default parameters
  hard   - Narrow paddle, faster ball and computer paddle
  fixed  - No speed-up between levels

Examples:
  termpong play
  termpong play --difficulty hard
  termpong play --config ./my-pong.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runPlay(_ *cobra.Command, _ []string) {
	logger := newLogger("termpong")

	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if flagDifficulty != "" {
		preset, err := config.ParsePreset(flagDifficulty)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		config.ApplyPreset(&cfg, preset)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open rounds database, rounds will not be saved", "error", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	p, session := tui.NewProgram(cfg, store, logger, width, height)
	defer session.Close()

	// SIGINT/SIGTERM take the fatal path through the engine: the signal
	// actor marks termination and the UI tears down without the usual
	// round epilogue.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		for range sigCh {
			session.Engine.Terminate()
		}
	}()

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}

	if session.Engine.Terminating() {
		os.Exit(1)
	}
}
