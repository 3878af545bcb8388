// Package main is the entry point for Dungeon Delve.
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/gookit/color"
	"github.com/joho/godotenv"

	"github.com/samdwyer/dungeondelve/internal/game"
	"github.com/samdwyer/dungeondelve/internal/telemetry"
	"github.com/samdwyer/dungeondelve/internal/ui"
)

func main() {
	// Load .env file for local development
	// This makes HONEYCOMB_DUNGEONDELVE_API_KEY available
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	cfg, err := game.ConfigFromEnv()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	cfg.SessionID = uuid.NewString()

	ctx := context.Background()

	// Initialize telemetry
	shutdown, err := telemetry.Setup(ctx, telemetry.Options{
		APIKey:    cfg.APIKey,
		Dataset:   cfg.Dataset,
		SessionID: cfg.SessionID,
	})
	if err != nil {
		log.Printf("Warning: telemetry setup failed: %v", err)
		log.Printf("Game will run without observability")
		// Continue without telemetry - game still works
	} else {
		if cfg.Telemetry {
			log.Printf("Tracing session %s to dataset %s", cfg.SessionID, cfg.Dataset)
		}
		defer func() {
			if err := shutdown(ctx); err != nil {
				log.Printf("Error shutting down telemetry: %v", err)
			}
		}()
	}

	g, err := game.New(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize game: %v", err)
	}

	summary, err := play(ctx, g, cfg)
	if err != nil {
		log.Fatalf("Game error: %v", err)
	}
	printSummary(os.Stdout, summary)
}

// play runs the session on the full-screen terminal when stdin and stdout
// are terminals, and on the line console otherwise.
func play(ctx context.Context, g *game.Game, cfg game.Config) (game.Summary, error) {
	interactive := ui.IsInteractive(os.Stdin) && ui.IsInteractive(os.Stdout)

	if interactive && !cfg.PlainConsole {
		screen, err := ui.NewScreen()
		if err == nil {
			term := ui.NewTerminal(screen)
			defer term.Close()
			if err := term.Welcome(); err != nil {
				return g.Quit(ctx), nil
			}
			return g.Run(ctx, term)
		}
		log.Printf("Note: full-screen terminal unavailable, using console: %v", err)
	}

	console := ui.NewConsole(os.Stdin, os.Stdout, interactive)
	console.Welcome()
	return g.Run(ctx, console)
}

// printSummary writes the final statistics after the screen is restored.
func printSummary(w io.Writer, s game.Summary) {
	heading, style := "GAME OVER", color.Style{color.FgRed, color.OpBold}
	switch {
	case s.Outcome == game.StatusVictory:
		heading, style = "VICTORY", color.Style{color.FgGreen, color.OpBold}
	case s.Quit:
		heading, style = "FAREWELL", color.Style{color.FgCyan, color.OpBold}
	}

	fmt.Fprintln(w, style.Sprint(heading))
	fmt.Fprintf(w, "Dungeon level reached: %d\n", s.LevelReached)
	fmt.Fprintf(w, "Player level: %d\n", s.PlayerLevel)
	fmt.Fprintf(w, "Gold collected: %d\n", s.Gold)
	fmt.Fprintf(w, "Enemies defeated: %d\n", s.EnemiesDefeated)
}
