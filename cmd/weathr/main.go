package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/i474232898/weathr/internal/app"
	"github.com/i474232898/weathr/internal/config"
	"github.com/i474232898/weathr/internal/render"
	"github.com/i474232898/weathr/internal/weather"
	"github.com/i474232898/weathr/internal/weather/providers"
)

func main() {
	simulate := flag.String("simulate", "", "simulate a weather condition (clear, rain, thunder, hail, ...)")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		fmt.Fprint(os.Stderr, config.UsageHint())
		cfg = config.Default()
	}

	if err := run(cfg, *simulate); err != nil {
		log.Fatalf("weathr: %v", err)
	}
}

func run(cfg *config.Config, simulate string) error {
	// Resolve the simulated condition before the screen exists so the
	// warning still reaches a readable stderr.
	var simulated weather.Condition
	haveSimulated := false
	if simulate != "" {
		cond, ok := weather.ParseCondition(simulate)
		if !ok {
			fmt.Fprintf(os.Stderr, "Unknown weather condition %q, defaulting to Clear\n", simulate)
		}
		simulated = cond
		haveSimulated = true
	}

	screen, err := render.New()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	// Restores the terminal on every exit path, panics included.
	defer screen.Cleanup()

	var session *app.Session
	if haveSimulated {
		session = app.NewSimulated(cfg, screen, simulated)
	} else {
		provider := providers.NewOpenMeteo(&http.Client{Timeout: 10 * time.Second})
		client := weather.NewClient(provider, cfg.RefreshInterval)
		session = app.New(cfg, screen, client)
	}

	return session.Run()
}
