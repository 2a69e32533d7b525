package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"
	"github.com/jusunglee/lipi/internal/bot"
	"github.com/jusunglee/lipi/internal/db"
	"github.com/jusunglee/lipi/internal/db/dbopen"
	"github.com/jusunglee/lipi/internal/envsetup"
	"github.com/jusunglee/lipi/internal/health"
	"github.com/jusunglee/lipi/internal/history"
	"github.com/jusunglee/lipi/internal/logger"
	"github.com/jusunglee/lipi/internal/transliteration"
	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"
	"golang.org/x/sync/errgroup"
)

const envFile = ".env"

func main() {
	if err := mainE(); err != nil {
		slog.Error("fatal", "error", err)
		os.Exit(1)
	}
	slog.Info("exiting without error")
}

func mainE() error {
	if envsetup.NeedsSetup(envFile) && os.Getenv("DISCORD_TOKEN") == "" {
		ok, err := envsetup.Run(envFile)
		if err != nil {
			return fmt.Errorf("running setup wizard: %w", err)
		}
		if !ok {
			return errors.New("setup cancelled")
		}
	}
	_ = godotenv.Load(envFile)

	fs := ff.NewFlagSet("lipi-bot")
	var (
		discordToken    = fs.StringLong("discord-token", "", "Discord bot token")
		guildID         = fs.StringLong("discord-guild-id", "", "Register commands to this guild only")
		databaseURL     = fs.StringLong("database-url", envsetup.DefaultDatabaseURL, "SQLite path or PostgreSQL connection URL")
		healthPort      = fs.IntLong("health-port", 8081, "Health check port")
		maxInputRunes   = fs.IntLong("max-input", 500, "Longest text accepted by /transliterate")
		rateLimitMax    = fs.IntLong("rate-limit", 5, "Commands per user per rate-limit window")
		rateLimitWindow = fs.DurationLong("rate-limit-window", time.Minute, "Rate-limit window")
	)

	if err := ff.Parse(fs, os.Args[1:], ff.WithEnvVars()); err != nil {
		fmt.Printf("%s\n", ffhelp.Flags(fs))
		return fmt.Errorf("parsing flags: %w", err)
	}

	if *discordToken == "" {
		return errors.New("discord-token is required")
	}

	log := logger.New()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repo, err := dbopen.Open(ctx, *databaseURL)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer repo.Close()
	log.InfoContext(ctx, "connected to database", "postgres", dbopen.IsPostgres(*databaseURL))

	store, err := transliteration.NewStore(ctx, db.OverrideSource(repo))
	if err != nil {
		return fmt.Errorf("loading custom mappings: %w", err)
	}

	dg, err := discordgo.New("Bot " + *discordToken)
	if err != nil {
		return fmt.Errorf("creating Discord session: %w", err)
	}

	b := bot.New(
		bot.NewLogger(log),
		bot.NewDiscordSession(dg),
		bot.NewTransliterator(store),
		bot.NewHistoryRecorder(history.NewRecorder(repo, log)),
		bot.Config{
			GuildID:         *guildID,
			MaxInputRunes:   *maxInputRunes,
			RateLimitMax:    *rateLimitMax,
			RateLimitWindow: *rateLimitWindow,
		},
	)

	healthServer := health.New(*healthPort, map[string]health.Check{
		"database": func(ctx context.Context) error {
			_, err := repo.CountLookups(ctx)
			return err
		},
		"discord": func(context.Context) error {
			if !dg.DataReady {
				return errors.New("gateway not ready")
			}
			return nil
		},
	})

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.InfoContext(ctx, "starting health server", "port", *healthPort)
		return healthServer.Start()
	})

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return healthServer.Shutdown(shutdownCtx)
	})

	g.Go(func() error {
		return b.Run(ctx)
	})

	return g.Wait()
}
