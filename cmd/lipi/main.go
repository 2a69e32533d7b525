package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/jusunglee/lipi/internal/db"
	"github.com/jusunglee/lipi/internal/db/dbopen"
	"github.com/jusunglee/lipi/internal/history"
	"github.com/jusunglee/lipi/internal/indic"
	"github.com/jusunglee/lipi/internal/logger"
	"github.com/jusunglee/lipi/internal/transliteration"
	"github.com/jusunglee/lipi/internal/tui"
	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"
)

func main() {
	if err := mainE(os.Args[1:], os.Stdout); err != nil {
		slog.Error("fatal", "error", err)
		os.Exit(1)
	}
}

type config struct {
	databaseURL string
	ligatures   bool
	scripts     []indic.Script
	variant     indic.Variant
	history     int
	json        bool
	overrides   []indic.Override
	text        string
}

func parseFlags(args []string) (config, error) {
	fs := ff.NewFlagSet("lipi")
	var (
		databaseURL  = fs.StringLong("database-url", "", "SQLite path or PostgreSQL URL for history and custom mappings (empty disables both)")
		noLigatures  = fs.BoolLong("no-ligatures", "Skip optional conjunct ligatures")
		scripts      = fs.StringLong("scripts", "", "Comma-separated scripts to show (default all)")
		variant      = fs.StringLong("variant", "", "Flag letters outside an alphabet variant, e.g. sinhala:sidath")
		historyCount = fs.IntLong("history", 0, "Print the N most recent lookups and exit")
		asJSON       = fs.BoolLong("json", "Print the result as JSON")
		mappings     = fs.StringListLong("map", "Extra mapping token=script:glyph (repeatable)")
	)

	if err := ff.Parse(fs, args, ff.WithEnvVars()); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", ffhelp.Flags(fs))
		return config{}, fmt.Errorf("parsing flags: %w", err)
	}

	cfg := config{
		databaseURL: *databaseURL,
		ligatures:   !*noLigatures,
		history:     *historyCount,
		json:        *asJSON,
		text:        strings.Join(fs.GetArgs(), " "),
	}

	var err error
	if cfg.scripts, err = transliteration.ParseScripts(*scripts); err != nil {
		return config{}, err
	}
	if cfg.variant, err = transliteration.ParseVariant(*variant); err != nil {
		return config{}, err
	}
	for _, m := range *mappings {
		o, err := transliteration.ParseOverride(m)
		if err != nil {
			return config{}, err
		}
		cfg.overrides = append(cfg.overrides, o)
	}
	return cfg, nil
}

func mainE(args []string, stdout io.Writer) error {
	_ = godotenv.Load()

	cfg, err := parseFlags(args)
	if err != nil {
		return err
	}

	// The TUI owns stdout, so logs only go out for warnings and worse.
	log := logger.NewWithWriter(os.Stderr, os.Getenv("LOG_FORMAT"), slog.LevelWarn)
	slog.SetDefault(log)

	ctx := context.Background()

	var repo db.Repository
	if cfg.databaseURL != "" {
		repo, err = dbopen.Open(ctx, cfg.databaseURL)
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer repo.Close()
	}

	if cfg.history > 0 {
		if repo == nil {
			return errors.New("--history needs --database-url")
		}
		lookups, err := repo.ListRecentLookups(ctx, int32(cfg.history))
		if err != nil {
			return fmt.Errorf("listing history: %w", err)
		}
		fmt.Fprintln(stdout, tui.RenderHistory(lookups))
		return nil
	}

	store, err := transliteration.NewStore(ctx, mappingSource(repo, cfg.overrides))
	if err != nil {
		return fmt.Errorf("loading custom mappings: %w", err)
	}
	tr := store.Get()
	if len(cfg.scripts) > 0 {
		tr = tr.WithScripts(cfg.scripts...)
	}
	recorder := history.NewRecorder(repo, log)

	if cfg.text == "" {
		return tui.Run(tui.New(tr, recorder, tui.Options{
			Ligatures: cfg.ligatures,
			Variant:   cfg.variant,
		}))
	}

	res := tr.Transliterate(cfg.text, transliteration.Options{
		Ligatures: cfg.ligatures,
		Variant:   cfg.variant,
	})
	recorder.Record(ctx, db.SourceCLI, res)

	if cfg.json {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}
	if len(res.Words) == 0 {
		return nil
	}
	fmt.Fprintln(stdout, tui.RenderTable(res))
	return nil
}

// mappingSource layers flag overrides on top of the stored ones.
func mappingSource(repo db.Repository, extra []indic.Override) transliteration.MappingSource {
	return func(ctx context.Context) ([]indic.Override, error) {
		var out []indic.Override
		if repo != nil {
			stored, err := db.OverrideSource(repo)(ctx)
			if err != nil {
				return nil, err
			}
			out = stored
		}
		return append(out, extra...), nil
	}
}
