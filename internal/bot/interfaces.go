package bot

import (
	"context"
	"log/slog"

	"github.com/bwmarrin/discordgo"
	"github.com/jusunglee/lipi/internal/history"
	"github.com/jusunglee/lipi/internal/indic"
	"github.com/jusunglee/lipi/internal/transliteration"
)

// Logger defines the logging interface used by Bot
type Logger interface {
	InfoContext(ctx context.Context, msg string, args ...any)
	Info(msg string, args ...any)
	WarnContext(ctx context.Context, msg string, args ...any)
	Warn(msg string, args ...any)
	ErrorContext(ctx context.Context, msg string, args ...any)
	Error(msg string, args ...any)
	With(args ...any) Logger
}

// DiscordSession defines the Discord session interface used by Bot
type DiscordSession interface {
	AddHandler(handler interface{}) func()
	Open() error
	Close() error
	ApplicationCommandBulkOverwrite(appID, guildID string, commands []*discordgo.ApplicationCommand, options ...discordgo.RequestOption) ([]*discordgo.ApplicationCommand, error)
	InteractionRespond(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse, options ...discordgo.RequestOption) error
	// GetUserID returns the bot's user ID
	GetUserID() string
}

// Transliterator renders romanized text in every supported script
type Transliterator interface {
	Transliterate(text string, opts transliteration.Options) transliteration.Result
	Scripts() []indic.Script
}

// HistoryRecorder saves served lookups
type HistoryRecorder interface {
	Record(ctx context.Context, source string, res transliteration.Result)
}

// slogAdapter wraps *slog.Logger to return our Logger interface from With()
type slogAdapter struct {
	*slog.Logger
}

func (l *slogAdapter) With(args ...any) Logger {
	return &slogAdapter{Logger: l.Logger.With(args...)}
}

// NewLogger wraps a *slog.Logger to implement the Logger interface
func NewLogger(log *slog.Logger) Logger {
	return &slogAdapter{Logger: log}
}

// discordSessionAdapter wraps *discordgo.Session to implement DiscordSession
type discordSessionAdapter struct {
	*discordgo.Session
}

func (s *discordSessionAdapter) GetUserID() string {
	return s.State.User.ID
}

// NewDiscordSession wraps a *discordgo.Session to implement the DiscordSession interface
func NewDiscordSession(session *discordgo.Session) DiscordSession {
	return &discordSessionAdapter{Session: session}
}

// storeAdapter always transliterates with the store's current mappings
type storeAdapter struct {
	store *transliteration.Store
}

func (s storeAdapter) Transliterate(text string, opts transliteration.Options) transliteration.Result {
	return s.store.Get().Transliterate(text, opts)
}

func (s storeAdapter) Scripts() []indic.Script {
	return s.store.Get().Scripts()
}

// NewTransliterator wraps a *transliteration.Store to implement the Transliterator interface
func NewTransliterator(store *transliteration.Store) Transliterator {
	return storeAdapter{store: store}
}

// NewHistoryRecorder wraps a *history.Recorder to implement the HistoryRecorder interface
func NewHistoryRecorder(rec *history.Recorder) HistoryRecorder {
	return rec
}
