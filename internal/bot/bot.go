// Package bot serves transliterations as Discord slash commands.
package bot

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/bwmarrin/discordgo"
	"github.com/jusunglee/lipi/internal/db"
	"github.com/jusunglee/lipi/internal/indic"
	"github.com/jusunglee/lipi/internal/metrics"
	"github.com/jusunglee/lipi/internal/transliteration"
	"github.com/samber/lo"
)

const (
	commandTransliterate = "transliterate"
	commandScripts       = "scripts"

	// Discord caps embed field values at 1024 characters.
	maxFieldLength = 1024
	maxTitleLength = 256
	maxEmbedLength = 6000
	embedColor     = 0x5865F2
)

type Config struct {
	GuildID         string
	MaxInputRunes   int
	RateLimitMax    int
	RateLimitWindow time.Duration
	PruneInterval   time.Duration
}

type Bot struct {
	log     Logger
	session DiscordSession
	tr      Transliterator
	history HistoryRecorder
	limiter *RateLimiter
	config  Config
}

func New(
	log Logger,
	session DiscordSession,
	tr Transliterator,
	history HistoryRecorder,
	config Config,
) *Bot {
	if config.MaxInputRunes <= 0 {
		config.MaxInputRunes = 500
	}
	if config.PruneInterval <= 0 {
		config.PruneInterval = 10 * time.Minute
	}
	return &Bot{
		log:     log,
		session: session,
		tr:      tr,
		history: history,
		limiter: NewRateLimiter(config.RateLimitMax, config.RateLimitWindow),
		config:  config,
	}
}

func (b *Bot) Run(ctx context.Context) error {
	b.session.AddHandler(b.handleInteraction)
	b.session.AddHandler(func(s *discordgo.Session, r *discordgo.Ready) {
		b.log.InfoContext(ctx, "connected to Discord", "username", r.User.Username)
	})

	if err := b.session.Open(); err != nil {
		return fmt.Errorf("opening Discord connection: %w", err)
	}

	if err := b.registerCommands(ctx); err != nil {
		b.session.Close()
		return fmt.Errorf("registering commands: %w", err)
	}

	b.log.InfoContext(ctx, "bot is running, press Ctrl+C to stop")
	b.runPruner(ctx)

	b.log.Info("shutdown signal received")
	if err := b.session.Close(); err != nil {
		return fmt.Errorf("closing Discord connection: %w", err)
	}
	b.log.Info("shut down complete")
	return nil
}

func (b *Bot) runPruner(ctx context.Context) {
	for ctx.Err() == nil {
		sleepWithContext(ctx, b.config.PruneInterval)
		if n := b.limiter.Prune(); n > 0 {
			b.log.Info("pruned rate limiter", "users", n)
		}
	}
}

func sleepWithContext(ctx context.Context, dur time.Duration) {
	timer := time.NewTimer(dur)
	defer timer.Stop()

	select {
	case <-timer.C:
	case <-ctx.Done():
	}
}

func (b *Bot) registerCommands(ctx context.Context) error {
	guildID := b.config.GuildID
	if guildID != "" {
		b.log.InfoContext(ctx, "registering commands to guild", "guild_id", guildID)
	} else {
		b.log.InfoContext(ctx, "registering commands globally (may take up to 1 hour to propagate)")
	}

	cmds := b.commands()
	_, err := b.session.ApplicationCommandBulkOverwrite(b.session.GetUserID(), guildID, cmds)
	if err != nil {
		return fmt.Errorf("bulk overwrite commands: %w", err)
	}
	b.log.InfoContext(ctx, "registered commands", "count", len(cmds))
	return nil
}

func (b *Bot) commands() []*discordgo.ApplicationCommand {
	scriptChoices := lo.Map(b.tr.Scripts(), func(s indic.Script, _ int) *discordgo.ApplicationCommandOptionChoice {
		return &discordgo.ApplicationCommandOptionChoice{Name: string(s), Value: string(s)}
	})

	return []*discordgo.ApplicationCommand{
		{
			Name:        commandTransliterate,
			Description: "Render romanized text in Brahmic scripts",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "text",
					Description: "Romanized text (e.g., dharma)",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionBoolean,
					Name:        "ligatures",
					Description: "Apply optional conjunct ligatures (default on)",
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "script",
					Description: "Only show one script",
					Choices:     scriptChoices,
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "variant",
					Description: "Flag letters outside an alphabet variant (e.g., sinhala:sidath)",
				},
			},
		},
		{
			Name:        commandScripts,
			Description: "List supported scripts and alphabet variants",
		},
	}
}

type handlerResult struct {
	Response string
	Embed    *discordgo.MessageEmbed
	Err      error
}

func (b *Bot) handleInteraction(_ *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}
	b.handleCommand(i)
}

func (b *Bot) handleCommand(i *discordgo.InteractionCreate) {
	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
	defer cancel()
	cmd := i.ApplicationCommandData().Name

	if !b.limiter.Allow(interactionUserID(i)) {
		metrics.RateLimitHits.WithLabelValues("discord").Inc()
		metrics.DiscordCommandsTotal.WithLabelValues(cmd, "rate_limited").Inc()
		b.respond(ctx, i, handlerResult{Response: "⏳ Slow down! Try again in a minute."})
		return
	}

	var result handlerResult
	switch cmd {
	case commandTransliterate:
		result = b.handleTransliterate(ctx, i)
	case commandScripts:
		result = b.handleScripts()
	default:
		result = handlerResult{Response: "Unknown command", Err: newUserError(fmt.Errorf("unknown command %q", cmd))}
	}

	b.respond(ctx, i, result)

	if result.Err == nil {
		metrics.DiscordCommandsTotal.WithLabelValues(cmd, "success").Inc()
		return
	}

	if _, ok := errors.AsType[*userError](result.Err); ok {
		metrics.DiscordCommandsTotal.WithLabelValues(cmd, "user_error").Inc()
		if b.config.GuildID != "" {
			b.log.WarnContext(ctx, "user error", "command", cmd, "error", result.Err, "channel_id", i.ChannelID)
		}
	} else {
		metrics.DiscordCommandsTotal.WithLabelValues(cmd, "error").Inc()
		b.log.ErrorContext(ctx, "command failed", "command", cmd, "error", result.Err, "channel_id", i.ChannelID)
	}
}

type userError struct {
	Err error
}

func (e *userError) Error() string {
	return e.Err.Error()
}

func (e *userError) Unwrap() error {
	return e.Err
}

func newUserError(err error) *userError {
	return &userError{Err: err}
}

func interactionUserID(i *discordgo.InteractionCreate) string {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User.ID
	}
	if i.User != nil {
		return i.User.ID
	}
	return ""
}

func getOption(options []*discordgo.ApplicationCommandInteractionDataOption, name string) *discordgo.ApplicationCommandInteractionDataOption {
	for _, opt := range options {
		if opt.Name == name {
			return opt
		}
	}
	return nil
}

func (b *Bot) handleTransliterate(ctx context.Context, i *discordgo.InteractionCreate) handlerResult {
	options := i.ApplicationCommandData().Options

	var text string
	if opt := getOption(options, "text"); opt != nil {
		text = strings.TrimSpace(opt.StringValue())
	}
	if text == "" {
		return handlerResult{Response: "❌ Give me some romanized text, e.g. `/transliterate dharma`", Err: newUserError(errors.New("empty text"))}
	}
	if n := utf8.RuneCountInString(text); n > b.config.MaxInputRunes {
		return handlerResult{
			Response: fmt.Sprintf("❌ Text is too long (%d characters, max %d)", n, b.config.MaxInputRunes),
			Err:      newUserError(fmt.Errorf("text too long: %d runes", n)),
		}
	}

	opts := transliteration.Options{Ligatures: true}
	if opt := getOption(options, "ligatures"); opt != nil {
		opts.Ligatures = opt.BoolValue()
	}
	if opt := getOption(options, "script"); opt != nil {
		scripts, err := transliteration.ParseScripts(opt.StringValue())
		if err != nil {
			return handlerResult{Response: "❌ " + err.Error(), Err: newUserError(err)}
		}
		opts.Scripts = scripts
	}
	if opt := getOption(options, "variant"); opt != nil {
		v, err := transliteration.ParseVariant(opt.StringValue())
		if err != nil {
			return handlerResult{Response: "❌ " + err.Error(), Err: newUserError(err)}
		}
		opts.Variant = v
	}

	res := b.tr.Transliterate(text, opts)
	if res.SyllableCount() == 0 {
		return handlerResult{
			Response: fmt.Sprintf("❌ Couldn't find any syllables in **%s**", text),
			Err:      newUserError(errors.New("no syllables")),
		}
	}

	metrics.ObserveResult(db.SourceDiscord, res)
	b.history.Record(ctx, db.SourceDiscord, res)
	b.log.InfoContext(ctx, "transliterated", "input", text, "syllables", res.SyllableCount(), "channel_id", i.ChannelID)

	return handlerResult{Embed: formatResultEmbed(res)}
}

func (b *Bot) handleScripts() handlerResult {
	var sb strings.Builder
	sb.WriteString("**Supported scripts:**\n")
	for _, script := range b.tr.Scripts() {
		names := lo.Map(indic.Variants[script], func(v indic.Variant, _ int) string { return v.Name })
		if len(names) == 0 {
			sb.WriteString(fmt.Sprintf("• %s\n", script))
			continue
		}
		sb.WriteString(fmt.Sprintf("• %s (variants: %s)\n", script, strings.Join(names, ", ")))
	}
	return handlerResult{Response: sb.String()}
}

func formatResultEmbed(res transliteration.Result) *discordgo.MessageEmbed {
	fields := make([]*discordgo.MessageEmbedField, 0, len(res.Scripts)+1)
	for _, script := range res.Scripts {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   string(script),
			Value:  res.FullText(script),
			Inline: true,
		})
	}

	var sb strings.Builder
	for _, w := range res.Words {
		if len(w.Syllables) == 0 {
			continue
		}
		romans := lo.Map(w.Syllables, func(row transliteration.SyllableRow, _ int) string {
			if row.OutsideVariant {
				return "__" + row.Roman + "__"
			}
			return row.Roman
		})
		sb.WriteString(fmt.Sprintf("**%s**: %s\n", w.Text, strings.Join(romans, " · ")))
	}
	fields = append(fields, &discordgo.MessageEmbedField{
		Name:  "Syllables",
		Value: sb.String(),
	})

	embed := &discordgo.MessageEmbed{
		Title:  truncateTo(res.Input, maxTitleLength),
		Color:  embedColor,
		Fields: fields,
	}

	var notes []string
	if !res.Ligatures {
		notes = append(notes, "ligatures off")
	}
	if missing := lo.Sum(lo.Values(res.Fallbacks())); missing > 0 {
		notes = append(notes, fmt.Sprintf("%s marks %d letters with no glyph", indic.Unknown, missing))
	}
	if len(notes) > 0 {
		embed.Footer = &discordgo.MessageEmbedFooter{Text: strings.Join(notes, " · ")}
	}

	// field values share whatever the embed total leaves after the fixed parts
	budget := maxEmbedLength - utf8.RuneCountInString(embed.Title)
	if embed.Footer != nil {
		budget -= utf8.RuneCountInString(embed.Footer.Text)
	}
	for _, f := range fields {
		budget -= utf8.RuneCountInString(f.Name)
	}
	perField := min(maxFieldLength, budget/len(fields))
	for _, f := range fields {
		f.Value = truncateTo(f.Value, perField)
	}
	return embed
}

func truncate(s string) string {
	return truncateTo(s, maxFieldLength)
}

func truncateTo(s string, limit int) string {
	if s == "" {
		return "\u200b"
	}
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	runes := []rune(s)
	return string(runes[:limit-1]) + "…"
}

func (b *Bot) respond(ctx context.Context, i *discordgo.InteractionCreate, result handlerResult) {
	data := &discordgo.InteractionResponseData{Content: result.Response}
	if result.Embed != nil {
		data.Embeds = []*discordgo.MessageEmbed{result.Embed}
	}
	if result.Err != nil {
		data.Flags = discordgo.MessageFlagsEphemeral
	}

	err := b.session.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: data,
	})
	if err != nil {
		b.log.ErrorContext(ctx, "failed to respond to interaction", "error", err)
	}
}
