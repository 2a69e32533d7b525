// envsetup provides a lightweight .env configuration wizard.
// It runs on first bot startup when no .env file exists, collecting the
// Discord credentials and the history database location.
package envsetup

import (
	"errors"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// DefaultDatabaseURL is used when the database step is left blank.
const DefaultDatabaseURL = "./lipi.db"

type step int

const (
	stepWelcome step = iota
	stepDiscord
	stepGuild
	stepDatabase
	stepConfirm
	stepDone
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	linkStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Underline(true)

	inputStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("229"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

type model struct {
	path         string
	step         step
	discordToken string
	guildID      string
	databaseURL  string
	input        []rune
	err          error
	width        int
	height       int
}

// New returns a wizard that writes its result to path.
func New(path string) model {
	return model{
		path: path,
		step: stepWelcome,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			return m, tea.Quit

		case tea.KeyEnter:
			return m.handleEnter()

		case tea.KeyBackspace:
			if len(m.input) > 0 {
				m.input = m.input[:len(m.input)-1]
			}
			return m, nil

		case tea.KeyRunes:
			m.input = append(m.input, msg.Runes...)
			return m, nil

		case tea.KeySpace:
			m.input = append(m.input, ' ')
			return m, nil
		}
	}

	return m, nil
}

func (m model) value() string {
	return strings.TrimSpace(string(m.input))
}

func (m model) handleEnter() (tea.Model, tea.Cmd) {
	m.err = nil

	switch m.step {
	case stepWelcome:
		m.step = stepDiscord

	case stepDiscord:
		token := m.value()
		if token == "" {
			m.err = errors.New("Discord token is required")
			return m, nil
		}
		m.discordToken = token
		m.step = stepGuild

	case stepGuild:
		guild := m.value()
		if strings.Trim(guild, "0123456789") != "" {
			m.err = errors.New("guild ID must be numeric")
			return m, nil
		}
		m.guildID = guild
		m.step = stepDatabase

	case stepDatabase:
		m.databaseURL = m.value()
		if m.databaseURL == "" {
			m.databaseURL = DefaultDatabaseURL
		}
		m.step = stepConfirm

	case stepConfirm:
		switch strings.ToLower(m.value()) {
		case "y", "yes", "":
			if err := m.writeEnvFile(); err != nil {
				m.err = err
				return m, nil
			}
			m.step = stepDone
			return m, tea.Quit
		case "n", "no":
			return New(m.path), nil
		default:
			m.err = errors.New("please answer y or n")
			return m, nil
		}
	}

	m.input = nil
	return m, nil
}

func (m model) writeEnvFile() error {
	content := fmt.Sprintf(`DATABASE_URL=%s
DISCORD_TOKEN=%s
DISCORD_GUILD_ID=%s
LOG_LEVEL=info
`, m.databaseURL, m.discordToken, m.guildID)

	return os.WriteFile(m.path, []byte(content), 0600)
}

func (m model) View() string {
	var s strings.Builder

	writeInput := func(masked bool) {
		in := string(m.input)
		if masked {
			in = maskToken(in)
		}
		s.WriteString("> " + inputStyle.Render(in))
		if m.err != nil {
			s.WriteString("\n" + errorStyle.Render(m.err.Error()))
		}
	}

	switch m.step {
	case stepWelcome:
		s.WriteString(titleStyle.Render("lipi - Bot Setup"))
		s.WriteString("\n\n")
		s.WriteString("This wizard will help you configure the Discord bot.\n")
		s.WriteString("You'll need:\n\n")
		s.WriteString("  - A Discord bot token\n")
		s.WriteString("  - Optionally, a guild ID for instant command registration\n")
		s.WriteString("\n")
		s.WriteString(dimStyle.Render("Press Enter to continue, Ctrl+C to exit"))

	case stepDiscord:
		s.WriteString(titleStyle.Render("Step 1: Discord Bot Token"))
		s.WriteString("\n\n")
		s.WriteString("To get your Discord bot token:\n\n")
		s.WriteString("  1. Go to " + linkStyle.Render("https://discord.com/developers/applications") + "\n")
		s.WriteString("  2. Create a new application (or select existing)\n")
		s.WriteString("  3. Go to the Bot section\n")
		s.WriteString("  4. Click 'Reset Token' to get your bot token\n")
		s.WriteString("\n")
		s.WriteString(labelStyle.Render("Paste your Discord token here:"))
		s.WriteString("\n")
		writeInput(true)

	case stepGuild:
		s.WriteString(titleStyle.Render("Step 2: Discord Guild ID"))
		s.WriteString("\n\n")
		s.WriteString("Commands registered to a single guild update instantly.\n")
		s.WriteString("Leave blank to register globally (may take up to an hour).\n")
		s.WriteString("\n")
		s.WriteString(labelStyle.Render("Guild ID (optional):"))
		s.WriteString("\n")
		writeInput(false)

	case stepDatabase:
		s.WriteString(titleStyle.Render("Step 3: History Database"))
		s.WriteString("\n\n")
		s.WriteString("A SQLite file path or a postgres:// URL.\n")
		s.WriteString("\n")
		s.WriteString(labelStyle.Render("Database URL [" + DefaultDatabaseURL + "]:"))
		s.WriteString("\n")
		writeInput(false)

	case stepConfirm, stepDone:
		guild := m.guildID
		if guild == "" {
			guild = "(global)"
		}
		s.WriteString(titleStyle.Render("Configuration Complete"))
		s.WriteString("\n\n")
		s.WriteString("Your configuration:\n\n")
		s.WriteString("  Database: " + successStyle.Render(m.databaseURL) + "\n")
		s.WriteString("  Discord:  " + successStyle.Render(maskToken(m.discordToken)) + "\n")
		s.WriteString("  Guild:    " + successStyle.Render(guild) + "\n")
		s.WriteString("\n")
		s.WriteString(labelStyle.Render("Save this configuration to " + m.path + "? [Y/n]:"))
		s.WriteString("\n")
		writeInput(false)
	}

	s.WriteString("\n")
	return s.String()
}

func maskToken(token string) string {
	if len(token) <= 8 {
		return strings.Repeat("*", len(token))
	}
	return token[:4] + strings.Repeat("*", len(token)-8) + token[len(token)-4:]
}

// Run starts the setup wizard and reports whether a file was written to path.
func Run(path string) (bool, error) {
	p := tea.NewProgram(New(path))
	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m := finalModel.(model)
	return m.step == stepDone, nil
}

// NeedsSetup reports whether path does not exist yet.
func NeedsSetup(path string) bool {
	_, err := os.Stat(path)
	return os.IsNotExist(err)
}
