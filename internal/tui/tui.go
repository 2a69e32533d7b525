// Package tui is the interactive transliteration table: every keystroke
// re-segments the input and redraws the table.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/jusunglee/lipi/internal/db"
	"github.com/jusunglee/lipi/internal/history"
	"github.com/jusunglee/lipi/internal/indic"
	"github.com/jusunglee/lipi/internal/transliteration"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1)

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	onStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("82"))

	offStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39"))
)

type Options struct {
	Ligatures bool
	Variant   indic.Variant
	Initial   string
}

type savedMsg struct {
	input string
	err   error
}

// HistoryDisabledStatus is shown when enter is pressed without a database.
const HistoryDisabledStatus = "history disabled, start with --database-url to save lookups"

type Model struct {
	tr        *transliteration.Transliterator
	recorder  *history.Recorder
	input     textinput.Model
	ligatures bool
	variant   indic.Variant
	// scriptIdx 0 shows every script, i > 0 only scripts[i-1].
	scriptIdx int
	result    transliteration.Result
	status    string
	width     int
}

func New(tr *transliteration.Transliterator, recorder *history.Recorder, opts Options) Model {
	ti := textinput.New()
	ti.Placeholder = "type romanized text, e.g. dharma"
	ti.Prompt = "> "
	ti.CharLimit = 500
	ti.SetValue(opts.Initial)
	ti.Focus()

	m := Model{
		tr:        tr,
		recorder:  recorder,
		input:     ti,
		ligatures: opts.Ligatures,
		variant:   opts.Variant,
	}
	m.refresh()
	return m
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case savedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("could not save %q: %v", msg.input, msg.err)
			return m, nil
		}
		m.status = fmt.Sprintf("saved %q to history", msg.input)
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit

		case tea.KeyCtrlL:
			m.ligatures = !m.ligatures
			m.refresh()
			return m, nil

		case tea.KeyTab:
			m.scriptIdx = (m.scriptIdx + 1) % (len(m.tr.Scripts()) + 1)
			m.refresh()
			return m, nil

		case tea.KeyEnter:
			if !m.recorder.Enabled() {
				m.status = HistoryDisabledStatus
				return m, nil
			}
			return m, m.save()
		}
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.status = ""
		m.refresh()
	}
	return m, cmd
}

func (m *Model) refresh() {
	m.result = m.tr.Transliterate(m.input.Value(), transliteration.Options{
		Ligatures: m.ligatures,
		Scripts:   m.scripts(),
		Variant:   m.variant,
	})
}

func (m Model) scripts() []indic.Script {
	if m.scriptIdx == 0 {
		return nil
	}
	return []indic.Script{m.tr.Scripts()[m.scriptIdx-1]}
}

func (m Model) save() tea.Cmd {
	res := m.result
	if len(res.Words) == 0 {
		return nil
	}
	rec := m.recorder
	return func() tea.Msg {
		err := rec.Save(context.Background(), db.SourceTUI, res)
		return savedMsg{input: res.Input, err: err}
	}
}

func (m Model) View() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("lipi"))
	s.WriteString("\n")
	s.WriteString(m.input.View())
	s.WriteString("\n\n")

	if len(m.result.Words) > 0 {
		s.WriteString(RenderTable(m.result))
		s.WriteString("\n")
	}

	lig := offStyle.Render("off")
	if m.ligatures {
		lig = onStyle.Render("on")
	}
	shown := "all scripts"
	if sc := m.scripts(); len(sc) == 1 {
		shown = string(sc[0])
	}
	s.WriteString(dimStyle.Render("ligatures ") + lig + dimStyle.Render(" · "+shown))
	if m.variant.Name != "" {
		s.WriteString(dimStyle.Render(fmt.Sprintf(" · variant %s:%s", m.variant.Script, m.variant.Name)))
	}
	s.WriteString("\n")
	if m.status != "" {
		s.WriteString(statusStyle.Render(m.status))
		s.WriteString("\n")
	}
	s.WriteString(dimStyle.Render("ctrl+l ligatures · tab script · enter save · esc quit"))
	s.WriteString("\n")
	return s.String()
}

// Ligatures reports whether optional conjunct rules are on.
func (m Model) Ligatures() bool { return m.ligatures }

// Result returns the transliteration of the current input.
func (m Model) Result() transliteration.Result { return m.result }

// Run starts the interactive program.
func Run(m Model) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
