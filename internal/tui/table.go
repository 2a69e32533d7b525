package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/jusunglee/lipi/internal/db"
	"github.com/jusunglee/lipi/internal/indic"
	"github.com/jusunglee/lipi/internal/transliteration"
	"github.com/samber/lo"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	wordStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Padding(0, 1)
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// OutsideMarker flags a syllable outside the selected variant.
const OutsideMarker = "*"

// Rows lays out res as a grid: one row per syllable, then one row with the
// whole word. The first column is the romanization.
func Rows(res transliteration.Result) [][]string {
	var rows [][]string
	for _, w := range res.Words {
		for _, syl := range w.Syllables {
			roman := syl.Roman
			if len(syl.Aliases) > 0 {
				roman += " (" + strings.Join(syl.Aliases, " / ") + ")"
			}
			if syl.OutsideVariant {
				roman += " " + OutsideMarker
			}
			row := []string{roman}
			for _, script := range res.Scripts {
				row = append(row, syl.Rendered[script])
			}
			rows = append(rows, row)
		}

		row := []string{w.Text}
		for _, script := range res.Scripts {
			row = append(row, w.Full[script])
		}
		rows = append(rows, row)
	}
	return rows
}

// RenderTable draws res with a header of script names. Word rows are bold.
func RenderTable(res transliteration.Result) string {
	rows := Rows(res)
	wordRows := make(map[int]bool)
	i := 0
	for _, w := range res.Words {
		i += len(w.Syllables)
		wordRows[i] = true
		i++
	}

	headers := append([]string{"roman"}, lo.Map(res.Scripts, func(s indic.Script, _ int) string {
		return string(s)
	})...)

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case wordRows[row]:
				return wordStyle
			default:
				return cellStyle
			}
		}).
		String()
}

// RenderHistory draws saved lookups, newest first.
func RenderHistory(lookups []db.Lookup) string {
	rows := lo.Map(lookups, func(l db.Lookup, _ int) []string {
		return []string{
			l.CreatedAt.Local().Format("2006-01-02 15:04"),
			l.Source,
			l.Input,
			strconv.Itoa(int(l.Syllables)),
			strconv.Itoa(int(l.Fallbacks)),
		}
	})

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		Headers("when", "source", "input", "syllables", "missing").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		String()
}
