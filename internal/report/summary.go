// Copyright (c) 2026 Keymaster Team
// Secret Santa - gift exchange page generator
// This source code is licensed under the MIT license found in the LICENSE file.

// Package report prints the giver -> URL table that the organiser sends
// out, and optionally persists the full mapping.
package report

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/toeirei/secretsanta/internal/i18n"
	"github.com/toeirei/secretsanta/internal/model"
)

// copyToClipboard is swapped out in tests.
var copyToClipboard = clipboard.WriteAll

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#c41e3a")).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	bannerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#2d5a3d"))
)

// Sorted returns links ordered by giver name using the collation rules of
// tag, so "Élodie" sorts next to "Elise" rather than after "Zoé".
func Sorted(links []model.PublishedLink, tag language.Tag) []model.PublishedLink {
	out := make([]model.PublishedLink, len(links))
	copy(out, links)
	c := collate.New(tag, collate.IgnoreCase)
	sort.SliceStable(out, func(i, j int) bool {
		return c.CompareString(out[i].Giver.String(), out[j].Giver.String()) < 0
	})
	return out
}

// Text renders the plain report, one "giver → url" line per participant.
func Text(links []model.PublishedLink) string {
	var b strings.Builder
	for _, l := range links {
		fmt.Fprintf(&b, "%-25s → %s\n", l.Giver, l.URL)
	}
	return b.String()
}

// Table renders the report as a bordered table.
func Table(links []model.PublishedLink) string {
	rows := make([][]string, 0, len(links))
	for _, l := range links {
		rows = append(rows, []string{l.Giver.String(), l.URL})
	}
	return table.New().
		Border(lipgloss.RoundedBorder()).
		Headers(i18n.T("report.giver"), i18n.T("report.url")).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		String()
}

// Write prints the sorted report. styled selects the table over plain lines.
func Write(w io.Writer, links []model.PublishedLink, styled bool) error {
	sorted := Sorted(links, i18n.Tag())
	var err error
	if styled {
		_, err = fmt.Fprintln(w, Table(sorted))
	} else {
		_, err = io.WriteString(w, Text(sorted))
	}
	return err
}

// Banner returns msg styled as the success banner when styled is set.
func Banner(msg string, styled bool) string {
	if !styled {
		rule := strings.Repeat("=", 60)
		return rule + "\n" + msg + "\n" + rule
	}
	return bannerStyle.Render(msg)
}

// Copy puts the plain report on the system clipboard.
func Copy(links []model.PublishedLink) error {
	if err := copyToClipboard(Text(Sorted(links, i18n.Tag()))); err != nil {
		return fmt.Errorf("report: copy to clipboard: %w", err)
	}
	return nil
}
