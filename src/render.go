package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"glossary-reader/catalog"
	"glossary-reader/glossary"
)

// --- Styles ---
var (
	docStyle     = lipgloss.NewStyle().Margin(1, 2)
	focusedStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("62"))
	blurredStyle = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("240"))
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	termStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	labelStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("62"))
	refStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// renderEntry formats an entry for the terminal, wrapped to width columns.
func renderEntry(e glossary.Entry, related []catalog.Document, width int) string {
	body := lipgloss.NewStyle().Width(width)

	var b strings.Builder
	b.WriteString(termStyle.Render(e.Term))
	b.WriteString("\n\n")

	if e.Definition == "" {
		b.WriteString(dimStyle.Render("(no definition)"))
	} else {
		b.WriteString(body.Render(e.Definition))
	}
	b.WriteString("\n")

	if len(e.SeeAlso) > 0 {
		b.WriteString("\n")
		b.WriteString(labelStyle.Render("See also"))
		b.WriteString("\n")
		for i, ref := range e.SeeAlso {
			fmt.Fprintf(&b, "  %d. %s\n", i+1, refStyle.Render(ref))
		}
	}

	if len(related) > 0 {
		b.WriteString("\n")
		b.WriteString(labelStyle.Render("Related documents"))
		b.WriteString("\n")
		for _, d := range related {
			b.WriteString(body.Render("  " + documentLine(d)))
			b.WriteString("\n")
			if d.URL != "" {
				b.WriteString(dimStyle.Render("    " + d.URL))
				b.WriteString("\n")
			}
		}
	}

	return strings.TrimRight(b.String(), "\n")
}

func documentLine(d catalog.Document) string {
	line := d.Title
	if line == "" {
		line = d.ID
	}
	var meta []string
	if d.Authors != "" {
		meta = append(meta, d.Authors)
	}
	if d.Year != "" {
		meta = append(meta, d.Year)
	}
	if len(meta) > 0 {
		line += " (" + strings.Join(meta, ", ") + ")"
	}
	return line
}
