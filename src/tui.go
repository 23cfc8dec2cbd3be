package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"glossary-reader/glossary"
	"glossary-reader/transcript"
)

func browseCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "browse [file]",
		Short: "Browse a transcript interactively",
		Long:  "Open a terminal browser with the term list on the left and the selected entry on the right. " + fileArgHelp,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// The terminal belongs to the UI, so logs go to a file.
			f, err := tea.LogToFile(a.cfg.Log.File, "glossary")
			if err != nil {
				return errors.Wrap(err, "could not create log file")
			}
			defer f.Close()
			log.SetOutput(f)

			t, entries, err := a.load(args)
			if err != nil {
				return err
			}
			log.WithFields(log.Fields{
				"source":  displayPath(t),
				"entries": len(entries),
			}).Info("starting browser")

			p := tea.NewProgram(initialModel(a, t, entries), tea.WithAltScreen())
			_, err = p.Run()
			return err
		},
	}
}

// --- Enums & Types ---

type sessionState int

const (
	stateBrowse sessionState = iota
	stateFilePicker
	stateSaveFilepath
)

type pane int

const (
	listPane pane = iota
	detailPane
)

type (
	transcriptLoadedMsg struct {
		source  transcript.Transcript
		entries []glossary.Entry
	}
	fileWriteMsg   struct{ path string }
	resetStatusMsg struct{}
	errMsg         struct{ err error }
)

func (e errMsg) Error() string { return e.err.Error() }

// --- Commands ---

func loadTranscriptCmd(a *app, path string) tea.Cmd {
	return func() tea.Msg {
		t, entries, err := a.load([]string{path})
		if err != nil {
			return errMsg{err}
		}
		return transcriptLoadedMsg{source: t, entries: entries}
	}
}

func writeJSONCmd(path string, entries []glossary.Entry) tea.Cmd {
	return func() tea.Msg {
		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return errMsg{err}
		}
		if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
			return errMsg{err}
		}
		return fileWriteMsg{path: path}
	}
}

func resetStatusCmd() tea.Cmd {
	return tea.Tick(2*time.Second, func(t time.Time) tea.Msg {
		return resetStatusMsg{}
	})
}

// --- Model ---

type model struct {
	app *app

	state         sessionState
	focus         pane
	status        string
	defaultStatus string

	// UI Components
	list       list.Model
	detail     viewport.Model
	pathInput  textinput.Model
	filepicker filepicker.Model

	// Content
	source  transcript.Transcript
	entries []glossary.Entry
	index   *glossary.Index
}

func initialModel(a *app, t transcript.Transcript, entries []glossary.Entry) model {
	defaultStatus := "Enter: Read | 1-9: Follow see also | /: Filter | Ctrl+O: Open | Ctrl+S: Save JSON | Tab: Switch Panes"
	m := model{
		app:           a,
		state:         stateBrowse,
		focus:         listPane,
		status:        defaultStatus,
		defaultStatus: defaultStatus,
		detail:        viewport.New(0, 0),
	}

	// Inputs
	m.pathInput = textinput.New()
	m.pathInput.Placeholder = "Save entries as..."
	m.pathInput.CharLimit = 256
	m.pathInput.Width = 80

	// List
	m.list = list.New([]list.Item{}, list.NewDefaultDelegate(), 0, 0)
	m.list.SetShowHelp(false)

	// Filepicker
	fp := filepicker.New()
	fp.AllowedTypes = []string{".txt", ".md"}
	fp.CurrentDirectory, _ = os.Getwd()
	if t.Path != "" && t.Path != transcript.StdinPath {
		fp.CurrentDirectory, _ = filepath.Abs(filepath.Dir(t.Path))
	}
	m.filepicker = fp

	m.setEntries(t, entries)
	return m
}

func (m *model) setEntries(t transcript.Transcript, entries []glossary.Entry) {
	m.source = t
	m.entries = entries
	m.index = glossary.NewIndex(entries)

	items := make([]list.Item, len(entries))
	for i, e := range entries {
		items[i] = item{entry: e}
	}
	m.list.ResetFilter()
	m.list.SetItems(items)
	m.list.Title = fmt.Sprintf("%s (%d)", sourceTitle(t), len(entries))
	m.list.Select(0)
	m.refreshDetail()
}

func sourceTitle(t transcript.Transcript) string {
	switch {
	case t.Title != "":
		return t.Title
	case t.Path == "":
		return "Sample glossary"
	default:
		return filepath.Base(t.Path)
	}
}

func (m *model) selected() (glossary.Entry, bool) {
	it, ok := m.list.SelectedItem().(item)
	if !ok {
		return glossary.Entry{}, false
	}
	return it.entry, true
}

func (m *model) refreshDetail() {
	e, ok := m.selected()
	if !ok {
		m.detail.SetContent(dimStyle.Render("No entries."))
		return
	}
	width := m.detail.Width
	if width <= 0 {
		width = 60
	}
	m.detail.SetContent(renderEntry(e, m.app.catalog.Related(e.Term), width))
	m.detail.GotoTop()
}

// follow selects the entry named by the n-th see-also reference (1-based) of
// the selected entry.
func (m *model) follow(n int) bool {
	e, ok := m.selected()
	if !ok || n < 1 || n > len(e.SeeAlso) {
		return false
	}
	target, ok := m.index.Resolve(e.SeeAlso[n-1])
	if !ok {
		return false
	}
	m.list.ResetFilter()
	m.list.Select(m.index.IndexOf(target.Term))
	m.refreshDetail()
	return true
}

func (m model) Init() tea.Cmd {
	return nil
}

// --- Update ---

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h, v := docStyle.GetFrameSize()
		frameW, frameH := focusedStyle.GetFrameSize()
		listWidth := (msg.Width - h) / 3
		detailWidth := msg.Width - h - listWidth - 2*frameW
		panelHeight := msg.Height - v - frameH - 1

		m.list.SetSize(listWidth, panelHeight)
		m.detail.Width = detailWidth
		m.detail.Height = panelHeight
		m.filepicker.Height = panelHeight
		m.refreshDetail()
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		// State-specific updates
		switch m.state {
		case stateFilePicker:
			if msg.String() == "esc" {
				m.state = stateBrowse
				m.status = "File selection cancelled."
				return m, resetStatusCmd()
			}
			var cmd tea.Cmd
			m.filepicker, cmd = m.filepicker.Update(msg)
			if didSelect, path := m.filepicker.DidSelectFile(msg); didSelect {
				m.state = stateBrowse
				m.status = "Loading..."
				return m, loadTranscriptCmd(m.app, path)
			}
			return m, cmd
		case stateSaveFilepath:
			return updatePathInput(msg, m)
		default:
			return updateBrowse(msg, m)
		}

	case resetStatusMsg:
		m.status = m.defaultStatus
		return m, nil

	case transcriptLoadedMsg:
		m.setEntries(msg.source, msg.entries)
		m.status = fmt.Sprintf("Loaded '%s': %d entries", sourceTitle(msg.source), len(msg.entries))
		m.state = stateBrowse
		m.focus = listPane
		return m, resetStatusCmd()

	case fileWriteMsg:
		m.status = fmt.Sprintf("Saved to '%s'", filepath.Base(msg.path))
		m.state = stateBrowse
		return m, resetStatusCmd()

	case errMsg:
		log.WithFields(log.Fields{
			"err": msg.err,
		}).Error("browser command failed")
		m.status = fmt.Sprintf("Error: %v", msg.err)
		m.state = stateBrowse
		return m, resetStatusCmd()
	}

	// Non-key messages such as directory listings and filter matches.
	var cmd tea.Cmd
	switch m.state {
	case stateFilePicker:
		m.filepicker, cmd = m.filepicker.Update(msg)
	case stateBrowse:
		before := m.list.Index()
		m.list, cmd = m.list.Update(msg)
		if m.list.Index() != before {
			m.refreshDetail()
		}
	}
	return m, cmd
}

func updateBrowse(msg tea.KeyMsg, m model) (tea.Model, tea.Cmd) {
	// While the filter prompt is open every key belongs to it.
	if m.list.FilterState() == list.Filtering {
		return updateList(msg, m)
	}

	switch msg.String() {
	case "ctrl+o":
		m.state = stateFilePicker
		m.status = "Select a transcript to load."
		return m, m.filepicker.Init()

	case "ctrl+s":
		m.state = stateSaveFilepath
		name := "glossary"
		if m.source.Path != "" && m.source.Path != transcript.StdinPath {
			name = strings.TrimSuffix(filepath.Base(m.source.Path), filepath.Ext(m.source.Path))
		}
		m.pathInput.SetValue(name + ".json")
		m.pathInput.Focus()
		m.status = "Enter file path to save."
		return m, nil

	case "tab":
		if m.focus == listPane {
			m.focus = detailPane
		} else {
			m.focus = listPane
		}
		return m, nil

	case "enter":
		if m.focus == listPane {
			m.focus = detailPane
			return m, nil
		}

	case "esc":
		if m.focus == detailPane {
			m.focus = listPane
			return m, nil
		}

	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		if m.focus == detailPane {
			n := int(msg.String()[0] - '0')
			if !m.follow(n) {
				m.status = fmt.Sprintf("See also %d does not match a term.", n)
				return m, resetStatusCmd()
			}
			return m, nil
		}
	}

	if m.focus == detailPane {
		var cmd tea.Cmd
		m.detail, cmd = m.detail.Update(msg)
		return m, cmd
	}
	return updateList(msg, m)
}

func updateList(msg tea.KeyMsg, m model) (tea.Model, tea.Cmd) {
	before := m.list.Index()
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	if m.list.Index() != before {
		m.refreshDetail()
	}
	return m, cmd
}

func updatePathInput(msg tea.KeyMsg, m model) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg.String() {
	case "enter":
		path := m.pathInput.Value()
		if path == "" {
			return m, nil
		}
		m.state = stateBrowse
		m.status = "Saving..."
		return m, writeJSONCmd(path, m.entries)
	case "esc":
		m.state = stateBrowse
		m.status = "Cancelled save."
		return m, resetStatusCmd()
	}
	m.pathInput, cmd = m.pathInput.Update(msg)
	return m, cmd
}

// --- View ---

func (m model) View() string {
	switch m.state {
	case stateFilePicker:
		return docStyle.Render(m.filepicker.View())
	case stateSaveFilepath:
		return docStyle.Render(fmt.Sprintf("Save entries as JSON:\n\n%s", m.pathInput.View()) + "\n\nEnter: confirm | Esc: cancel")
	default:
		listStyle, detailStyle := focusedStyle, blurredStyle
		if m.focus == detailPane {
			listStyle, detailStyle = blurredStyle, focusedStyle
		}
		panels := lipgloss.JoinHorizontal(lipgloss.Top, listStyle.Render(m.list.View()), detailStyle.Render(m.detail.View()))
		return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left, panels, helpStyle.Render(m.status)))
	}
}

// --- List Items ---

type item struct {
	entry glossary.Entry
}

func (i item) Title() string { return i.entry.Term }

func (i item) Description() string {
	first, _, _ := strings.Cut(i.entry.Definition, "\n")
	return first
}

func (i item) FilterValue() string { return i.entry.Term }
