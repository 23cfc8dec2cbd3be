package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"glossary-reader/catalog"
	"glossary-reader/config"
	"glossary-reader/glossary"
	"glossary-reader/transcript"
)

func testModel(t *testing.T) model {
	t.Helper()
	a := &app{cfg: config.Default(), catalog: catalog.Default()}
	s := transcript.Sample()
	m := initialModel(a, s, a.parser(s).Parse(s.Body))
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return next.(model)
}

func press(m model, keys ...tea.KeyMsg) model {
	for _, k := range keys {
		next, _ := m.Update(k)
		m = next.(model)
	}
	return m
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func selectedTerm(t *testing.T, m model) string {
	t.Helper()
	e, ok := m.selected()
	if !ok {
		t.Fatal("no entry selected")
	}
	return e.Term
}

func TestBrowserInitialSelection(t *testing.T) {
	m := testModel(t)
	if got := selectedTerm(t, m); got != "13-Month Calendar" {
		t.Errorf("expected first entry selected, got %q", got)
	}
	if !strings.Contains(m.View(), "13-Month Calendar") {
		t.Error("view should show the selected term")
	}
	if m.list.Title != "Sample glossary (9)" {
		t.Errorf("unexpected list title %q", m.list.Title)
	}
}

func TestBrowserMoveSelection(t *testing.T) {
	m := press(testModel(t), tea.KeyMsg{Type: tea.KeyDown})
	if got := selectedTerm(t, m); got != "Abyss" {
		t.Errorf("expected Abyss after moving down, got %q", got)
	}
	if !strings.Contains(m.detail.View(), "The deep beneath") {
		t.Error("detail pane should follow the selection")
	}
}

func TestBrowserFollowSeeAlso(t *testing.T) {
	m := press(testModel(t), tea.KeyMsg{Type: tea.KeyEnter})
	if m.focus != detailPane {
		t.Fatal("enter should focus the detail pane")
	}

	// 13-Month Calendar: See also: Lunar Cycle, Sabbath
	m = press(m, runes("2"))
	if got := selectedTerm(t, m); got != "Sabbath" {
		t.Fatalf("expected Sabbath, got %q", got)
	}

	// Sabbath: See also: 13-Month Calendar, Lunar Cycle.
	m = press(m, runes("2"))
	if got := selectedTerm(t, m); got != "Lunar Cycle" {
		t.Errorf("trailing period should still resolve, got %q", got)
	}

	m = press(m, runes("9"))
	if !strings.Contains(m.status, "does not match") {
		t.Errorf("expected status for missing reference, got %q", m.status)
	}

	m = press(m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.focus != listPane {
		t.Error("esc should return focus to the list")
	}
}

func TestBrowserSaveJSON(t *testing.T) {
	m := press(testModel(t), tea.KeyMsg{Type: tea.KeyCtrlS})
	if m.state != stateSaveFilepath {
		t.Fatal("ctrl+s should open the save prompt")
	}
	if m.pathInput.Value() != "glossary.json" {
		t.Errorf("unexpected default path %q", m.pathInput.Value())
	}

	m = press(m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.state != stateBrowse {
		t.Error("esc should cancel the save prompt")
	}
}

func TestWriteJSONCmd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	entries := glossary.Parse("Abyss\nThe deep.\nSee also: Firmament")

	msg := writeJSONCmd(path, entries)()
	if _, ok := msg.(fileWriteMsg); !ok {
		t.Fatalf("expected fileWriteMsg, got %#v", msg)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var got []glossary.Entry
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].SeeAlso[0] != "Firmament" {
		t.Errorf("unexpected saved entries %#v", got)
	}
}

func TestBrowserLoadTranscript(t *testing.T) {
	m := testModel(t)
	path := filepath.Join(t.TempDir(), "small.txt")
	if err := os.WriteFile(path, []byte("Abyss\nThe deep.\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	msg := loadTranscriptCmd(m.app, path)()
	next, _ := m.Update(msg)
	m = next.(model)
	if len(m.entries) != 1 || selectedTerm(t, m) != "Abyss" {
		t.Errorf("expected the new transcript to replace the list, got %d entries", len(m.entries))
	}
	if !strings.Contains(m.status, "small.txt") {
		t.Errorf("unexpected status %q", m.status)
	}

	msg = loadTranscriptCmd(m.app, filepath.Join(t.TempDir(), "missing.txt"))()
	next, _ = m.Update(msg)
	m = next.(model)
	if !strings.HasPrefix(m.status, "Error:") {
		t.Errorf("expected error status, got %q", m.status)
	}
	if len(m.entries) != 1 {
		t.Error("a failed load must keep the current entries")
	}
}

func TestBrowserEmptyTranscript(t *testing.T) {
	a := &app{cfg: config.Default(), catalog: catalog.Default()}
	m := initialModel(a, transcript.Transcript{}, glossary.Parse(""))
	if _, ok := m.selected(); ok {
		t.Error("empty transcript should have no selection")
	}
	m = press(m, tea.KeyMsg{Type: tea.KeyEnter}, runes("1"))
	if !strings.Contains(m.status, "does not match") {
		t.Errorf("following with no selection should report, got %q", m.status)
	}
}
