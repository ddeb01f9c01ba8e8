package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/papapumpkin/verdict/internal/dataset"
	"github.com/papapumpkin/verdict/internal/topsis"
)

func tunerFixture() Model {
	ds := &dataset.Dataset{
		Path:     "phones.csv",
		Criteria: []string{"storage", "price"},
		Names:    []string{"M1", "M2"},
		Matrix: [][]float64{
			{1, 9},
			{4, 5},
		},
	}
	return New(ds,
		[]float64{1, 1},
		[]topsis.Impact{topsis.Benefit, topsis.Cost})
}

func keyPress(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "left":
			msg = tea.KeyMsg{Type: tea.KeyLeft}
		case "right":
			msg = tea.KeyMsg{Type: tea.KeyRight}
		case "up":
			msg = tea.KeyMsg{Type: tea.KeyUp}
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		case "tab":
			msg = tea.KeyMsg{Type: tea.KeyTab}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func TestNew_ComputesInitialRanking(t *testing.T) {
	t.Parallel()
	m := tunerFixture()

	if m.Err() != nil {
		t.Fatal(m.Err())
	}
	// M2 dominates (more storage, lower price).
	if m.results[1].Rank != 1 {
		t.Errorf("M2 rank = %d, want 1", m.results[1].Rank)
	}
}

func TestUpdate_AdjustsWeight(t *testing.T) {
	t.Parallel()
	m := tunerFixture()

	m = keyPress(t, m, "up", "up")
	if got := m.Weights()[0]; got != 2.0 {
		t.Errorf("weight[0] after two raises = %f, want 2.0", got)
	}

	m = keyPress(t, m, "down", "down", "down", "down", "down")
	if got := m.Weights()[0]; got != 0 {
		t.Errorf("weight[0] floors at 0, got %f", got)
	}
}

func TestUpdate_CursorBounds(t *testing.T) {
	t.Parallel()
	m := tunerFixture()

	m = keyPress(t, m, "left", "left")
	if m.cursor != 0 {
		t.Errorf("cursor = %d after left at edge, want 0", m.cursor)
	}

	m = keyPress(t, m, "right", "right", "right")
	if m.cursor != 1 {
		t.Errorf("cursor = %d after right past edge, want 1", m.cursor)
	}
}

func TestUpdate_ToggleFlipsRanking(t *testing.T) {
	t.Parallel()
	m := tunerFixture()

	// Flip both criteria: storage becomes a cost, price a benefit. The
	// previous winner must now lose.
	m = keyPress(t, m, "i", "right", "i")

	if m.Impacts()[0] != topsis.Cost || m.Impacts()[1] != topsis.Benefit {
		t.Fatalf("impacts after toggles = %v", m.Impacts())
	}
	if m.results[0].Rank != 1 {
		t.Errorf("M1 rank after inversion = %d, want 1", m.results[0].Rank)
	}
}

func TestUpdate_ResetRestoresVectors(t *testing.T) {
	t.Parallel()
	m := tunerFixture()

	m = keyPress(t, m, "up", "i", "right", "up", "r")

	if got := m.Weights(); got[0] != 1 || got[1] != 1 {
		t.Errorf("weights after reset = %v, want [1 1]", got)
	}
	if got := m.Impacts(); got[0] != topsis.Benefit || got[1] != topsis.Cost {
		t.Errorf("impacts after reset = %v", got)
	}
}

func TestUpdate_QuitReturnsQuitCmd(t *testing.T) {
	t.Parallel()
	m := tunerFixture()

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if msg := cmd(); msg != tea.Quit() {
		t.Errorf("cmd() = %v, want tea.QuitMsg", msg)
	}
}

func TestView_ShowsRankingAndHelp(t *testing.T) {
	t.Parallel()
	m := tunerFixture()

	out := m.View()
	for _, want := range []string{"phones.csv", "storage", "price", "M1", "M2", "q quit"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q:\n%s", want, out)
		}
	}
}
