// Package tui implements the interactive weight tuner: a bubbletea
// program that re-ranks a loaded dataset live while the user nudges
// criterion weights and flips impact directions.
package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/papapumpkin/verdict/internal/dataset"
	"github.com/papapumpkin/verdict/internal/topsis"
)

// weightStep is the amount one keypress changes the selected weight.
const weightStep = 0.5

// Model is the bubbletea model for the weight tuner. It owns a working
// copy of the weight/impact vectors; the dataset itself is never
// mutated.
type Model struct {
	ds      *dataset.Dataset
	weights []float64
	impacts []topsis.Impact

	initialWeights []float64
	initialImpacts []topsis.Impact

	cursor  int
	results []topsis.Result
	err     error
	keys    KeyMap
	width   int
}

// New builds a tuner model over a loaded dataset with starting vectors.
// The vectors must already match the dataset's criterion count.
func New(ds *dataset.Dataset, weights []float64, impacts []topsis.Impact) Model {
	m := Model{
		ds:             ds,
		weights:        append([]float64(nil), weights...),
		impacts:        append([]topsis.Impact(nil), impacts...),
		initialWeights: append([]float64(nil), weights...),
		initialImpacts: append([]topsis.Impact(nil), impacts...),
		keys:           DefaultKeyMap(),
	}
	m.recompute()
	return m
}

// Weights returns the current weight vector.
func (m Model) Weights() []float64 {
	return append([]float64(nil), m.weights...)
}

// Impacts returns the current impact vector.
func (m Model) Impacts() []topsis.Impact {
	return append([]topsis.Impact(nil), m.impacts...)
}

// Err returns the last engine error, if any.
func (m Model) Err() error {
	return m.err
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Left):
			if m.cursor > 0 {
				m.cursor--
			}

		case key.Matches(msg, m.keys.Right):
			if m.cursor < m.ds.Columns()-1 {
				m.cursor++
			}

		case key.Matches(msg, m.keys.Increase):
			m.weights[m.cursor] += weightStep
			m.recompute()

		case key.Matches(msg, m.keys.Decrease):
			m.weights[m.cursor] -= weightStep
			if m.weights[m.cursor] < 0 {
				m.weights[m.cursor] = 0
			}
			m.recompute()

		case key.Matches(msg, m.keys.Toggle):
			if m.impacts[m.cursor] == topsis.Benefit {
				m.impacts[m.cursor] = topsis.Cost
			} else {
				m.impacts[m.cursor] = topsis.Benefit
			}
			m.recompute()

		case key.Matches(msg, m.keys.Reset):
			copy(m.weights, m.initialWeights)
			copy(m.impacts, m.initialImpacts)
			m.recompute()
		}
	}
	return m, nil
}

// recompute re-runs the engine against the working vectors. The tuner
// only ever changes weights and impacts, so an engine error here means a
// bug, not bad user input; it is surfaced in the view rather than
// panicking mid-session.
func (m *Model) recompute() {
	m.results, m.err = topsis.Compute(m.ds.Matrix, m.weights, m.impacts)
}

func (m Model) View() string {
	var b strings.Builder

	title := m.ds.Path
	b.WriteString(styleTitle.Render("verdict tuner — " + title))
	b.WriteString("\n\n")

	b.WriteString(m.renderCriteria())
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(styleCost.Render("engine error: " + m.err.Error()))
		b.WriteString("\n")
	} else {
		b.WriteString(m.renderRanking())
	}

	b.WriteString("\n")
	b.WriteString(styleHelp.Render(
		"←/→ select criterion  ↑/+ raise  ↓/- lower  i flip benefit/cost  r reset  q quit"))
	b.WriteString("\n")
	return b.String()
}

// renderCriteria draws one block per criterion: name, weight, and impact
// direction, with the cursor highlighting the selected column.
func (m Model) renderCriteria() string {
	var b strings.Builder
	for j, name := range m.ds.Criteria {
		selected := j == m.cursor

		indicator := "  "
		if selected {
			indicator = styleSelected.Render(selectionIndicator) + " "
		}

		impactStyle := styleBenefit
		arrow := "↑ benefit"
		if m.impacts[j] == topsis.Cost {
			impactStyle = styleCost
			arrow = "↓ cost"
		}

		nameStyle := styleNormal
		if selected {
			nameStyle = styleSelected
		}

		line := fmt.Sprintf("%s%s  w=%.2f  %s",
			indicator,
			nameStyle.Render(fmt.Sprintf("%-14s", name)),
			m.weights[j],
			impactStyle.Render(arrow))
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

// renderRanking draws the live ranking, best first.
func (m Model) renderRanking() string {
	order := make([]int, len(m.results))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool {
		return m.results[order[a]].Rank < m.results[order[b]].Rank
	})

	var b strings.Builder
	b.WriteString(styleHeader.Render(fmt.Sprintf("%4s  %-20s %s", "rank", "alternative", "score")))
	b.WriteString("\n")
	for _, i := range order {
		r := m.results[i]
		style := styleRankRest
		switch {
		case r.Rank == 1:
			style = styleRankFirst
		case r.Rank <= 3:
			style = styleRankTop
		}
		b.WriteString(style.Render(
			fmt.Sprintf("%4d  %-20s %.4f", r.Rank, m.ds.Names[i], r.Score)))
		b.WriteString("\n")
	}
	return b.String()
}
