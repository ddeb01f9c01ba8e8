package tui

import "github.com/charmbracelet/lipgloss"

// Semantic color palette.
var (
	colorPrimary     = lipgloss.Color("#00BFFF") // Cyan — primary accent
	colorAccent      = lipgloss.Color("#FFD700") // Gold — rank 1
	colorSuccess     = lipgloss.Color("#00E676") // Green — top ranks
	colorDanger      = lipgloss.Color("#FF5252") // Red — cost criteria
	colorMuted       = lipgloss.Color("#636363") // Gray — de-emphasized
	colorMutedLight  = lipgloss.Color("#8C8C8C") // Lighter gray — normal text
	colorWhite       = lipgloss.Color("#EEEEEE") // Off-white — primary text
	colorBrightWhite = lipgloss.Color("#FFFFFF") // Pure white — emphatic text
)

// Selection indicator prepended to the active criterion column.
const selectionIndicator = "▎"

var (
	styleTitle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	styleHeader = lipgloss.NewStyle().
			Foreground(colorWhite).
			Bold(true)

	styleSelected = lipgloss.NewStyle().
			Foreground(colorBrightWhite).
			Bold(true)

	styleNormal = lipgloss.NewStyle().
			Foreground(colorMutedLight)

	styleBenefit = lipgloss.NewStyle().
			Foreground(colorSuccess)

	styleCost = lipgloss.NewStyle().
			Foreground(colorDanger)

	styleRankFirst = lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true)

	styleRankTop = lipgloss.NewStyle().
			Foreground(colorSuccess)

	styleRankRest = lipgloss.NewStyle().
			Foreground(colorMutedLight)

	styleHelp = lipgloss.NewStyle().
			Foreground(colorMuted)
)
