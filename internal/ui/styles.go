package ui

import "github.com/charmbracelet/lipgloss"

var (
	colorAccent    = lipgloss.Color("196") // red, the play-button color
	colorText      = lipgloss.Color("255")
	colorSecondary = lipgloss.Color("245")
	colorMuted     = lipgloss.Color("240")
	colorPanel     = lipgloss.Color("236")
	colorHighlight = lipgloss.Color("212")
	colorSuccess   = lipgloss.Color("78")
)

var TitleStyle = lipgloss.NewStyle().
	Foreground(colorText).
	Bold(true)

var SelectedRow = lipgloss.NewStyle().
	Foreground(colorText).
	Background(lipgloss.Color("238")).
	Padding(0, 1)

var NormalRow = lipgloss.NewStyle().
	Foreground(colorText).
	Padding(0, 1)

// MetaStyle renders channel names and "views • age" lines.
var MetaStyle = lipgloss.NewStyle().
	Foreground(colorSecondary)

var DurationBadge = lipgloss.NewStyle().
	Foreground(colorText).
	Background(lipgloss.Color("234")).
	Padding(0, 1)

var LiveBadge = lipgloss.NewStyle().
	Foreground(colorText).
	Background(colorAccent).
	Bold(true).
	Padding(0, 1)

var VerifiedMark = lipgloss.NewStyle().
	Foreground(colorSecondary)

// NewContentDot marks channels with unseen uploads.
var NewContentDot = lipgloss.NewStyle().
	Foreground(lipgloss.Color("33"))

var TabActive = lipgloss.NewStyle().
	Foreground(colorText).
	Background(colorAccent).
	Bold(true).
	Padding(0, 1)

var TabInactive = lipgloss.NewStyle().
	Foreground(colorSecondary).
	Padding(0, 1)

var SectionHeader = lipgloss.NewStyle().
	Foreground(colorHighlight).
	Bold(true).
	MarginTop(1)

var FooterStyle = lipgloss.NewStyle().
	Foreground(colorSecondary).
	Padding(0, 1)

var StatusBar = lipgloss.NewStyle().
	Foreground(colorText).
	Background(colorPanel).
	Padding(0, 1)

var StatusBarKey = lipgloss.NewStyle().
	Foreground(colorHighlight).
	Bold(true)

var StatusBarText = lipgloss.NewStyle().
	Foreground(colorSecondary)

var ErrorStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("196")).
	Bold(true).
	Padding(0, 1)

var HelpStyle = lipgloss.NewStyle().
	Foreground(colorMuted).
	Padding(1, 2)

var SearchBar = lipgloss.NewStyle().
	Foreground(colorText).
	Background(lipgloss.Color("240")).
	Padding(0, 1)

// ShortCard frames the single short on screen.
var ShortCard = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(colorMuted).
	Padding(1, 2).
	Width(40)

var ActiveToggle = lipgloss.NewStyle().
	Foreground(colorSuccess).
	Bold(true)

var DebugPanel = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(colorHighlight).
	Padding(1, 2)

var DebugHeaderStyle = lipgloss.NewStyle().
	Foreground(colorHighlight).
	Bold(true)
