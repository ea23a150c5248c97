package term

import "github.com/charmbracelet/lipgloss"

var (
	colorStem    = lipgloss.Color("#3E7D2C")
	colorMuted   = lipgloss.Color("#828997")
	colorNeutral = lipgloss.Color("#9E9E9E")
)

var (
	appStyle = lipgloss.NewStyle().
			Padding(1, 2)

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#E06C75")).
			Bold(true)

	stemStyle = lipgloss.NewStyle().
			Foreground(colorStem).
			Bold(true)

	clockStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1)

	captionStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Italic(true)

	tallyStyle = lipgloss.NewStyle().
			Foreground(colorMuted)
)

const stemArt = `   \|/   `

var fruitArt = []string{
	` .-'''-. `,
	`/       \`,
	`|       |`,
	`\       /`,
	` '-...-' `,
}
