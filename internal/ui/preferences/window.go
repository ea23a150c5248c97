package preferences

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"pomodorini/internal/core/model"
)

// Window handles the preferences UI.
type Window struct {
	window   fyne.Window
	settings Settings
	onSave   func(Settings)
	goal     *widget.Entry
	tick     *widget.Entry
	overtime *widget.Check
}

// New creates a preferences window.
func New(app fyne.App, settings Settings, onSave func(Settings)) *Window {
	window := app.NewWindow("Pomodorini Settings")

	goal := widget.NewEntry()
	tick := widget.NewEntry()
	overtime := widget.NewCheck("Keep ripening past the goal", nil)

	form := container.NewVBox(
		widget.NewLabelWithStyle("Pomodorino", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewHBox(widget.NewLabel("Goal"), goal, widget.NewLabel("min")),
		overtime,
		container.NewHBox(widget.NewLabel("Refresh every"), tick, widget.NewLabel("sec")),
	)

	saveButton := widget.NewButton("Save", nil)
	cancelButton := widget.NewButton("Cancel", nil)
	buttons := container.NewHBox(saveButton, layout.NewSpacer(), cancelButton)

	window.SetContent(container.NewBorder(nil, buttons, nil, nil, form))
	window.Resize(fyne.NewSize(360, 240))

	prefs := &Window{
		window:   window,
		onSave:   onSave,
		goal:     goal,
		tick:     tick,
		overtime: overtime,
	}
	prefs.UpdateSettings(settings)

	saveButton.OnTapped = prefs.handleSave
	cancelButton.OnTapped = func() {
		prefs.UpdateSettings(prefs.settings)
		window.Hide()
	}

	return prefs
}

// Show displays the preferences window.
func (prefs *Window) Show() {
	prefs.window.Show()
	prefs.window.RequestFocus()
}

// UpdateSettings replaces window values.
func (prefs *Window) UpdateSettings(settings Settings) {
	prefs.settings = settings
	prefs.goal.SetText(fmt.Sprintf("%d", settings.GoalMinutes))
	prefs.tick.SetText(fmt.Sprintf("%d", int(settings.TickInterval/time.Second)))
	prefs.overtime.SetChecked(settings.AllowsOvertime)
}

func (prefs *Window) handleSave() {
	settings := prefs.settings

	if minutes, ok := parseGoalMinutes(prefs.goal.Text); ok {
		settings.GoalMinutes = minutes
	}
	if seconds, ok := parsePositiveInt(prefs.tick.Text); ok {
		settings.TickInterval = time.Duration(seconds) * time.Second
	}
	settings.AllowsOvertime = prefs.overtime.Checked

	prefs.UpdateSettings(settings)
	if prefs.onSave != nil {
		prefs.onSave(settings)
	}
	prefs.window.Hide()
}

func parseGoalMinutes(value string) (int, bool) {
	minutes, ok := parsePositiveInt(value)
	if !ok || minutes > model.MaxGoalMinutes {
		return 0, false
	}
	return minutes, true
}

func parsePositiveInt(value string) (int, bool) {
	parsed, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || parsed <= 0 {
		return 0, false
	}
	return parsed, true
}
