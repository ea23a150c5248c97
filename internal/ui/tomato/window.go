package tomato

import (
	"image/color"
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"pomodorini/internal/core/ripeness"
	"pomodorini/internal/core/session"
)

// Callbacks defines view action handlers.
type Callbacks struct {
	OnStart       func()
	OnStop        func()
	OnReset       func()
	OnPreferences func()
}

// Config defines tomato visuals.
type Config struct {
	Title  string
	Mapper *ripeness.Mapper
	Logger *slog.Logger
}

// Window shows a single Pomodorino as a ripening tomato.
type Window struct {
	window      fyne.Window
	config      Config
	fruit       *canvas.Circle
	stem        *canvas.Rectangle
	timerLabel  *canvas.Text
	stateLabel  *canvas.Text
	tallyLabel  *widget.Label
	startButton *widget.Button
	stopButton  *widget.Button
	resetButton *widget.Button
	callbacks   Callbacks
}

var (
	stemColor  = color.NRGBA{R: 0x3E, G: 0x7D, B: 0x2C, A: 0xFF}
	labelColor = color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
)

// New creates the tomato window.
func New(app fyne.App, config Config) *Window {
	if config.Mapper == nil {
		config.Mapper = ripeness.Default()
	}
	if config.Logger == nil {
		config.Logger = slog.Default()
	}
	if config.Title == "" {
		config.Title = "Pomodorini"
	}

	window := app.NewWindow(config.Title)
	if app.Icon() != nil {
		window.SetIcon(app.Icon())
	}

	fruit := canvas.NewCircle(ripeness.Neutral)
	stem := canvas.NewRectangle(stemColor)
	stem.CornerRadius = 4

	timerLabel := canvas.NewText("--:--", labelColor)
	timerLabel.Alignment = fyne.TextAlignCenter
	timerLabel.TextStyle = fyne.TextStyle{Bold: true, Monospace: true}
	timerLabel.TextSize = 36

	stateLabel := canvas.NewText("", labelColor)
	stateLabel.Alignment = fyne.TextAlignCenter
	stateLabel.TextSize = 14

	tallyLabel := widget.NewLabel("")
	tallyLabel.Alignment = fyne.TextAlignCenter

	startButton := widget.NewButton("Start", nil)
	stopButton := widget.NewButton("Stop", nil)
	resetButton := widget.NewButton("Reset", nil)
	settingsButton := widget.NewButton("Settings", nil)

	fruitArea := container.New(&fruitLayout{}, stem, fruit, timerLabel, stateLabel)
	controls := container.NewGridWithColumns(3, startButton, stopButton, resetButton)
	content := container.NewBorder(nil, container.NewVBox(tallyLabel, controls, settingsButton), nil, nil, fruitArea)

	window.SetContent(content)
	window.Resize(fyne.NewSize(360, 520))

	view := &Window{
		window:      window,
		config:      config,
		fruit:       fruit,
		stem:        stem,
		timerLabel:  timerLabel,
		stateLabel:  stateLabel,
		tallyLabel:  tallyLabel,
		startButton: startButton,
		stopButton:  stopButton,
		resetButton: resetButton,
	}

	startButton.OnTapped = func() { view.invoke(view.callbacks.OnStart) }
	stopButton.OnTapped = func() { view.invoke(view.callbacks.OnStop) }
	resetButton.OnTapped = func() { view.invoke(view.callbacks.OnReset) }
	settingsButton.OnTapped = func() { view.invoke(view.callbacks.OnPreferences) }

	return view
}

// SetCallbacks attaches action handlers.
func (view *Window) SetCallbacks(callbacks Callbacks) {
	view.callbacks = callbacks
}

// Window exposes the underlying fyne window.
func (view *Window) Window() fyne.Window {
	return view.window
}

// Show displays the window.
func (view *Window) Show() {
	view.window.Show()
}

// Update redraws the tomato from any goroutine.
func (view *Window) Update(snapshot session.Snapshot) {
	fyne.Do(func() {
		view.Render(snapshot)
	})
}

// Render redraws the tomato. Call it on the fyne goroutine.
func (view *Window) Render(snapshot session.Snapshot) {
	view.fruit.FillColor = view.config.Mapper.ColorOrNeutral(snapshot.Ripeness, view.config.Logger)
	view.fruit.Refresh()

	view.timerLabel.Text = snapshot.FormattedTime()
	view.timerLabel.Refresh()

	view.stateLabel.Text = snapshot.Caption()
	view.stateLabel.Refresh()

	view.applyButtons(snapshot)
}

// SetTally shows the tally summary under the tomato.
func (view *Window) SetTally(summary string) {
	view.tallyLabel.SetText(summary)
}

func (view *Window) applyButtons(snapshot session.Snapshot) {
	if snapshot.Running {
		view.startButton.Disable()
		view.stopButton.Enable()
	} else {
		view.startButton.Enable()
		view.stopButton.Disable()
	}
	if snapshot.State == session.StateCompleted && !snapshot.AllowsOvertime {
		view.startButton.Disable()
	}
	if snapshot.State == session.StateIdle {
		view.resetButton.Disable()
	} else {
		view.resetButton.Enable()
	}
}

func (view *Window) invoke(handler func()) {
	if handler != nil {
		handler()
	}
}

type fruitLayout struct{}

func (layout *fruitLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	if len(objects) < 4 {
		return
	}
	stem := objects[0]
	fruit := objects[1]
	timer := objects[2]
	state := objects[3]

	side := size.Width
	if size.Height < side {
		side = size.Height
	}
	side *= 0.8
	stemHeight := side * 0.12
	fruitSide := side - stemHeight
	if fruitSide < 0 {
		fruitSide = 0
	}

	x := (size.Width - fruitSide) / 2
	y := (size.Height-side)/2 + stemHeight
	fruit.Move(fyne.NewPos(x, y))
	fruit.Resize(fyne.NewSize(fruitSide, fruitSide))

	stemWidth := fruitSide * 0.08
	stem.Move(fyne.NewPos((size.Width-stemWidth)/2, y-stemHeight+stemHeight*0.3))
	stem.Resize(fyne.NewSize(stemWidth, stemHeight))

	timerSize := timer.MinSize()
	stateSize := state.MinSize()
	centerY := y + fruitSide/2
	timer.Move(fyne.NewPos(0, centerY-timerSize.Height/2))
	timer.Resize(fyne.NewSize(size.Width, timerSize.Height))
	state.Move(fyne.NewPos(0, centerY+timerSize.Height/2))
	state.Resize(fyne.NewSize(size.Width, stateSize.Height))
}

func (layout *fruitLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	if len(objects) < 4 {
		return fyne.NewSize(0, 0)
	}
	timerSize := objects[2].MinSize()
	stateSize := objects[3].MinSize()
	width := timerSize.Width
	if stateSize.Width > width {
		width = stateSize.Width
	}
	side := width * 1.6
	return fyne.NewSize(side, side)
}
