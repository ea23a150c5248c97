package main

import (
	"os"

	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"

	"pomodorini/internal/core/ripeness"
	"pomodorini/internal/core/session"
	"pomodorini/internal/logging"
	"pomodorini/internal/storage"
	"pomodorini/internal/ui/preferences"
	"pomodorini/internal/ui/tomato"
	"pomodorini/internal/ui/tray"
	"pomodorini/resources"
)

const appName = "Pomodorini"

func main() {
	logger := logging.New(os.Stderr)

	settings, err := storage.LoadSettings(appName)
	if err != nil {
		logger.Warn("load settings", "error", err)
	}

	fyneApp := app.NewWithID("io.pomodorini.app")
	fyneApp.SetIcon(resources.Tomato())

	tally := session.NewTally(nil)
	view := tomato.New(fyneApp, tomato.Config{
		Title:  appName,
		Mapper: ripeness.Default(),
		Logger: logger,
	})
	view.SetTally(tally.Summary())

	pomodoro := newHost(view, tally, logger)
	if err := pomodoro.Load(settings); err != nil {
		logger.Error("create pomodorino", "error", err)
		os.Exit(1)
	}

	prefsWindow := preferences.New(fyneApp, settings, func(updated preferences.Settings) {
		if err := pomodoro.Load(updated); err != nil {
			logger.Warn("apply settings", "error", err)
			return
		}
		settings = updated
		if err := storage.SaveSettings(appName, settings); err != nil {
			logger.Warn("save settings", "error", err)
		}
	})

	view.SetCallbacks(tomato.Callbacks{
		OnStart:       pomodoro.Start,
		OnStop:        pomodoro.Stop,
		OnReset:       pomodoro.Reset,
		OnPreferences: prefsWindow.Show,
	})

	if desktopApp, ok := fyneApp.(desktop.App); ok {
		desktopApp.SetSystemTrayIcon(resources.Tomato())
		pomodoro.SetTray(tray.New(desktopApp, tray.Callbacks{
			OnShow:        view.Show,
			OnToggleRun:   pomodoro.Toggle,
			OnReset:       pomodoro.Reset,
			OnPreferences: prefsWindow.Show,
			OnQuit:        fyneApp.Quit,
		}))
		view.Window().SetCloseIntercept(func() {
			view.Window().Hide()
		})
	} else {
		view.Window().SetMaster()
	}

	fyneApp.Lifecycle().SetOnStopped(func() {
		pomodoro.Close()
	})

	view.Show()
	fyneApp.Run()
}
