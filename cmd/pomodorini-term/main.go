package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"pomodorini/internal/core/session"
	"pomodorini/internal/logging"
	"pomodorini/internal/storage"
	uiterm "pomodorini/internal/ui/term"
)

const appName = "Pomodorini"

func main() {
	settings, settingsErr := storage.LoadSettings(appName)

	goal := flag.Int("goal", settings.GoalMinutes, "goal duration in minutes")
	overtime := flag.Bool("overtime", settings.AllowsOvertime, "keep ripening past the goal")
	logPath := flag.String("log", os.Getenv("POMODORINI_LOG_FILE"), "append logs to this file")
	flag.Parse()

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "pomodorini-term needs an interactive terminal")
		os.Exit(1)
	}

	logger, closer, err := logging.OpenFile(*logPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}
	defer closer.Close()
	if settingsErr != nil {
		logger.Warn("load settings", "error", settingsErr)
	}

	settings.GoalMinutes = *goal
	settings.AllowsOvertime = *overtime
	timer, err := session.New(settings.SessionConfig(), session.Config{})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Alas, there's been an error: %v\n", err)
		os.Exit(2)
	}

	model := uiterm.NewModel(timer, uiterm.Options{
		TickInterval: settings.TickInterval,
		Logger:       logger,
	})
	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		logger.Error("run terminal host", "error", err)
		fmt.Fprintf(os.Stderr, "Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}
	timer.Stop()
}
