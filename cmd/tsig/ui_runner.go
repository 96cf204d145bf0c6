package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"tsig/internal/driver"
	"tsig/internal/ui"
)

type extractOutcome struct {
	results []driver.DirResult
	err     error
}

// runDirWithUI гонит экстракцию в фоне и рисует прогресс через Bubble Tea.
func runDirWithUI(ctx context.Context, title string, files []string, dir string, opts driver.DirOptions) ([]driver.DirResult, error) {
	events := make(chan driver.Event, 256)
	outcomeCh := make(chan extractOutcome, 1)

	go func() {
		optsCopy := opts
		optsCopy.Events = events
		res, err := driver.ExtractDir(ctx, dir, optsCopy)
		outcomeCh <- extractOutcome{results: res, err: err}
		close(events)
	}()

	model := ui.NewProgressModel(title, files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.results, uiErr
	}
	return outcome.results, outcome.err
}
