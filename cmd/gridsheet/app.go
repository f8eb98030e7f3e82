package main

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/gridsheet/gridview"
)

type app struct {
	grid gridview.Model
}

func newApp(cfg gridview.Config) app {
	return app{grid: gridview.New(cfg)}
}

func (a app) Init() tea.Cmd { return nil }

func (a app) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "ctrl+c":
			return a, tea.Quit
		case "q":
			if !a.grid.Editing() {
				return a, tea.Quit
			}
		}
	}

	var cmd tea.Cmd
	a.grid, cmd = a.grid.Update(msg)
	return a, cmd
}

func (a app) View() string { return a.grid.View() }
