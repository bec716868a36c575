package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/llehouerou/cardrow/internal/app"
	"github.com/llehouerou/cardrow/internal/config"
	"github.com/llehouerou/cardrow/internal/icons"
	"github.com/llehouerou/cardrow/internal/logging"
)

type rootModel struct {
	app app.Model
}

func (m rootModel) Init() tea.Cmd {
	return m.app.Init()
}

func (m rootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.app, cmd = m.app.Update(msg)
	return m, cmd
}

func (m rootModel) View() string {
	return m.app.View()
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	icons.SetStyle(icons.Style(cfg.Icons))

	logger := logging.Discard()
	if cfg.Debug.Enabled {
		path := cfg.Debug.File
		if path == "" {
			path, err = logging.DefaultPath()
			if err != nil {
				return fmt.Errorf("debug log path: %w", err)
			}
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("open debug log: %w", err)
		}
		defer f.Close()
		logger = logging.New(f, log.DebugLevel)
	}

	p := tea.NewProgram(
		rootModel{app: app.New(cfg, logger)},
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)
	_, err = p.Run()
	return err
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
