// Package main runs the wardview terminal client over the seeded in-memory records.
package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/wardview/wardview/pkg/wardview"
	"github.com/wardview/wardview/pkg/wardview/constants"
	"github.com/wardview/wardview/pkg/wardview/navigation"
	"github.com/wardview/wardview/pkg/wardview/records"
	"github.com/wardview/wardview/pkg/wardview/screens"
	"github.com/wardview/wardview/pkg/wardview/shell"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", os.Getenv(constants.ConfigPathEnvVar), "path to a TOML config file (default: WARDVIEW_CONFIG)")
	flag.Parse()

	if err := run(configPath); err != nil {
		exitf("Error: %v", err)
	}
}

func run(configPath string) error {
	cfg, err := wardview.LoadConfig(configPath)
	if err != nil {
		return err
	}

	tr, err := wardview.Init(cfg)
	if err != nil {
		return err
	}
	defer wardview.Close()

	logger := wardview.GetLogger()

	store := records.NewMemoryStore().Seed()
	reg := screens.Register(navigation.NewRegistry(), store)
	nav := wardview.NewNavigator(cfg, reg)

	start := navigation.Handle(cfg.StartView)
	if err := nav.NavigateTo(start); err != nil {
		return fmt.Errorf("open start view %q: %w", start, err)
	}

	m := shell.New(nav, tr, screens.Dashboard).WithLogger(logger)
	defer m.Close()

	logger.Info("Starting shell", "start_view", start, "locale", tr.Tag().String())
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("run shell: %w", err)
	}
	logger.Info("Shell exited", "depth", nav.Depth(), "revision", nav.Revision())
	return nil
}

func exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
