package app

import (
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rowanheath/ceefax/internal/config"
	"github.com/rowanheath/ceefax/internal/logging"
	"github.com/rowanheath/ceefax/internal/pages"
	"github.com/rowanheath/ceefax/internal/ui"
)

// Options configure the ceefax viewer application.
type Options struct {
	ConfigPath string // empty uses ~/.config/ceefax/config.toml
	PageDir    string // overrides the configured page directory
}

// Run boots the viewer and blocks until the user quits.
func Run(opts Options) error {
	log := logging.New("app")

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	dir := pageDir(cfg, opts)
	pgs, matrices := loadAndCompile(dir, log)
	log.Info("pages loaded", "count", len(pgs), "dir", dir)

	model := ui.NewModel(ui.Options{
		Pages:    pgs,
		Matrices: matrices,
		Reload: func() ([]pages.Page, [][]string) {
			// Reload re-reads the config so a changed page_dir takes
			// effect without restarting.
			cfg, err := config.Load(opts.ConfigPath)
			if err != nil {
				log.Warn("reload: config unreadable", "error", err)
				return nil, nil
			}
			return loadAndCompile(pageDir(cfg, opts), log)
		},
	})

	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run viewer: %w", err)
	}
	return nil
}

func pageDir(cfg config.Config, opts Options) string {
	if opts.PageDir != "" {
		return opts.PageDir
	}
	return cfg.PageDir
}

// loadAndCompile rebuilds the page set and its matrices as one unit.
// Load failures degrade to an empty set; the viewer renders the
// no-pages message rather than exiting.
func loadAndCompile(dir string, log *slog.Logger) ([]pages.Page, [][]string) {
	pgs, err := pages.LoadAll(dir)
	if err != nil {
		log.Warn("loading pages failed", "dir", dir, "error", err)
		return nil, nil
	}
	matrices := make([][]string, len(pgs))
	for i, pg := range pgs {
		matrices[i] = pages.Compile(pg)
	}
	return pgs, matrices
}
