package pages

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/rowanheath/ceefax/internal/logging"
)

// LoadAll reads every page definition under dir. Malformed files are
// logged and skipped; a missing directory yields an empty set. The
// result is sorted by page number so navigation order is stable.
func LoadAll(dir string) ([]Page, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read page dir: %w", err)
	}

	log := logging.New("pages")

	var out []Page
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".toml") {
			continue
		}
		pg, err := loadPage(filepath.Join(dir, entry.Name()))
		if err != nil {
			log.Warn("skipping page", "file", entry.Name(), "error", err)
			continue
		}
		out = append(out, pg)
	}

	slices.SortStableFunc(out, func(a, b Page) int {
		if c := strings.Compare(a.Number, b.Number); c != 0 {
			return c
		}
		return strings.Compare(a.PageID, b.PageID)
	})
	return out, nil
}

func loadPage(path string) (Page, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return Page{}, fmt.Errorf("read page: %w", err)
	}

	var raw struct {
		PageID  string `toml:"page_id"`
		Page    string `toml:"page"`
		Title   string `toml:"title"`
		Content string `toml:"content"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Page{}, fmt.Errorf("parse page: %w", err)
	}

	pg := Page{
		PageID: strings.TrimSpace(raw.PageID),
		Number: strings.TrimSpace(raw.Page),
		Title:  strings.TrimSpace(raw.Title),
	}
	if pg.PageID == "" {
		return Page{}, fmt.Errorf("page_id is required")
	}
	if content := strings.TrimRight(raw.Content, "\n"); content != "" {
		pg.Lines = strings.Split(content, "\n")
	}
	return pg, nil
}
