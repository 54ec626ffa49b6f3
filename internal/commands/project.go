package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/ledgerbook/ledgerbook"
	"github.com/ledgerbook/ledgerbook/internal/config"
)

// loadProject reads the project configuration in dir and rebuilds the book
// from the data file it points at. A missing data file yields an empty book,
// so commands work right after "ledgerbook init".
func loadProject(dir string) (*config.Config, *ledgerbook.Book, error) {
	cfg, err := config.Load(filepath.Join(dir, config.FileName))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil, fmt.Errorf("%s is not a ledgerbook project (missing %s)", dir, config.FileName)
		}
		return nil, nil, err
	}

	book := ledgerbook.New(ledgerbook.WithPrecision(cfg.Book.Precision))
	for _, year := range cfg.Book.Years {
		if _, err := book.CreateFiscalYear(year.From, year.To); err != nil {
			return nil, nil, fmt.Errorf("fiscal year %s to %s: %w", year.From, year.To, err)
		}
	}

	data, err := os.ReadFile(filepath.Join(dir, cfg.Book.File))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, book, nil
		}
		return nil, nil, fmt.Errorf("reading book file: %w", err)
	}

	export, err := ledgerbook.UnmarshalBook(data)
	if err != nil {
		return nil, nil, fmt.Errorf("parsing book file: %w", err)
	}
	if err := book.Import(export); err != nil {
		return nil, nil, fmt.Errorf("loading book: %w", err)
	}

	return cfg, book, nil
}

// saveBook writes the book back to the data file named by the configuration.
func saveBook(dir string, cfg *config.Config, book *ledgerbook.Book) error {
	data, err := ledgerbook.MarshalBook(book)
	if err != nil {
		return fmt.Errorf("marshaling book: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, cfg.Book.File), data, 0o644); err != nil {
		return fmt.Errorf("writing book file: %w", err)
	}
	return nil
}
