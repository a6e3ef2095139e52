package cofre

import (
	"fmt"
	"os"
	"path/filepath"
)

// DefaultDocumentName is the file name used when none is configured.
const DefaultDocumentName = "cofre.json"

// Load reads the state document at path. It returns the underlying
// fs.ErrNotExist when the file does not exist, so callers can decide to
// start from an empty ledger.
func Load(path string) (*Ledger, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open document %q: %w", path, err)
	}
	defer f.Close()

	ledger, err := DecodeDocument(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode document %q: %w", path, err)
	}
	return ledger, nil
}

// Save refreshes the ledger's last-sync stamp and writes the state document
// to path, creating parent directories as needed.
func Save(path string, l *Ledger) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("could not create directory for %q: %w", path, err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error opening document %q for writing: %w", path, err)
	}
	defer f.Close()

	l.Touch()
	return EncodeDocument(f, l)
}
