package file

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/folio-dev/folio/internal/logger"
	"github.com/folio-dev/folio/internal/portfolio"
)

// ErrNotFound is returned when an id does not exist in the targeted collection.
var ErrNotFound = errors.New("item not found")

// Store persists the portfolio document as a single JSON file. Every request
// loads the document fresh and every write rewrites the whole file; there is
// no in-memory cache across requests.
type Store struct {
	path string
	log  logger.Logger
	now  func() time.Time // injectable for tests
}

// New creates a file store backed by path.
func New(path string, log logger.Logger) *Store {
	return &Store{
		path: path,
		now:  time.Now,
		log:  log,
	}
}

// Load reads and parses the backing file. A missing file yields the built-in
// default document, persisted once so subsequent loads are consistent. An
// empty or unparseable file also falls back to the default, but the broken
// file is left in place for inspection.
func (s *Store) Load() (*portfolio.Document, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.log.Warn("document file unreadable, serving default",
				logger.String("path", s.path),
				logger.Error(err))
			return portfolio.Default(), nil
		}

		doc := portfolio.Default()
		if saveErr := s.Save(doc); saveErr != nil {
			s.log.Warn("failed to bootstrap document file",
				logger.String("path", s.path),
				logger.Error(saveErr))
		} else {
			s.log.Info("document file missing, wrote default document",
				logger.String("path", s.path))
		}
		return doc, nil
	}

	if len(bytes.TrimSpace(data)) == 0 {
		s.log.Warn("document file is empty, serving default",
			logger.String("path", s.path))
		return portfolio.Default(), nil
	}

	var doc portfolio.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		s.log.Warn("document file contains invalid JSON, serving default",
			logger.String("path", s.path),
			logger.Error(err))
		return portfolio.Default(), nil
	}

	return &doc, nil
}

// Save serializes the full document and replaces the backing file. The write
// goes to a sibling temp file first and is renamed into place, so a concurrent
// reader never observes a partial document.
func (s *Store) Save(doc *portfolio.Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal document: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace document file: %w", err)
	}
	return nil
}

// Ping reports whether the backing file currently holds a parseable document.
// Unlike Load it does not recover with the default, so health checks can tell
// a healthy store from one running on fallback.
func (s *Store) Ping() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return fmt.Errorf("failed to read document file: %w", err)
	}
	var doc portfolio.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("document file is not valid JSON: %w", err)
	}
	return nil
}

// touch stamps the document with the current date. Called by every mutating
// operation before persisting.
func (s *Store) touch(doc *portfolio.Document) {
	doc.Metadata.LastUpdated = s.now().Format("2006-01-02")
}
