package dataset

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"kabaddibot/internal/domain"
)

var (
	// ErrNoEntries means the source yielded zero question/answer rows.
	ErrNoEntries = errors.New("dataset contains no entries")
	// ErrBadRow means a row is missing its question or answer text.
	ErrBadRow = errors.New("row has empty question or answer")
	// ErrIndexOutOfRange is returned by the bounds-checked accessors.
	ErrIndexOutOfRange = errors.New("entry index out of range")
)

//go:embed kabaddi.csv
var defaultCorpus []byte

// Dataset is an ordered, read-only collection of question/answer pairs.
// It is constructed once at startup and never mutated afterward, so it is
// safe to share across concurrent readers.
type Dataset struct {
	entries []domain.QAEntry
}

// New validates the given entries and wraps them in a Dataset.
func New(entries []domain.QAEntry) (*Dataset, error) {
	if len(entries) == 0 {
		return nil, ErrNoEntries
	}
	for i, e := range entries {
		if strings.TrimSpace(e.Question) == "" || strings.TrimSpace(e.Answer) == "" {
			return nil, fmt.Errorf("entry %d: %w", i, ErrBadRow)
		}
	}
	ds := &Dataset{entries: make([]domain.QAEntry, len(entries))}
	copy(ds.entries, entries)
	return ds, nil
}

// Load reads a dataset file, dispatching on the file extension.
// YAML sources are a list of {question, answer} mappings; anything else is
// parsed as two-column CSV (question, answer) with an optional header row.
func Load(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return parseYAML(data)
	default:
		return parseCSV(data)
	}
}

// LoadDefault returns the built-in Kabaddi corpus shipped with the binary.
func LoadDefault() *Dataset {
	ds, err := parseCSV(defaultCorpus)
	if err != nil {
		panic("embedded kabaddi corpus is malformed: " + err.Error())
	}
	return ds
}

// Len returns the number of stored entries.
func (d *Dataset) Len() int { return len(d.entries) }

// Entry returns the pair at index i.
func (d *Dataset) Entry(i int) (domain.QAEntry, error) {
	if i < 0 || i >= len(d.entries) {
		return domain.QAEntry{}, fmt.Errorf("entry %d of %d: %w", i, len(d.entries), ErrIndexOutOfRange)
	}
	return d.entries[i], nil
}

// Question returns the question text at index i.
func (d *Dataset) Question(i int) (string, error) {
	e, err := d.Entry(i)
	return e.Question, err
}

// Answer returns the answer text at index i.
func (d *Dataset) Answer(i int) (string, error) {
	e, err := d.Entry(i)
	return e.Answer, err
}

// Questions returns a copy of all stored question texts in dataset order,
// suitable for preparing an embedder.
func (d *Dataset) Questions() []string {
	out := make([]string, len(d.entries))
	for i, e := range d.entries {
		out[i] = e.Question
	}
	return out
}
