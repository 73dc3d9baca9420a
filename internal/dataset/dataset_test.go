package dataset

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"kabaddibot/internal/domain"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestNew_RejectsEmpty(t *testing.T) {
	if _, err := New(nil); !errors.Is(err, ErrNoEntries) {
		t.Fatalf("expected ErrNoEntries, got %v", err)
	}
}

func TestNew_RejectsBlankFields(t *testing.T) {
	_, err := New([]domain.QAEntry{{Question: "what is kabaddi", Answer: "  "}})
	if !errors.Is(err, ErrBadRow) {
		t.Fatalf("expected ErrBadRow, got %v", err)
	}
}

func TestLoad_CSVWithHeader(t *testing.T) {
	path := writeFile(t, "qa.csv", "question,answer\nwhat is kabaddi,A contact team sport.\nhow many players per team,Seven.\n")
	ds, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if ds.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", ds.Len())
	}
	q, err := ds.Question(1)
	if err != nil {
		t.Fatalf("question accessor failed: %v", err)
	}
	if q != "how many players per team" {
		t.Errorf("unexpected question: %q", q)
	}
}

func TestLoad_CSVWithoutHeader(t *testing.T) {
	path := writeFile(t, "qa.csv", "what is kabaddi,A contact team sport.\n")
	ds, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if ds.Len() != 1 {
		t.Errorf("expected 1 entry, got %d", ds.Len())
	}
}

func TestLoad_CSVMissingAnswerFails(t *testing.T) {
	path := writeFile(t, "qa.csv", "question,answer\nwhat is kabaddi,A contact team sport.\nkabaddi court size,\n")
	if _, err := Load(path); !errors.Is(err, ErrBadRow) {
		t.Fatalf("expected ErrBadRow, got %v", err)
	}
}

func TestLoad_CSVEmptyFails(t *testing.T) {
	path := writeFile(t, "qa.csv", "question,answer\n")
	if _, err := Load(path); !errors.Is(err, ErrNoEntries) {
		t.Fatalf("expected ErrNoEntries, got %v", err)
	}
}

func TestLoad_YAML(t *testing.T) {
	path := writeFile(t, "qa.yaml", "- question: what is kabaddi\n  answer: A contact team sport.\n- question: how many players per team\n  answer: Seven.\n")
	ds, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if ds.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", ds.Len())
	}
	a, err := ds.Answer(1)
	if err != nil {
		t.Fatalf("answer accessor failed: %v", err)
	}
	if a != "Seven." {
		t.Errorf("unexpected answer: %q", a)
	}
}

func TestLoad_YAMLMissingAnswerFails(t *testing.T) {
	path := writeFile(t, "qa.yaml", "- question: what is kabaddi\n")
	if _, err := Load(path); !errors.Is(err, ErrBadRow) {
		t.Fatalf("expected ErrBadRow, got %v", err)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.csv")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestAccessors_BoundsChecked(t *testing.T) {
	ds, err := New([]domain.QAEntry{{Question: "q", Answer: "a"}})
	if err != nil {
		t.Fatalf("new failed: %v", err)
	}
	if _, err := ds.Entry(1); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("expected ErrIndexOutOfRange for index 1, got %v", err)
	}
	if _, err := ds.Question(-1); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("expected ErrIndexOutOfRange for index -1, got %v", err)
	}
}

func TestQuestions_ReturnsCopy(t *testing.T) {
	ds, err := New([]domain.QAEntry{{Question: "q", Answer: "a"}})
	if err != nil {
		t.Fatalf("new failed: %v", err)
	}
	qs := ds.Questions()
	qs[0] = "mutated"
	got, _ := ds.Question(0)
	if got != "q" {
		t.Errorf("dataset mutated through Questions copy: %q", got)
	}
}

func TestLoadDefault_EmbeddedCorpus(t *testing.T) {
	ds := LoadDefault()
	if ds.Len() == 0 {
		t.Fatal("embedded corpus is empty")
	}
	q, err := ds.Question(0)
	if err != nil {
		t.Fatalf("question accessor failed: %v", err)
	}
	if q != "what is kabaddi" {
		t.Errorf("unexpected first question: %q", q)
	}
}
