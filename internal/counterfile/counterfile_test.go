package counterfile

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/verte-zerg/moodcount/internal/history"
	"github.com/verte-zerg/moodcount/internal/model"
)

func TestLoadMissingFile(t *testing.T) {
	cats, err := Load(filepath.Join(t.TempDir(), "missing"))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(cats) != 0 {
		t.Fatalf("expected no events, got %v", cats)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "counter")
	log := history.New()
	for _, c := range []model.Category{model.Good, model.Awful, model.Normal, model.Good} {
		log.Record(c)
	}
	if err := log.Undo(); err != nil {
		t.Fatalf("undo: %v", err)
	}
	if err := Save(path, log); err != nil {
		t.Fatalf("save: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != "2532" {
		t.Fatalf("unexpected file contents %q", data)
	}
	cats, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !reflect.DeepEqual(cats, log.Events()) {
		t.Fatalf("round trip: got %v want %v", cats, log.Events())
	}
}

func TestSaveOverwritesWholesale(t *testing.T) {
	path := filepath.Join(t.TempDir(), "counter")
	if err := WriteEncoded(path, "1111111111"); err != nil {
		t.Fatalf("write: %v", err)
	}
	log := history.New()
	log.Record(model.Bad)
	if err := Save(path, log); err != nil {
		t.Fatalf("save: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != "4" {
		t.Fatalf("expected file to be replaced, got %q", data)
	}
	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected temp files to be cleaned up, got %d entries", len(entries))
	}
}

func TestLoadDecodeError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "counter")
	if err := os.WriteFile(path, []byte("1207\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cats, err := Load(path)
	if cats != nil {
		t.Fatalf("expected no events on error, got %v", cats)
	}
	var decErr *history.DecodeError
	if !errors.As(err, &decErr) {
		t.Fatalf("expected DecodeError, got %v", err)
	}
	if decErr.Char != '0' || decErr.Pos != 2 {
		t.Fatalf("unexpected decode error %+v", decErr)
	}
}

func TestLoadEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "counter")
	if err := os.WriteFile(path, []byte("\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cats, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(cats) != 0 {
		t.Fatalf("expected empty result, got %v", cats)
	}
}
