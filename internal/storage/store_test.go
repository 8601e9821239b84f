package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/cloud-ru/feasibility-go/internal/model"
)

func newState(kind model.ModelType, at time.Time) *model.ProjectState {
	return &model.ProjectState{
		View:         "inputs",
		LastModified: at,
		Inputs:       &model.ProjectInputs{ModelType: kind},
	}
}

func exerciseStore(t *testing.T, s Store) {
	ctx := context.Background()

	if err := s.DeleteAll(ctx); err != nil {
		t.Fatalf("DeleteAll() error = %v", err)
	}
	if _, err := s.Latest(ctx); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Latest() on empty store error = %v, want ErrNotFound", err)
	}

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	older := newState(model.ModelWater, base)
	newer := newState(model.ModelSolar, base.Add(time.Hour))
	for _, st := range []*model.ProjectState{newer, older} {
		if err := s.Save(ctx, st); err != nil {
			t.Fatalf("Save() error = %v", err)
		}
		if st.ID == "" {
			t.Fatal("Save() did not assign id")
		}
	}

	latest, err := s.Latest(ctx)
	if err != nil {
		t.Fatalf("Latest() error = %v", err)
	}
	if latest.Inputs.ModelType != model.ModelSolar {
		t.Errorf("Latest() = %q, want SOLAR", latest.Inputs.ModelType)
	}

	got, err := s.Get(ctx, older.ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.Inputs.ModelType != model.ModelWater || !got.LastModified.Equal(base) {
		t.Errorf("Get() = %+v", got)
	}

	list, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(list) != 2 || list[0].ID != newer.ID {
		t.Errorf("List() = %+v, want newest first", list)
	}

	// повторное сохранение с тем же id перезаписывает запись
	older.Inputs.ModelType = model.ModelWaste
	older.LastModified = base.Add(2 * time.Hour)
	if err := s.Save(ctx, older); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	latest, _ = s.Latest(ctx)
	if latest.ID != older.ID || latest.Inputs.ModelType != model.ModelWaste {
		t.Errorf("Latest() after update = %+v", latest)
	}
	if list, _ := s.List(ctx); len(list) != 2 {
		t.Errorf("List() len = %d, want 2", len(list))
	}

	if _, err := s.Get(ctx, "00000000-0000-0000-0000-000000000000"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get(missing) error = %v, want ErrNotFound", err)
	}

	if err := s.DeleteAll(ctx); err != nil {
		t.Fatalf("DeleteAll() error = %v", err)
	}
	if list, _ := s.List(ctx); len(list) != 0 {
		t.Errorf("List() after DeleteAll = %d items", len(list))
	}
}

func TestFileStore(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore() error = %v", err)
	}
	defer s.Close()
	exerciseStore(t, s)
}

func TestFileStoreDefaults(t *testing.T) {
	at := time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC)
	s, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	s.now = func() time.Time { return at }

	st := &model.ProjectState{}
	if err := s.Save(context.Background(), st); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if st.View != "inputs" || !st.LastModified.Equal(at) || st.Inputs == nil {
		t.Errorf("defaults not applied: %+v", st)
	}
}

func TestFileStoreRejectsBadID(t *testing.T) {
	s, _ := NewFileStore(t.TempDir())
	err := s.Save(context.Background(), &model.ProjectState{ID: "../escape"})
	if err == nil {
		t.Fatal("Save() with path-like id should fail")
	}
	if _, err := s.Get(context.Background(), "../escape"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get(bad id) error = %v, want ErrNotFound", err)
	}
}

func TestFileStoreSkipsCorrupt(t *testing.T) {
	dir := t.TempDir()
	s, _ := NewFileStore(dir)
	if err := os.WriteFile(filepath.Join(dir, "broken.json"), []byte("{"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := s.Save(context.Background(), newState(model.ModelPower, time.Now())); err != nil {
		t.Fatal(err)
	}
	list, err := s.List(context.Background())
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(list) != 1 {
		t.Errorf("List() len = %d, want 1", len(list))
	}
}

func TestPgStore(t *testing.T) {
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	s, err := NewPgStore(context.Background(), url)
	if err != nil {
		t.Fatalf("NewPgStore() error = %v", err)
	}
	defer s.Close()
	exerciseStore(t, s)
}

func TestOpenFallsBackToFiles(t *testing.T) {
	s, err := Open(context.Background(), "", t.TempDir())
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if _, ok := s.(*FileStore); !ok {
		t.Errorf("Open() = %T, want *FileStore", s)
	}
}
