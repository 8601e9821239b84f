package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/cloud-ru/feasibility-go/internal/model"
)

const fileExt = ".json"

// FileStore хранит каждое сохранение отдельным JSON-файлом <id>.json
type FileStore struct {
	dir string
	now func() time.Time

	mu sync.Mutex
}

// NewFileStore создаёт каталог dir при необходимости
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage dir: %w", err)
	}
	return &FileStore{dir: dir, now: time.Now}, nil
}

// Save реализует Store
func (s *FileStore) Save(ctx context.Context, state *model.ProjectState) error {
	if err := prepare(state, s.now().UTC()); err != nil {
		return err
	}
	if _, err := uuid.Parse(state.ID); err != nil {
		return fmt.Errorf("invalid project id %q: %w", state.ID, err)
	}

	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode project: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tmp := filepath.Join(s.dir, state.ID+fileExt+".tmp")
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write project: %w", err)
	}
	if err := os.Rename(tmp, s.path(state.ID)); err != nil {
		return fmt.Errorf("failed to write project: %w", err)
	}
	return nil
}

// Get реализует Store
func (s *FileStore) Get(ctx context.Context, id string) (*model.ProjectState, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.read(s.path(id))
}

// Latest реализует Store
func (s *FileStore) Latest(ctx context.Context) (*model.ProjectState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	states, err := s.readAll()
	if err != nil {
		return nil, err
	}
	if len(states) == 0 {
		return nil, ErrNotFound
	}
	return states[0], nil
}

// List реализует Store
func (s *FileStore) List(ctx context.Context) ([]Summary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	states, err := s.readAll()
	if err != nil {
		return nil, err
	}
	out := make([]Summary, 0, len(states))
	for _, st := range states {
		out = append(out, Summary{ID: st.ID, View: st.View, LastModified: st.LastModified})
	}
	return out, nil
}

// DeleteAll реализует Store
func (s *FileStore) DeleteAll(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	files, err := s.files()
	if err != nil {
		return err
	}
	for _, f := range files {
		if err := os.Remove(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("failed to delete project: %w", err)
		}
	}
	return nil
}

// Close реализует Store
func (s *FileStore) Close() {}

func (s *FileStore) path(id string) string {
	return filepath.Join(s.dir, id+fileExt)
}

func (s *FileStore) files() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), fileExt) {
			continue
		}
		files = append(files, filepath.Join(s.dir, e.Name()))
	}
	return files, nil
}

func (s *FileStore) read(path string) (*model.ProjectState, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read project: %w", err)
	}
	var st model.ProjectState
	if err := json.Unmarshal(data, &st); err != nil {
		return nil, fmt.Errorf("failed to decode project %s: %w", filepath.Base(path), err)
	}
	return &st, nil
}

// readAll читает все сохранения, новые первыми. Повреждённые файлы пропускаются.
func (s *FileStore) readAll() ([]*model.ProjectState, error) {
	files, err := s.files()
	if err != nil {
		return nil, err
	}
	states := make([]*model.ProjectState, 0, len(files))
	for _, f := range files {
		st, err := s.read(f)
		if err != nil {
			logrus.WithError(err).WithField("file", f).Warn("Повреждённое сохранение пропущено")
			continue
		}
		states = append(states, st)
	}
	sort.SliceStable(states, func(i, j int) bool {
		return states[i].LastModified.After(states[j].LastModified)
	})
	return states, nil
}
