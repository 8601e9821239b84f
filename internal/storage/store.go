// Package storage сохраняет состояние проекта {view, lastModified, inputs}
// в файлах или в PostgreSQL.
package storage

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/cloud-ru/feasibility-go/internal/model"
)

// ErrNotFound возвращается, если сохранение не найдено
var ErrNotFound = errors.New("not found")

// Store - хранилище сохранённых состояний проекта
type Store interface {
	// Save сохраняет состояние; пустые ID и LastModified заполняются
	Save(ctx context.Context, state *model.ProjectState) error
	Get(ctx context.Context, id string) (*model.ProjectState, error)
	// Latest возвращает последнее по времени сохранение
	Latest(ctx context.Context) (*model.ProjectState, error)
	// List возвращает сохранения без параметров, новые первыми
	List(ctx context.Context) ([]Summary, error)
	DeleteAll(ctx context.Context) error
	Close()
}

// Summary - краткие сведения о сохранении
type Summary struct {
	ID           string    `json:"id"`
	View         string    `json:"view"`
	LastModified time.Time `json:"lastModified"`
}

// prepare заполняет служебные поля перед сохранением
func prepare(state *model.ProjectState, now time.Time) error {
	if state == nil {
		return errors.New("state is nil")
	}
	if state.ID == "" {
		state.ID = uuid.NewString()
	}
	if state.View == "" {
		state.View = "inputs"
	}
	if state.LastModified.IsZero() {
		state.LastModified = now
	}
	if state.Inputs == nil {
		state.Inputs = &model.ProjectInputs{}
	}
	return nil
}
