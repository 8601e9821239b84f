package storage

import (
	"context"
)

// Open выбирает хранилище: PostgreSQL при заданном databaseURL, иначе файлы в dir
func Open(ctx context.Context, databaseURL, dir string) (Store, error) {
	if databaseURL != "" {
		return NewPgStore(ctx, databaseURL)
	}
	return NewFileStore(dir)
}
