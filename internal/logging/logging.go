// Package logging настраивает logrus: уровень, формат и, при необходимости,
// запись в файлы с ежечасной ротацией.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	rotatelogs "github.com/lestrrat-go/file-rotatelogs"
	log "github.com/sirupsen/logrus"
)

const (
	timestampFormat = "2006-01-02 15:04:05.000"
	maxAge          = 7 * 24 * time.Hour
)

// Setup применяет уровень level (INFO, DEBUG, ...) и направляет вывод в stderr,
// а при непустом dir - также в dir/feasibility.log с ротацией.
// Возвращает writer файлового приёмника для закрытия при остановке (или nil).
func Setup(level, dir string) (io.Closer, error) {
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: timestampFormat,
	})
	log.SetLevel(ParseLevel(level))
	log.SetOutput(os.Stderr)

	if dir == "" {
		return nil, nil
	}

	rl, err := openRotation(dir)
	if err != nil {
		return nil, err
	}
	log.SetOutput(io.MultiWriter(os.Stderr, rl))
	return rl, nil
}

// ParseLevel разбирает уровень без учёта регистра; неизвестный уровень даёт INFO
func ParseLevel(level string) log.Level {
	lvl, err := log.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}

func openRotation(dir string) (*rotatelogs.RotateLogs, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	name := filepath.Join(dir, "feasibility.log")
	rl, err := rotatelogs.New(
		name+".%Y-%m-%d-%H",
		rotatelogs.WithLinkName(name),
		rotatelogs.WithRotationTime(time.Hour),
		rotatelogs.WithMaxAge(maxAge),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to open log rotation: %w", err)
	}
	return rl, nil
}
