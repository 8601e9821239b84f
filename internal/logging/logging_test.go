package logging

import (
	"os"
	"path/filepath"
	"testing"

	log "github.com/sirupsen/logrus"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want log.Level
	}{
		{"INFO", log.InfoLevel},
		{"debug", log.DebugLevel},
		{" WARN ", log.WarnLevel},
		{"verbose", log.InfoLevel},
		{"", log.InfoLevel},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ParseLevel(tt.in); got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestSetupWritesToDirectory(t *testing.T) {
	dir := t.TempDir()
	closer, err := Setup("DEBUG", dir)
	if err != nil {
		t.Fatalf("Setup() error = %v", err)
	}
	defer func() {
		closer.Close()
		log.SetOutput(os.Stderr)
	}()

	log.Info("hello")

	matches, _ := filepath.Glob(filepath.Join(dir, "feasibility.log.*"))
	if len(matches) == 0 {
		t.Fatal("no rotated log file created")
	}
	if log.GetLevel() != log.DebugLevel {
		t.Errorf("level = %v, want debug", log.GetLevel())
	}
}

func TestSetupStderrOnly(t *testing.T) {
	closer, err := Setup("ERROR", "")
	if err != nil {
		t.Fatalf("Setup() error = %v", err)
	}
	if closer != nil {
		t.Error("closer should be nil without directory")
	}
	log.SetLevel(log.InfoLevel)
}
