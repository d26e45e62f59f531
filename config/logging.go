package config

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
)

// SetupLogging sends the standard logger to path. With an empty path the
// logger writes to fallback instead. The returned func closes the file.
func SetupLogging(path string, fallback io.Writer) (func(), error) {
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	if path == "" {
		log.SetOutput(fallback)
		return func() {}, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	log.SetOutput(f)
	return func() {
		log.SetOutput(fallback)
		f.Close()
	}, nil
}
