package logging

import (
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// New builds the collector logger. Output goes to stderr and, when logFile
// is non-empty, to an append-only log file as well (the file is the audit
// trail of attempt/retry/skip/commit events across runs).
func New(logFile string) (*logrus.Logger, error) {
	logg := logrus.New()
	logg.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	logg.SetLevel(logrus.InfoLevel)
	logg.SetOutput(os.Stderr)

	if logFile == "" {
		return logg, nil
	}

	if err := os.MkdirAll(filepath.Dir(logFile), 0o755); err != nil {
		return nil, err
	}
	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}
	logg.SetOutput(io.MultiWriter(os.Stderr, f))
	return logg, nil
}
