// Package audit appends one line per user-triggered action to a CSV file:
// action name and ISO-8601 timestamp.
package audit

import (
	"fmt"
	"os"
	"time"

	"go-railway-admin/pkg/logger"

	"go.uber.org/zap"
)

type Trail struct {
	file *os.File
	log  *zap.Logger
}

// Open opens the audit file for appending. A file that cannot be opened
// disables the trail rather than failing the application; the error is
// logged once here.
func Open(path string) *Trail {
	log := logger.WithComponent("audit")
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		log.Error("open audit file", zap.String("path", path), zap.Error(err))
		return &Trail{log: log}
	}
	return &Trail{file: file, log: log}
}

// Log appends the action with the current timestamp.
func (t *Trail) Log(action string) {
	if t.file == nil {
		return
	}
	line := fmt.Sprintf("%s,%s\n", action, time.Now().Format(time.RFC3339))
	if _, err := t.file.WriteString(line); err != nil {
		t.log.Error("write audit record", zap.String("action", action), zap.Error(err))
	}
}

func (t *Trail) Close() {
	if t.file != nil {
		t.file.Close()
	}
}
