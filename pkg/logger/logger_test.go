package logger

import (
	"bytes"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	logger := New()
	assert.NotNil(t, logger)
	assert.NotNil(t, logger.info)
	assert.NotNil(t, logger.warn)
	assert.NotNil(t, logger.error)
}

func captured() (*Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return &Logger{
		info:  log.New(&buf, "INFO: ", 0),
		warn:  log.New(&buf, "WARN: ", 0),
		error: log.New(&buf, "ERROR: ", 0),
	}, &buf
}

func TestLevelsArePrefixed(t *testing.T) {
	logger, buf := captured()

	logger.Info("listening on %s", ":8080")
	logger.Warn("redis unavailable")
	logger.Error("failed to create post: %v", "duplicate slug")

	out := buf.String()
	assert.Contains(t, out, "INFO: listening on :8080\n")
	assert.Contains(t, out, "WARN: redis unavailable\n")
	assert.Contains(t, out, "ERROR: failed to create post: duplicate slug\n")
}

func TestFormatting(t *testing.T) {
	logger, buf := captured()

	logger.Info("vote %s on %s -> %d", "like", "site", 3)

	assert.Equal(t, "INFO: vote like on site -> 3\n", buf.String())
}
