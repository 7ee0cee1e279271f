package singleton

import (
	"bytes"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuditLoggerReturnsSameInstance(t *testing.T) {
	first := AuditLogger()
	second := AuditLogger()
	assert.Same(t, first, second)
}

func TestAuditLoggerConcurrentAccess(t *testing.T) {
	const goroutines = 32

	loggers := make([]any, goroutines)
	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			loggers[i] = AuditLogger()
		}(i)
	}
	wg.Wait()

	for i := 1; i < goroutines; i++ {
		assert.Same(t, loggers[0], loggers[i])
	}
}

func TestDemoOutput(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Demo(&buf))

	out := buf.String()
	assert.Contains(t, out, "first audit message")
	assert.Contains(t, out, "second audit message")
	assert.Contains(t, out, "component=audit")
	assert.Contains(t, out, "same logger instance: true")
}
