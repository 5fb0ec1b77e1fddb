package log

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

type recordingLogger struct {
	level   Level
	message string
}

func (r *recordingLogger) Log(level Level, format string, args ...any) {
	r.level = level
	r.message = fmt.Sprintf(format, args...)
}

func TestLogfUsesSetLogger(t *testing.T) {
	defer SetLogger(nil)

	recorder := &recordingLogger{}

	SetLogger(recorder)

	Warnf("answer is %d", 42)
	require.Equal(t, LevelWarning, recorder.level)
	require.Equal(t, "answer is 42", recorder.message)
}

func TestLogfWithoutLogger(t *testing.T) {
	SetLogger(nil)

	// Should be a no-op rather than a panic
	Infof("dropped")
}

func TestWrappedLoggerNilFallsBackToNop(t *testing.T) {
	wrapped := NewWrappedLogger(nil)

	// Must not panic when no logger was provided
	wrapped.Errorf("dropped")
}

func TestWrappedLoggerLevels(t *testing.T) {
	recorder := &recordingLogger{}
	wrapped := NewWrappedLogger(recorder)

	wrapped.Tracef("message")
	require.Equal(t, LevelTrace, recorder.level)

	wrapped.Debugf("message")
	require.Equal(t, LevelDebug, recorder.level)

	wrapped.Infof("message")
	require.Equal(t, LevelInfo, recorder.level)

	wrapped.Warnf("message")
	require.Equal(t, LevelWarning, recorder.level)

	wrapped.Errorf("message")
	require.Equal(t, LevelError, recorder.level)

	require.Panics(t, func() { wrapped.Panicf("message") })
	require.Equal(t, LevelPanic, recorder.level)
}
