package app

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/jiaqi-wen/excel-i18n-tool/app/export"
	"github.com/jiaqi-wen/excel-i18n-tool/app/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	a := NewApp(logging.NewLogger(), export.NewService(export.DefaultSettings()), make(chan []byte, 16), &CLIArgs{})
	t.Cleanup(func() {
		a.cancelApp()
		a.shutdownWg.Wait()
	})
	return a
}

func errorRows(events []export.ProgressEvent) []export.ProgressEvent {
	var errors []export.ProgressEvent
	for _, event := range events {
		if event.Type == export.TypeError {
			errors = append(errors, event)
		}
	}
	return errors
}

func TestStartConversionFailureAppendsSingleErrorEntry(t *testing.T) {
	a := newTestApp(t)

	a.StartConversion(filepath.Join(t.TempDir(), "missing.xlsx"))

	require.Eventually(t, func() bool {
		return len(errorRows(a.mainPage.Rows())) > 0
	}, time.Second, 5*time.Millisecond)

	errors := errorRows(a.mainPage.Rows())
	require.Len(t, errors, 1)
	assert.Contains(t, errors[0].Message, "Conversion failed")
	assert.Contains(t, errors[0].Message, "does not exist")

	require.Eventually(t, func() bool {
		return !a.IsConverting()
	}, time.Second, 5*time.Millisecond)
}

func TestStartConversionRejectsConcurrentRun(t *testing.T) {
	a := newTestApp(t)

	a.converting.Store(true)
	a.StartConversion("whatever.xlsx")

	// The rejection path is synchronous: no goroutine, no log entry, and the
	// in-flight state is untouched.
	assert.True(t, a.IsConverting())
	assert.Empty(t, a.mainPage.Rows())

	a.converting.Store(false)
}
