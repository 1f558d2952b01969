package ui

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rivo/tview"
)

// LogHandler feeds the application's diagnostic log into the log page's text
// view. Messages arrive over a channel and are flushed in batches to keep the
// number of UI updates bounded.
type LogHandler struct {
	app         AppInterface
	logTextView *tview.TextView
	logChannel  chan []byte
	logBatch    [][]byte
	shutdownWg  *sync.WaitGroup

	batchMutex   sync.Mutex
	updateTicker *time.Ticker
}

// NewLogHandler creates a new handler for UI log processing.
func NewLogHandler(app AppInterface, logChannel chan []byte, wg *sync.WaitGroup) *LogHandler {
	return &LogHandler{
		app:        app,
		logChannel: logChannel,
		logTextView: tview.NewTextView().
			SetDynamicColors(true).
			SetScrollable(true).
			SetWrap(true),
		shutdownWg: wg,
	}
}

// TextView returns the underlying tview.TextView for the logs.
func (h *LogHandler) TextView() *tview.TextView {
	return h.logTextView
}

// Start begins the log processing loop.
func (h *LogHandler) Start(ctx context.Context) {
	h.updateTicker = time.NewTicker(100 * time.Millisecond)
	h.shutdownWg.Add(1)

	go func() {
		defer h.shutdownWg.Done()
		for {
			select {
			case <-ctx.Done():
				h.updateTicker.Stop()
				return
			case logMsg, ok := <-h.logChannel:
				if !ok {
					return
				}
				h.batchMutex.Lock()
				h.logBatch = append(h.logBatch, logMsg)
				h.batchMutex.Unlock()
			case <-h.updateTicker.C:
				h.flushLogBatch()
			}
		}
	}()
}

// flushLogBatch writes the entire accumulated batch of logs in one UI call.
func (h *LogHandler) flushLogBatch() {
	h.batchMutex.Lock()
	if len(h.logBatch) == 0 {
		h.batchMutex.Unlock()
		return
	}

	var batchContent strings.Builder
	for _, msg := range h.logBatch {
		batchContent.Write(msg)
	}
	h.logBatch = nil
	h.batchMutex.Unlock()

	go h.app.QueueUpdateDraw(func() {
		fmt.Fprint(h.logTextView, batchContent.String())
		h.logTextView.ScrollToEnd()
	})
}
