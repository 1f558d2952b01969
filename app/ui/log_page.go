package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// PageLogID is the unique identifier for the LogPage.
const PageLogID = "log_page"

// LogPage represents the full-screen viewer for the application's diagnostic log.
type LogPage struct {
	*tview.Flex
	app        AppInterface
	statusText *tview.TextView
}

// NewLogPage creates a new LogPage instance around the log handler's text view.
func NewLogPage(app AppInterface, logView *tview.TextView) *LogPage {
	if logView == nil {
		// This should not happen if app is initialized correctly.
		logView = tview.NewTextView().SetText("Error: Log view not initialized.")
	}

	wrapper := tview.NewFlex().SetDirection(tview.FlexRow)
	wrapper.AddItem(NewTitleFrame(logView, "Log"), 0, 1, true)

	page := &LogPage{
		Flex:       wrapper,
		app:        app,
		statusText: tview.NewTextView().SetDynamicColors(true),
	}
	page.statusText.SetText("Viewing application logs...")

	wrapper.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlL:
			go app.QueueUpdateDraw(app.Navigation().GoBack)
			return nil
		}
		return event
	})

	return page
}

// GetActionPrompts returns the key actions for the log page.
func (p *LogPage) GetActionPrompts() map[string]string {
	return map[string]string{
		"ESC/Ctrl+L": "Close Log",
	}
}

// GetStatusPrimitive returns the tview.Primitive that displays the page's status
func (p *LogPage) GetStatusPrimitive() *tview.TextView {
	return p.statusText
}
