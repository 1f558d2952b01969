package ui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/jiaqi-wen/excel-i18n-tool/app/export"
	"github.com/rivo/tview"
)

// PageMainID is the unique identifier for the MainPage.
const PageMainID = "main_page"

// logRow is one rendered line of the conversion log: a progress event plus
// the time it was received.
type logRow struct {
	at    time.Time
	event export.ProgressEvent
}

// MainPage is the conversion screen: workbook path input, start/clear
// controls, and the scrolling conversion log. The page owns the log sequence;
// it is mutated only through appendRow and ClearLog.
type MainPage struct {
	*tview.Flex
	app        AppInterface
	statusText *tview.TextView

	pathInput    *tview.InputField
	browseButton *tview.Button
	startButton  *tview.Button
	clearButton  *tview.Button
	logView      *tview.TextView

	mu         sync.Mutex
	rows       []logRow
	warnCount  int
	errorCount int

	unsubscribe func()
}

// NewMainPage creates the main conversion page and subscribes it to the
// export service's progress events. The subscription lives until Teardown.
func NewMainPage(app AppInterface, initialPath string) *MainPage {
	p := &MainPage{
		Flex:       tview.NewFlex().SetDirection(tview.FlexRow),
		app:        app,
		statusText: tview.NewTextView().SetDynamicColors(true),
	}

	p.pathInput = tview.NewInputField().
		SetLabel("Workbook: ").
		SetText(initialPath).
		SetFieldWidth(0)
	p.pathInput.SetFocusFunc(func() {
		p.pathInput.SetFieldBackgroundColor(tcell.ColorBlue)
	})
	p.pathInput.SetBlurFunc(func() {
		p.pathInput.SetFieldBackgroundColor(tcell.ColorSlateGray)
	})
	p.pathInput.SetDoneFunc(func(key tcell.Key) {
		if key == tcell.KeyEnter {
			p.app.SetFocus(p.startButton)
		}
	})

	p.browseButton = tview.NewButton("Browse...").SetSelectedFunc(p.openFilePicker)
	DefaultStyleButton(p.browseButton)

	p.startButton = tview.NewButton("Start Conversion").SetSelectedFunc(func() {
		path := strings.TrimSpace(p.pathInput.GetText())
		if path == "" {
			app.Dialogs().ShowErrorDialog("Error", "Workbook path cannot be empty.", nil)
			return
		}
		app.StartConversion(filepath.Clean(path))
	})
	DefaultStyleButton(p.startButton)

	p.clearButton = tview.NewButton("Clear Log").SetSelectedFunc(func() {
		p.ClearLog()
	})
	DefaultStyleButton(p.clearButton)

	p.logView = tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true).
		SetWrap(true)

	pathFlex := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(p.pathInput, 0, 1, true).
		AddItem(nil, 1, 0, false).
		AddItem(p.browseButton, 14, 0, false)

	buttonsFlex := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(p.startButton, 30, 0, true).
		AddItem(nil, 1, 0, false).
		AddItem(p.clearButton, 30, 0, true).
		AddItem(nil, 0, 1, false)

	controlsFlex := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(pathFlex, 1, 0, true).
		AddItem(nil, 1, 0, false).
		AddItem(buttonsFlex, 1, 0, false)
	controlsFlex.SetBorderPadding(1, 1, 1, 1)

	p.AddItem(NewTitleFrame(controlsFlex, "Conversion"), 6, 0, true).
		AddItem(NewTitleFrame(p.logView, "Progress"), 0, 1, false)

	p.unsubscribe = app.Exporter().Events().Subscribe(func(event export.ProgressEvent) {
		p.appendRow(event)
	})

	return p
}

// Teardown disposes the progress subscription. Events emitted afterwards no
// longer reach this page.
func (p *MainPage) Teardown() {
	if p.unsubscribe != nil {
		p.unsubscribe()
		p.unsubscribe = nil
	}
}

// AppendEntry adds one entry to the conversion log. Used by the app to
// surface a failed conversion start as a single error line.
func (p *MainPage) AppendEntry(event export.ProgressEvent) {
	p.appendRow(event)
}

// appendRow records the event in receipt order and schedules a re-render.
// The append happens synchronously on the emitter's goroutine so ordering is
// preserved; only the render is deferred to the UI thread.
func (p *MainPage) appendRow(event export.ProgressEvent) {
	p.mu.Lock()
	p.rows = append(p.rows, logRow{at: time.Now(), event: event})
	switch event.Type {
	case export.TypeWarning:
		p.warnCount++
	case export.TypeError:
		p.errorCount++
	}
	p.mu.Unlock()

	go p.app.QueueUpdateDraw(p.refresh)
}

// ClearLog resets the log sequence to empty. Clearing an empty log is a no-op.
func (p *MainPage) ClearLog() {
	p.mu.Lock()
	p.rows = nil
	p.warnCount = 0
	p.errorCount = 0
	p.mu.Unlock()

	go p.app.QueueUpdateDraw(p.refresh)
}

// Rows returns a snapshot of the conversion log.
func (p *MainPage) Rows() []export.ProgressEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	events := make([]export.ProgressEvent, len(p.rows))
	for i, row := range p.rows {
		events[i] = row.event
	}
	return events
}

// refresh rebuilds the log text view from the owned sequence and auto-scrolls
// to the newest entry. Must run on the UI thread.
func (p *MainPage) refresh() {
	p.mu.Lock()
	rows := make([]logRow, len(p.rows))
	copy(rows, p.rows)
	warnCount, errorCount := p.warnCount, p.errorCount
	p.mu.Unlock()

	var b strings.Builder
	for _, row := range rows {
		fmt.Fprintf(&b, "[gray]%s[-] [%s]%s[-]\n",
			row.at.Format("15:04:05"), severityColor(row.event.Type), tview.Escape(row.event.Message))
	}
	p.logView.SetText(b.String())
	p.logView.ScrollToEnd()
	p.app.Layout().SetIssueCounters(warnCount, errorCount)
}

// severityColor maps a progress event type to its display color.
func severityColor(t export.ProgressType) string {
	switch t {
	case export.TypeSuccess:
		return "green"
	case export.TypeWarning:
		return "yellow"
	case export.TypeError:
		return "red"
	default:
		return "white"
	}
}

// SetConverting toggles the start button while a conversion is in flight.
// Must run on the UI thread.
func (p *MainPage) SetConverting(converting bool) {
	p.startButton.SetDisabled(converting)
	if converting {
		p.statusText.SetText("Converting...")
	} else {
		p.statusText.SetText("")
	}
}

// openFilePicker shows the modal workbook picker, starting in the directory
// of the current input path. Cancelling selects nothing and logs nothing.
func (p *MainPage) openFilePicker() {
	startDir := ""
	if path := strings.TrimSpace(p.pathInput.GetText()); path != "" {
		if info, err := os.Stat(path); err == nil && info.IsDir() {
			startDir = path
		} else {
			startDir = filepath.Dir(path)
		}
	}

	picker := NewFilePickerPage(p.app, startDir,
		func(path string) {
			go p.app.QueueUpdateDraw(func() {
				p.app.Navigation().CloseModal()
				p.pathInput.SetText(path)
				p.app.SetFocus(p.startButton)
			})
		},
		func() {
			go p.app.QueueUpdateDraw(func() {
				p.app.Navigation().CloseModal()
			})
		})
	p.app.Navigation().ShowModal(PageFilePickerID, picker)
}

// GetActionPrompts returns the key actions for the main page.
func (p *MainPage) GetActionPrompts() map[string]string {
	return map[string]string{
		"Tab":   "Next Field",
		"Enter": "Activate Button",
	}
}

// GetStatusPrimitive returns the tview.Primitive that displays the page's status
func (p *MainPage) GetStatusPrimitive() *tview.TextView {
	return p.statusText
}

// GetFocusablePrimitives implements Focusable.
func (p *MainPage) GetFocusablePrimitives() []tview.Primitive {
	return []tview.Primitive{
		p.pathInput,
		p.browseButton,
		p.startButton,
		p.clearButton,
		p.logView,
	}
}
