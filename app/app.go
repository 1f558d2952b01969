package app

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/gdamore/tcell/v2"
	"github.com/jiaqi-wen/excel-i18n-tool/app/export"
	"github.com/jiaqi-wen/excel-i18n-tool/app/logging"
	"github.com/jiaqi-wen/excel-i18n-tool/app/ui"
	"github.com/rivo/tview"
)

// App orchestrates the TUI application, managing the lifecycle and the
// conversion service.
type App struct {
	*tview.Application
	layoutManager *ui.LayoutManager
	navManager    *ui.NavigationManager
	dialogManager *ui.DialogManager
	focusManager  *ui.FocusManager
	logHandler    *ui.LogHandler
	logger        *logging.Logger

	exporter   *export.Service
	converting atomic.Bool

	// Pages
	mainPage *ui.MainPage
	logPage  *ui.LogPage

	appCtx    context.Context
	cancelApp context.CancelFunc

	shutdownWg sync.WaitGroup
}

// NewApp creates and initializes the TUI application.
func NewApp(logger *logging.Logger, exporter *export.Service, logChannel chan []byte, args *CLIArgs) *App {
	appCtx, cancelApp := context.WithCancel(context.Background())

	a := &App{
		Application: tview.NewApplication(),
		appCtx:      appCtx,
		cancelApp:   cancelApp,
		logger:      logger,
		exporter:    exporter,
	}

	a.layoutManager = ui.NewLayoutManager()
	a.navManager = ui.NewNavigationManager(a, a.layoutManager.Pages())
	a.dialogManager = ui.NewDialogManager(a)
	a.focusManager = ui.NewFocusManager(a)
	a.SetRoot(a.layoutManager.RootPrimitive(), true).EnableMouse(true)

	a.logHandler = ui.NewLogHandler(a, logChannel, &a.shutdownWg)
	a.logHandler.Start(appCtx)

	a.mainPage = ui.NewMainPage(a, args.Input)
	a.logPage = ui.NewLogPage(a, a.logHandler.TextView())

	a.navManager.Register(ui.PageMainID, a.mainPage)
	a.navManager.Register(ui.PageLogID, a.logPage)

	a.setupGlobalInputCapture()

	return a
}

// setupGlobalInputCapture defines application-wide keybindings.
func (a *App) setupGlobalInputCapture() {
	a.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyTab {
			if a.focusManager.Cycle(a.navManager.GetCurrentPage(), true) {
				return nil
			}
		}
		if event.Key() == tcell.KeyBacktab {
			if a.focusManager.Cycle(a.navManager.GetCurrentPage(), false) {
				return nil
			}
		}
		if event.Key() == tcell.KeyCtrlL {
			go a.QueueUpdateDraw(a.navManager.ToggleLogPage)
			return nil
		}
		if event.Key() == tcell.KeyCtrlC {
			go a.QueueUpdateDraw(a.dialogManager.ShowQuitDialog)
			return nil
		}
		return event
	})
}

// Run starts the tview application event loop.
func (a *App) Run() error {
	a.navManager.SwitchTo(ui.PageMainID)
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err = screen.Init(); err != nil {
		return err
	}
	screen.SetTitle("Excel i18n Export Tool") // tview doesn't expose this
	a.EnableMouse(true)
	a.EnablePaste(true)
	a.SetScreen(screen)
	return a.Application.Run()
}

// Stop gracefully stops the application.
func (a *App) Stop() {
	a.mainPage.Teardown()
	a.cancelApp()
	a.shutdownWg.Wait()
	a.Application.Stop()
}

// AppInterface methods to be called by UI components
func (a *App) GetLogger() *logging.Logger        { return a.logger }
func (a *App) Navigation() *ui.NavigationManager { return a.navManager }
func (a *App) Dialogs() *ui.DialogManager        { return a.dialogManager }
func (a *App) Layout() *ui.LayoutManager         { return a.layoutManager }
func (a *App) GetFocusManager() *ui.FocusManager { return a.focusManager }
func (a *App) Exporter() *export.Service         { return a.exporter }

// IsConverting reports whether a conversion is currently in flight.
func (a *App) IsConverting() bool {
	return a.converting.Load()
}

// StartConversion launches the export pipeline for the given workbook path on
// a background goroutine. Only one conversion runs at a time; a second
// request while one is in flight is rejected with a status message. A failed
// conversion surfaces as a single error entry in the conversion log.
func (a *App) StartConversion(path string) {
	if !a.converting.CompareAndSwap(false, true) {
		a.layoutManager.SetStatusText("A conversion is already running.")
		return
	}
	logging.Infof("App: Starting conversion of %s", path)
	a.mainPage.SetConverting(true)

	a.shutdownWg.Add(1)
	go func() {
		defer a.shutdownWg.Done()

		summary, err := a.exporter.Convert(a.appCtx, path)

		a.converting.Store(false)
		if err != nil {
			logging.Errorf("App: Conversion failed: %v", err)
			// Skip the log entry when the app is already shutting down.
			if a.appCtx.Err() == nil {
				a.mainPage.AppendEntry(export.ProgressEvent{
					Message: "Conversion failed: " + err.Error(),
					Type:    export.TypeError,
				})
			}
		}
		go a.QueueUpdateDraw(func() {
			a.mainPage.SetConverting(false)
			if err == nil {
				a.layoutManager.SetStatusText(summary)
			}
		})
	}()
}
