package ui

import (
	"github.com/jiaqi-wen/excel-i18n-tool/app/export"
	"github.com/jiaqi-wen/excel-i18n-tool/app/logging"
	"github.com/rivo/tview"
)

// AppInterface defines methods the UI layer needs to access from the main App
// struct. It acts as a facade for UI components to interact with the
// application's core.
type AppInterface interface {
	// --- UI methods & Managers ---
	QueueUpdateDraw(f func()) *tview.Application
	Stop()
	Navigation() *NavigationManager
	Dialogs() *DialogManager
	Layout() *LayoutManager
	GetFocusManager() *FocusManager
	GetLogger() *logging.Logger
	GetFocus() tview.Primitive
	SetFocus(p tview.Primitive) *tview.Application

	// --- Core Logic ---
	Exporter() *export.Service

	// --- Actions ---
	StartConversion(path string)
	IsConverting() bool
}

// Page is the interface all registered pages must implement.
type Page interface {
	tview.Primitive
	// GetActionPrompts returns the key/description hints shown in the footer.
	GetActionPrompts() map[string]string
	// GetStatusPrimitive returns the text view that displays the page's status.
	GetStatusPrimitive() *tview.TextView
}

// PageActivator is implemented by pages that need to refresh when shown.
type PageActivator interface {
	OnPageActivated()
}

// Focusable is an interface for any primitive that contains child elements
// which can be focused. It's used by the FocusManager to build the focus chain.
type Focusable interface {
	// GetFocusablePrimitives returns a slice of the immediate child primitives
	// that can receive focus.
	GetFocusablePrimitives() []tview.Primitive
}
