package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/jiaqi-wen/excel-i18n-tool/app/logging"
	"github.com/rivo/tview"
)

type DialogManager struct {
	app AppInterface
}

func NewDialogManager(app AppInterface) *DialogManager {
	return &DialogManager{app: app}
}

// ShowErrorDialog displays a modal dialog with an error message.
func (m *DialogManager) ShowErrorDialog(title, message string, onDismiss func()) {
	modal := tview.NewModal().
		SetText(message).
		AddButtons([]string{"Dismiss"}).
		SetDoneFunc(func(buttonIndex int, buttonLabel string) {
			go m.app.QueueUpdateDraw(func() {
				m.app.Navigation().CloseModal()
				if onDismiss != nil {
					onDismiss()
				}
			})
		})
	modal.SetBorderColor(tcell.ColorRed).SetTitle(" " + title + " ").SetTitleAlign(tview.AlignLeft)
	m.app.Navigation().ShowModal("error_dialog", NewModalPage(modal))
}

// ShowQuitDialog displays a confirmation dialog before quitting.
func (m *DialogManager) ShowQuitDialog() {
	text := "Are you sure you want to quit?"
	if m.app.IsConverting() {
		text = "A conversion is still running. Quit anyway?"
	}
	modal := tview.NewModal().
		SetText(text).
		AddButtons([]string{"Cancel", "Quit"}).
		SetDoneFunc(func(buttonIndex int, buttonLabel string) {
			go m.app.QueueUpdateDraw(func() {
				m.app.Navigation().CloseModal()
				if buttonLabel == "Quit" {
					logging.Info("App: Quitting.")
					m.app.Stop()
				}
			})
		})
	m.app.Navigation().ShowModal("quit_dialog", NewModalPage(modal))
}
