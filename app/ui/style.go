package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

var (
	DefaultButtonStyle         = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorWhite)
	DefaultButtonActiveStyle   = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorBlue).Underline(true)
	DefaultButtonDisabledStyle = tcell.StyleDefault.Foreground(tcell.ColorLightGray).Background(tcell.ColorDarkGray)
)

func DefaultStyleButton(button *tview.Button) {
	button.SetStyle(DefaultButtonStyle)
	button.SetActivatedStyle(DefaultButtonActiveStyle)
	button.SetDisabledStyle(DefaultButtonDisabledStyle)
}
