package ui

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// PageFilePickerID is the unique identifier for the FilePickerPage.
const PageFilePickerID = "file_picker"

// workbookExtension is the only file type the picker offers.
const workbookExtension = ".xlsx"

// FilePickerPage is a modal directory browser restricted to workbook files.
// Selecting a file invokes onSelect with its absolute path; Escape invokes
// onCancel without any other effect.
type FilePickerPage struct {
	*tview.Flex
	app        AppInterface
	list       *tview.List
	frame      *TitleFrame
	statusText *tview.TextView
	currentDir string
	onSelect   func(path string)
	onCancel   func()
}

// NewFilePickerPage creates a picker rooted at startDir. An unreadable or
// empty startDir falls back to the working directory.
func NewFilePickerPage(app AppInterface, startDir string, onSelect func(path string), onCancel func()) *FilePickerPage {
	if startDir == "" {
		if wd, err := os.Getwd(); err == nil {
			startDir = wd
		} else {
			startDir = "."
		}
	}
	startDir, _ = filepath.Abs(startDir)

	p := &FilePickerPage{
		Flex:       tview.NewFlex().SetDirection(tview.FlexRow),
		app:        app,
		list:       tview.NewList().ShowSecondaryText(false),
		statusText: tview.NewTextView().SetDynamicColors(true),
		onSelect:   onSelect,
		onCancel:   onCancel,
	}
	p.frame = NewTitleFrame(p.list, startDir)

	centered := tview.NewFlex().
		AddItem(tview.NewBox(), 0, 1, false).
		AddItem(
			tview.NewFlex().SetDirection(tview.FlexRow).
				AddItem(tview.NewBox(), 1, 0, false).
				AddItem(p.frame, 0, 1, true).
				AddItem(tview.NewBox(), 1, 0, false),
			80, 0, true,
		).
		AddItem(tview.NewBox(), 0, 1, false)
	p.AddItem(centered, 0, 1, true)

	p.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEscape {
			go app.QueueUpdateDraw(func() {
				if p.onCancel != nil {
					p.onCancel()
				}
			})
			return nil
		}
		return event
	})

	p.setDirectory(startDir)
	return p
}

// setDirectory repopulates the list with the contents of dir.
func (p *FilePickerPage) setDirectory(dir string) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		p.statusText.SetText("[red]Cannot read directory: " + tview.Escape(err.Error()))
		return
	}
	p.currentDir = dir
	p.frame.SetTitle(dir)
	p.statusText.SetText("Select a " + workbookExtension + " file")
	p.list.Clear()

	if parent := filepath.Dir(dir); parent != dir {
		p.list.AddItem("../", "", 0, func() {
			p.setDirectory(parent)
		})
	}

	var dirs, files []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		if entry.IsDir() {
			dirs = append(dirs, name)
		} else if strings.EqualFold(filepath.Ext(name), workbookExtension) {
			files = append(files, name)
		}
	}
	sort.Strings(dirs)
	sort.Strings(files)

	for _, name := range dirs {
		target := filepath.Join(dir, name)
		p.list.AddItem(name+"/", "", 0, func() {
			p.setDirectory(target)
		})
	}
	for _, name := range files {
		target := filepath.Join(dir, name)
		p.list.AddItem("[green]"+tview.Escape(name)+"[-]", "", 0, func() {
			if p.onSelect != nil {
				p.onSelect(target)
			}
		})
	}
}

// GetActionPrompts returns the key actions for the picker.
func (p *FilePickerPage) GetActionPrompts() map[string]string {
	return map[string]string{
		"Enter": "Open",
		"ESC":   "Cancel",
	}
}

// GetStatusPrimitive returns the tview.Primitive that displays the page's status
func (p *FilePickerPage) GetStatusPrimitive() *tview.TextView {
	return p.statusText
}

// GetFocusablePrimitives implements Focusable.
func (p *FilePickerPage) GetFocusablePrimitives() []tview.Primitive {
	return []tview.Primitive{p.list}
}
