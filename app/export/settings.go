package export

import (
	"fmt"
	"os"
	"strings"

	"github.com/titanous/json5"
)

// Settings control the workbook layout conventions and output handling of a
// conversion. Workbooks name their management sheets in Chinese by
// convention, so those are the defaults.
type Settings struct {
	// LanguageSheet lists the language codes to export, one per row in the
	// first column.
	LanguageSheet string `json:"languageSheet"`
	// SheetConfigSheet lists the sheets to export: column A is the sheet
	// name, column B an optional type. Type "root" merges the sheet's keys
	// into the top level of the document.
	SheetConfigSheet string `json:"sheetConfigSheet"`
	// Compress bundles the output folder into a zip archive.
	Compress bool `json:"compress"`
	// KeepFolder leaves the unzipped output folder in place after archiving.
	KeepFolder bool `json:"keepFolder"`
}

// DefaultSettings returns the conventions used by the translation workbooks.
func DefaultSettings() Settings {
	return Settings{
		LanguageSheet:    "导出语言管理",
		SheetConfigSheet: "导出sheet管理",
		Compress:         true,
		KeepFolder:       false,
	}
}

// LoadSettings reads a JSON5 settings file, applying defaults for anything it
// does not set. A missing file yields the defaults without error.
func LoadSettings(path string) (Settings, error) {
	settings := DefaultSettings()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return settings, nil
		}
		return settings, fmt.Errorf("failed to read settings file: %w", err)
	}
	if err := json5.Unmarshal(data, &settings); err != nil {
		return settings, fmt.Errorf("failed to parse settings file %s: %w", path, err)
	}
	if strings.TrimSpace(settings.LanguageSheet) == "" || strings.TrimSpace(settings.SheetConfigSheet) == "" {
		return settings, fmt.Errorf("settings file %s: management sheet names must not be empty", path)
	}
	return settings, nil
}
