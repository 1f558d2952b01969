package export

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// languageConfig is one target language read from the language management sheet.
type languageConfig struct {
	Code string
}

// sheetConfig is one export target read from the sheet management sheet.
type sheetConfig struct {
	Name string
	// Type is empty for a nested sheet object, or "root" to merge the
	// sheet's keys into the top level of the document.
	Type string
}

const sheetTypeRoot = "root"

// rawRows reads a worksheet with raw (unformatted) cell values so that the
// serial-number coercion in formatCellValue sees what Excel actually stores.
func rawRows(f *excelize.File, sheet string) ([][]string, error) {
	return f.GetRows(sheet, excelize.Options{RawCellValue: true})
}

// readLanguageConfigs reads the language codes to export. Blank rows are
// skipped.
func readLanguageConfigs(f *excelize.File, sheet string) ([]languageConfig, error) {
	rows, err := rawRows(f, sheet)
	if err != nil {
		return nil, fmt.Errorf("worksheet %q not found: %w", sheet, err)
	}

	var configs []languageConfig
	for _, row := range rows {
		if len(row) == 0 {
			continue
		}
		code := strings.TrimSpace(formatCellValue(row[0]))
		if code == "" {
			continue
		}
		configs = append(configs, languageConfig{Code: code})
	}
	return configs, nil
}

// readSheetConfigs reads the list of sheets to export and their optional type.
func readSheetConfigs(f *excelize.File, sheet string) ([]sheetConfig, error) {
	rows, err := rawRows(f, sheet)
	if err != nil {
		return nil, fmt.Errorf("worksheet %q not found: %w", sheet, err)
	}

	var configs []sheetConfig
	for _, row := range rows {
		if len(row) == 0 {
			continue
		}
		name := strings.TrimSpace(formatCellValue(row[0]))
		if name == "" {
			continue
		}
		sheetType := ""
		if len(row) > 1 {
			sheetType = strings.TrimSpace(formatCellValue(row[1]))
		}
		configs = append(configs, sheetConfig{Name: name, Type: sheetType})
	}
	return configs, nil
}

// columnIndex returns the index of the header cell matching the wanted value,
// or -1 when the column is absent.
func columnIndex(header []string, want string) int {
	for i, cell := range header {
		if formatCellValue(cell) == want {
			return i
		}
	}
	return -1
}
