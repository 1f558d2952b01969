package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jiaqi-wen/excel-i18n-tool/app/logging"
	"github.com/xuri/excelize/v2"
)

// Service converts a translation workbook into one JSON file per language.
// Progress is reported out-of-band through the Broadcaster; the returned
// error is the only direct failure signal.
type Service struct {
	settings Settings
	events   *Broadcaster
}

// NewService creates a conversion service with the given settings.
func NewService(settings Settings) *Service {
	return &Service{
		settings: settings,
		events:   NewBroadcaster(),
	}
}

// Events returns the progress event broadcaster for this service.
func (s *Service) Events() *Broadcaster {
	return s.events
}

// Settings returns the settings the service was created with.
func (s *Service) Settings() Settings {
	return s.settings
}

func (s *Service) progress(t ProgressType, format string, v ...interface{}) {
	s.events.Emit(ProgressEvent{Message: fmt.Sprintf(format, v...), Type: t})
}

// Convert runs the full export pipeline for the workbook at path and returns
// a human-readable summary. Validation failures abort the conversion and
// remove any partial output; all other anomalies (missing sheets, empty
// values) only produce warning events.
func (s *Service) Convert(ctx context.Context, path string) (string, error) {
	s.progress(TypeInfo, "Processing file: %s", path)
	logging.Infof("Export: starting conversion of %s", path)

	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("file does not exist: %s", path)
	}

	s.progress(TypeInfo, "Opening workbook...")
	workbook, err := excelize.OpenFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to open workbook: %w", err)
	}
	defer workbook.Close()
	s.progress(TypeSuccess, "Workbook opened")

	languages, err := readLanguageConfigs(workbook, s.settings.LanguageSheet)
	if err != nil {
		return "", fmt.Errorf("failed to read language configuration: %w", err)
	}
	if len(languages) == 0 {
		return "", fmt.Errorf("no export languages configured in worksheet %q", s.settings.LanguageSheet)
	}
	sheets, err := readSheetConfigs(workbook, s.settings.SheetConfigSheet)
	if err != nil {
		return "", fmt.Errorf("failed to read sheet configuration: %w", err)
	}
	s.progress(TypeInfo, "Found %d language(s), %d sheet(s)", len(languages), len(sheets))

	outputDir, err := s.makeOutputDir(path)
	if err != nil {
		return "", err
	}
	s.progress(TypeSuccess, "Output folder created: %s", outputDir)

	for _, language := range languages {
		if err := ctx.Err(); err != nil {
			os.RemoveAll(outputDir)
			return "", err
		}
		if err := s.exportLanguage(workbook, sheets, language, outputDir); err != nil {
			os.RemoveAll(outputDir)
			return "", err
		}
	}

	result := outputDir
	if s.settings.Compress {
		zipPath := outputDir + ".zip"
		s.progress(TypeInfo, "Compressing output folder...")
		if err := zipDirectory(outputDir, zipPath); err != nil {
			os.RemoveAll(outputDir)
			return "", fmt.Errorf("failed to compress output folder: %w", err)
		}
		s.progress(TypeSuccess, "Compressed output to %s", zipPath)

		if !s.settings.KeepFolder {
			if err := os.RemoveAll(outputDir); err != nil {
				s.progress(TypeWarning, "Failed to remove output folder: %v", err)
			}
		}
		result = zipPath
	}

	summary := fmt.Sprintf("Exported %d language file(s) to %s", len(languages), result)
	logging.Successf("Export: %s", summary)
	return summary, nil
}

// makeOutputDir creates a timestamped sibling folder of the input file.
func (s *Service) makeOutputDir(path string) (string, error) {
	parent := filepath.Dir(path)
	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	if stem == "" {
		stem = "export"
	}
	name := fmt.Sprintf("%s_%s", stem, time.Now().Format("20060102_150405"))
	outputDir := filepath.Join(parent, name)
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output folder: %w", err)
	}
	return outputDir, nil
}

// exportLanguage extracts one language column from every configured sheet and
// writes the merged document as <code>.json into outputDir.
func (s *Service) exportLanguage(workbook *excelize.File, sheets []sheetConfig, language languageConfig, outputDir string) error {
	s.progress(TypeInfo, "Exporting language: %s", language.Code)

	sheetData := make(map[string]*orderedMap, len(sheets))
	for _, sheet := range sheets {
		rows, err := rawRows(workbook, sheet.Name)
		if err != nil {
			s.progress(TypeWarning, "Worksheet %q skipped: %v", sheet.Name, err)
			continue
		}
		if len(rows) == 0 {
			continue
		}

		langCol := columnIndex(rows[0], language.Code)
		if langCol < 0 {
			continue
		}

		values := newOrderedMap()
		for rowIdx, row := range rows[1:] {
			if len(row) == 0 {
				continue
			}
			key := formatCellValue(row[0])
			if key == "" {
				continue
			}

			value := ""
			if len(row) > langCol {
				value = formatCellValue(row[langCol])
			}
			if value == "" {
				s.progress(TypeWarning, "Empty value in sheet %q row %d column %q key %q",
					sheet.Name, rowIdx+2, language.Code, key)
			}
			if err := checkPlaceholders(value); err != nil {
				return fmt.Errorf("placeholder validation failed in sheet %q row %d key %q: %w",
					sheet.Name, rowIdx+2, key, err)
			}
			values.Set(key, value)
		}
		sheetData[sheet.Name] = values
	}

	document := newOrderedMap()
	for _, sheet := range sheets {
		values, ok := sheetData[sheet.Name]
		if !ok {
			continue
		}
		if sheet.Type == sheetTypeRoot {
			for _, key := range values.keys {
				value, _ := values.Get(key)
				document.Set(key, value)
			}
		} else {
			document.Set(sheet.Name, values)
		}
	}

	data, err := document.MarshalIndent()
	if err != nil {
		return fmt.Errorf("failed to encode document for %s: %w", language.Code, err)
	}
	outputPath := filepath.Join(outputDir, language.Code+".json")
	if err := os.WriteFile(outputPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", outputPath, err)
	}
	s.progress(TypeSuccess, "Exported language file: %s", outputPath)
	return nil
}
