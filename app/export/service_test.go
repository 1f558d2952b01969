package export_test

import (
	"archive/zip"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jiaqi-wen/excel-i18n-tool/app/export"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// sheetSpec describes one worksheet of a test workbook.
type sheetSpec struct {
	name string
	rows [][]string
}

// buildWorkbook writes a workbook with the given sheets into dir and returns
// its path.
func buildWorkbook(t *testing.T, dir string, sheets []sheetSpec) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	for i, sheet := range sheets {
		if i == 0 {
			require.NoError(t, f.SetSheetName("Sheet1", sheet.name))
		} else {
			_, err := f.NewSheet(sheet.name)
			require.NoError(t, err)
		}
		for r, row := range sheet.rows {
			for c, value := range row {
				cell, err := excelize.CoordinatesToCellName(c+1, r+1)
				require.NoError(t, err)
				require.NoError(t, f.SetCellValue(sheet.name, cell, value))
			}
		}
	}

	path := filepath.Join(dir, "translations.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

// defaultSheets is a minimal valid workbook: two languages, one root sheet
// and one nested sheet.
func defaultSheets(settings export.Settings) []sheetSpec {
	return []sheetSpec{
		{name: settings.LanguageSheet, rows: [][]string{{"en"}, {"zh"}}},
		{name: settings.SheetConfigSheet, rows: [][]string{{"Common", "root"}, {"Menu"}}},
		{name: "Common", rows: [][]string{
			{"key", "en", "zh"},
			{"app.title", "Exporter", "导出工具"},
			{"app.quit", "Quit", "退出"},
		}},
		{name: "Menu", rows: [][]string{
			{"key", "en", "zh"},
			{"menu.open", "Open", "打开"},
		}},
	}
}

func newTestService(compress bool) (*export.Service, export.Settings) {
	settings := export.DefaultSettings()
	settings.Compress = compress
	return export.NewService(settings), settings
}

// readLanguageFile locates and decodes <code>.json inside the single export
// folder under dir.
func readLanguageFile(t *testing.T, dir, code string) (map[string]any, string) {
	t.Helper()
	exportDir := findExportDir(t, dir)
	data, err := os.ReadFile(filepath.Join(exportDir, code+".json"))
	require.NoError(t, err)
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	return decoded, string(data)
}

func findExportDir(t *testing.T, dir string) string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, entry := range entries {
		if entry.IsDir() {
			return filepath.Join(dir, entry.Name())
		}
	}
	t.Fatalf("no export folder found in %s", dir)
	return ""
}

func TestConvertExportsAllLanguages(t *testing.T) {
	dir := t.TempDir()
	svc, settings := newTestService(false)
	path := buildWorkbook(t, dir, defaultSheets(settings))

	recorder := &eventRecorder{}
	defer svc.Events().Subscribe(recorder.record)()

	summary, err := svc.Convert(context.Background(), path)
	require.NoError(t, err)
	assert.Contains(t, summary, "2 language file(s)")

	en, raw := readLanguageFile(t, dir, "en")
	// Root-typed sheet keys merge into the top level.
	assert.Equal(t, "Exporter", en["app.title"])
	assert.Equal(t, "Quit", en["app.quit"])
	// Other sheets nest under their name.
	menu, ok := en["Menu"].(map[string]any)
	require.True(t, ok, "Menu should be a nested object")
	assert.Equal(t, "Open", menu["menu.open"])

	// Insertion order is preserved in the encoded output.
	assert.Less(t, strings.Index(raw, "app.title"), strings.Index(raw, "app.quit"))
	assert.Less(t, strings.Index(raw, "app.quit"), strings.Index(raw, "Menu"))

	zh, _ := readLanguageFile(t, dir, "zh")
	assert.Equal(t, "导出工具", zh["app.title"])

	assert.NotEmpty(t, recorder.byType(export.TypeSuccess))
	assert.Empty(t, recorder.byType(export.TypeError))
	// First event announces the file being processed.
	events := recorder.all()
	require.NotEmpty(t, events)
	assert.Equal(t, export.TypeInfo, events[0].Type)
	assert.Contains(t, events[0].Message, path)
}

func TestConvertCompressesAndRemovesFolder(t *testing.T) {
	dir := t.TempDir()
	svc, settings := newTestService(true)
	path := buildWorkbook(t, dir, defaultSheets(settings))

	summary, err := svc.Convert(context.Background(), path)
	require.NoError(t, err)
	assert.Contains(t, summary, ".zip")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var zipPath string
	for _, entry := range entries {
		require.False(t, entry.IsDir(), "unzipped export folder should have been removed")
		if strings.HasSuffix(entry.Name(), ".zip") {
			zipPath = filepath.Join(dir, entry.Name())
		}
	}
	require.NotEmpty(t, zipPath, "expected a zip archive next to the workbook")

	reader, err := zip.OpenReader(zipPath)
	require.NoError(t, err)
	defer reader.Close()
	var names []string
	for _, file := range reader.File {
		names = append(names, filepath.Base(file.Name))
	}
	assert.ElementsMatch(t, []string{"en.json", "zh.json"}, names)
}

func TestConvertMissingFile(t *testing.T) {
	svc, _ := newTestService(false)
	_, err := svc.Convert(context.Background(), filepath.Join(t.TempDir(), "missing.xlsx"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not exist")
}

func TestConvertMissingLanguageSheet(t *testing.T) {
	dir := t.TempDir()
	svc, settings := newTestService(false)
	path := buildWorkbook(t, dir, []sheetSpec{
		{name: settings.SheetConfigSheet, rows: [][]string{{"Common"}}},
		{name: "Common", rows: [][]string{{"key", "en"}, {"a", "b"}}},
	})

	_, err := svc.Convert(context.Background(), path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "language configuration")
}

func TestConvertNoLanguagesConfigured(t *testing.T) {
	dir := t.TempDir()
	svc, settings := newTestService(false)
	path := buildWorkbook(t, dir, []sheetSpec{
		{name: settings.LanguageSheet, rows: [][]string{{""}}},
		{name: settings.SheetConfigSheet, rows: [][]string{{"Common"}}},
		{name: "Common", rows: [][]string{{"key", "en"}}},
	})

	_, err := svc.Convert(context.Background(), path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no export languages")
}

func TestConvertWarnsOnMissingSheetAndEmptyValue(t *testing.T) {
	dir := t.TempDir()
	svc, settings := newTestService(false)
	path := buildWorkbook(t, dir, []sheetSpec{
		{name: settings.LanguageSheet, rows: [][]string{{"en"}}},
		{name: settings.SheetConfigSheet, rows: [][]string{{"Common", "root"}, {"Ghost"}}},
		{name: "Common", rows: [][]string{
			{"key", "en"},
			{"filled", "value"},
			{"empty", ""},
		}},
	})

	recorder := &eventRecorder{}
	defer svc.Events().Subscribe(recorder.record)()

	_, err := svc.Convert(context.Background(), path)
	require.NoError(t, err)

	warnings := recorder.byType(export.TypeWarning)
	require.Len(t, warnings, 2)
	var combined []string
	for _, w := range warnings {
		combined = append(combined, w.Message)
	}
	joined := strings.Join(combined, "\n")
	assert.Contains(t, joined, "Ghost")
	assert.Contains(t, joined, `"empty"`)

	// The empty value is still exported.
	en, _ := readLanguageFile(t, dir, "en")
	assert.Equal(t, "", en["empty"])
}

func TestConvertUnbalancedPlaceholderAborts(t *testing.T) {
	dir := t.TempDir()
	svc, settings := newTestService(false)
	path := buildWorkbook(t, dir, []sheetSpec{
		{name: settings.LanguageSheet, rows: [][]string{{"en"}}},
		{name: settings.SheetConfigSheet, rows: [][]string{{"Common"}}},
		{name: "Common", rows: [][]string{
			{"key", "en"},
			{"greeting", "Hello {{name}"},
		}},
	})

	_, err := svc.Convert(context.Background(), path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "placeholder")
	assert.Contains(t, err.Error(), `"greeting"`)

	// Partial output must be cleaned up.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, entry := range entries {
		assert.False(t, entry.IsDir(), "output folder should have been removed, found %s", entry.Name())
	}
}

func TestConvertSkipsBlankKeysAndMissingColumns(t *testing.T) {
	dir := t.TempDir()
	svc, settings := newTestService(false)
	path := buildWorkbook(t, dir, []sheetSpec{
		{name: settings.LanguageSheet, rows: [][]string{{"en"}, {"fr"}}},
		{name: settings.SheetConfigSheet, rows: [][]string{{"Common", "root"}}},
		{name: "Common", rows: [][]string{
			{"key", "en"}, // no fr column
			{"", "ignored"},
			{"kept", "value"},
		}},
	})

	recorder := &eventRecorder{}
	defer svc.Events().Subscribe(recorder.record)()

	_, err := svc.Convert(context.Background(), path)
	require.NoError(t, err)

	en, _ := readLanguageFile(t, dir, "en")
	assert.Equal(t, map[string]any{"kept": "value"}, en)

	// A language without a matching column still produces a (empty) document,
	// and the missing column itself does not warn.
	exportDir := findExportDir(t, dir)
	data, err := os.ReadFile(filepath.Join(exportDir, "fr.json"))
	require.NoError(t, err)
	assert.JSONEq(t, "{}", string(data))
	assert.Empty(t, recorder.byType(export.TypeWarning))
}

func TestConvertCancelledContext(t *testing.T) {
	dir := t.TempDir()
	svc, settings := newTestService(false)
	path := buildWorkbook(t, dir, defaultSheets(settings))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := svc.Convert(ctx, path)
	require.ErrorIs(t, err, context.Canceled)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, entry := range entries {
		assert.False(t, entry.IsDir(), "output folder should have been removed")
	}
}
