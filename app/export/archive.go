package export

import (
	"archive/zip"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// zipDirectory compresses srcDir into dstFile using deflate. Entry names are
// relative to srcDir's parent so the archive unpacks into a single folder.
func zipDirectory(srcDir, dstFile string) error {
	out, err := os.Create(dstFile)
	if err != nil {
		return fmt.Errorf("failed to create zip file: %w", err)
	}
	defer out.Close()

	zw := zip.NewWriter(out)
	basePath := filepath.Dir(srcDir)

	err = filepath.WalkDir(srcDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("failed to read directory: %w", err)
		}
		if d.IsDir() {
			return nil
		}

		name, err := filepath.Rel(basePath, path)
		if err != nil {
			return err
		}
		entry, err := zw.Create(filepath.ToSlash(name))
		if err != nil {
			return fmt.Errorf("failed to create zip entry: %w", err)
		}

		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("failed to open file: %w", err)
		}
		defer f.Close()

		if _, err := io.Copy(entry, f); err != nil {
			return fmt.Errorf("failed to write zip entry: %w", err)
		}
		return nil
	})
	if err != nil {
		zw.Close()
		return err
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("failed to finalize zip: %w", err)
	}
	return nil
}
