package assets

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Unpack extracts a texture pack zip into destDir, keeping its directory structure.
// Entries that would land outside destDir are skipped. Returns the extracted paths.
func Unpack(zipPath, destDir string) ([]string, error) {
	r, err := zip.OpenReader(zipPath)
	if err != nil {
		return nil, fmt.Errorf("assets: %w", err)
	}
	defer r.Close()
	root, err := filepath.Abs(destDir)
	if err != nil {
		return nil, fmt.Errorf("assets: %w", err)
	}
	if err := os.MkdirAll(root, 0755); err != nil {
		return nil, fmt.Errorf("assets: %w", err)
	}
	var out []string
	for _, f := range r.File {
		dest := filepath.Join(root, filepath.FromSlash(f.Name))
		if !strings.HasPrefix(dest, root+string(os.PathSeparator)) {
			continue
		}
		if f.FileInfo().IsDir() {
			if err := os.MkdirAll(dest, 0755); err != nil {
				return out, fmt.Errorf("assets: %w", err)
			}
			continue
		}
		if err := extract(f, dest); err != nil {
			return out, fmt.Errorf("assets: %s: %w", f.Name, err)
		}
		out = append(out, dest)
	}
	return out, nil
}

func extract(f *zip.File, dest string) error {
	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return err
	}
	rc, err := f.Open()
	if err != nil {
		return err
	}
	defer rc.Close()
	w, err := os.Create(dest)
	if err != nil {
		return err
	}
	if _, err := io.Copy(w, rc); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}
