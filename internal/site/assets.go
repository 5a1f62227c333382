package site

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// CopyAssets replaces dst with a full copy of the src directory tree.
func CopyAssets(src, dst string) error {
	if _, err := os.Stat(src); err != nil {
		return fmt.Errorf("assets: %w", err)
	}
	if err := os.RemoveAll(dst); err != nil {
		return fmt.Errorf("clear %s: %w", dst, err)
	}
	return copyTree(src, dst, nil)
}

// CopyImages copies the image directory tree into dst, keeping only files
// whose extension is in exts (case-insensitive) and preserving relative
// subdirectory structure.
func CopyImages(src, dst string, exts []string) error {
	if _, err := os.Stat(src); err != nil {
		return fmt.Errorf("images: %w", err)
	}
	keep := make(map[string]bool, len(exts))
	for _, e := range exts {
		keep[strings.ToLower(e)] = true
	}
	return copyTree(src, dst, func(path string) bool {
		return keep[strings.ToLower(filepath.Ext(path))]
	})
}

// copyTree copies src into dst. When filter is non-nil, only files it
// accepts are copied; directories are created on demand so empty ones do
// not appear in the output.
func copyTree(src, dst string, filter func(path string) bool) error {
	return filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)

		if d.IsDir() {
			if filter != nil {
				return nil
			}
			return os.MkdirAll(target, 0o755)
		}
		if filter != nil && !filter(path) {
			return nil
		}
		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return err
		}
		return copyFile(path, target)
	})
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("copy %s: %w", src, err)
	}
	return out.Close()
}
