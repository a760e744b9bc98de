package site

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
)

// Build writes the rendered page, the embedded static assets and the images
// found under imagesDir into dir. A missing images directory is not an error:
// the page degrades to empty image frames.
func (r *Renderer) Build(dir string, page Page, imagesDir string) error {
	var buf bytes.Buffer
	if err := r.Render(&buf, page); err != nil {
		return err
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "index.html"), buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write index: %w", err)
	}

	if err := copyTree(staticFS, "static", filepath.Join(dir, "static")); err != nil {
		return fmt.Errorf("copy static assets: %w", err)
	}
	if _, err := fs.Stat(staticFS, "static/surface.wasm"); err != nil {
		log.Println("static/surface.wasm not embedded, page will render without scroll effects (run make wasm)")
	}

	if imagesDir == "" {
		return nil
	}
	info, err := os.Stat(imagesDir)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		log.Printf("images dir %s not found, skipping", imagesDir)
		return nil
	case err != nil:
		return fmt.Errorf("stat images dir: %w", err)
	case !info.IsDir():
		return fmt.Errorf("images path %s is not a directory", imagesDir)
	}
	if err := copyTree(os.DirFS(imagesDir), ".", filepath.Join(dir, "images")); err != nil {
		return fmt.Errorf("copy images: %w", err)
	}
	return nil
}

// copyTree copies root of fsys into dst, overwriting existing files.
func copyTree(fsys fs.FS, root, dst string) error {
	return fs.WalkDir(fsys, root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)
		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return err
		}
		return os.WriteFile(target, data, 0o644)
	})
}
