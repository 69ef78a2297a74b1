package workspace

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

const nodeModules = "node_modules"

// Source is a collected source file.
type Source struct {
	// Path is the file path.
	Path string
	// Rel is Path relative to the root it was found under.
	Rel string
}

// Collect returns the files under root whose extension is in exts, in
// lexical order. A root that is a file is returned as is. Directories equal
// to any of skip are not entered.
func Collect(root string, exts []string, skip ...string) ([]Source, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("failed to stat %s: %w", root, err)
	}

	if !info.IsDir() {
		return []Source{{Path: root, Rel: filepath.Base(root)}}, nil
	}

	skipAbs := make([]string, 0, len(skip))
	for _, s := range skip {
		if abs, err := filepath.Abs(s); err == nil {
			skipAbs = append(skipAbs, abs)
		}
	}

	var sources []Source

	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			if path != root && skipDir(path, d.Name(), skipAbs) {
				return filepath.SkipDir
			}

			return nil
		}

		if !slices.Contains(exts, filepath.Ext(path)) {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}

		sources = append(sources, Source{Path: path, Rel: rel})

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", root, err)
	}

	return sources, nil
}

func skipDir(path, name string, skipAbs []string) bool {
	if name == nodeModules || strings.HasPrefix(name, ".") {
		return true
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return false
	}

	return slices.Contains(skipAbs, abs)
}
