// Package normalize rewrites the absolute source-root path embedded in
// JSON fixtures so a tree captured on one checkout runs on another.
package normalize

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Rewriter replaces a source-root literal with the destination root
type Rewriter struct {
	source   string
	skipDirs map[string]bool
}

// NewRewriter creates a Rewriter for the given source literal. skipDirs are
// directory names directly under the destination root that are left alone.
func NewRewriter(source string, skipDirs []string) *Rewriter {
	skipMap := make(map[string]bool)
	for _, dir := range skipDirs {
		skipMap[dir] = true
	}
	return &Rewriter{source: source, skipDirs: skipMap}
}

// Rewrite updates every *.json file under root in place and returns the
// files that changed. Any failure aborts the pass.
func (r *Rewriter) Rewrite(root string) ([]string, error) {
	root = filepath.Clean(root)
	if r.source == "" || r.source == root {
		return nil, nil
	}

	var changed []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			if path == root {
				return nil
			}
			name := d.Name()
			if strings.HasPrefix(name, ".") {
				return filepath.SkipDir
			}
			if filepath.Dir(path) == root && r.skipDirs[name] {
				return filepath.SkipDir
			}
			return nil
		}

		if !d.Type().IsRegular() || filepath.Ext(path) != ".json" {
			return nil
		}

		ok, err := r.rewriteFile(path, root)
		if err != nil {
			return err
		}
		if ok {
			changed = append(changed, path)
		}
		return nil
	})
	if err != nil {
		return changed, fmt.Errorf("rewrite paths under %s: %w", root, err)
	}
	return changed, nil
}

func (r *Rewriter) rewriteFile(path, dest string) (bool, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return false, fmt.Errorf("read %s: %w", path, err)
	}

	updated := Replace(content, []byte(r.source), []byte(dest))
	if bytes.Equal(updated, content) {
		return false, nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return false, fmt.Errorf("stat %s: %w", path, err)
	}
	if err := os.WriteFile(path, updated, info.Mode().Perm()); err != nil {
		return false, fmt.Errorf("write %s: %w", path, err)
	}
	return true, nil
}

// Replace substitutes every occurrence of source with dest. When dest
// contains source, existing occurrences of dest are kept as they are, so
// applying Replace to its own output is a no-op.
func Replace(content, source, dest []byte) []byte {
	if len(source) == 0 || bytes.Equal(source, dest) {
		return content
	}
	if len(dest) <= len(source) || !bytes.Contains(dest, source) {
		return bytes.ReplaceAll(content, source, dest)
	}

	segments := bytes.Split(content, dest)
	for i, seg := range segments {
		segments[i] = bytes.ReplaceAll(seg, source, dest)
	}
	return bytes.Join(segments, dest)
}
