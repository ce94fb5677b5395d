package layout

import (
	"errors"
	"io/fs"
	"iter"
	"path/filepath"
)

// Walk yields every repository below root, depth first. A directory for
// which isRepo reports true is yielded and its subtree is skipped, so the
// internals of a repository are never visited. Paths are relative to root
// unless absolute is set. A missing root yields nothing; any other walk
// error is yielded once and ends the sequence.
//
// Each call starts a fresh walk.
func Walk(root string, absolute bool, isRepo func(string) bool) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		// Walk the resolved root so a symlinked root is descended into.
		start, err := filepath.EvalSymlinks(root)
		if errors.Is(err, fs.ErrNotExist) {
			return
		}
		if err != nil {
			yield("", err)
			return
		}

		err = filepath.WalkDir(start, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if p == start || !d.IsDir() || !isRepo(p) {
				return nil
			}
			rel, err := filepath.Rel(start, p)
			if err != nil {
				return err
			}
			out := rel
			if absolute {
				out = filepath.Join(root, rel)
			}
			if !yield(out, nil) {
				return filepath.SkipAll
			}
			return filepath.SkipDir
		})
		if err != nil {
			yield("", err)
		}
	}
}
