// Package filesystem enumerates candidate files below a root directory.
package filesystem

import (
	"io/fs"
	"iter"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// Walker lists candidate file paths below root directories.
type Walker struct {
	fs     afero.Fs
	logger zerolog.Logger
}

// New creates a Walker over fsys. A nil fsys means the OS filesystem.
func New(fsys afero.Fs, logger zerolog.Logger) *Walker {
	if fsys == nil {
		fsys = afero.NewOsFs()
	}
	return &Walker{
		fs:     fsys,
		logger: logger,
	}
}

// Walk returns the candidate paths below root in depth-first, name-sorted
// order. Directories are never yielded. Without recurse only entries whose
// parent is root itself are yielded. Unreadable directories are skipped.
//
// Paths are root joined with the entry names, so a root of "." yields "./a".
func (w *Walker) Walk(root string, recurse bool) iter.Seq[string] {
	return func(yield func(string) bool) {
		info, err := w.fs.Stat(root)
		if err != nil {
			w.logger.Debug().Err(err).Str("path", root).Msg("skipping unreadable root")
			return
		}

		// A file given as root is only reachable when descending.
		if !info.IsDir() {
			if recurse {
				yield(root)
			}
			return
		}

		w.walkDir(root, recurse, yield)
	}
}

// walkDir yields the files of dir and, when recurse is set, of its
// subdirectories. It returns false once yield asks to stop.
func (w *Walker) walkDir(dir string, recurse bool, yield func(string) bool) bool {
	entries, err := afero.ReadDir(w.fs, dir)
	if err != nil {
		w.logger.Debug().Err(err).Str("path", dir).Msg("skipping unreadable directory")
		return true
	}

	for _, entry := range entries {
		path := joinPath(dir, entry.Name())

		if entry.IsDir() {
			if recurse && !w.walkDir(path, recurse, yield) {
				return false
			}
			continue
		}

		if w.isDirLink(path, entry) {
			continue
		}

		if !yield(path) {
			return false
		}
	}

	return true
}

// isDirLink reports whether entry is a symlink resolving to a directory.
// Such links are neither followed nor yielded.
func (w *Walker) isDirLink(path string, entry fs.FileInfo) bool {
	if entry.Mode()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := w.fs.Stat(path)
	return err == nil && info.IsDir()
}

func joinPath(dir, name string) string {
	if strings.HasSuffix(dir, "/") {
		return dir + name
	}
	return dir + "/" + name
}
