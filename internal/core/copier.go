package core

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
)

// CopyTree copies the directory at root within src to dest on the real
// filesystem. Existing destination files are skipped unless opts.Force is
// set; under opts.DryRun the same decisions are computed and reported but
// nothing is written, not even directories. rename, when non-nil, rewrites
// each file's source-relative path before it is joined to dest.
//
// There is no rollback: an interrupted copy leaves the destination
// partially populated, and a re-run with Force repairs it.
func CopyTree(src fs.FS, root, dest string, opts CopyOptions, rename RenameFunc) (*CopyReport, error) {
	report := &CopyReport{}

	err := fs.WalkDir(src, root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(root, p)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		if rename != nil {
			rel = rename(rel)
		}

		dstPath := filepath.Join(dest, filepath.FromSlash(rel))

		if !opts.Force {
			if _, statErr := os.Stat(dstPath); statErr == nil {
				report.Skipped = append(report.Skipped, rel)
				return nil
			}
		}

		if opts.DryRun {
			report.Written = append(report.Written, rel)
			return nil
		}

		data, err := fs.ReadFile(src, p)
		if err != nil {
			return fmt.Errorf("reading %s: %w", p, err)
		}
		if err := os.MkdirAll(filepath.Dir(dstPath), 0o755); err != nil {
			return fmt.Errorf("creating directory for %s: %w", rel, err)
		}
		if err := os.WriteFile(dstPath, data, 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", rel, err)
		}

		report.Written = append(report.Written, rel)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("copying %s: %w", path.Base(root), err)
	}

	return report, nil
}

// WriteFileOnce writes content to dstPath unless it already exists and
// force is false. It follows the same skip and dry-run policy as CopyTree
// and reports whether the file was (or would be) written.
func WriteFileOnce(dstPath string, content []byte, opts CopyOptions) (bool, error) {
	if !opts.Force {
		if _, err := os.Stat(dstPath); err == nil {
			return false, nil
		}
	}
	if opts.DryRun {
		return true, nil
	}
	if err := os.MkdirAll(filepath.Dir(dstPath), 0o755); err != nil {
		return false, fmt.Errorf("creating directory for %s: %w", dstPath, err)
	}
	if err := os.WriteFile(dstPath, content, 0o644); err != nil {
		return false, fmt.Errorf("writing %s: %w", dstPath, err)
	}
	return true, nil
}
