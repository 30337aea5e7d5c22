// Package core provides the business logic for skillpack.
// It has zero UI dependencies and is independently testable.
package core

// SkillInfo describes one bundled skill for listings.
type SkillInfo struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Versions    []string `json:"versions"`
}

// CopyOptions configures a tree copy.
type CopyOptions struct {
	Force  bool // overwrite existing destination files
	DryRun bool // compute the report without touching the filesystem
}

// RenameFunc rewrites a file's source-relative path before it is joined
// to the destination. A nil RenameFunc is the identity.
type RenameFunc func(rel string) string

// CopyReport lists the outcome of a tree copy. Paths are relative to the
// destination root the copy was asked for, slash-separated.
type CopyReport struct {
	Written []string // files written (or that would be written under DryRun)
	Skipped []string // files left alone because they already exist
}
