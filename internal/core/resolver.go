package core

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	goversion "github.com/hashicorp/go-version"
)

// NotFoundError reports an unknown skill, version, or install target along
// with the valid alternatives. The CLI prints it and exits non-zero; there
// is no retry path.
type NotFoundError struct {
	Kind         string // "skill", "version", "target"
	Name         string
	Alternatives []string
}

func (e *NotFoundError) Error() string {
	if len(e.Alternatives) == 0 {
		return fmt.Sprintf("unknown %s %q", e.Kind, e.Name)
	}
	return fmt.Sprintf("unknown %s %q; available: %s",
		e.Kind, e.Name, strings.Join(e.Alternatives, ", "))
}

// Resolver answers skill and version lookups against a bundled asset tree.
// Skill names are top-level directories; version labels are their immediate
// subdirectories.
type Resolver struct {
	assets fs.FS
}

// NewResolver creates a Resolver over the given asset tree.
func NewResolver(assets fs.FS) *Resolver {
	return &Resolver{assets: assets}
}

// SkillNames returns the valid skill names, sorted. A directory qualifies
// only if it contains at least one subdirectory (a version).
func (r *Resolver) SkillNames() ([]string, error) {
	entries, err := fs.ReadDir(r.assets, ".")
	if err != nil {
		return nil, fmt.Errorf("reading asset root: %w", err)
	}

	var names []string
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		versions, err := r.versionDirs(e.Name())
		if err != nil || len(versions) == 0 {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names, nil
}

// Skills returns listing info for every bundled skill, sorted by name.
// The description comes from the newest version's SKILL.md frontmatter;
// a missing or malformed SKILL.md leaves it empty.
func (r *Resolver) Skills() ([]SkillInfo, error) {
	names, err := r.SkillNames()
	if err != nil {
		return nil, err
	}

	infos := make([]SkillInfo, 0, len(names))
	for _, name := range names {
		versions, err := r.versionDirs(name)
		if err != nil {
			return nil, err
		}
		info := SkillInfo{Name: name, Versions: versions}
		if fm, err := ParseFrontmatter(r.assets, path.Join(name, latestOf(versions))); err == nil {
			info.Description = fm.Description
		}
		infos = append(infos, info)
	}
	return infos, nil
}

// ResolveSkill validates a skill name and returns its path within the
// asset tree.
func (r *Resolver) ResolveSkill(name string) (string, error) {
	versions, err := r.versionDirs(name)
	if err != nil || len(versions) == 0 {
		return "", r.skillNotFound(name)
	}
	return name, nil
}

// Versions returns the sorted version labels of a skill.
func (r *Resolver) Versions(skill string) ([]string, error) {
	versions, err := r.versionDirs(skill)
	if err != nil || len(versions) == 0 {
		return nil, r.skillNotFound(skill)
	}
	return versions, nil
}

// ResolveVersion validates a (skill, version) pair and returns the version
// directory's path within the asset tree.
func (r *Resolver) ResolveVersion(skill, version string) (string, error) {
	versions, err := r.Versions(skill)
	if err != nil {
		return "", err
	}
	for _, v := range versions {
		if v == version {
			return path.Join(skill, version), nil
		}
	}
	return "", &NotFoundError{Kind: "version", Name: version, Alternatives: versions}
}

// LatestVersion returns the highest version label of a skill, comparing
// labels as versions where they parse and lexicographically otherwise.
func (r *Resolver) LatestVersion(skill string) (string, error) {
	versions, err := r.Versions(skill)
	if err != nil {
		return "", err
	}
	return latestOf(versions), nil
}

// versionDirs lists the subdirectory names of a skill, sorted
// lexicographically. Returns an error for names that escape the tree.
func (r *Resolver) versionDirs(skill string) ([]string, error) {
	if !fs.ValidPath(skill) || skill == "." {
		return nil, fmt.Errorf("invalid skill name %q", skill)
	}
	entries, err := fs.ReadDir(r.assets, skill)
	if err != nil {
		return nil, err
	}
	var versions []string
	for _, e := range entries {
		if e.IsDir() {
			versions = append(versions, e.Name())
		}
	}
	sort.Strings(versions)
	return versions, nil
}

func (r *Resolver) skillNotFound(name string) error {
	alternatives, err := r.SkillNames()
	if err != nil {
		alternatives = nil
	}
	return &NotFoundError{Kind: "skill", Name: name, Alternatives: alternatives}
}

// latestOf picks the highest label from a non-empty sorted list, preferring
// version-aware ordering when every label parses as a version.
func latestOf(versions []string) string {
	parsed := make([]*goversion.Version, 0, len(versions))
	for _, raw := range versions {
		v, err := goversion.NewVersion(raw)
		if err != nil {
			// Mixed or opaque labels: fall back to lexicographic order.
			return versions[len(versions)-1]
		}
		parsed = append(parsed, v)
	}
	best := 0
	for i := 1; i < len(parsed); i++ {
		if parsed[i].GreaterThan(parsed[best]) {
			best = i
		}
	}
	return versions[best]
}
