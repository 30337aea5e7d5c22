package core

import (
	"fmt"
	"io/fs"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

const skillFileName = "SKILL.md"

// SkillFrontmatter is the YAML frontmatter at the top of a SKILL.md file.
type SkillFrontmatter struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Metadata    struct {
		Version string `yaml:"version,omitempty"`
		Author  string `yaml:"author,omitempty"`
	} `yaml:"metadata,omitempty"`
}

// ParseFrontmatter reads the SKILL.md at dir within fsys and decodes its
// frontmatter. Packs without a SKILL.md or without frontmatter return an
// error; listings treat that as "no description", not a failure.
func ParseFrontmatter(fsys fs.FS, dir string) (*SkillFrontmatter, error) {
	data, err := fs.ReadFile(fsys, path.Join(dir, skillFileName))
	if err != nil {
		return nil, err
	}

	content := string(data)
	if !strings.HasPrefix(content, "---\n") {
		return nil, fmt.Errorf("no frontmatter in %s", skillFileName)
	}

	body := content[len("---\n"):]
	idx := strings.Index(body, "\n---")
	if idx < 0 {
		return nil, fmt.Errorf("unterminated frontmatter in %s", skillFileName)
	}

	var fm SkillFrontmatter
	if err := yaml.Unmarshal([]byte(body[:idx]), &fm); err != nil {
		return nil, fmt.Errorf("parsing frontmatter: %w", err)
	}
	return &fm, nil
}
