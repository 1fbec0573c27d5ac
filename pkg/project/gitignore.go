package project

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	ignore "github.com/sabhiram/go-gitignore"
)

// GitIgnore holds the patterns of a project's .gitignore
type GitIgnore struct {
	patterns []string
	matcher  *ignore.GitIgnore
}

// LoadGitIgnore reads root/.gitignore. A missing file yields an empty
// GitIgnore that matches nothing.
func LoadGitIgnore(root string) (*GitIgnore, error) {
	data, err := os.ReadFile(filepath.Join(root, ".gitignore"))
	if errors.Is(err, fs.ErrNotExist) {
		return &GitIgnore{matcher: ignore.CompileIgnoreLines()}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read .gitignore: %w", err)
	}
	return ParseGitIgnore(string(data)), nil
}

// ParseGitIgnore compiles .gitignore content
func ParseGitIgnore(content string) *GitIgnore {
	var lines, patterns []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimRight(line, "\r")
		lines = append(lines, line)

		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") || strings.HasPrefix(trimmed, "!") {
			continue
		}
		patterns = append(patterns, strings.TrimPrefix(trimmed, "/"))
	}
	return &GitIgnore{
		patterns: patterns,
		matcher:  ignore.CompileIgnoreLines(lines...),
	}
}

// Patterns returns the ignore patterns without comments and negations, with
// leading slashes removed so they can be reused as lint ignores.
func (g *GitIgnore) Patterns() []string {
	return append([]string(nil), g.patterns...)
}

// Ignores reports whether the project-relative path is ignored by git
func (g *GitIgnore) Ignores(rel string) bool {
	return g.matcher.MatchesPath(filepath.ToSlash(rel))
}
