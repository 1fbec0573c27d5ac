package project

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/ini.v1"
)

// DefaultIndent is used when .editorconfig does not say otherwise
const DefaultIndent = "  "

// sections are consulted in order; later ones override earlier ones
var indentSections = []string{"*", "*.{js,mjs,cjs}", "*.{js,ts}", "*.js"}

// Indent returns the indentation for generated JavaScript files according to
// root/.editorconfig.
func Indent(root string) (string, error) {
	path := filepath.Join(root, ".editorconfig")
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return DefaultIndent, nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read .editorconfig: %w", err)
	}
	return ParseIndent(data)
}

// ParseIndent reads indent_style and indent_size from .editorconfig content
func ParseIndent(data []byte) (string, error) {
	cfg, err := ini.LoadSources(ini.LoadOptions{
		Insensitive:         false,
		IgnoreInlineComment: true,
		AllowBooleanKeys:    true,
	}, data)
	if err != nil {
		return "", fmt.Errorf("failed to parse .editorconfig: %w", err)
	}

	style, size := "space", 2
	for _, name := range indentSections {
		section, err := cfg.GetSection(name)
		if err != nil {
			continue
		}
		if key, err := section.GetKey("indent_style"); err == nil {
			style = strings.ToLower(key.String())
		}
		if key, err := section.GetKey("indent_size"); err == nil {
			if n, err := key.Int(); err == nil && n > 0 && n <= 16 {
				size = n
			}
		}
	}

	if style == "tab" {
		return "\t", nil
	}
	return strings.Repeat(" ", size), nil
}
