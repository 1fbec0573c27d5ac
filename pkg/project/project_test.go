package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePath(t *testing.T) {
	tmpDir := t.TempDir()

	tests := []struct {
		name      string
		setupFunc func() string
		errorMsg  string
	}{
		{
			name: "valid directory",
			setupFunc: func() string {
				dir := filepath.Join(tmpDir, "valid_dir")
				require.NoError(t, os.Mkdir(dir, 0755))
				return dir
			},
		},
		{
			name: "non-existent path",
			setupFunc: func() string {
				return filepath.Join(tmpDir, "nonexistent")
			},
			errorMsg: "cannot access path",
		},
		{
			name: "file instead of directory",
			setupFunc: func() string {
				file := filepath.Join(tmpDir, "file.txt")
				require.NoError(t, os.WriteFile(file, []byte("content"), 0644))
				return file
			},
			errorMsg: "is not a directory",
		},
		{
			name: "messy path is cleaned",
			setupFunc: func() string {
				require.NoError(t, os.Mkdir(filepath.Join(tmpDir, "test"), 0755))
				return filepath.Join(tmpDir, "test", "..", "test", ".") + "/"
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := tt.setupFunc()
			got, err := ValidatePath(path)
			if tt.errorMsg != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorMsg)
				return
			}
			require.NoError(t, err)
			assert.True(t, filepath.IsAbs(got))
			assert.Equal(t, filepath.Clean(path), got)
		})
	}
}

func TestFindRoot(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "package.json"), []byte(`{}`), 0644))
	nested := filepath.Join(root, "src", "components")
	require.NoError(t, os.MkdirAll(nested, 0755))

	assert.Equal(t, root, FindRoot(nested))
	assert.Equal(t, root, FindRoot(root))

	lonely := t.TempDir()
	assert.Equal(t, lonely, FindRoot(lonely))
}

func TestIsGitRepository(t *testing.T) {
	dir := t.TempDir()
	assert.False(t, IsGitRepository(dir))

	require.NoError(t, os.Mkdir(filepath.Join(dir, ".git"), 0755))
	assert.True(t, IsGitRepository(dir))
}

func TestParseGitIgnore(t *testing.T) {
	gi := ParseGitIgnore("# deps\nnode_modules\n/dist\n\n*.log\r\n!keep.log\n.env.local\n")

	assert.Equal(t, []string{"node_modules", "dist", "*.log", ".env.local"}, gi.Patterns())
	assert.True(t, gi.Ignores("node_modules/react/index.js"))
	assert.True(t, gi.Ignores("dist/index.js"))
	assert.True(t, gi.Ignores("debug.log"))
	assert.False(t, gi.Ignores("keep.log"))
	assert.False(t, gi.Ignores("eslint.config.js"))
}

func TestLoadGitIgnore(t *testing.T) {
	dir := t.TempDir()

	gi, err := LoadGitIgnore(dir)
	require.NoError(t, err)
	assert.Empty(t, gi.Patterns())
	assert.False(t, gi.Ignores("anything.js"))

	require.NoError(t, os.WriteFile(filepath.Join(dir, ".gitignore"), []byte("coverage\n"), 0644))
	gi, err = LoadGitIgnore(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"coverage"}, gi.Patterns())
}

func TestParseIndent(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{name: "empty", content: "", want: "  "},
		{
			name:    "global four spaces",
			content: "root = true\n\n[*]\nindent_style = space\nindent_size = 4\n",
			want:    "    ",
		},
		{
			name:    "tabs",
			content: "[*]\nindent_style = tab\n",
			want:    "\t",
		},
		{
			name:    "js section overrides global",
			content: "[*]\nindent_style = tab\n\n[*.js]\nindent_style = space\nindent_size = 3\n",
			want:    "   ",
		},
		{
			name:    "invalid size ignored",
			content: "[*]\nindent_size = tab\n",
			want:    "  ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseIndent([]byte(tt.content))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIndent_MissingFile(t *testing.T) {
	got, err := Indent(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, DefaultIndent, got)
}
