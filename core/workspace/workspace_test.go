package workspace

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(root string) Config {
	return Config{
		CanonicalDir: filepath.Join(root, "canonical"),
		TemplateDir:  filepath.Join(root, "template"),
		WorkingDir:   filepath.Join(root, "working"),
		LogPath:      filepath.Join(root, "logs", "FixResx.log"),
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestConfig_Validate(t *testing.T) {
	assert.NoError(t, testConfig("/tmp").Validate())

	cfg := testConfig("/tmp")
	cfg.WorkingDir = ""
	assert.Error(t, cfg.Validate())

	cfg = testConfig("/tmp")
	cfg.LogPath = ""
	assert.Error(t, cfg.Validate())
}

func TestConfig_Resolve(t *testing.T) {
	cfg := Config{CanonicalDir: "pre", TemplateDir: "post", WorkingDir: "work"}

	p, err := cfg.Resolve(filepath.Join("Forms", "MainForm"))
	require.NoError(t, err)

	assert.Equal(t, filepath.Join("pre", "Forms", "MainForm.Designer.cs"), p.CanonicalDesigner)
	assert.Equal(t, filepath.Join("post", "Forms", "MainForm.Designer.cs"), p.TemplateDesigner)
	assert.Equal(t, filepath.Join("post", "Forms", "MainForm.resx"), p.TemplateResx)
	assert.Equal(t, filepath.Join("work", "Forms", "MainForm.Designer.cs"), p.WorkingDesigner)
	assert.Equal(t, filepath.Join("work", "Forms", "MainForm.resx"), p.WorkingResx)
	assert.Equal(t, filepath.Join("work", "Forms", "MainForm.resx.new"), p.TempResx)
}

func TestConfig_ResolveRejectsBadNames(t *testing.T) {
	cfg := Config{CanonicalDir: "pre", TemplateDir: "post", WorkingDir: "work"}

	for _, base := range []string{"", "../escape", "/abs/path"} {
		_, err := cfg.Resolve(base)
		assert.True(t, errors.Is(err, ErrInvalidBaseName), "base %q", base)
	}
}

func TestCheckWorking(t *testing.T) {
	root := t.TempDir()
	p, err := testConfig(root).Resolve("MainForm")
	require.NoError(t, err)

	assert.ErrorIs(t, CheckWorking(p), ErrInvalidBaseName)

	writeFile(t, p.WorkingDesigner, "// designer")
	assert.NoError(t, CheckWorking(p))
}

func TestFileInstaller_Install(t *testing.T) {
	root := t.TempDir()
	p, err := testConfig(root).Resolve("MainForm")
	require.NoError(t, err)

	writeFile(t, p.WorkingResx, "old resx")
	writeFile(t, p.TempResx, "new resx")
	writeFile(t, p.WorkingDesigner, "old designer, longer than the new one")
	writeFile(t, p.TemplateDesigner, "template designer")

	require.NoError(t, FileInstaller{}.Install(p))

	assert.Equal(t, "new resx", readFile(t, p.WorkingResx))
	assert.Equal(t, "template designer", readFile(t, p.WorkingDesigner))
	_, err = os.Stat(p.TempResx)
	assert.True(t, os.IsNotExist(err))
	assert.NoFileExists(t, p.WorkingDesigner+".new")
}

func TestFileInstaller_MissingTemplateDesigner(t *testing.T) {
	root := t.TempDir()
	p, err := testConfig(root).Resolve("MainForm")
	require.NoError(t, err)

	writeFile(t, p.TempResx, "new resx")
	writeFile(t, p.WorkingDesigner, "old designer")

	err = FileInstaller{}.Install(p)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "designer template")

	// The rewritten resx is already in place and stays there.
	assert.Equal(t, "new resx", readFile(t, p.WorkingResx))
}

func TestRunLog(t *testing.T) {
	at := time.Date(2025, 3, 4, 5, 6, 7, 0, time.UTC)
	l := NewRunLog("MainForm", at)
	l.Add("okButton.Size => 75, 23")
	l.Flag("Exception when replacing files: boom")

	assert.Equal(t, []string{
		"FixResx - MainForm - 2025-03-04 05:06:07",
		"",
		"okButton.Size => 75, 23",
		"*** Exception when replacing files: boom ***",
	}, l.Lines())

	path := filepath.Join(t.TempDir(), "logs", "run.log")
	require.NoError(t, l.AppendTo(path))
	require.NoError(t, l.AppendTo(path))

	want := l.String() + l.String()
	assert.Equal(t, want, readFile(t, path))
}
