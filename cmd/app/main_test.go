package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeLocales(t *testing.T) string {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "locales")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	files := map[string]string{
		"en.json": `{"greeting":"Hello","farewell":{"short":"Bye"},"welcome":"Welcome, {{.Name}}!","cart":{"items":{"one":"{{.Count}} item","other":"{{.Count}} items"}}}`,
		"ja.json": `{"greeting":"こんにちは"}`,
	}
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	return dir
}

func TestRun_DefaultLocale(t *testing.T) {
	chdir(t, t.TempDir())
	dir := writeLocales(t)

	var out bytes.Buffer
	require.NoError(t, run([]string{"--locales", dir}, &out))
	assert.Equal(t, "こんにちは\n", out.String())
}

func TestRun_FallbackAndVars(t *testing.T) {
	chdir(t, t.TempDir())
	dir := writeLocales(t)

	var out bytes.Buffer
	err := run([]string{"--locales", dir, "-l", "ja", "--var", "Name=Ada", "farewell.short", "welcome", "unknown.key"}, &out)
	require.NoError(t, err)
	assert.Equal(t, "Bye\nWelcome, Ada!\nunknown.key\n", out.String())
}

func TestRun_Plural(t *testing.T) {
	chdir(t, t.TempDir())
	dir := writeLocales(t)

	var out bytes.Buffer
	require.NoError(t, run([]string{"--locales", dir, "--locale", "en", "--count", "2", "cart.items"}, &out))
	assert.Equal(t, "2 items\n", out.String())
}

func TestRun_NoLocaleFiles(t *testing.T) {
	chdir(t, t.TempDir())

	var out bytes.Buffer
	err := run([]string{"--locales", t.TempDir()}, &out)
	assert.Error(t, err)
	assert.Empty(t, out.String())
}
