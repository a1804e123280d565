package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCorpus(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"python.txt": "Python is a programming language. Guido van Rossum created Python.",
		"go.txt":     "Go is a programming language designed at Google.\nGo has goroutines.",
	}
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	return dir
}

func TestRun_Usage(t *testing.T) {
	for _, args := range [][]string{nil, {"a", "b"}} {
		var stdout, stderr bytes.Buffer
		code := run(context.Background(), args, strings.NewReader(""), &stdout, &stderr)
		assert.Equal(t, 1, code)
		assert.Contains(t, stderr.String(), usage)
		assert.Empty(t, stdout.String())
	}
}

func TestRun_AnswersQuery(t *testing.T) {
	dir := testCorpus(t)
	cfg := filepath.Join(t.TempDir(), "missing.yaml")
	t.Setenv("QUESTIONS_SENTENCE_MATCHES", "")
	t.Setenv("QUESTIONS_FILE_MATCHES", "")

	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{"--config", cfg, dir}, strings.NewReader("Who created Python?\n"), &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())
	assert.Equal(t, "Query: Guido van Rossum created Python.\n", stdout.String())
}

func TestRun_QueryWithoutNewline(t *testing.T) {
	dir := testCorpus(t)
	cfg := filepath.Join(t.TempDir(), "missing.yaml")
	t.Setenv("QUESTIONS_FILE_MATCHES", "")
	t.Setenv("QUESTIONS_SENTENCE_MATCHES", "2")

	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{"--config", cfg, dir}, strings.NewReader("goroutines"), &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())
	assert.Equal(t, "Query: Go has goroutines.\nGo is a programming language designed at Google.\n", stdout.String())
}

func TestRun_MissingCorpus(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "missing.yaml")
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{"--config", cfg, filepath.Join(t.TempDir(), "nope")}, strings.NewReader("q\n"), &stdout, &stderr)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "ingest failed")
}

func TestRun_InvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("ranking:\n  file_matches: -1\n"), 0o644))
	t.Setenv("QUESTIONS_FILE_MATCHES", "")

	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{"--config", path, t.TempDir()}, strings.NewReader(""), &stdout, &stderr)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "invalid config")
}
