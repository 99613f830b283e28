package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/newsdigest/pkg/config"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	cfgFile := filepath.Join(dir, "config.yml")
	data := `
notion:
  token: secret-token
  database_id: db-1
feeds:
  urls:
    - https://example.com/feed.xml
llm:
  provider: openai
  api_key: sk-test
cache:
  seen_file: ` + filepath.Join(dir, "seen.txt") + `
run:
  log_dir: ` + filepath.Join(dir, "logs") + `
`
	require.NoError(t, os.WriteFile(cfgFile, []byte(data), 0o600))

	cfg, err := config.Load(cfgFile)
	require.NoError(t, err)
	return cfg
}

func TestMakeProcessor(t *testing.T) {
	cfg := testConfig(t)

	processor, cleanup, err := makeProcessor(cfg, false)
	require.NoError(t, err)
	defer cleanup()
	assert.NotNil(t, processor)
}

func TestMakeProcessor_WithContentCache(t *testing.T) {
	cfg := testConfig(t)
	cfg.Cache.ContentDB = filepath.Join(t.TempDir(), "content.db")

	processor, cleanup, err := makeProcessor(cfg, true)
	require.NoError(t, err)
	defer cleanup()
	assert.NotNil(t, processor)
}

func TestSetupLog_CreatesRunLogFile(t *testing.T) {
	logDir := filepath.Join(t.TempDir(), "logs")

	closer, err := setupLog(true, logDir, "secret-token")
	require.NoError(t, err)
	defer closer.Close()

	entries, err := os.ReadDir(logDir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Contains(t, entries[0].Name(), "newsdigest-")
	assert.Contains(t, entries[0].Name(), time.Now().Format("20060102"))
}
