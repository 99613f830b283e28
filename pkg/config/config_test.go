package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	configPath := filepath.Join(t.TempDir(), "test-config.yml")
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0o644))
	return configPath
}

func TestLoad(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		configContent := `
notion:
  token: secret-token
  database_id: db-123

feeds:
  urls:
    - https://example.com/feed1.xml
    - https://example.com/feed2.xml
  max_items: 10

hackernews:
  enabled: true
  max_items: 7
  auto_process: true

llm:
  provider: deepseek
  api_key: llm-key
  model: deepseek-chat
  temperature: 0.5
  timeout: 90s

extraction:
  timeout: 20s
  max_chars: 10000

cache:
  seen_file: /tmp/seen.txt
  content_db: /tmp/content.db
`
		cfg, err := Load(writeConfig(t, configContent))
		require.NoError(t, err)
		require.NotNil(t, cfg)

		assert.Equal(t, "secret-token", cfg.Notion.Token)
		assert.Equal(t, "db-123", cfg.Notion.DatabaseID)
		assert.Len(t, cfg.Feeds.URLs, 2)
		assert.Equal(t, 10, cfg.Feeds.MaxItems)
		assert.True(t, cfg.HackerNews.Enabled)
		assert.Equal(t, 7, cfg.HackerNews.MaxItems)
		assert.True(t, cfg.HackerNews.AutoProcess)
		assert.Equal(t, "deepseek", cfg.LLM.Provider)
		assert.Equal(t, "deepseek-chat", cfg.LLM.Model)
		assert.InDelta(t, 0.5, cfg.LLM.Temperature, 0.001)
		assert.Equal(t, 90*time.Second, cfg.LLM.Timeout)
		assert.Equal(t, 20*time.Second, cfg.Extraction.Timeout)
		assert.Equal(t, 10000, cfg.Extraction.MaxChars)
		assert.Equal(t, "/tmp/seen.txt", cfg.Cache.SeenFile)
		assert.Equal(t, "/tmp/content.db", cfg.Cache.ContentDB)
	})

	t.Run("defaults", func(t *testing.T) {
		configContent := `
notion:
  token: secret-token
  database_id: db-123
llm:
  api_key: llm-key
feeds:
  urls:
    - https://example.com/feed.xml
`
		cfg, err := Load(writeConfig(t, configContent))
		require.NoError(t, err)

		assert.Equal(t, 5, cfg.Feeds.MaxItems)
		assert.Equal(t, "openai", cfg.LLM.Provider)
		assert.InDelta(t, 0.7, cfg.LLM.Temperature, 0.001)
		assert.Equal(t, 4000, cfg.LLM.MaxTokens)
		assert.Equal(t, 2*time.Minute, cfg.LLM.Timeout)
		assert.Equal(t, 30*time.Second, cfg.Extraction.Timeout)
		assert.Equal(t, "newsdigest/1.0", cfg.Extraction.UserAgent)
		assert.Equal(t, 100, cfg.Extraction.MinTextLength)
		assert.Equal(t, 50000, cfg.Extraction.MaxChars)
		assert.Equal(t, "data/processed_urls.txt", cfg.Cache.SeenFile)
		assert.Equal(t, "logs", cfg.Run.LogDir)
		assert.Equal(t, 3*time.Second, cfg.Run.RecordDelay)
	})

	t.Run("env expansion", func(t *testing.T) {
		t.Setenv("TEST_NOTION_TOKEN", "expanded-token")
		configContent := `
notion:
  token: ${TEST_NOTION_TOKEN}
  database_id: db-123
llm:
  api_key: llm-key
feeds:
  urls:
    - https://example.com/feed.xml
`
		cfg, err := Load(writeConfig(t, configContent))
		require.NoError(t, err)
		assert.Equal(t, "expanded-token", cfg.Notion.Token)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load("/nonexistent/config.yml")
		assert.Error(t, err)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		_, err := Load(writeConfig(t, "notion: [unclosed"))
		assert.Error(t, err)
	})
}

func TestLoad_Validation(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name: "missing notion token",
			content: `
notion:
  database_id: db-123
llm:
  api_key: k
feeds:
  urls: [https://example.com/feed.xml]
`,
			wantErr: "notion.token is required",
		},
		{
			name: "missing database id",
			content: `
notion:
  token: tok
llm:
  api_key: k
feeds:
  urls: [https://example.com/feed.xml]
`,
			wantErr: "notion.database_id is required",
		},
		{
			name: "missing llm key",
			content: `
notion:
  token: tok
  database_id: db-123
feeds:
  urls: [https://example.com/feed.xml]
`,
			wantErr: "llm.api_key is required",
		},
		{
			name: "bad provider",
			content: `
notion:
  token: tok
  database_id: db-123
llm:
  api_key: k
  provider: gemini
feeds:
  urls: [https://example.com/feed.xml]
`,
			wantErr: "llm.provider must be openai or deepseek",
		},
		{
			name: "no sources",
			content: `
notion:
  token: tok
  database_id: db-123
llm:
  api_key: k
`,
			wantErr: "no sources configured",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
