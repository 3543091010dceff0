package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bastiangx/wordgrid/pkg/search"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	log.SetLevel(log.ErrorLevel)
}

func TestInitConfigCreatesDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	cfg, err := InitConfig(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.FileExists(t, path)

	again, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, again)
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := `
[words]
limit = 3
seed = 42
corpus = "/tmp/words.txt"

[search]
prefix = "https://duckduckgo.com/?q="
dry_run = true

[server]
http_addr = "127.0.0.1:9000"
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Words.Limit)
	assert.Equal(t, int64(42), cfg.Words.Seed)
	assert.Equal(t, "/tmp/words.txt", cfg.Words.Corpus)
	assert.Equal(t, "https://duckduckgo.com/?q=", cfg.Search.Prefix)
	assert.True(t, cfg.Search.DryRun)
	assert.Equal(t, "127.0.0.1:9000", cfg.Server.HTTPAddr)
	assert.Equal(t, 26, cfg.Server.MaxLimit)
	assert.Equal(t, 6, cfg.CLI.Columns)
}

func TestLoadConfigPartialRecovery(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	// limit has the wrong type, the rest is still usable
	data := `
[words]
limit = "many"
seed = 7

[cli]
columns = 4
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Words.Limit)
	assert.Equal(t, int64(7), cfg.Words.Seed)
	assert.Equal(t, 4, cfg.CLI.Columns)
}

func TestLoadConfigGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[[[ not toml"), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestNormalize(t *testing.T) {
	cfg := &Config{Words: WordsConfig{Limit: -1}}
	cfg.normalize()
	assert.Equal(t, 5, cfg.Words.Limit)
	assert.Equal(t, search.DefaultPrefix, cfg.Search.Prefix)
	assert.Equal(t, 26, cfg.Server.MaxLimit)
	assert.Equal(t, ":8080", cfg.Server.HTTPAddr)
	assert.Equal(t, 6, cfg.CLI.Columns)
}

func TestUpdate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	cfg := DefaultConfig()

	limit := 8
	prefix := "https://www.bing.com/search?q="
	require.NoError(t, cfg.Update(path, &limit, &prefix))

	saved, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 8, saved.Words.Limit)
	assert.Equal(t, prefix, saved.Search.Prefix)

	require.NoError(t, cfg.Update("", nil, nil))
	assert.Equal(t, 8, cfg.Words.Limit)
}

func TestUpdateKeepsRuntimeOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, SaveConfig(DefaultConfig(), path))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	cfg.Words.Seed = 7
	cfg.Words.Corpus = "/tmp/x.txt"
	cfg.Search.DryRun = true

	limit := 3
	require.NoError(t, cfg.Update(path, &limit, nil))
	assert.Equal(t, 3, cfg.Words.Limit)
	assert.Equal(t, int64(7), cfg.Words.Seed)

	saved, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 3, saved.Words.Limit)
	assert.Equal(t, int64(0), saved.Words.Seed)
	assert.Empty(t, saved.Words.Corpus)
	assert.False(t, saved.Search.DryRun)
}

func TestLimitClampedToMaxLimit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[words]\nlimit = 100\n\n[server]\nmax_limit = 10\n"), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.Words.Limit)
	assert.Equal(t, 10, cfg.Server.MaxLimit)
}

func TestLoadConfigWithPriorityCustom(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.toml")
	require.NoError(t, os.WriteFile(path, []byte("[words]\nlimit = 2\n"), 0644))

	cfg, used, err := LoadConfigWithPriority(path)
	require.NoError(t, err)
	assert.Equal(t, path, used)
	assert.Equal(t, 2, cfg.Words.Limit)
}
