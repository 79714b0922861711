package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minimalConfig = `
admin:
  token: test-admin-token
providers:
  - type: alquran
    display_name: alquran.cloud
`

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"ADMIN_TOKEN", "BOOKMARKS_DSN", "QF_CLIENT_ID", "QF_CLIENT_SECRET"} {
		t.Setenv(key, "")
	}
}

func TestParse_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Parse([]byte(minimalConfig))
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, 1, cfg.Reader.StartChapter)
	assert.Equal(t, "https://cdn.islamic.network/quran/audio/128/ar.alafasy", cfg.Reader.AudioBaseURL)
	assert.Equal(t, time.Second, cfg.Reader.AdvanceDelay())
	assert.Equal(t, 2*time.Second, cfg.Reader.NoticeDuration())
	assert.True(t, cfg.Reader.GestureRequired())
	assert.Equal(t, "mpv", cfg.Reader.Player.Binary)
	assert.Equal(t, "file", cfg.Bookmarks.Backend)
	assert.Equal(t, "data/bookmarks.json", cfg.Bookmarks.Path)
	assert.Equal(t, 5*time.Second, cfg.Share.Timeout())
	assert.Equal(t, "Tap anywhere to enable audio", cfg.Messages.TapToEnable)
	assert.Equal(t, "Copied to clipboard!", cfg.Messages.Copied)
}

func TestParse_ExplicitValues(t *testing.T) {
	clearEnv(t)

	cfg, err := Parse([]byte(`
server:
  addr: ":9090"
  allowed_origins: ["http://localhost:5173"]
admin:
  token: secret
reader:
  start_chapter: 36
  advance_delay_ms: 250
  requires_gesture: false
  player:
    binary: ffplay
    args: ["-nodisp", "-autoexit"]
providers:
  - type: quranfoundation
    display_name: Quran Foundation
    settings:
      client_id: id
      client_secret: secret
bookmarks:
  backend: sqlite
  path: /tmp/bookmarks.sqlite
messages:
  playing: Now reciting
`))
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, 36, cfg.Reader.StartChapter)
	assert.Equal(t, 250*time.Millisecond, cfg.Reader.AdvanceDelay())
	assert.False(t, cfg.Reader.GestureRequired())
	assert.Equal(t, []string{"-nodisp", "-autoexit"}, cfg.Reader.Player.Args)
	assert.Equal(t, "sqlite", cfg.Bookmarks.Backend)
	assert.Equal(t, "Now reciting", cfg.Messages.Playing)
	assert.Equal(t, "Playback stopped", cfg.Messages.Stopped)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr bool
		errMsg  string
	}{
		{
			name:    "valid config",
			yaml:    minimalConfig,
			wantErr: false,
		},
		{
			name: "missing admin token",
			yaml: `
providers:
  - type: alquran
    display_name: alquran.cloud
`,
			wantErr: true,
			errMsg:  "Token",
		},
		{
			name: "no providers",
			yaml: `
admin:
  token: t
`,
			wantErr: true,
			errMsg:  "Providers",
		},
		{
			name: "unknown provider type",
			yaml: `
admin:
  token: t
providers:
  - type: tanzil
    display_name: Tanzil
`,
			wantErr: true,
			errMsg:  "Type",
		},
		{
			name: "start chapter out of range",
			yaml: minimalConfig + `
reader:
  start_chapter: 115
`,
			wantErr: true,
			errMsg:  "StartChapter",
		},
		{
			name: "postgres without dsn",
			yaml: minimalConfig + `
bookmarks:
  backend: postgres
`,
			wantErr: true,
			errMsg:  "dsn",
		},
		{
			name: "unknown bookmarks backend",
			yaml: minimalConfig + `
bookmarks:
  backend: redis
`,
			wantErr: true,
			errMsg:  "Backend",
		},
		{
			name: "invalid share endpoint",
			yaml: minimalConfig + `
share:
  endpoint: not a url
`,
			wantErr: true,
			errMsg:  "Endpoint",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)

			_, err := Parse([]byte(tt.yaml))
			if tt.wantErr {
				require.Error(t, err)
				if tt.errMsg != "" {
					assert.Contains(t, err.Error(), tt.errMsg)
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestParse_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("ADMIN_TOKEN", "env-token")
	t.Setenv("BOOKMARKS_DSN", "postgres://reader@localhost/reader")
	t.Setenv("QF_CLIENT_ID", "env-client")
	t.Setenv("QF_CLIENT_SECRET", "env-secret")

	cfg, err := Parse([]byte(`
admin:
  token: file-token
providers:
  - type: quranfoundation
    display_name: Quran Foundation
  - type: alquran
    display_name: alquran.cloud
bookmarks:
  backend: postgres
`))
	require.NoError(t, err)

	assert.Equal(t, "env-token", cfg.Admin.Token)
	assert.Equal(t, "postgres://reader@localhost/reader", cfg.Bookmarks.DSN)
	assert.Equal(t, "env-client", cfg.Providers[0].Settings["client_id"])
	assert.Equal(t, "env-secret", cfg.Providers[0].Settings["client_secret"])
	assert.Nil(t, cfg.Providers[1].Settings)
}

func TestLoad(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "server.yaml")
	require.NoError(t, os.WriteFile(path, []byte(minimalConfig), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "test-admin-token", cfg.Admin.Token)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
