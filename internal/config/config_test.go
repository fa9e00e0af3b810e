package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/travelbuff/TB-ConciergeService/internal/domain"
	"github.com/travelbuff/TB-ConciergeService/pkg/types"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 8080

[logs]
file = ""
level = "debug"

[storage]
driver = "memory"

[booking]
time_slots = ["09:00", "10:00"]

[admin]
token = "from-file"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, "memory", cfg.Storage.Driver)
	assert.Equal(t, "from-file", cfg.Admin.Token)
	assert.Equal(t, []types.TimeString{"09:00", "10:00"}, cfg.TimeSlotList())
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 8080

[admin]
token = "from-file"
`)

	t.Setenv("ADMIN_TOKEN", "from-env")
	t.Setenv("MAILER_API_KEY", "key-from-env")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.Admin.Token)
	assert.Equal(t, "key-from-env", cfg.Mailer.APIKey)
}

func TestLoad_DefaultTimeSlots(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 8080
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultTimeSlots, cfg.TimeSlotList())
}

func TestLoad_Invalid(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{
			name: "missing port",
			content: `
[logs]
level = "info"
`,
		},
		{
			name: "unknown storage driver",
			content: `
[server]
http_port = 8080

[storage]
driver = "cassandra"
`,
		},
		{
			name: "malformed time slot",
			content: `
[server]
http_port = 8080

[booking]
time_slots = ["9:00"]
`,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, c.content))
			assert.Error(t, err)
		})
	}
}
