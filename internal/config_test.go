package internal

import (
	"presence-lab/errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	req := require.New(t)
	t.Setenv("DISCORD_TOKEN", "secret")

	config, err := LoadConfig()

	req.NoError(err)
	req.Equal("secret", config.Token)
	req.Equal("Staff", config.StaffRoleName)
	req.Equal(",", config.CommandPrefix)
	req.Equal(5, config.SummaryLimit)
	req.Equal(StoreMemory, config.StoreBackend)
	req.Equal(64, config.EventBufferSize)
	req.Equal("*", config.CensorCharacter)
	req.Empty(config.MetricsAddr)
	req.Equal("INFO", config.LogLevel)
}

func TestLoadConfig_MissingToken(t *testing.T) {
	req := require.New(t)
	t.Setenv("DISCORD_TOKEN", "")

	_, err := LoadConfig()

	req.ErrorIs(err, errors.ErrMissingToken)
}

func TestLoadConfig_Overrides(t *testing.T) {
	req := require.New(t)
	t.Setenv("DISCORD_TOKEN", "secret")
	t.Setenv("STAFF_ROLE_NAME", "Moderators")
	t.Setenv("COMMAND_PREFIX", "!")
	t.Setenv("STORE_BACKEND", "badger")
	t.Setenv("METRICS_ADDR", ":9090")
	t.Setenv("LOG_LEVEL", "debug")

	config, err := LoadConfig()

	req.NoError(err)
	req.Equal("Moderators", config.StaffRoleName)
	req.Equal("!", config.CommandPrefix)
	req.Equal(StoreBadger, config.StoreBackend)
	req.Equal(":9090", config.MetricsAddr)
	req.Equal("DEBUG", config.LogLevel)
}

func TestConfig_Validate(t *testing.T) {
	valid := Config{
		Token:           "secret",
		StaffRoleName:   "Staff",
		CommandPrefix:   ",",
		SummaryLimit:    5,
		StoreBackend:    StoreMemory,
		EventBufferSize: 1,
		CensorCharacter: "*",
		LogLevel:        "INFO",
	}

	tests := []struct {
		name   string
		mutate func(c *Config)
		err    error
	}{
		{name: "Valid", mutate: func(c *Config) {}},
		{name: "Blank token", mutate: func(c *Config) { c.Token = "  " }, err: errors.ErrMissingToken},
		{name: "Unknown backend", mutate: func(c *Config) { c.StoreBackend = "redis" }, err: errors.ErrInvalidConfig},
		{name: "Zero summary limit", mutate: func(c *Config) { c.SummaryLimit = 0 }, err: errors.ErrInvalidConfig},
		{name: "Empty role", mutate: func(c *Config) { c.StaffRoleName = "" }, err: errors.ErrInvalidConfig},
		{name: "Two censor characters", mutate: func(c *Config) { c.CensorCharacter = "**" }, err: errors.ErrInvalidConfig},
		{name: "Bad metrics address", mutate: func(c *Config) { c.MetricsAddr = "not an address" }, err: errors.ErrInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := valid
			tt.mutate(&config)
			err := config.Validate()
			if tt.err == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.err)
		})
	}
}
