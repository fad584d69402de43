package e2e

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// E2E_DISCORD_TOKEN enables the scenarios, they are skipped when empty
	Token     string `envconfig:"E2E_DISCORD_TOKEN"`
	GuildID   string `envconfig:"E2E_GUILD_ID"`
	ChannelID string `envconfig:"E2E_CHANNEL_ID"`
	StaffRole string `envconfig:"E2E_STAFF_ROLE" default:"Staff"`
	// E2E_COLOURS enables colorized output for better log readability
	Colours bool `envconfig:"E2E_COLOURS" default:"true"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
