package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"presence-lab/infrastructure/discord"
	"time"

	"github.com/gookit/color"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/suite"
)

// BaseDiscordSuite talks to a real guild through the bot gateway adapter.
type BaseDiscordSuite struct {
	suite.Suite
	Config  Config
	Gateway *discord.Gateway
}

// SetupSuite loads the environment configuration before running tests
func (s *BaseDiscordSuite) SetupSuite() {
	var err error
	s.Config, err = LoadConfig()
	s.Require().NoError(err)
	if s.Config.Token == "" || s.Config.GuildID == "" || s.Config.ChannelID == "" {
		s.T().Skip("E2E_DISCORD_TOKEN, E2E_GUILD_ID and E2E_CHANNEL_ID are required")
	}
	s.Gateway, err = discord.NewGateway(s.Config.Token, logs.GetLoggerFromLevel(slog.LevelDebug))
	s.Require().NoError(err)
}

// Step runs fn under a colorized header with a bounded context.
func (s *BaseDiscordSuite) Step(name string, fn func(ctx context.Context)) {
	header := fmt.Sprintf("  ====== %s ======", name)
	if s.Config.Colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	s.T().Log(header)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	start := time.Now()
	fn(ctx)
	s.T().Logf("%s done in %v", name, time.Since(start))
}
