package e2e

import (
	"context"
	"presence-lab/domain/presence"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type PresenceScenarioSuite struct {
	BaseDiscordSuite
}

func TestPresenceScenario(t *testing.T) {
	suite.Run(t, new(PresenceScenarioSuite))
}

func (s *PresenceScenarioSuite) TestStaffRoleAndSummaryDelivery() {
	s.Step("Resolve staff role", func(ctx context.Context) {
		roleID, found, err := s.Gateway.StaffRoleID(ctx, s.Config.GuildID, s.Config.StaffRole)
		s.Require().NoError(err)
		s.Require().True(found, "role %q must exist in the test guild", s.Config.StaffRole)
		s.Require().NotEmpty(roleID)
	})

	s.Step("Send notice", func(ctx context.Context) {
		s.Require().NoError(s.Gateway.Send(ctx, s.Config.ChannelID, "🧪 presence tracker smoke test"))
	})

	s.Step("Send summary", func(ctx context.Context) {
		now := time.Now()
		pings := make([]presence.PingRecord, 0, 7)
		for i := 0; i < 7; i++ {
			pings = append(pings, presence.NewPingRecord("e2e", "smoke ping",
				presence.MessageLink(s.Config.GuildID, s.Config.ChannelID, "0"), now))
		}
		summary := presence.BuildSummary(pings, presence.DefaultSummaryLimit, now, nil)
		s.Require().NoError(s.Gateway.SendSummary(ctx, s.Config.ChannelID, summary))
	})
}
