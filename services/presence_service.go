package services

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"presence-lab/contract"
	"presence-lab/domain/presence"
	"presence-lab/errors"
	"presence-lab/observability"
	"presence-lab/repositories"
	"time"

	"github.com/samber/lo"
)

const (
	permissionDeniedReply  = "❌ You don't have permission to use this command."
	alreadyCheckedInReply  = "✅ You are already checked in."
	alreadyCheckedOutReply = "❌ You are already checked out."
)

var _ contract.MessageHandler = (*PresenceService)(nil)

type Settings struct {
	CommandPrefix string
	StaffRoleName string
	SummaryLimit  int
	// Censor rewrites excerpts quoted in the summary, nil keeps them as is.
	Censor presence.Censor
}

// PresenceService tracks checked-out staff members and the pings they receive.
type PresenceService struct {
	log       *slog.Logger
	repo      repositories.IPresenceRepository
	messenger contract.Messenger
	roles     contract.RoleResolver
	metrics   *observability.Metrics
	settings  Settings
	now       func() time.Time
}

func NewPresenceService(
	log *slog.Logger,
	repo repositories.IPresenceRepository,
	messenger contract.Messenger,
	roles contract.RoleResolver,
	metrics *observability.Metrics,
	settings Settings) *PresenceService {
	return &PresenceService{
		log:       log,
		repo:      repo,
		messenger: messenger,
		roles:     roles,
		metrics:   metrics,
		settings:  settings,
		now:       time.Now,
	}
}

func (s *PresenceService) WithClock(now func() time.Time) *PresenceService {
	s.now = now
	return s
}

// HandleMessage processes one message event: commands first, then mention detection.
// Refused or redundant commands are answered in the channel and never returned as errors.
func (s *PresenceService) HandleMessage(ctx context.Context, evt presence.MessageEvent) error {
	if evt.Author.Bot || !evt.InGuild() {
		return nil
	}

	switch cmd := presence.ParseCommand(s.settings.CommandPrefix, evt.Content); cmd {
	case presence.CheckIn, presence.CheckOut:
		if err := s.runCommand(ctx, cmd, evt); err != nil {
			return err
		}
	}

	return s.detectPings(ctx, evt)
}

func (s *PresenceService) runCommand(ctx context.Context, cmd presence.Command, evt presence.MessageEvent) error {
	err := s.authorize(ctx, evt)
	switch {
	case stderrors.Is(err, errors.ErrStaffRoleNotFound):
		s.log.Debug("Staff role missing, commands disabled for guild",
			"guild_id", evt.GuildID, "role", s.settings.StaffRoleName)
		return nil
	case stderrors.Is(err, errors.ErrPermissionDenied):
		s.metrics.IncDenied()
		return s.messenger.Reply(ctx, evt, permissionDeniedReply)
	case err != nil:
		return err
	}

	if cmd == presence.CheckIn {
		return s.checkIn(ctx, evt)
	}
	return s.checkOut(ctx, evt)
}

// authorize returns ErrStaffRoleNotFound when the guild has no staff role
// and ErrPermissionDenied when the author does not hold it.
func (s *PresenceService) authorize(ctx context.Context, evt presence.MessageEvent) error {
	roleID, found, err := s.roles.StaffRoleID(ctx, evt.GuildID, s.settings.StaffRoleName)
	if err != nil {
		return fmt.Errorf("staff role lookup in guild %s: %w", evt.GuildID, err)
	}
	if !found {
		return errors.ErrStaffRoleNotFound
	}
	hasRole, err := s.roles.HasRole(ctx, evt.GuildID, evt.Author.ID, roleID)
	if err != nil {
		return fmt.Errorf("member lookup for %s: %w", evt.Author.ID, err)
	}
	if !hasRole {
		return errors.ErrPermissionDenied
	}
	return nil
}

func (s *PresenceService) checkIn(ctx context.Context, evt presence.MessageEvent) error {
	checkInTime := s.now()
	record, pings, err := s.repo.CheckIn(evt.Author.ID)
	if stderrors.Is(err, errors.ErrAlreadyCheckedIn) {
		return s.messenger.Reply(ctx, evt, alreadyCheckedInReply)
	}
	if err != nil {
		return fmt.Errorf("check in %s: %w", evt.Author.ID, err)
	}
	s.metrics.IncCheckins()
	s.refreshGauge()
	s.log.Debug("User checked in",
		"user_id", evt.Author.ID, "away", checkInTime.Sub(record.Since), "pings", len(pings))

	if err = s.messenger.Send(ctx, evt.ChannelID,
		fmt.Sprintf("✅ **%s** has checked in.", evt.Author.Username)); err != nil {
		return err
	}
	if len(pings) == 0 {
		return nil
	}

	summary := presence.BuildSummary(pings, s.settings.SummaryLimit, checkInTime, s.settings.Censor)
	return s.messenger.SendSummary(ctx, evt.ChannelID, summary)
}

func (s *PresenceService) checkOut(ctx context.Context, evt presence.MessageEvent) error {
	record, err := s.repo.CheckOut(evt.Author.ID, s.now())
	if stderrors.Is(err, errors.ErrAlreadyCheckedOut) {
		return s.messenger.Reply(ctx, evt, alreadyCheckedOutReply)
	}
	if err != nil {
		return fmt.Errorf("check out %s: %w", evt.Author.ID, err)
	}
	s.metrics.IncCheckouts()
	s.refreshGauge()
	s.log.Debug("User checked out", "user_id", evt.Author.ID, "since", record.Since)

	return s.messenger.Send(ctx, evt.ChannelID,
		fmt.Sprintf("🕒 **%s** has checked out. Have a good day or night!", evt.Author.Username))
}

// detectPings logs a ping for every distinct, non-bot mentioned user who is checked out.
func (s *PresenceService) detectPings(ctx context.Context, evt presence.MessageEvent) error {
	mentioned := lo.UniqBy(
		lo.Filter(evt.Mentions, func(u presence.User, _ int) bool { return !u.Bot }),
		func(u presence.User) presence.UserID { return u.ID },
	)

	for _, user := range mentioned {
		ping := presence.NewPingRecord(evt.Author.Tag, evt.Content, evt.Link(), s.now())
		record, recorded, err := s.repo.RecordPing(user.ID, ping)
		if err != nil {
			return fmt.Errorf("record ping for %s: %w", user.ID, err)
		}
		if !recorded {
			continue
		}
		s.metrics.IncPings()
		s.log.Debug("Ping recorded", "user_id", user.ID, "by", evt.Author.Tag)

		notice := fmt.Sprintf("🔔 %s has clocked out since %s.",
			presence.Mention(user.ID), presence.RelativeTime(record.Since))
		if err = s.messenger.Send(ctx, evt.ChannelID, notice); err != nil {
			return err
		}
	}
	return nil
}

func (s *PresenceService) refreshGauge() {
	count, err := s.repo.CountCheckedOut()
	if err != nil {
		s.log.Warn("Unable to count checked-out users", "error", err)
		return
	}
	s.metrics.SetCheckedOut(count)
}
