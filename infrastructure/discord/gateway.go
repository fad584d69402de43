package discord

import (
	"context"
	"fmt"
	"log/slog"
	"presence-lab/contract"
	"presence-lab/domain/presence"

	"github.com/bwmarrin/discordgo"
	"github.com/samber/lo"
)

const intents = discordgo.IntentGuilds | discordgo.IntentGuildMessages | discordgo.IntentMessageContent

var (
	_ contract.Messenger    = (*Gateway)(nil)
	_ contract.RoleResolver = (*Gateway)(nil)
	_ contract.Worker       = (*Gateway)(nil)
)

// Gateway owns the bot session: it feeds message events in and sends replies out.
type Gateway struct {
	session *discordgo.Session
	log     *slog.Logger
}

func NewGateway(token string, log *slog.Logger) (*Gateway, error) {
	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("discord session: %w", err)
	}
	session.Identify.Intents = intents
	// Handlers run in gateway order, the event loop sees messages as they were posted
	session.SyncEvents = true
	session.AddHandlerOnce(func(_ *discordgo.Session, r *discordgo.Ready) {
		log.Info("Logged in", "tag", r.User.String(), "guilds", len(r.Guilds))
	})
	return &Gateway{session: session, log: log}, nil
}

// OnMessage registers the sink receiving every message-create event.
// The sink runs on the gateway read loop and must only enqueue.
func (g *Gateway) OnMessage(sink func(presence.MessageEvent)) {
	g.session.AddHandler(func(_ *discordgo.Session, m *discordgo.MessageCreate) {
		sink(ToMessageEvent(m))
	})
}

// Run keeps the websocket connection open until ctx is canceled.
func (g *Gateway) Run(ctx context.Context) error {
	if err := g.session.Open(); err != nil {
		return fmt.Errorf("discord connection: %w", err)
	}
	<-ctx.Done()
	g.log.Info("Closing Discord session...")
	return g.session.Close()
}

func (g *Gateway) Reply(ctx context.Context, evt presence.MessageEvent, content string) error {
	reference := &discordgo.MessageReference{
		MessageID: evt.ID,
		ChannelID: evt.ChannelID,
		GuildID:   evt.GuildID,
	}
	if _, err := g.session.ChannelMessageSendReply(evt.ChannelID, content, reference, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("reply in channel %s: %w", evt.ChannelID, err)
	}
	return nil
}

func (g *Gateway) Send(ctx context.Context, channelID, content string) error {
	if _, err := g.session.ChannelMessageSend(channelID, content, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("send in channel %s: %w", channelID, err)
	}
	return nil
}

func (g *Gateway) SendSummary(ctx context.Context, channelID string, summary presence.Summary) error {
	if _, err := g.session.ChannelMessageSendEmbed(channelID, ToEmbed(summary), discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("send summary in channel %s: %w", channelID, err)
	}
	return nil
}

// StaffRoleID looks the role up in the state cache first, then through the REST API.
func (g *Gateway) StaffRoleID(ctx context.Context, guildID, roleName string) (string, bool, error) {
	if guild, err := g.session.State.Guild(guildID); err == nil {
		if roleID, found := findRoleID(guild.Roles, roleName); found {
			return roleID, true, nil
		}
	}
	roles, err := g.session.GuildRoles(guildID, discordgo.WithContext(ctx))
	if err != nil {
		return "", false, fmt.Errorf("guild roles: %w", err)
	}
	roleID, found := findRoleID(roles, roleName)
	return roleID, found, nil
}

func (g *Gateway) HasRole(ctx context.Context, guildID string, userID presence.UserID, roleID string) (bool, error) {
	member, err := g.session.State.Member(guildID, string(userID))
	if err != nil {
		member, err = g.session.GuildMember(guildID, string(userID), discordgo.WithContext(ctx))
		if err != nil {
			return false, fmt.Errorf("guild member: %w", err)
		}
	}
	return lo.Contains(member.Roles, roleID), nil
}
