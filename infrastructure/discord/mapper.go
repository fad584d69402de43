package discord

import (
	"presence-lab/domain/presence"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/samber/lo"
)

// ToMessageEvent converts a gateway message-create payload into the tracker's event.
func ToMessageEvent(m *discordgo.MessageCreate) presence.MessageEvent {
	if m == nil || m.Message == nil {
		return presence.MessageEvent{}
	}
	return presence.MessageEvent{
		ID:        m.ID,
		GuildID:   m.GuildID,
		ChannelID: m.ChannelID,
		Author:    toUser(m.Author),
		Content:   m.Content,
		Mentions: lo.FilterMap(m.Mentions, func(u *discordgo.User, _ int) (presence.User, bool) {
			return toUser(u), u != nil
		}),
	}
}

func toUser(u *discordgo.User) presence.User {
	if u == nil {
		return presence.User{}
	}
	return presence.User{
		ID:       presence.UserID(u.ID),
		Username: u.Username,
		Tag:      u.String(),
		Bot:      u.Bot,
	}
}

func ToEmbed(summary presence.Summary) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       summary.Title,
		Description: summary.Description,
		Color:       summary.Colour,
		Timestamp:   summary.Timestamp.Format(time.RFC3339),
		Fields: lo.Map(summary.Fields, func(f presence.SummaryField, _ int) *discordgo.MessageEmbedField {
			return &discordgo.MessageEmbedField{Name: f.Name, Value: f.Value}
		}),
	}
}

// findRoleID matches the role name exactly, like the platform's own role mention lookup.
func findRoleID(roles []*discordgo.Role, name string) (string, bool) {
	role, found := lo.Find(roles, func(r *discordgo.Role) bool {
		return r != nil && r.Name == name
	})
	if !found {
		return "", false
	}
	return role.ID, true
}
