package discord

import (
	"presence-lab/domain/presence"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/require"
)

func TestToMessageEvent(t *testing.T) {
	req := require.New(t)
	m := &discordgo.MessageCreate{Message: &discordgo.Message{
		ID:        "3",
		GuildID:   "1",
		ChannelID: "2",
		Content:   "hello <@100>",
		Author:    &discordgo.User{ID: "200", Username: "bob", Discriminator: "0420"},
		Mentions: []*discordgo.User{
			{ID: "100", Username: "alice", Discriminator: "0"},
			nil,
			{ID: "300", Username: "robot", Discriminator: "0001", Bot: true},
		},
	}}

	evt := ToMessageEvent(m)

	req.Equal("3", evt.ID)
	req.Equal("https://discord.com/channels/1/2/3", evt.Link())
	req.Equal(presence.User{ID: "200", Username: "bob", Tag: "bob#0420"}, evt.Author)
	req.Equal([]presence.User{
		{ID: "100", Username: "alice", Tag: "alice"},
		{ID: "300", Username: "robot", Tag: "robot#0001", Bot: true},
	}, evt.Mentions)
}

func TestToMessageEvent_DirectMessage(t *testing.T) {
	req := require.New(t)
	evt := ToMessageEvent(&discordgo.MessageCreate{Message: &discordgo.Message{
		ID:     "3",
		Author: &discordgo.User{ID: "200", Username: "bob"},
	}})
	req.False(evt.InGuild())
	req.Empty(evt.Mentions)

	req.Equal(presence.MessageEvent{}, ToMessageEvent(nil))
}

func TestToEmbed(t *testing.T) {
	req := require.New(t)
	at := time.Unix(1_700_000_000, 0).UTC()
	summary := presence.Summary{
		Title:       presence.SummaryTitle,
		Colour:      presence.SummaryColour,
		Description: "You were pinged **1** time(s) while clocked out.",
		Fields:      []presence.SummaryField{{Name: "By: bob at <t:1700000000:R>", Value: "[Jump to Message](link)\n> hi"}},
		Timestamp:   at,
	}

	embed := ToEmbed(summary)

	req.Equal(presence.SummaryTitle, embed.Title)
	req.Equal(0x00aaff, embed.Color)
	req.Equal("2023-11-14T22:13:20Z", embed.Timestamp)
	req.Len(embed.Fields, 1)
	req.Equal("By: bob at <t:1700000000:R>", embed.Fields[0].Name)
	req.False(embed.Fields[0].Inline)
}

func TestFindRoleID(t *testing.T) {
	req := require.New(t)
	roles := []*discordgo.Role{nil, {ID: "1", Name: "staff"}, {ID: "2", Name: "Staff"}}

	id, found := findRoleID(roles, "Staff")
	req.True(found)
	req.Equal("2", id)

	_, found = findRoleID(roles, "Moderators")
	req.False(found)
}
