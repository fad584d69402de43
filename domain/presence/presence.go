// Package presence contains core concepts of the presence tracker.
// It defines checkout records, ping records and the inbound message event.
// No runtime, network, or storage logic should be added here.
package presence

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type UserID string

// CheckoutRecord marks a user as checked out since a given second.
type CheckoutRecord struct {
	UserID UserID
	Since  time.Time
}

// PingRecord is a mention of a checked-out user, kept until check-in.
type PingRecord struct {
	ID      uuid.UUID
	By      string // tag of the mentioning user
	Content string
	Link    string
	At      time.Time
}

func NewPingRecord(by, content, link string, at time.Time) PingRecord {
	return PingRecord{
		ID:      uuid.New(),
		By:      by,
		Content: content,
		Link:    link,
		At:      Truncate(at),
	}
}

type User struct {
	ID       UserID
	Username string
	Tag      string
	Bot      bool
}

// MessageEvent is a message-create event as seen by the tracker.
type MessageEvent struct {
	ID        string
	GuildID   string
	ChannelID string
	Author    User
	Content   string
	Mentions  []User
}

// InGuild reports whether the message was posted in a guild channel.
func (m MessageEvent) InGuild() bool {
	return m.GuildID != ""
}

// Link builds the deep link pointing at the message.
func (m MessageEvent) Link() string {
	return MessageLink(m.GuildID, m.ChannelID, m.ID)
}

func MessageLink(guildID, channelID, messageID string) string {
	return fmt.Sprintf("https://discord.com/channels/%s/%s/%s", guildID, channelID, messageID)
}

// RelativeTime renders a timestamp marker displayed relative to the reader's clock.
func RelativeTime(t time.Time) string {
	return fmt.Sprintf("<t:%d:R>", t.Unix())
}

func Mention(id UserID) string {
	return fmt.Sprintf("<@%s>", id)
}

// Truncate drops sub-second precision, timestamps are kept in seconds.
func Truncate(t time.Time) time.Time {
	return time.Unix(t.Unix(), 0).UTC()
}
