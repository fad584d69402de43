package presence

import (
	"fmt"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/require"
)

func pings(n int, at time.Time) []PingRecord {
	out := make([]PingRecord, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, NewPingRecord(
			fmt.Sprintf("bob%d", i),
			fmt.Sprintf("hello %d", i),
			MessageLink("1", "2", fmt.Sprint(i)),
			at.Add(time.Duration(i)*time.Second),
		))
	}
	return out
}

func TestBuildSummary_SinglePing(t *testing.T) {
	req := require.New(t)
	at := time.Unix(1_700_000_000, 0).UTC()
	ping := NewPingRecord("bob", "hello <@42>", "https://discord.com/channels/1/2/3", at)

	summary := BuildSummary([]PingRecord{ping}, DefaultSummaryLimit, at, nil)

	req.Equal(SummaryTitle, summary.Title)
	req.Equal(SummaryColour, summary.Colour)
	req.Equal("You were pinged **1** time(s) while clocked out.", summary.Description)
	req.Equal(at, summary.Timestamp)
	req.Len(summary.Fields, 1)
	req.Equal("By: bob at <t:1700000000:R>", summary.Fields[0].Name)
	req.Equal("[Jump to Message](https://discord.com/channels/1/2/3)\n> hello <@42>", summary.Fields[0].Value)
}

func TestBuildSummary_Overflow(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		fields   int
		overflow string
	}{
		{name: "Exactly the limit", total: 5, fields: 5},
		{name: "Under the limit", total: 3, fields: 3},
		{name: "Seven pings", total: 7, fields: 6, overflow: "And 2 more…"},
		{name: "Six pings", total: 6, fields: 6, overflow: "And 1 more…"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			at := time.Unix(1_700_000_000, 0).UTC()
			records := pings(tt.total, at)

			summary := BuildSummary(records, DefaultSummaryLimit, at, nil)

			req.Len(summary.Fields, tt.fields)
			for i := 0; i < min(tt.total, DefaultSummaryLimit); i++ {
				req.Contains(summary.Fields[i].Name, records[i].By)
			}
			last := summary.Fields[len(summary.Fields)-1]
			if tt.overflow == "" {
				req.NotContains(last.Name, "more")
				return
			}
			req.Equal(tt.overflow, last.Name)
			req.Equal("_Only the first 5 shown here._", last.Value)
		})
	}
}

func TestBuildSummary_EmptyContentPlaceholder(t *testing.T) {
	req := require.New(t)
	at := time.Now()
	ping := NewPingRecord("bob", "", "link", at)

	summary := BuildSummary([]PingRecord{ping}, 0, at, func(string) string {
		req.Fail("censor must not run on empty content")
		return ""
	})

	req.Equal("[Jump to Message](link)\n> _No message content_", summary.Fields[0].Value)
}

func TestBuildSummary_CensorAndTruncate(t *testing.T) {
	req := require.New(t)
	at := time.Now()
	long := strings.Repeat("é", 2*MaxFieldValueLength)
	records := []PingRecord{
		NewPingRecord("bob", "the badger", "link", at),
		NewPingRecord("bob", long, "link", at),
	}

	summary := BuildSummary(records, DefaultSummaryLimit, at, func(s string) string {
		return strings.ReplaceAll(s, "badger", "******")
	})

	req.Equal("[Jump to Message](link)\n> the ******", summary.Fields[0].Value)
	req.Equal(MaxFieldValueLength, utf8.RuneCountInString(summary.Fields[1].Value))
	req.True(strings.HasSuffix(summary.Fields[1].Value, "…"))
}

func TestBuildSummary_EmbedStaysWithinPlatformTotal(t *testing.T) {
	at := time.Unix(1_700_000_000, 0).UTC()
	long := strings.Repeat("x", 1500)

	tests := []struct {
		name  string
		limit int
	}{
		{"default limit", DefaultSummaryLimit},
		{"six fields", 6},
		{"largest configurable limit", 24},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			records := make([]PingRecord, 0, tt.limit+1)
			for i := 0; i <= tt.limit; i++ {
				records = append(records, NewPingRecord(
					fmt.Sprintf("moderator_with_a_long_name%d#0001", i),
					long,
					MessageLink("1100000000000000000", "1200000000000000000", fmt.Sprint(1300000000000000000+i)),
					at,
				))
			}

			summary := BuildSummary(records, tt.limit, at, nil)

			req.Len(summary.Fields, tt.limit+1)
			req.LessOrEqual(summary.Length(), MaxEmbedLength)
			for _, field := range summary.Fields[:tt.limit] {
				req.LessOrEqual(utf8.RuneCountInString(field.Value), MaxFieldValueLength)
				req.True(strings.HasPrefix(field.Value, "[Jump to Message](https://discord.com/channels/"))
				req.True(strings.HasSuffix(field.Value, "…"))
			}
			req.Equal(fmt.Sprintf("_Only the first %d shown here._", tt.limit), summary.Fields[tt.limit].Value)
		})
	}
}

func TestParseCommand(t *testing.T) {
	req := require.New(t)
	req.Equal(CheckIn, ParseCommand(",", ",checkin"))
	req.Equal(CheckOut, ParseCommand(",", ",checkout"))
	req.Equal(NoCommand, ParseCommand(",", ",CHECKIN"))
	req.Equal(NoCommand, ParseCommand(",", ",checkin now"))
	req.Equal(NoCommand, ParseCommand(",", "checkin"))
	req.Equal(CheckOut, ParseCommand("!", "!checkout"))
}

func TestMessageEvent_Link(t *testing.T) {
	req := require.New(t)
	evt := MessageEvent{ID: "3", GuildID: "1", ChannelID: "2"}
	req.True(evt.InGuild())
	req.Equal("https://discord.com/channels/1/2/3", evt.Link())
	req.False(MessageEvent{}.InGuild())
}
