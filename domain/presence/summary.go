package presence

import (
	"fmt"
	"time"
	"unicode/utf8"
)

const (
	SummaryTitle  = "📨 Pings While You Were Clocked Out"
	SummaryColour = 0x00aaff

	DefaultSummaryLimit = 5
	MaxFieldValueLength = 1024
	MaxEmbedLength      = 6000

	emptyContent = "_No message content_"
	ellipsis     = "…"
)

type SummaryField struct {
	Name  string
	Value string
}

// Summary is the platform-neutral form of the ping digest sent on check-in.
type Summary struct {
	Title       string
	Colour      int
	Description string
	Fields      []SummaryField
	Timestamp   time.Time
}

// Censor rewrites an excerpt before it is quoted.
type Censor func(content string) string

// BuildSummary renders at most limit pings in insertion order plus an overflow field.
// Field values share what is left of MaxEmbedLength once the title, description,
// field names and overflow field are counted.
func BuildSummary(pings []PingRecord, limit int, at time.Time, censor Censor) Summary {
	if limit <= 0 {
		limit = DefaultSummaryLimit
	}
	summary := Summary{
		Title:       SummaryTitle,
		Colour:      SummaryColour,
		Description: fmt.Sprintf("You were pinged **%d** time(s) while clocked out.", len(pings)),
		Timestamp:   at,
	}

	shown := pings
	if len(shown) > limit {
		shown = shown[:limit]
	}
	names := make([]string, len(shown))
	fixed := utf8.RuneCountInString(summary.Title) + utf8.RuneCountInString(summary.Description)
	for i, ping := range shown {
		names[i] = fmt.Sprintf("By: %s at %s", ping.By, RelativeTime(ping.At))
		fixed += utf8.RuneCountInString(names[i])
	}

	var overflow *SummaryField
	if len(pings) > limit {
		overflow = &SummaryField{
			Name:  fmt.Sprintf("And %d more%s", len(pings)-limit, ellipsis),
			Value: fmt.Sprintf("_Only the first %d shown here._", limit),
		}
		fixed += overflow.length()
	}

	budget := MaxFieldValueLength
	if len(shown) > 0 {
		budget = min(budget, (MaxEmbedLength-fixed)/len(shown))
	}
	for i, ping := range shown {
		summary.Fields = append(summary.Fields, SummaryField{
			Name:  names[i],
			Value: fieldValue(ping, censor, budget),
		})
	}
	if overflow != nil {
		summary.Fields = append(summary.Fields, *overflow)
	}
	return summary
}

// Length counts the characters the platform bills against the embed total.
func (s Summary) Length() int {
	n := utf8.RuneCountInString(s.Title) + utf8.RuneCountInString(s.Description)
	for _, field := range s.Fields {
		n += field.length()
	}
	return n
}

func (f SummaryField) length() int {
	return utf8.RuneCountInString(f.Name) + utf8.RuneCountInString(f.Value)
}

func fieldValue(ping PingRecord, censor Censor, budget int) string {
	head := fmt.Sprintf("[Jump to Message](%s)\n> ", ping.Link)
	excerpt := ping.Content
	if excerpt == "" {
		return truncateRunes(head+emptyContent, budget)
	}
	if censor != nil {
		excerpt = censor(excerpt)
	}
	rest := budget - utf8.RuneCountInString(head)
	if rest <= 0 {
		return truncateRunes(head, budget)
	}
	return head + truncateRunes(excerpt, rest)
}

func truncateRunes(s string, max int) string {
	if max <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	return string(runes[:max-1]) + ellipsis
}
