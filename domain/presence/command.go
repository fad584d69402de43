package presence

type Command int

const (
	NoCommand Command = iota
	CheckIn
	CheckOut
)

func (c Command) String() string {
	switch c {
	case CheckIn:
		return "checkin"
	case CheckOut:
		return "checkout"
	default:
		return "none"
	}
}

// ParseCommand matches the whole content, case-sensitive, against the prefixed commands.
// Arguments are not accepted: ",checkin now" is a plain message.
func ParseCommand(prefix, content string) Command {
	switch content {
	case prefix + CheckIn.String():
		return CheckIn
	case prefix + CheckOut.String():
		return CheckOut
	default:
		return NoCommand
	}
}
