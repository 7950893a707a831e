package entities

// Level is the severity of a progress message
type Level int

// Progress message levels
const (
	LevelInfo Level = iota
	LevelWarn
	LevelError
)

// String returns the upper-case level name
func (l Level) String() string {
	switch l {
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Message is a leveled status line sent to a progress sink
type Message struct {
	Level Level
	Text  string
}

// Info creates an INFO message
func Info(text string) Message {
	return Message{Level: LevelInfo, Text: text}
}

// Warn creates a WARN message
func Warn(text string) Message {
	return Message{Level: LevelWarn, Text: text}
}

// Error creates an ERROR message
func Error(text string) Message {
	return Message{Level: LevelError, Text: text}
}
