package domain

// Level is the severity of a diagnostic reported by the validator.
type Level int

const (
	LevelFatal Level = iota
	LevelInternalError
	LevelError
	LevelWarning
	LevelInfo
	LevelDebug
)

// LevelUnknown marks a level name that is not recognized. Consumers ignore it.
const LevelUnknown Level = -1

var levelNames = map[Level]string{
	LevelFatal:         "fatal",
	LevelInternalError: "internal-error",
	LevelError:         "error",
	LevelWarning:       "warning",
	LevelInfo:          "info",
	LevelDebug:         "debug",
}

func (l Level) String() string {
	if s, ok := levelNames[l]; ok {
		return s
	}
	return "unknown"
}

// ParseLevel maps a level name back to a Level.
func ParseLevel(s string) (Level, bool) {
	for l, name := range levelNames {
		if name == s {
			return l, true
		}
	}
	return 0, false
}

// Position locates a diagnostic in the input. Index is the word offset.
type Position struct {
	Line   uint64
	Column uint64
	Index  uint64
}

// Diagnostic is one message emitted during a validation call.
type Diagnostic struct {
	Level    Level
	Source   string
	Position Position
	Message  string
}
