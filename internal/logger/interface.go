package logger

import "github.com/rs/zerolog"

// LogLevel mirrors zerolog's level ordering
type LogLevel int8

const (
	DebugLevel LogLevel = iota
	InfoLevel
	WarnLevel
	ErrorLevel
	FatalLevel
)

// LogEvent wraps a zerolog event so call sites stay decoupled from the
// underlying logging library.
type LogEvent struct {
	*zerolog.Event
}

func (e *LogEvent) Msg(msg string) {
	e.Event.Msg(msg)
}

func (e *LogEvent) Send() {
	e.Event.Send()
}
