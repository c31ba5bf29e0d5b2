package logger

import (
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ZerologAdapter implements Logger on top of zerolog. Every adapter
// carries a session id so log lines from separate runs can be told
// apart.
type ZerologAdapter struct {
	logger  zerolog.Logger
	session string
}

func NewZerolog(writer io.Writer, level zerolog.Level) *ZerologAdapter {
	session := uuid.NewString()

	logger := zerolog.New(writer).
		Level(level).
		With().
		Timestamp().
		Str("session", session).
		Logger()

	return &ZerologAdapter{logger: logger, session: session}
}

// NewConsoleLogger writes human-readable output to stderr, keeping
// stdout free for the GUI runtime.
func NewConsoleLogger(level zerolog.Level) *ZerologAdapter {
	consoleWriter := zerolog.ConsoleWriter{Out: os.Stderr}
	return NewZerolog(consoleWriter, level)
}

func (z *ZerologAdapter) Session() string {
	return z.session
}

func (z *ZerologAdapter) Debug(component, message string, fields map[string]interface{}) {
	event := z.logger.Debug().Str("component", component)
	for k, v := range fields {
		event = event.Interface(k, v)
	}
	event.Msg(message)
}

func (z *ZerologAdapter) Info(component, message string, fields map[string]interface{}) {
	event := z.logger.Info().Str("component", component)
	for k, v := range fields {
		event = event.Interface(k, v)
	}
	event.Msg(message)
}

func (z *ZerologAdapter) Warning(component, message string, fields map[string]interface{}) {
	event := z.logger.Warn().Str("component", component)
	for k, v := range fields {
		event = event.Interface(k, v)
	}
	event.Msg(message)
}

func (z *ZerologAdapter) Error(component string, err error, fields map[string]interface{}) {
	event := z.logger.Error().Str("component", component).Err(err)
	for k, v := range fields {
		event = event.Interface(k, v)
	}
	event.Msg("operation failed")
}
