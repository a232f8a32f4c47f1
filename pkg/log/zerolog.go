package log

import (
	"io"

	"github.com/rs/zerolog"
)

// NewZerologWarnFunc returns a function suitable for errors.SetZerologWarnFunc.
// Warnings implementing zerolog.LogObjectMarshaler are embedded field by field.
func NewZerologWarnFunc(w io.Writer) func(warning error) {
	logger := zerolog.New(w).With().Timestamp().Str(ComponentKey, "warnings").Logger()
	return func(warning error) {
		event := logger.Warn()
		if m, ok := warning.(zerolog.LogObjectMarshaler); ok {
			event = event.EmbedObject(m)
		}
		event.Msg(warning.Error())
	}
}
