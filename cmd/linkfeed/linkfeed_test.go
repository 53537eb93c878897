package linkfeed

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestLogLevel(t *testing.T) {
	assert.Equal(t, zerolog.WarnLevel, LogLevel("warn"))
	assert.Equal(t, zerolog.TraceLevel, LogLevel("trace"))
	assert.Equal(t, zerolog.InfoLevel, LogLevel(""))
	assert.Equal(t, zerolog.InfoLevel, LogLevel("verbose"))
}
