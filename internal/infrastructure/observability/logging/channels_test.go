package logging

import (
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietConfig() *LoggerConfig {
	return &LoggerConfig{
		OutputToFile:    false,
		OutputToConsole: false,
		JSONFormat:      true,
		DefaultLevel:    slog.LevelError,
		ChannelLevels:   make(map[Channel]slog.Level),
	}
}

func TestChanneledLogger_ConcurrentLevelChanges(t *testing.T) {
	cl, err := NewChanneledLogger(quietConfig())
	require.NoError(t, err)

	done := make(chan struct{})
	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-done:
					return
				default:
					cl.Content().Debug("dropped")
					cl.GetChannel(ChannelRender).Debug("dropped")
				}
			}
		}()
	}

	for i := 0; i < 200; i++ {
		require.NoError(t, cl.SetChannelLevel(ChannelContent, slog.LevelError))
	}
	close(done)
	wg.Wait()
}

func TestSetChannelLevel_UnknownChannel(t *testing.T) {
	cl, err := NewChanneledLogger(quietConfig())
	require.NoError(t, err)

	assert.Error(t, cl.SetChannelLevel(Channel("bogus"), slog.LevelInfo))
}

func TestGetChannelLevels_ReflectsOverride(t *testing.T) {
	cl, err := NewChanneledLogger(quietConfig())
	require.NoError(t, err)

	require.NoError(t, cl.SetChannelLevel(ChannelDebug, slog.LevelDebug))

	levels := cl.GetChannelLevels()
	assert.Equal(t, "DEBUG", levels[string(ChannelDebug)])
	assert.Equal(t, "ERROR", levels[string(ChannelContent)])
}
