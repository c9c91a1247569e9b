package slowlog

import (
	"bytes"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestSlowLog(t *testing.T) {
	out := &bytes.Buffer{}
	log := zerolog.New(out)

	t.Run("should time breakpoints correctly", func(t *testing.T) {
		tests := []struct {
			name          string
			logic         func(slowLog Logger) []time.Duration
			expectedTimes []time.Duration
		}{
			{
				name: "single breakpoint",
				logic: func(slowLog Logger) []time.Duration {
					slowLog.Start("pipeline")
					time.Sleep(1 * time.Millisecond)
					rounded := slowLog.Stop("pipeline").Round(time.Millisecond)
					return []time.Duration{rounded}
				},
				expectedTimes: []time.Duration{time.Millisecond},
			},
			{
				name: "nested breakpoints",
				logic: func(slowLog Logger) []time.Duration {
					slowLog.Start("booking")
					time.Sleep(1 * time.Millisecond)

					slowLog.Start("authorize")
					time.Sleep(1 * time.Millisecond)
					inner := slowLog.Stop("authorize")

					time.Sleep(1 * time.Millisecond)
					outer := slowLog.Stop("booking")

					inner = inner.Round(time.Millisecond)
					outer = outer.Round(time.Millisecond)

					return []time.Duration{inner, outer}
				},
				expectedTimes: []time.Duration{time.Millisecond, 3 * time.Millisecond},
			},
			{
				name: "restarted name resets the timer",
				logic: func(slowLog Logger) []time.Duration {
					slowLog.Start("commit")
					time.Sleep(3 * time.Millisecond)
					slowLog.Start("commit")
					time.Sleep(1 * time.Millisecond)

					duration := slowLog.Stop("commit")
					duration = duration.Round(time.Millisecond)

					return []time.Duration{duration}
				},
				expectedTimes: []time.Duration{1 * time.Millisecond},
			},
		}

		slowLog := CreateLogger(&log)

		for _, test := range tests {
			t.Run(test.name, func(t *testing.T) {
				times := test.logic(slowLog)
				assert.Equal(t, 0, len(slowLog.ongoingTimers))
				for i, expectedTime := range test.expectedTimes {
					assert.True(t, times[i] >= expectedTime)
				}
			})
		}
	})
}
