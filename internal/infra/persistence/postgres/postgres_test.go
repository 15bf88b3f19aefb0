package postgres

import (
	"database/sql"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoolWaitReport(t *testing.T) {
	prev := sql.DBStats{WaitCount: 10, WaitDuration: 100 * time.Millisecond}

	tests := []struct {
		name      string
		cur       sql.DBStats
		wantOK    bool
		wantLevel slog.Level
		wantAvg   time.Duration
	}{
		{
			name:   "no new waits",
			cur:    sql.DBStats{WaitCount: 10, WaitDuration: 100 * time.Millisecond},
			wantOK: false,
		},
		{
			name:      "short waits stay at debug",
			cur:       sql.DBStats{WaitCount: 12, WaitDuration: 110 * time.Millisecond},
			wantOK:    true,
			wantLevel: slog.LevelDebug,
			wantAvg:   5 * time.Millisecond,
		},
		{
			name:      "long waits warn",
			cur:       sql.DBStats{WaitCount: 14, WaitDuration: 300 * time.Millisecond},
			wantOK:    true,
			wantLevel: slog.LevelWarn,
			wantAvg:   50 * time.Millisecond,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			level, attrs, ok := poolWaitReport(prev, tt.cur)

			require.Equal(t, tt.wantOK, ok)
			if !ok {
				assert.Empty(t, attrs)
				return
			}
			assert.Equal(t, tt.wantLevel, level)

			var avg time.Duration
			for _, a := range attrs {
				if a.Key == "avgWait" {
					avg = a.Value.Duration()
				}
			}
			assert.Equal(t, tt.wantAvg, avg)
		})
	}
}

func TestPoolSampler_StopWithoutStart(t *testing.T) {
	assert.NotPanics(t, func() { (&poolSampler{}).stop() })
}
