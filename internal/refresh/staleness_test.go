package refresh

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRefreshedToday(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, time.July, 1, 9, 30, 0, 0, time.UTC)

	tests := []struct {
		name       string
		lastUpdate *time.Time
		want       bool
	}{
		{
			name:       "never refreshed",
			lastUpdate: nil,
			want:       false,
		},
		{
			name:       "earlier today",
			lastUpdate: timePtr(time.Date(2024, time.July, 1, 3, 0, 0, 0, time.UTC)),
			want:       true,
		},
		{
			name:       "yesterday",
			lastUpdate: timePtr(time.Date(2024, time.June, 30, 23, 59, 0, 0, time.UTC)),
			want:       false,
		},
		{
			name:       "same day number last month",
			lastUpdate: timePtr(time.Date(2024, time.June, 1, 9, 30, 0, 0, time.UTC)),
			want:       false,
		},
		{
			name:       "same day number last year",
			lastUpdate: timePtr(time.Date(2023, time.July, 1, 9, 30, 0, 0, time.UTC)),
			want:       false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, refreshedToday(tt.lastUpdate, now))
		})
	}
}

func timePtr(t time.Time) *time.Time { return &t }
