package handlers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	seoul, err := time.LoadLocation("Asia/Seoul")
	require.NoError(t, err)

	tests := []struct {
		in      string
		want    time.Time
		wantErr bool
	}{
		{in: "2024-05-01T10:30:00+09:00", want: time.Date(2024, 5, 1, 10, 30, 0, 0, seoul)},
		{in: "2024-05-01T01:30:00Z", want: time.Date(2024, 5, 1, 1, 30, 0, 0, time.UTC)},
		{in: "2024-05-01 10:30", want: time.Date(2024, 5, 1, 10, 30, 0, 0, seoul)},
		{in: "2024-05-01T10:30", want: time.Date(2024, 5, 1, 10, 30, 0, 0, seoul)},
		{in: " 2024-05-01 ", want: time.Date(2024, 5, 1, 0, 0, 0, 0, seoul)},
		{in: "", wantErr: true},
		{in: "2024/05/01", wantErr: true},
		{in: "2024-13-01", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDate(tt.in, seoul)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, got.Equal(tt.want), "got %s want %s", got, tt.want)
		})
	}
}

func TestParseDate_NilLocation(t *testing.T) {
	got, err := ParseDate("2024-05-01", nil)
	require.NoError(t, err)
	assert.Equal(t, time.UTC, got.Location())
}

func TestRecentSince(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2025, 2, 26, 12, 0, 0, 0, time.UTC), RecentSince(now, 3))
	assert.Equal(t, now, RecentSince(now, 0))
}
