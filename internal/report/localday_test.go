package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const utcPlus3 = 3 * time.Hour

func TestParseLocalDay(t *testing.T) {
	day, err := ParseLocalDay("2024-01-10")
	require.NoError(t, err)
	assert.Equal(t, "2024-01-10", day)

	invalid := []string{"", "2024-1-10", "2024/01/10", "2024-02-30", "10-01-2024", "2024-01-10T00:00:00Z", "今天"}
	for _, input := range invalid {
		_, err := ParseLocalDay(input)
		assert.ErrorIs(t, err, ErrInvalidDate, "input: %q", input)
	}
}

func TestLocalDayOf(t *testing.T) {
	tests := []struct {
		name    string
		instant time.Time
		want    string
	}{
		{"中午不跨日", time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC), "2024-01-10"},
		{"UTC 晚上属于本地次日", time.Date(2024, 1, 10, 21, 0, 0, 0, time.UTC), "2024-01-11"},
		{"本地午夜前最后一秒", time.Date(2024, 1, 10, 20, 59, 59, 0, time.UTC), "2024-01-10"},
		{"UTC 凌晨仍属于本地当日", time.Date(2024, 1, 10, 0, 30, 0, 0, time.UTC), "2024-01-10"},
		{"跨年", time.Date(2023, 12, 31, 22, 0, 0, 0, time.UTC), "2024-01-01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LocalDayOf(tt.instant, utcPlus3))
		})
	}
}

func TestUTCRangeForLocalDay(t *testing.T) {
	start, end, err := UTCRangeForLocalDay("2024-01-10", utcPlus3)
	require.NoError(t, err)

	// UTC+3 的本地日 2024-01-10 从前一天 21:00 UTC 开始
	assert.Equal(t, time.Date(2024, 1, 9, 21, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, 1, 10, 21, 0, 0, 0, time.UTC), end)

	// 区间边界和 LocalDayOf 的精确判断保持一致
	assert.Equal(t, "2024-01-10", LocalDayOf(start, utcPlus3))
	assert.Equal(t, "2024-01-11", LocalDayOf(end, utcPlus3))
	assert.Equal(t, "2024-01-10", LocalDayOf(end.Add(-time.Second), utcPlus3))
}

func TestUTCRangeForLocalDay_ZeroOffset(t *testing.T) {
	start, end, err := UTCRangeForLocalDay("2024-01-10", 0)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, 1, 11, 0, 0, 0, 0, time.UTC), end)
}

func TestUTCRangeForLocalDay_InvalidDate(t *testing.T) {
	_, _, err := UTCRangeForLocalDay("not-a-date", utcPlus3)
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestLocalMinutesOf(t *testing.T) {
	// 04:00 UTC 在 UTC+3 下是本地 07:00
	assert.Equal(t, 420, localMinutesOf(time.Date(2024, 1, 10, 4, 0, 0, 0, time.UTC), utcPlus3))
	// 21:30 UTC 在 UTC+3 下是本地次日 00:30
	assert.Equal(t, 30, localMinutesOf(time.Date(2024, 1, 10, 21, 30, 0, 0, time.UTC), utcPlus3))
}
