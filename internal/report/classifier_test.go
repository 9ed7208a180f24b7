package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/sysu-ecnc-dev/attendance-tracker/backend/internal/domain"
)

func minutesOf(hour int, minute int) int {
	return hour*60 + minute
}

func TestClassify_DayWindow(t *testing.T) {
	cfg := &domain.ShiftWindowConfig{
		DayStart:   "07:00",
		DayEnd:     "19:00",
		NightStart: "19:00",
		NightEnd:   "07:00",
	}

	tests := []struct {
		name    string
		minutes int
		want    domain.ShiftLabel
	}{
		{"白班开始边界算白班", minutesOf(7, 0), domain.ShiftDay},
		{"白班中间算白班", minutesOf(13, 20), domain.ShiftDay},
		{"白班结束前一分钟算白班", minutesOf(18, 59), domain.ShiftDay},
		{"白班结束边界不算白班", minutesOf(19, 0), domain.ShiftNight},
		{"白班开始前一分钟不算白班", minutesOf(6, 59), domain.ShiftNight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.minutes, cfg))
		})
	}
}

func TestClassify_WrappingNightWindow(t *testing.T) {
	// 禁用白班（dayStart == dayEnd）以单独检验夜班的跨午夜判定
	cfg := &domain.ShiftWindowConfig{
		DayStart:   "07:00",
		DayEnd:     "07:00",
		NightStart: "19:00",
		NightEnd:   "07:00",
	}

	tests := []struct {
		name    string
		minutes int
		want    domain.ShiftLabel
	}{
		{"午夜前算夜班", minutesOf(20, 0), domain.ShiftNight},
		{"午夜后算夜班", minutesOf(1, 0), domain.ShiftNight},
		{"夜班开始边界算夜班", minutesOf(19, 0), domain.ShiftNight},
		{"夜班结束边界不算夜班", minutesOf(7, 0), domain.ShiftUndetermined},
		{"两个时段之外算未定", minutesOf(13, 20), domain.ShiftUndetermined},
		{"一天的最后一分钟算夜班", minutesOf(23, 59), domain.ShiftNight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.minutes, cfg))
		})
	}
}

func TestClassify_NonWrappingNightWindow(t *testing.T) {
	cfg := &domain.ShiftWindowConfig{
		DayStart:   "06:00",
		DayEnd:     "14:00",
		NightStart: "14:00",
		NightEnd:   "22:00",
	}

	assert.Equal(t, domain.ShiftNight, Classify(minutesOf(14, 0), cfg))
	assert.Equal(t, domain.ShiftNight, Classify(minutesOf(21, 59), cfg))
	assert.Equal(t, domain.ShiftUndetermined, Classify(minutesOf(22, 0), cfg))
	assert.Equal(t, domain.ShiftUndetermined, Classify(minutesOf(3, 0), cfg))
}

func TestClassify_DayWindowWins(t *testing.T) {
	// 白班和夜班重叠时白班优先
	cfg := &domain.ShiftWindowConfig{
		DayStart:   "07:00",
		DayEnd:     "19:00",
		NightStart: "18:00",
		NightEnd:   "07:00",
	}

	assert.Equal(t, domain.ShiftDay, Classify(minutesOf(18, 30), cfg))
}

func TestClassify_InvertedDayWindowNeverMatches(t *testing.T) {
	// dayStart > dayEnd 时白班分支永远不命中，这是有意保留的行为
	cfg := &domain.ShiftWindowConfig{
		DayStart:   "19:00",
		DayEnd:     "07:00",
		NightStart: "20:00",
		NightEnd:   "06:00",
	}

	assert.Equal(t, domain.ShiftUndetermined, Classify(minutesOf(19, 30), cfg))
	assert.Equal(t, domain.ShiftNight, Classify(minutesOf(21, 0), cfg))
}

func TestClassify_MalformedConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  *domain.ShiftWindowConfig
	}{
		{"小时越界", &domain.ShiftWindowConfig{DayStart: "24:00", DayEnd: "19:00", NightStart: "19:00", NightEnd: "07:00"}},
		{"分钟越界", &domain.ShiftWindowConfig{DayStart: "07:60", DayEnd: "19:00", NightStart: "19:00", NightEnd: "07:00"}},
		{"缺少冒号", &domain.ShiftWindowConfig{DayStart: "07:00", DayEnd: "1900", NightStart: "19:00", NightEnd: "07:00"}},
		{"空字符串", &domain.ShiftWindowConfig{DayStart: "07:00", DayEnd: "19:00", NightStart: "", NightEnd: "07:00"}},
		{"非数字", &domain.ShiftWindowConfig{DayStart: "07:00", DayEnd: "19:00", NightStart: "19:00", NightEnd: "ab:cd"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// 配置损坏时无论什么时刻都返回未定
			assert.Equal(t, domain.ShiftUndetermined, Classify(minutesOf(10, 0), tt.cfg))
			assert.Equal(t, domain.ShiftUndetermined, Classify(minutesOf(22, 0), tt.cfg))
		})
	}
}

func TestParseClockMinutes(t *testing.T) {
	tests := []struct {
		input string
		want  int
		ok    bool
	}{
		{"00:00", 0, true},
		{"23:59", 1439, true},
		{"07:00", 420, true},
		{"19:00", 1140, true},
		{"24:00", 0, false},
		{"12:60", 0, false},
		{"7:00", 0, false},
		{"07:0", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		got, ok := parseClockMinutes(tt.input)
		assert.Equal(t, tt.ok, ok, "input: %q", tt.input)
		if tt.ok {
			assert.Equal(t, tt.want, got, "input: %q", tt.input)
		}
	}
}
