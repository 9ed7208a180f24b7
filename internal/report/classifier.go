package report

import (
	"github.com/sysu-ecnc-dev/attendance-tracker/backend/internal/domain"
)

// parseClockMinutes 把 HH:MM 解析成距离午夜的分钟数，小时 00~23，分钟 00~59
func parseClockMinutes(s string) (int, bool) {
	if len(s) != 5 || s[2] != ':' {
		return 0, false
	}

	for _, i := range []int{0, 1, 3, 4} {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
	}

	hour := int(s[0]-'0')*10 + int(s[1]-'0')
	minute := int(s[3]-'0')*10 + int(s[4]-'0')
	if hour > 23 || minute > 59 {
		return 0, false
	}

	return hour*60 + minute, true
}

// Classify 根据首次刷卡时刻（本地分钟数）和当前班次配置判定班次。
// 判定顺序：白班优先于夜班。白班时段是半开区间 [dayStart, dayEnd)，不允许跨越
// 午夜（dayStart > dayEnd 时白班分支永远不命中，这是有意保留的行为）；夜班时段
// 允许跨越午夜。配置中任意一个时刻非法时直接返回未定。
func Classify(minutes int, cfg *domain.ShiftWindowConfig) domain.ShiftLabel {
	dayStart, ok1 := parseClockMinutes(cfg.DayStart)
	dayEnd, ok2 := parseClockMinutes(cfg.DayEnd)
	nightStart, ok3 := parseClockMinutes(cfg.NightStart)
	nightEnd, ok4 := parseClockMinutes(cfg.NightEnd)
	if !ok1 || !ok2 || !ok3 || !ok4 {
		return domain.ShiftUndetermined
	}

	if dayStart <= dayEnd && dayStart <= minutes && minutes < dayEnd {
		return domain.ShiftDay
	}

	if nightStart <= nightEnd {
		if nightStart <= minutes && minutes < nightEnd {
			return domain.ShiftNight
		}
	} else if minutes >= nightStart || minutes < nightEnd {
		// 夜班跨越午夜，例如 19:00~07:00
		return domain.ShiftNight
	}

	return domain.ShiftUndetermined
}
