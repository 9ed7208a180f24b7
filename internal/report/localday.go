package report

import (
	"errors"
	"time"
)

const localDayLayout = "2006-01-02"

// ErrInvalidDate 表示请求的日期字符串不是合法的 YYYY-MM-DD
var ErrInvalidDate = errors.New("无效的日期格式，应为 YYYY-MM-DD")

// ParseLocalDay 严格校验日期字符串，返回规范化后的本地日
func ParseLocalDay(day string) (string, error) {
	t, err := time.Parse(localDayLayout, day)
	if err != nil {
		return "", ErrInvalidDate
	}
	return t.Format(localDayLayout), nil
}

// LocalDayOf 计算某个时刻在固定本地时区偏移下所属的本地日
func LocalDayOf(t time.Time, offset time.Duration) string {
	return t.UTC().Add(offset).Format(localDayLayout)
}

// UTCRangeForLocalDay 计算覆盖整个本地日的 UTC 半开区间 [start, end)。
// 注意本地日的边界和 UTC 日的边界并不对齐：偏移为 +3 时，本地日从前一天的
// 21:00 UTC 开始，因此粗查询区间必须按偏移量整体平移。区间内的记录仍然要用
// LocalDayOf 做精确的归属判断。
func UTCRangeForLocalDay(day string, offset time.Duration) (time.Time, time.Time, error) {
	t, err := time.Parse(localDayLayout, day)
	if err != nil {
		return time.Time{}, time.Time{}, ErrInvalidDate
	}

	start := t.Add(-offset)
	return start, start.Add(24 * time.Hour), nil
}

// localMinutesOf 计算某个时刻在本地时区下距离本地午夜的分钟数（0~1439）
func localMinutesOf(t time.Time, offset time.Duration) int {
	local := t.UTC().Add(offset)
	return local.Hour()*60 + local.Minute()
}
