package domain

// ShiftWindowConfig 是全系统唯一的班次时段配置，四个字段均为 HH:MM 格式的时刻。
// 夜班时段允许跨越午夜（nightStart > nightEnd），白班时段不允许。
type ShiftWindowConfig struct {
	DayStart   string `json:"dayStart"`
	DayEnd     string `json:"dayEnd"`
	NightStart string `json:"nightStart"`
	NightEnd   string `json:"nightEnd"`
}
