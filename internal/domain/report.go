package domain

import "time"

type ShiftLabel string

const (
	ShiftDay          ShiftLabel = "白班"
	ShiftNight        ShiftLabel = "夜班"
	ShiftUndetermined ShiftLabel = "未定"
)

// PersonDayReport 是某人某个本地日的考勤行，每次请求都重新计算，不做持久化
type PersonDayReport struct {
	PersonID    int64      `json:"personID"`
	FullName    string     `json:"fullName"`
	Role        string     `json:"role"`
	CardUID     string     `json:"cardUID"`
	FirstScanAt time.Time  `json:"firstScanAt"`
	LastScanAt  time.Time  `json:"lastScanAt"`
	ScanCount   int        `json:"scanCount"`
	HasExit     bool       `json:"hasExit"`
	Shift       ShiftLabel `json:"shift"`
	WorkMinutes int        `json:"workMinutes"`
}

type DailyReportSummary struct {
	TotalPersons int `json:"totalPersons"`
	TotalScans   int `json:"totalScans"`
	DayCount     int `json:"dayCount"`
	NightCount   int `json:"nightCount"`
	NoExitCount  int `json:"noExitCount"`
}

type DailyReport struct {
	Day     string             `json:"day"`
	Summary DailyReportSummary `json:"summary"`
	Rows    []*PersonDayReport `json:"rows"`
}
