package domain

type MailMessage struct {
	Type string `json:"type"`
	To   string `json:"to"`
	Data any    `json:"data"`
}

type DailyReportMailData struct {
	Day     string             `json:"day"`
	Summary DailyReportSummary `json:"summary"`
	Rows    []*PersonDayReport `json:"rows"`
}
