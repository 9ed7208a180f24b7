package domain

import "time"

// ScanEvent 是一次 NFC 刷卡记录，创建后不可修改
type ScanEvent struct {
	ID        int64     `json:"id"`
	PersonID  int64     `json:"personID"`
	CardUID   string    `json:"cardUID"`
	ScannedAt time.Time `json:"scannedAt"`
}
