package handler

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/sysu-ecnc-dev/attendance-tracker/backend/internal/domain"
	"github.com/sysu-ecnc-dev/attendance-tracker/backend/internal/report"
)

func (h *Handler) Hello(w http.ResponseWriter, r *http.Request) {
	h.successResponse(w, r, "考勤系统运行中", nil)
}

func (h *Handler) CreateScan(w http.ResponseWriter, r *http.Request) {
	var req struct {
		CardUID   string `json:"cardUid" validate:"required"`
		ScannedAt string `json:"scannedAt" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	scannedAt, err := time.Parse(time.RFC3339, req.ScannedAt)
	if err != nil {
		h.badRequest(w, r, errors.New("无法解析刷卡时间，应为 RFC3339 格式"))
		return
	}

	// 刷卡时卡号必须已经绑定人员
	person, err := h.repository.GetPersonByCardUID(req.CardUID)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "该卡片未绑定任何人员")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	// NFC 读卡器可能对同一张卡连续触发多次读取，用 redis 做防抖
	ctx, cancel := context.WithTimeout(r.Context(), time.Duration(h.config.Redis.OperationTimeout)*time.Second)
	defer cancel()

	debounceKey := fmt.Sprintf("scan_debounce_%s", req.CardUID)
	firstRead, err := h.redisClient.SetNX(ctx, debounceKey, 1, time.Duration(h.config.Scan.DebounceWindow)*time.Second).Result()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}
	if !firstRead {
		h.collector.RecordScanDebounced()
		h.errorResponse(w, r, "重复刷卡，请稍后再试")
		return
	}

	scan := &domain.ScanEvent{
		PersonID:  person.ID,
		CardUID:   req.CardUID,
		ScannedAt: scannedAt.UTC(),
	}
	if err := h.repository.InsertScan(scan); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.collector.RecordScanIngested()

	h.successResponse(w, r, "刷卡成功", struct {
		Person *domain.Person    `json:"person"`
		Scan   *domain.ScanEvent `json:"scan"`
	}{
		Person: person,
		Scan:   scan,
	})
}

// GetTodayScans 返回今天（本地日）刷过卡的人员和各自的首次刷卡时间
func (h *Handler) GetTodayScans(w http.ResponseWriter, r *http.Request) {
	offset := h.reportOffset()
	day := report.LocalDayOf(time.Now(), offset)

	rep, err := h.buildDailyReport(day, offset)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	type todayScanRow struct {
		PersonID    int64     `json:"personID"`
		FullName    string    `json:"fullName"`
		Role        string    `json:"role"`
		FirstScanAt time.Time `json:"firstScanAt"`
	}

	rows := make([]todayScanRow, 0, len(rep.Rows))
	for _, row := range rep.Rows {
		rows = append(rows, todayScanRow{
			PersonID:    row.PersonID,
			FullName:    row.FullName,
			Role:        row.Role,
			FirstScanAt: row.FirstScanAt,
		})
	}

	h.successResponse(w, r, "获取今日刷卡人员成功", rows)
}
