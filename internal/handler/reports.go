package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sysu-ecnc-dev/attendance-tracker/backend/internal/domain"
	"github.com/sysu-ecnc-dev/attendance-tracker/backend/internal/report"
)

// buildDailyReport 构建某个本地日的考勤日报。班次配置每次调用都重新读取，
// 因为配置可能在两次请求之间被替换。
func (h *Handler) buildDailyReport(day string, offset time.Duration) (*domain.DailyReport, error) {
	// 在访问存储之前先校验日期
	day, err := report.ParseLocalDay(day)
	if err != nil {
		return nil, err
	}

	cfg, err := h.repository.GetShiftConfig()
	if err != nil {
		return nil, err
	}

	start, end, err := report.UTCRangeForLocalDay(day, offset)
	if err != nil {
		return nil, err
	}

	scans, err := h.repository.GetScansBetween(start, end)
	if err != nil {
		return nil, err
	}

	persons, err := h.repository.GetAllPersons()
	if err != nil {
		return nil, err
	}

	engine, err := report.NewEngine(day, offset, cfg, persons, scans)
	if err != nil {
		return nil, err
	}

	return engine.Build(), nil
}

func (h *Handler) GetDailyReport(w http.ResponseWriter, r *http.Request) {
	offset := h.reportOffset()

	day := r.URL.Query().Get("day")
	if day == "" {
		day = report.LocalDayOf(time.Now(), offset)
	}

	rep, err := h.buildDailyReport(day, offset)
	if err != nil {
		switch {
		case errors.Is(err, report.ErrInvalidDate):
			h.badRequest(w, r, err)
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.collector.RecordReportBuilt()

	h.successResponse(w, r, "获取考勤日报成功", rep)
}

// EmailDailyReport 构建日报并将其加入邮件发送队列，由 mail worker 实际发送
func (h *Handler) EmailDailyReport(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Day string `json:"day"`
		To  string `json:"to" validate:"required,email"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	offset := h.reportOffset()
	if req.Day == "" {
		req.Day = report.LocalDayOf(time.Now(), offset)
	}

	rep, err := h.buildDailyReport(req.Day, offset)
	if err != nil {
		switch {
		case errors.Is(err, report.ErrInvalidDate):
			h.badRequest(w, r, err)
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	mailMessage := domain.MailMessage{
		Type: "daily_report",
		To:   req.To,
		Data: domain.DailyReportMailData{
			Day:     rep.Day,
			Summary: rep.Summary,
			Rows:    rep.Rows,
		},
	}

	mailData, err := json.Marshal(mailMessage)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(h.config.RabbitMQ.PublishTimeout)*time.Second)
	defer cancel()

	if err := h.mailChannel.PublishWithContext(
		ctx,
		"",
		"report_email_queue",
		true,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        mailData,
		},
	); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.collector.RecordReportMailQueued()

	h.successResponse(w, r, "日报邮件已加入发送队列", nil)
}
