package handler

import (
	"net/http"

	"github.com/sysu-ecnc-dev/attendance-tracker/backend/internal/domain"
	"github.com/sysu-ecnc-dev/attendance-tracker/backend/internal/utils"
)

func (h *Handler) GetShiftConfig(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.repository.GetShiftConfig()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "获取班次配置成功", cfg)
}

// ReplaceShiftConfig 整体替换班次配置，四个时刻必须全部提供且全部合法
func (h *Handler) ReplaceShiftConfig(w http.ResponseWriter, r *http.Request) {
	var req struct {
		DayStart   string `json:"dayStart" validate:"required"`
		DayEnd     string `json:"dayEnd" validate:"required"`
		NightStart string `json:"nightStart" validate:"required"`
		NightEnd   string `json:"nightEnd" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	cfg := &domain.ShiftWindowConfig{
		DayStart:   req.DayStart,
		DayEnd:     req.DayEnd,
		NightStart: req.NightStart,
		NightEnd:   req.NightEnd,
	}

	if err := utils.ValidateShiftWindowConfig(cfg); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if err := h.repository.ReplaceShiftConfig(cfg); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "更新班次配置成功", cfg)
}
