package handler

import (
	"database/sql"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sysu-ecnc-dev/attendance-tracker/backend/internal/domain"
)

func (h *Handler) GetAllJobNames(w http.ResponseWriter, r *http.Request) {
	jobNames, err := h.repository.GetAllJobNames()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "获取工种列表成功", jobNames)
}

func (h *Handler) CreateJobName(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	jobName := &domain.JobName{
		Name: req.Name,
	}

	if err := h.repository.CreateJobName(jobName); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr):
			switch pgErr.ConstraintName {
			case "job_names_name_key":
				h.errorResponse(w, r, "工种名称已存在")
			default:
				h.internalServerError(w, r, err)
			}
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "工种创建成功", jobName)
}

func (h *Handler) DeleteJobName(w http.ResponseWriter, r *http.Request) {
	jobNameIDParam := chi.URLParam(r, "id")
	jobNameID, err := strconv.ParseInt(jobNameIDParam, 10, 64)
	if err != nil {
		h.errorResponse(w, r, "工种ID无效")
		return
	}

	if err := h.repository.DeleteJobName(jobNameID); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "要删除的工种不存在")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "删除工种成功", nil)
}
