package handler

import (
	"database/sql"
	"errors"
	"net/http"
	"time"

	"github.com/sysu-ecnc-dev/attendance-tracker/backend/internal/domain"
	"github.com/sysu-ecnc-dev/attendance-tracker/backend/internal/report"
)

type jobAssignmentRow struct {
	ID        int64     `json:"id"`
	PersonID  int64     `json:"personID"`
	FullName  string    `json:"fullName"`
	Role      string    `json:"role"`
	JobName   string    `json:"jobName"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
}

func (h *Handler) CreateJobAssignment(w http.ResponseWriter, r *http.Request) {
	var req struct {
		PersonID  int64  `json:"personId" validate:"required"`
		JobName   string `json:"jobName" validate:"required"`
		StartTime string `json:"startTime" validate:"required"`
		EndTime   string `json:"endTime" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	startTime, err := time.Parse(time.RFC3339, req.StartTime)
	if err != nil {
		h.badRequest(w, r, errors.New("无法解析开工时间，应为 RFC3339 格式"))
		return
	}
	endTime, err := time.Parse(time.RFC3339, req.EndTime)
	if err != nil {
		h.badRequest(w, r, errors.New("无法解析完工时间，应为 RFC3339 格式"))
		return
	}
	if endTime.Before(startTime) {
		h.badRequest(w, r, errors.New("完工时间不能早于开工时间"))
		return
	}

	person, err := h.repository.GetPersonByID(req.PersonID)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "人员不存在")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	// 同一个人每个本地日只能有一条派工，重复派工检查按本地日边界进行
	offset := h.reportOffset()
	day := report.LocalDayOf(startTime, offset)
	dayStart, dayEnd, err := report.UTCRangeForLocalDay(day, offset)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	exists, err := h.repository.HasJobAssignmentBetween(person.ID, dayStart, dayEnd)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}
	if exists {
		h.errorResponse(w, r, "该人员当日已有派工")
		return
	}

	assignment := &domain.JobAssignment{
		PersonID:  person.ID,
		JobName:   req.JobName,
		StartTime: startTime.UTC(),
		EndTime:   endTime.UTC(),
	}
	if err := h.repository.CreateJobAssignment(assignment); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "派工成功", jobAssignmentRow{
		ID:        assignment.ID,
		PersonID:  person.ID,
		FullName:  person.FullName(),
		Role:      person.Role,
		JobName:   assignment.JobName,
		StartTime: assignment.StartTime,
		EndTime:   assignment.EndTime,
	})
}

// GetJobAssignments 返回某个本地日（默认今天）的派工列表
func (h *Handler) GetJobAssignments(w http.ResponseWriter, r *http.Request) {
	offset := h.reportOffset()

	day := r.URL.Query().Get("day")
	if day == "" {
		day = report.LocalDayOf(time.Now(), offset)
	}

	dayStart, dayEnd, err := report.UTCRangeForLocalDay(day, offset)
	if err != nil {
		switch {
		case errors.Is(err, report.ErrInvalidDate):
			h.badRequest(w, r, err)
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	assignments, err := h.repository.GetJobAssignmentsBetween(dayStart, dayEnd)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	persons, err := h.repository.GetAllPersons()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}
	personMap := make(map[int64]*domain.Person, len(persons))
	for _, person := range persons {
		personMap[person.ID] = person
	}

	rows := make([]jobAssignmentRow, 0, len(assignments))
	for _, assignment := range assignments {
		person, exists := personMap[assignment.PersonID]
		if !exists {
			continue
		}
		rows = append(rows, jobAssignmentRow{
			ID:        assignment.ID,
			PersonID:  assignment.PersonID,
			FullName:  person.FullName(),
			Role:      person.Role,
			JobName:   assignment.JobName,
			StartTime: assignment.StartTime,
			EndTime:   assignment.EndTime,
		})
	}

	h.successResponse(w, r, "获取派工列表成功", rows)
}

func (h *Handler) DeleteJobAssignment(w http.ResponseWriter, r *http.Request) {
	assignment := r.Context().Value(JobAssignmentCtx).(*domain.JobAssignment)

	if err := h.repository.DeleteJobAssignment(assignment.ID); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "要删除的派工记录不存在")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "删除派工成功", nil)
}
