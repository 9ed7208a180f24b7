package handler

import (
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sysu-ecnc-dev/attendance-tracker/backend/internal/domain"
)

func (h *Handler) GetAllPersons(w http.ResponseWriter, r *http.Request) {
	persons, err := h.repository.GetAllPersons()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "获取人员列表成功", persons)
}

func (h *Handler) CreatePerson(w http.ResponseWriter, r *http.Request) {
	var req struct {
		FirstName string `json:"firstName" validate:"required"`
		LastName  string `json:"lastName" validate:"required"`
		Role      string `json:"role" validate:"required"`
		CardUID   string `json:"cardUid" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	person := &domain.Person{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Role:      req.Role,
		CardUID:   req.CardUID,
	}

	if err := h.repository.CreatePerson(person); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr):
			switch pgErr.ConstraintName {
			case "persons_card_uid_key":
				h.errorResponse(w, r, "该卡号已绑定其他人员")
			default:
				h.internalServerError(w, r, err)
			}
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "人员创建成功", person)
}

func (h *Handler) GetPerson(w http.ResponseWriter, r *http.Request) {
	person := r.Context().Value(PersonCtx).(*domain.Person)
	h.successResponse(w, r, "获取人员信息成功", person)
}
