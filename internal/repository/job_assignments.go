package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/sysu-ecnc-dev/attendance-tracker/backend/internal/domain"
)

func (r *Repository) CreateJobAssignment(assignment *domain.JobAssignment) error {
	query := `
		INSERT INTO job_assignments (person_id, job_name, start_time, end_time)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{assignment.PersonID, assignment.JobName, assignment.StartTime, assignment.EndTime}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&assignment.ID, &assignment.CreatedAt); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetJobAssignmentByID(id int64) (*domain.JobAssignment, error) {
	query := `
		SELECT person_id, job_name, start_time, end_time, created_at
		FROM job_assignments WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	assignment := &domain.JobAssignment{
		ID: id,
	}

	dst := []any{&assignment.PersonID, &assignment.JobName, &assignment.StartTime, &assignment.EndTime, &assignment.CreatedAt}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	return assignment, nil
}

// GetJobAssignmentsBetween 返回开工时间落在 [start, end) 区间内的派工记录
func (r *Repository) GetJobAssignmentsBetween(start time.Time, end time.Time) ([]*domain.JobAssignment, error) {
	query := `
		SELECT id, person_id, job_name, start_time, end_time, created_at
		FROM job_assignments
		WHERE start_time >= $1 AND start_time < $2
		ORDER BY start_time, id
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	assignments := make([]*domain.JobAssignment, 0)
	for rows.Next() {
		assignment := &domain.JobAssignment{}
		dst := []any{&assignment.ID, &assignment.PersonID, &assignment.JobName, &assignment.StartTime, &assignment.EndTime, &assignment.CreatedAt}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		assignments = append(assignments, assignment)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return assignments, nil
}

// HasJobAssignmentBetween 判断某人在区间内是否已经有派工，用于同日重复派工检查
func (r *Repository) HasJobAssignmentBetween(personID int64, start time.Time, end time.Time) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM job_assignments
			WHERE person_id = $1 AND start_time >= $2 AND start_time < $3
		)
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	exists := false
	if err := r.dbpool.QueryRowContext(ctx, query, personID, start, end).Scan(&exists); err != nil {
		return false, err
	}

	return exists, nil
}

func (r *Repository) DeleteJobAssignment(id int64) error {
	query := `
		DELETE FROM job_assignments WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	result, err := r.dbpool.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}

	return nil
}
