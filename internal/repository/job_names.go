package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/sysu-ecnc-dev/attendance-tracker/backend/internal/domain"
)

func (r *Repository) GetAllJobNames() ([]*domain.JobName, error) {
	query := `
		SELECT id, name, created_at FROM job_names ORDER BY name
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	jobNames := make([]*domain.JobName, 0)
	for rows.Next() {
		jobName := &domain.JobName{}
		if err := rows.Scan(&jobName.ID, &jobName.Name, &jobName.CreatedAt); err != nil {
			return nil, err
		}
		jobNames = append(jobNames, jobName)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return jobNames, nil
}

func (r *Repository) CreateJobName(jobName *domain.JobName) error {
	query := `
		INSERT INTO job_names (name)
		VALUES ($1)
		RETURNING id, created_at
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	if err := r.dbpool.QueryRowContext(ctx, query, jobName.Name).Scan(&jobName.ID, &jobName.CreatedAt); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeleteJobName(id int64) error {
	query := `
		DELETE FROM job_names WHERE id = $1
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
