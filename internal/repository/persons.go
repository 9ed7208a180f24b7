package repository

import (
	"context"
	"time"

	"github.com/sysu-ecnc-dev/attendance-tracker/backend/internal/domain"
)

func (r *Repository) GetPersonByID(id int64) (*domain.Person, error) {
	query := `
		SELECT first_name, last_name, role, card_uid, created_at
		FROM persons WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	person := &domain.Person{
		ID: id,
	}

	dst := []any{&person.FirstName, &person.LastName, &person.Role, &person.CardUID, &person.CreatedAt}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	return person, nil
}

// GetPersonByCardUID 通过卡号查找人员，卡号上有唯一索引，不需要全表扫描
func (r *Repository) GetPersonByCardUID(cardUID string) (*domain.Person, error) {
	query := `
		SELECT id, first_name, last_name, role, created_at
		FROM persons WHERE card_uid = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	person := &domain.Person{
		CardUID: cardUID,
	}

	dst := []any{&person.ID, &person.FirstName, &person.LastName, &person.Role, &person.CreatedAt}
	if err := r.dbpool.QueryRowContext(ctx, query, cardUID).Scan(dst...); err != nil {
		return nil, err
	}

	return person, nil
}

func (r *Repository) GetAllPersons() ([]*domain.Person, error) {
	query := `
		SELECT id, first_name, last_name, role, card_uid, created_at FROM persons
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	persons := make([]*domain.Person, 0)
	for rows.Next() {
		person := &domain.Person{}
		dst := []any{&person.ID, &person.FirstName, &person.LastName, &person.Role, &person.CardUID, &person.CreatedAt}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		persons = append(persons, person)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return persons, nil
}

func (r *Repository) CreatePerson(person *domain.Person) error {
	query := `
		INSERT INTO persons (first_name, last_name, role, card_uid)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{person.FirstName, person.LastName, person.Role, person.CardUID}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&person.ID, &person.CreatedAt); err != nil {
		return err
	}

	return nil
}
