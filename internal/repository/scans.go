package repository

import (
	"context"
	"time"

	"github.com/sysu-ecnc-dev/attendance-tracker/backend/internal/domain"
)

// InsertScan 追加一条刷卡记录，ID 按插入顺序由数据库分配。
// 刷卡记录只增不删，单条插入是原子的。
func (r *Repository) InsertScan(scan *domain.ScanEvent) error {
	query := `
		INSERT INTO scans (person_id, card_uid, scanned_at)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{scan.PersonID, scan.CardUID, scan.ScannedAt}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&scan.ID); err != nil {
		return err
	}

	return nil
}

// GetScansBetween 返回 [start, end) 区间内的刷卡记录，按时间和 ID 升序
func (r *Repository) GetScansBetween(start time.Time, end time.Time) ([]*domain.ScanEvent, error) {
	query := `
		SELECT id, person_id, card_uid, scanned_at
		FROM scans
		WHERE scanned_at >= $1 AND scanned_at < $2
		ORDER BY scanned_at, id
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	scans := make([]*domain.ScanEvent, 0)
	for rows.Next() {
		scan := &domain.ScanEvent{}
		dst := []any{&scan.ID, &scan.PersonID, &scan.CardUID, &scan.ScannedAt}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		scans = append(scans, scan)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return scans, nil
}
