package repository

import (
	"context"
	"time"

	"github.com/sysu-ecnc-dev/attendance-tracker/backend/internal/domain"
)

// GetShiftConfig 读取当前生效的班次配置。配置是单行记录，报表计算每次请求都要
// 重新读取，不允许在进程内缓存。
func (r *Repository) GetShiftConfig() (*domain.ShiftWindowConfig, error) {
	query := `
		SELECT day_start, day_end, night_start, night_end
		FROM shift_config WHERE id = 1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	cfg := &domain.ShiftWindowConfig{}
	dst := []any{&cfg.DayStart, &cfg.DayEnd, &cfg.NightStart, &cfg.NightEnd}
	if err := r.dbpool.QueryRowContext(ctx, query).Scan(dst...); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ReplaceShiftConfig 整体替换班次配置，后写覆盖先写，不做版本检查
func (r *Repository) ReplaceShiftConfig(cfg *domain.ShiftWindowConfig) error {
	query := `
		INSERT INTO shift_config (id, day_start, day_end, night_start, night_end)
		VALUES (1, $1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE SET
			day_start = EXCLUDED.day_start,
			day_end = EXCLUDED.day_end,
			night_start = EXCLUDED.night_start,
			night_end = EXCLUDED.night_end
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{cfg.DayStart, cfg.DayEnd, cfg.NightStart, cfg.NightEnd}
	if _, err := r.dbpool.ExecContext(ctx, query, args...); err != nil {
		return err
	}

	return nil
}
