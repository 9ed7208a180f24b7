package utils

import (
	"fmt"
	"regexp"

	"github.com/sysu-ecnc-dev/attendance-tracker/backend/internal/domain"
)

var clockPattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// ValidateShiftWindowConfig 检查班次配置的四个时刻是否都是合法的 HH:MM。
// 四个字段要么全部合法要么整体拒绝，不支持部分更新。
func ValidateShiftWindowConfig(cfg *domain.ShiftWindowConfig) error {
	fields := []struct {
		name  string
		value string
	}{
		{"白班开始时间", cfg.DayStart},
		{"白班结束时间", cfg.DayEnd},
		{"夜班开始时间", cfg.NightStart},
		{"夜班结束时间", cfg.NightEnd},
	}

	for _, field := range fields {
		if !clockPattern.MatchString(field.value) {
			return fmt.Errorf("%s 的格式必须为 HH:MM（小时 00~23，分钟 00~59）", field.name)
		}
	}

	return nil
}
