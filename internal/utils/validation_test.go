package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/sysu-ecnc-dev/attendance-tracker/backend/internal/domain"
)

func validConfig() *domain.ShiftWindowConfig {
	return &domain.ShiftWindowConfig{
		DayStart:   "07:00",
		DayEnd:     "19:00",
		NightStart: "19:00",
		NightEnd:   "07:00",
	}
}

func TestValidateShiftWindowConfig(t *testing.T) {
	assert.NoError(t, ValidateShiftWindowConfig(validConfig()))

	// 边界值
	assert.NoError(t, ValidateShiftWindowConfig(&domain.ShiftWindowConfig{
		DayStart: "00:00", DayEnd: "23:59", NightStart: "23:59", NightEnd: "00:00",
	}))
}

func TestValidateShiftWindowConfig_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(cfg *domain.ShiftWindowConfig)
	}{
		{"小时越界", func(cfg *domain.ShiftWindowConfig) { cfg.DayStart = "24:00" }},
		{"分钟越界", func(cfg *domain.ShiftWindowConfig) { cfg.DayEnd = "19:60" }},
		{"缺少前导零", func(cfg *domain.ShiftWindowConfig) { cfg.NightStart = "7:00" }},
		{"带秒", func(cfg *domain.ShiftWindowConfig) { cfg.NightEnd = "07:00:00" }},
		{"空字符串", func(cfg *domain.ShiftWindowConfig) { cfg.DayStart = "" }},
		{"非数字", func(cfg *domain.ShiftWindowConfig) { cfg.NightEnd = "ab:cd" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			assert.Error(t, ValidateShiftWindowConfig(cfg))
		})
	}
}
