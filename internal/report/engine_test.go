package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sysu-ecnc-dev/attendance-tracker/backend/internal/domain"
)

func testShiftConfig() *domain.ShiftWindowConfig {
	return &domain.ShiftWindowConfig{
		DayStart:   "07:00",
		DayEnd:     "19:00",
		NightStart: "19:00",
		NightEnd:   "07:00",
	}
}

func testPersons() []*domain.Person {
	return []*domain.Person{
		{ID: 1, FirstName: "王", LastName: "伟", Role: "仓管员", CardUID: "CARD_WANGWEI"},
		{ID: 2, FirstName: "李", LastName: "静", Role: "管道工", CardUID: "CARD_LIJING"},
		{ID: 3, FirstName: "张", LastName: "磊", Role: "电工", CardUID: "CARD_ZHANGLEI"},
	}
}

func TestEngine_InvalidDate(t *testing.T) {
	_, err := NewEngine("2024-13-01", utcPlus3, testShiftConfig(), nil, nil)
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestEngine_SingleScanDay(t *testing.T) {
	scans := []*domain.ScanEvent{
		{ID: 1, PersonID: 1, CardUID: "CARD_WANGWEI", ScannedAt: time.Date(2024, 1, 10, 8, 0, 0, 0, time.UTC)},
	}

	engine, err := NewEngine("2024-01-10", utcPlus3, testShiftConfig(), testPersons(), scans)
	require.NoError(t, err)

	rep := engine.Build()
	require.Len(t, rep.Rows, 1)

	row := rep.Rows[0]
	assert.Equal(t, int64(1), row.PersonID)
	assert.Equal(t, 1, row.ScanCount)
	assert.False(t, row.HasExit)
	assert.Equal(t, 0, row.WorkMinutes)
	assert.True(t, row.FirstScanAt.Equal(row.LastScanAt))

	assert.Equal(t, 1, rep.Summary.TotalPersons)
	assert.Equal(t, 1, rep.Summary.TotalScans)
	assert.Equal(t, 1, rep.Summary.NoExitCount)
}

func TestEngine_TwoScansSameLocalDay(t *testing.T) {
	// UTC+3 下 04:00Z 和 12:30Z 分别是本地 07:00 和 15:30，同属 2024-01-10
	scans := []*domain.ScanEvent{
		{ID: 1, PersonID: 1, CardUID: "CARD_WANGWEI", ScannedAt: time.Date(2024, 1, 10, 4, 0, 0, 0, time.UTC)},
		{ID: 2, PersonID: 1, CardUID: "CARD_WANGWEI", ScannedAt: time.Date(2024, 1, 10, 12, 30, 0, 0, time.UTC)},
	}

	engine, err := NewEngine("2024-01-10", utcPlus3, testShiftConfig(), testPersons(), scans)
	require.NoError(t, err)

	rep := engine.Build()
	require.Len(t, rep.Rows, 1)

	row := rep.Rows[0]
	assert.Equal(t, 510, row.WorkMinutes)
	assert.True(t, row.HasExit)
	assert.Equal(t, 2, row.ScanCount)
	// 首次刷卡本地 07:00 落在白班时段 [07:00, 19:00)
	assert.Equal(t, domain.ShiftDay, row.Shift)

	assert.Equal(t, 1, rep.Summary.DayCount)
	assert.Equal(t, 0, rep.Summary.NightCount)
	assert.Equal(t, 0, rep.Summary.NoExitCount)
}

func TestEngine_ShiftUsesFirstScanOnly(t *testing.T) {
	// 首次刷卡在夜班时段，最后一次在白班时段，班次只看首次刷卡
	scans := []*domain.ScanEvent{
		{ID: 1, PersonID: 1, CardUID: "CARD_WANGWEI", ScannedAt: time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)},  // 本地 03:00
		{ID: 2, PersonID: 1, CardUID: "CARD_WANGWEI", ScannedAt: time.Date(2024, 1, 10, 10, 0, 0, 0, time.UTC)}, // 本地 13:00
	}

	engine, err := NewEngine("2024-01-10", utcPlus3, testShiftConfig(), testPersons(), scans)
	require.NoError(t, err)

	rep := engine.Build()
	require.Len(t, rep.Rows, 1)
	assert.Equal(t, domain.ShiftNight, rep.Rows[0].Shift)
}

func TestEngine_UnknownPersonScanCountedButRowless(t *testing.T) {
	scans := []*domain.ScanEvent{
		{ID: 1, PersonID: 1, CardUID: "CARD_WANGWEI", ScannedAt: time.Date(2024, 1, 10, 5, 0, 0, 0, time.UTC)},
		{ID: 2, PersonID: 99, CardUID: "CARD_UNKNOWN", ScannedAt: time.Date(2024, 1, 10, 6, 0, 0, 0, time.UTC)},
	}

	engine, err := NewEngine("2024-01-10", utcPlus3, testShiftConfig(), testPersons(), scans)
	require.NoError(t, err)

	rep := engine.Build()
	// 目录中不存在的人员不产生报表行，但刷卡仍计入总数
	require.Len(t, rep.Rows, 1)
	assert.Equal(t, int64(1), rep.Rows[0].PersonID)
	assert.Equal(t, 2, rep.Summary.TotalScans)
	assert.Equal(t, 1, rep.Summary.TotalPersons)
}

func TestEngine_FiltersOtherLocalDays(t *testing.T) {
	scans := []*domain.ScanEvent{
		// 20:30Z 在 UTC+3 下是本地 23:30，属于 2024-01-10
		{ID: 1, PersonID: 1, CardUID: "CARD_WANGWEI", ScannedAt: time.Date(2024, 1, 10, 20, 30, 0, 0, time.UTC)},
		// 21:30Z 在 UTC+3 下是本地次日 00:30，属于 2024-01-11
		{ID: 2, PersonID: 2, CardUID: "CARD_LIJING", ScannedAt: time.Date(2024, 1, 10, 21, 30, 0, 0, time.UTC)},
	}

	engine, err := NewEngine("2024-01-10", utcPlus3, testShiftConfig(), testPersons(), scans)
	require.NoError(t, err)

	rep := engine.Build()
	require.Len(t, rep.Rows, 1)
	assert.Equal(t, int64(1), rep.Rows[0].PersonID)
	assert.Equal(t, 1, rep.Summary.TotalScans)
}

func TestEngine_RowsSortedByPersonID(t *testing.T) {
	// 打乱插入顺序，报表行仍按人员 ID 升序
	scans := []*domain.ScanEvent{
		{ID: 1, PersonID: 3, CardUID: "CARD_ZHANGLEI", ScannedAt: time.Date(2024, 1, 10, 5, 0, 0, 0, time.UTC)},
		{ID: 2, PersonID: 1, CardUID: "CARD_WANGWEI", ScannedAt: time.Date(2024, 1, 10, 6, 0, 0, 0, time.UTC)},
		{ID: 3, PersonID: 2, CardUID: "CARD_LIJING", ScannedAt: time.Date(2024, 1, 10, 4, 0, 0, 0, time.UTC)},
	}

	engine, err := NewEngine("2024-01-10", utcPlus3, testShiftConfig(), testPersons(), scans)
	require.NoError(t, err)

	rep := engine.Build()
	require.Len(t, rep.Rows, 3)
	assert.Equal(t, int64(1), rep.Rows[0].PersonID)
	assert.Equal(t, int64(2), rep.Rows[1].PersonID)
	assert.Equal(t, int64(3), rep.Rows[2].PersonID)
}

func TestEngine_TieBrokenByScanID(t *testing.T) {
	instant := time.Date(2024, 1, 10, 5, 0, 0, 0, time.UTC)
	scans := []*domain.ScanEvent{
		{ID: 2, PersonID: 1, CardUID: "CARD_WANGWEI", ScannedAt: instant},
		{ID: 1, PersonID: 1, CardUID: "CARD_WANGWEI", ScannedAt: instant},
		{ID: 3, PersonID: 1, CardUID: "CARD_WANGWEI", ScannedAt: instant.Add(time.Hour)},
	}

	engine, err := NewEngine("2024-01-10", utcPlus3, testShiftConfig(), testPersons(), scans)
	require.NoError(t, err)

	rep := engine.Build()
	require.Len(t, rep.Rows, 1)

	row := rep.Rows[0]
	assert.Equal(t, 3, row.ScanCount)
	assert.True(t, row.FirstScanAt.Equal(instant))
	assert.Equal(t, 60, row.WorkMinutes)
}

func TestEngine_Deterministic(t *testing.T) {
	scans := []*domain.ScanEvent{
		{ID: 1, PersonID: 2, CardUID: "CARD_LIJING", ScannedAt: time.Date(2024, 1, 10, 4, 0, 0, 0, time.UTC)},
		{ID: 2, PersonID: 1, CardUID: "CARD_WANGWEI", ScannedAt: time.Date(2024, 1, 10, 5, 0, 0, 0, time.UTC)},
		{ID: 3, PersonID: 2, CardUID: "CARD_LIJING", ScannedAt: time.Date(2024, 1, 10, 14, 0, 0, 0, time.UTC)},
	}

	buildOnce := func() *domain.DailyReport {
		engine, err := NewEngine("2024-01-10", utcPlus3, testShiftConfig(), testPersons(), scans)
		require.NoError(t, err)
		return engine.Build()
	}

	// 相同的输入必须产生完全一致的输出
	assert.Equal(t, buildOnce(), buildOnce())
}

func TestEngine_EmptyDay(t *testing.T) {
	engine, err := NewEngine("2024-01-10", utcPlus3, testShiftConfig(), testPersons(), nil)
	require.NoError(t, err)

	rep := engine.Build()
	assert.Empty(t, rep.Rows)
	assert.Equal(t, domain.DailyReportSummary{}, rep.Summary)
}

func TestEngine_ZeroInstantDiscarded(t *testing.T) {
	scans := []*domain.ScanEvent{
		{ID: 1, PersonID: 1, CardUID: "CARD_WANGWEI"},
	}

	engine, err := NewEngine("2024-01-10", utcPlus3, testShiftConfig(), testPersons(), scans)
	require.NoError(t, err)

	rep := engine.Build()
	assert.Empty(t, rep.Rows)
	assert.Equal(t, 0, rep.Summary.TotalScans)
}
