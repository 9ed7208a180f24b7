package report

import (
	"math"
	"slices"
	"sort"
	"time"

	"github.com/sysu-ecnc-dev/attendance-tracker/backend/internal/domain"
)

// Engine 基于一次快照计算某个本地日的考勤日报。传入的数据在计算期间不会被修改，
// 因此并发地构建多个日报之间互不影响。
type Engine struct {
	day     string
	offset  time.Duration
	cfg     *domain.ShiftWindowConfig
	persons map[int64]*domain.Person
	scans   []*domain.ScanEvent
}

// NewEngine 创建日报计算引擎。scans 应为粗查询区间内的刷卡记录（精确的本地日
// 归属由引擎自己判断），persons 为人员目录的快照，cfg 为当前生效的班次配置。
func NewEngine(day string, offset time.Duration, cfg *domain.ShiftWindowConfig, persons []*domain.Person, scans []*domain.ScanEvent) (*Engine, error) {
	canonical, err := ParseLocalDay(day)
	if err != nil {
		return nil, err
	}

	personMap := make(map[int64]*domain.Person, len(persons))
	for _, p := range persons {
		personMap[p.ID] = p
	}

	return &Engine{
		day:     canonical,
		offset:  offset,
		cfg:     cfg,
		persons: personMap,
		scans:   scans,
	}, nil
}

func (e *Engine) Build() *domain.DailyReport {
	// 精确过滤出归属于这个本地日的刷卡记录，时间缺失的记录直接丢弃
	filtered := make([]*domain.ScanEvent, 0, len(e.scans))
	for _, scan := range e.scans {
		if scan.ScannedAt.IsZero() {
			continue
		}
		if LocalDayOf(scan.ScannedAt, e.offset) != e.day {
			continue
		}
		filtered = append(filtered, scan)
	}

	// 按人员分组
	groups := make(map[int64][]*domain.ScanEvent)
	for _, scan := range filtered {
		groups[scan.PersonID] = append(groups[scan.PersonID], scan)
	}

	personIDs := make([]int64, 0, len(groups))
	for personID := range groups {
		personIDs = append(personIDs, personID)
	}
	// 报表行按人员 ID 升序输出，保证相同输入产生完全一致的结果
	slices.Sort(personIDs)

	rep := &domain.DailyReport{
		Day:  e.day,
		Rows: make([]*domain.PersonDayReport, 0, len(personIDs)),
	}
	rep.Summary.TotalScans = len(filtered)

	for _, personID := range personIDs {
		person, exists := e.persons[personID]
		if !exists {
			// 目录中找不到对应人员时丢弃这一行，但上面的 TotalScans 已经计入了
			// 这些刷卡记录
			continue
		}

		scans := groups[personID]
		sort.Slice(scans, func(i, j int) bool {
			if !scans[i].ScannedAt.Equal(scans[j].ScannedAt) {
				return scans[i].ScannedAt.Before(scans[j].ScannedAt)
			}
			// 刷卡记录的 ID 按插入顺序分配，时间相同时用 ID 保证稳定排序
			return scans[i].ID < scans[j].ID
		})

		first := scans[0]
		last := scans[len(scans)-1]

		workMinutes := 0
		if len(scans) > 1 {
			minutes := int(math.Round(last.ScannedAt.Sub(first.ScannedAt).Minutes()))
			if minutes > 0 {
				workMinutes = minutes
			}
		}

		row := &domain.PersonDayReport{
			PersonID:    person.ID,
			FullName:    person.FullName(),
			Role:        person.Role,
			CardUID:     person.CardUID,
			FirstScanAt: first.ScannedAt,
			LastScanAt:  last.ScannedAt,
			ScanCount:   len(scans),
			HasExit:     len(scans) > 1,
			Shift:       Classify(localMinutesOf(first.ScannedAt, e.offset), e.cfg),
			WorkMinutes: workMinutes,
		}
		rep.Rows = append(rep.Rows, row)

		switch row.Shift {
		case domain.ShiftDay:
			rep.Summary.DayCount++
		case domain.ShiftNight:
			rep.Summary.NightCount++
		}
		if !row.HasExit {
			rep.Summary.NoExitCount++
		}
	}

	rep.Summary.TotalPersons = len(rep.Rows)

	return rep
}
