package resolver

import (
	"fmt"
	"sort"
	"time"

	"github.com/sysu-ecnc-dev/board-timeline/backend/internal/busday"
	"github.com/sysu-ecnc-dev/board-timeline/backend/internal/domain"
)

type Resolver struct {
	blocks     []*domain.Block
	events     []*domain.Event
	draggedIDs map[int64]bool
	weeksDelta int32
	lanes      map[int64][]*laneBlock // {projectID: 按开始日期排序的泳道}
}

func New(blocks []*domain.Block, events []*domain.Event, draggedIDs []int64, weeksDelta int32) (*Resolver, error) {
	r := &Resolver{
		blocks:     blocks,
		events:     events,
		draggedIDs: make(map[int64]bool),
		weeksDelta: weeksDelta,
		lanes:      make(map[int64][]*laneBlock),
	}

	for _, id := range draggedIDs {
		var block *domain.Block = nil
		for _, b := range blocks {
			if b.ID == id {
				block = b
				break
			}
		}

		if block == nil {
			return nil, fmt.Errorf("块 %d 不在传入的 blocks 数组中", id)
		}

		r.draggedIDs[id] = true
	}

	// 把块按项目归入各自的泳道，冲突只在同一条泳道内消解
	for _, b := range blocks {
		r.lanes[b.ProjectID] = append(r.lanes[b.ProjectID], &laneBlock{
			block:     b,
			startWeek: busday.MondayOf(b.StartDate),
			delta:     0,
			dragged:   r.draggedIDs[b.ID],
		})
	}

	return r, nil
}

func (r *Resolver) Resolve() (*Result, error) {
	result := &Result{
		BlockMoves: []domain.BlockMove{},
		EventMoves: []domain.EventMove{},
	}

	// 没有净移动或者没有拖拽任何块时什么都不做
	if r.weeksDelta == 0 || len(r.draggedIDs) == 0 {
		return result, nil
	}

	for _, lane := range r.lanes {
		// 没有被拖拽的块的泳道完全不动
		if !laneContainsDragged(lane) {
			continue
		}

		r.sortLane(lane)

		if err := r.resolveLane(lane); err != nil {
			return nil, err
		}

		for _, lb := range lane {
			if lb.delta == 0 {
				continue
			}

			days := int(lb.delta) * 5
			result.BlockMoves = append(result.BlockMoves, domain.BlockMove{
				BlockID:      lb.block.ID,
				WeeksDelta:   lb.delta,
				NewStartDate: busday.AddBusinessDays(lb.block.StartDate, days),
				NewEndDate:   busday.AddBusinessDays(lb.block.EndDate, days),
			})
		}
	}

	sort.Slice(result.BlockMoves, func(i, j int) bool {
		return result.BlockMoves[i].BlockID < result.BlockMoves[j].BlockID
	})

	r.moveCoveredEvents(result)

	return result, nil
}

// moveCoveredEvents 计算拖拽的副作用：开始日期落在被拖拽块（不含被推开的块）
// 覆盖范围内的事件，跟随拖拽按天移动，事件不做周对齐
func (r *Resolver) moveCoveredEvents(result *Result) {
	var spanStart, spanEnd time.Time
	found := false

	for _, b := range r.blocks {
		if !r.draggedIDs[b.ID] {
			continue
		}

		start := busday.Truncate(b.StartDate)
		end := busday.Truncate(b.EndDate)

		if !found {
			spanStart = start
			spanEnd = end
			found = true
			continue
		}
		if start.Before(spanStart) {
			spanStart = start
		}
		if end.After(spanEnd) {
			spanEnd = end
		}
	}

	if !found {
		return
	}

	days := int(r.weeksDelta) * 5
	for _, e := range r.events {
		start := busday.Truncate(e.StartDate)
		if start.Before(spanStart) || start.After(spanEnd) {
			continue
		}

		result.EventMoves = append(result.EventMoves, domain.EventMove{
			EventID:      e.ID,
			NewStartDate: busday.AddBusinessDays(e.StartDate, days),
			NewEndDate:   busday.AddBusinessDays(e.EndDate, days),
		})
	}

	sort.Slice(result.EventMoves, func(i, j int) bool {
		return result.EventMoves[i].EventID < result.EventMoves[j].EventID
	})
}

// sortLane 按开始日期排序，向右拖拽时倒序，
// 使得推挤沿着移动方向传播
func (r *Resolver) sortLane(lane []*laneBlock) {
	sort.Slice(lane, func(i, j int) bool {
		a, b := lane[i], lane[j]
		less := false
		switch {
		case !a.startWeek.Equal(b.startWeek):
			less = a.startWeek.Before(b.startWeek)
		case a.block.Position != b.block.Position:
			less = a.block.Position < b.block.Position
		default:
			less = a.block.ID < b.block.ID
		}

		if r.weeksDelta > 0 {
			return !less
		}
		return less
	})
}
