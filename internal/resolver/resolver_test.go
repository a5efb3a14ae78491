package resolver

import (
	"testing"
	"time"

	"github.com/sysu-ecnc-dev/board-timeline/backend/internal/domain"
)

// 2025-03-03 是周一
var baseMonday = time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC)

// weekBlock 构造一个周对齐的五日块，week 是相对基准周一的周序号
func weekBlock(id, projectID int64, week int) *domain.Block {
	start := baseMonday.AddDate(0, 0, week*7)
	return &domain.Block{
		ID:        id,
		ProjectID: projectID,
		StartDate: start,
		EndDate:   start.AddDate(0, 0, 4),
		Position:  int32(week),
	}
}

func resolve(t *testing.T, blocks []*domain.Block, events []*domain.Event, draggedIDs []int64, weeksDelta int32) *Result {
	t.Helper()
	r, err := New(blocks, events, draggedIDs, weeksDelta)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	result, err := r.Resolve()
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	return result
}

func moveByBlockID(t *testing.T, result *Result, id int64) domain.BlockMove {
	t.Helper()
	for _, m := range result.BlockMoves {
		if m.BlockID == id {
			return m
		}
	}
	t.Fatalf("结果中没有块 %d 的移动", id)
	return domain.BlockMove{}
}

// ============================================================
// 构造
// ============================================================

func TestNewRejectsUnknownDraggedID(t *testing.T) {
	blocks := []*domain.Block{weekBlock(1, 1, 0)}
	if _, err := New(blocks, nil, []int64{99}, 1); err == nil {
		t.Fatal("未知的拖拽块 ID 应该报错")
	}
}

// ============================================================
// 无操作
// ============================================================

func TestZeroDeltaIsNoop(t *testing.T) {
	blocks := []*domain.Block{
		weekBlock(1, 1, 0),
		weekBlock(2, 1, 0), // 故意和块 1 冲突
	}
	result := resolve(t, blocks, nil, []int64{1}, 0)
	if len(result.BlockMoves) != 0 || len(result.EventMoves) != 0 {
		t.Fatalf("weeksDelta=0 应该返回空结果，got %+v", result)
	}
}

func TestEmptyDraggedSetIsNoop(t *testing.T) {
	blocks := []*domain.Block{weekBlock(1, 1, 0)}
	result := resolve(t, blocks, nil, nil, 3)
	if len(result.BlockMoves) != 0 {
		t.Fatalf("空拖拽集合应该返回空结果，got %+v", result)
	}
}

// ============================================================
// 推挤链
// ============================================================

func TestPushChainRight(t *testing.T) {
	// 三个块分别在 W、W+1、W+2，把 W 的块向右拖一周，
	// 后面两个块必须依次被推开
	blocks := []*domain.Block{
		weekBlock(1, 1, 0),
		weekBlock(2, 1, 1),
		weekBlock(3, 1, 2),
	}
	result := resolve(t, blocks, nil, []int64{1}, 1)

	if len(result.BlockMoves) != 3 {
		t.Fatalf("期望 3 个移动，got %d", len(result.BlockMoves))
	}
	for _, id := range []int64{1, 2, 3} {
		m := moveByBlockID(t, result, id)
		if m.WeeksDelta != 1 {
			t.Fatalf("块 %d 的 weeksDelta = %d，期望 1", id, m.WeeksDelta)
		}
	}

	m := moveByBlockID(t, result, 1)
	if !m.NewStartDate.Equal(baseMonday.AddDate(0, 0, 7)) {
		t.Fatalf("块 1 的新开始日期错误：%v", m.NewStartDate)
	}
	if !m.NewEndDate.Equal(baseMonday.AddDate(0, 0, 11)) {
		t.Fatalf("块 1 的新结束日期错误：%v", m.NewEndDate)
	}
}

func TestPushChainLeft(t *testing.T) {
	blocks := []*domain.Block{
		weekBlock(1, 1, 0),
		weekBlock(2, 1, 1),
	}
	result := resolve(t, blocks, nil, []int64{2}, -1)

	if len(result.BlockMoves) != 2 {
		t.Fatalf("期望 2 个移动，got %d", len(result.BlockMoves))
	}
	if m := moveByBlockID(t, result, 1); m.WeeksDelta != -1 {
		t.Fatalf("块 1 应该被向左推一周，got %d", m.WeeksDelta)
	}
}

func TestGapAbsorbsPush(t *testing.T) {
	// W 和 W+2 之间有空档，向右拖一周不应该波及 W+2 的块
	blocks := []*domain.Block{
		weekBlock(1, 1, 0),
		weekBlock(2, 1, 2),
	}
	result := resolve(t, blocks, nil, []int64{1}, 1)

	if len(result.BlockMoves) != 1 {
		t.Fatalf("期望只有被拖拽的块移动，got %d 个移动", len(result.BlockMoves))
	}
	if result.BlockMoves[0].BlockID != 1 {
		t.Fatalf("移动的块应该是 1，got %d", result.BlockMoves[0].BlockID)
	}
}

func TestDraggedGroupMovesRigidly(t *testing.T) {
	// 拖拽 {1, 2}，两者保持相对位置，块 3 被推开
	blocks := []*domain.Block{
		weekBlock(1, 1, 0),
		weekBlock(2, 1, 1),
		weekBlock(3, 1, 2),
	}
	result := resolve(t, blocks, nil, []int64{1, 2}, 1)

	for _, id := range []int64{1, 2, 3} {
		if m := moveByBlockID(t, result, id); m.WeeksDelta != 1 {
			t.Fatalf("块 %d 的 weeksDelta = %d，期望 1", id, m.WeeksDelta)
		}
	}
}

func TestMultiWeekDrag(t *testing.T) {
	blocks := []*domain.Block{
		weekBlock(1, 1, 0),
		weekBlock(2, 1, 2),
	}
	result := resolve(t, blocks, nil, []int64{1}, 2)

	if m := moveByBlockID(t, result, 1); m.WeeksDelta != 2 {
		t.Fatalf("被拖拽的块必须精确落在用户放下的位置，got %d", m.WeeksDelta)
	}
	if m := moveByBlockID(t, result, 2); m.WeeksDelta != 1 {
		t.Fatalf("块 2 应该被推开一周，got %d", m.WeeksDelta)
	}
}

func TestResolvedLaneHasNoCollisions(t *testing.T) {
	blocks := []*domain.Block{
		weekBlock(1, 1, 0),
		weekBlock(2, 1, 1),
		weekBlock(3, 1, 2),
		weekBlock(4, 1, 4),
	}
	result := resolve(t, blocks, nil, []int64{1, 2}, 2)

	// 叠加移动量后所有块的目标周必须两两不同
	finalWeeks := make(map[time.Time]int64)
	for _, b := range blocks {
		week := b.StartDate
		for _, m := range result.BlockMoves {
			if m.BlockID == b.ID {
				week = m.NewStartDate
			}
		}
		if other, ok := finalWeeks[week]; ok {
			t.Fatalf("块 %d 和块 %d 消解后撞在同一周", other, b.ID)
		}
		finalWeeks[week] = b.ID
	}
}

func TestOtherLaneUntouched(t *testing.T) {
	blocks := []*domain.Block{
		weekBlock(1, 1, 0),
		weekBlock(2, 2, 0), // 另一个项目的泳道
		weekBlock(3, 2, 1),
	}
	result := resolve(t, blocks, nil, []int64{1}, 1)

	if len(result.BlockMoves) != 1 || result.BlockMoves[0].BlockID != 1 {
		t.Fatalf("其他泳道的块不应该移动，got %+v", result.BlockMoves)
	}
}

// ============================================================
// 事件副作用
// ============================================================

func TestEventInsideDraggedSpanMoves(t *testing.T) {
	blocks := []*domain.Block{weekBlock(1, 1, 0)}
	events := []*domain.Event{
		{ID: 10, ProjectID: 1, StartDate: baseMonday.AddDate(0, 0, 2), EndDate: baseMonday.AddDate(0, 0, 2)},
		{ID: 11, ProjectID: 1, StartDate: baseMonday.AddDate(0, 0, 14), EndDate: baseMonday.AddDate(0, 0, 14)},
	}
	result := resolve(t, blocks, events, []int64{1}, 1)

	if len(result.EventMoves) != 1 {
		t.Fatalf("期望 1 个事件移动，got %d", len(result.EventMoves))
	}
	m := result.EventMoves[0]
	if m.EventID != 10 {
		t.Fatalf("移动的事件应该是 10，got %d", m.EventID)
	}
	// 事件按天移动：weeksDelta * 5 个工作日
	if !m.NewStartDate.Equal(baseMonday.AddDate(0, 0, 9)) {
		t.Fatalf("事件的新开始日期错误：%v", m.NewStartDate)
	}
}

func TestEventIgnoresPushedBlocksSpan(t *testing.T) {
	// 事件落在被推开的块上而不是被拖拽的块上，不应该移动
	blocks := []*domain.Block{
		weekBlock(1, 1, 0),
		weekBlock(2, 1, 1),
	}
	events := []*domain.Event{
		{ID: 10, ProjectID: 1, StartDate: baseMonday.AddDate(0, 0, 8), EndDate: baseMonday.AddDate(0, 0, 8)},
	}
	result := resolve(t, blocks, events, []int64{1}, 1)

	if len(result.EventMoves) != 0 {
		t.Fatalf("被推开的块覆盖的事件不应该移动，got %+v", result.EventMoves)
	}
}
