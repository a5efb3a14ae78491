package viewport

import (
	"time"

	"github.com/sysu-ecnc-dev/board-timeline/backend/internal/busday"
	"github.com/sysu-ecnc-dev/board-timeline/backend/internal/domain"
)

type Parameters struct {
	PivotDate     time.Time
	BaseWeeks     int // 最小窗口宽度，以周为单位
	PaddingDays   int // 内容两侧的留白，以工作日为单位
	ColumnWidth   int // 一列的像素宽度
	ViewportWidth int // 可视区域的像素宽度，0 表示不按可视区域扩展
}

type Content struct {
	Blocks         []*domain.Block
	Events         []*domain.Event
	Availabilities []*domain.AvailabilityEntry
}

// ComputeWindow 计算能装下所有内容（加上留白）的最小日期窗口，
// 但窗口永远不会小于基础窗口，也不会窄于可视区域。
// 偏移量以 pivot 所在周的周一为原点，单位是工作日
func ComputeWindow(content *Content, params *Parameters) domain.TimelineWindow {
	origin := busday.MondayOf(params.PivotDate)

	start := 0
	end := params.BaseWeeks*5 - 1

	grow := func(startDate, endDate time.Time) {
		so := busday.Offset(origin, startDate) - params.PaddingDays
		eo := busday.Offset(origin, endDate) + params.PaddingDays
		if so < start {
			start = so
		}
		if eo > end {
			end = eo
		}
	}

	for _, b := range content.Blocks {
		grow(b.StartDate, b.EndDate)
	}
	for _, e := range content.Events {
		grow(e.StartDate, e.EndDate)
	}
	for _, a := range content.Availabilities {
		// 投入度条目总是锚定在周一，覆盖整个工作周
		grow(a.WeekStart, a.WeekStart.AddDate(0, 0, 4))
	}

	// 如果算出来的范围比可视区域还窄，延长右端让网格至少铺满可视区域
	if params.ViewportWidth > 0 && params.ColumnWidth > 0 {
		columns := (params.ViewportWidth + params.ColumnWidth - 1) / params.ColumnWidth
		if minEnd := start + columns - 1; end < minEnd {
			end = minEnd
		}
	}

	return domain.TimelineWindow{
		OriginDate:         origin,
		DisplayStartOffset: int32(start),
		DisplayEndOffset:   int32(end),
	}
}

// AdjustScroll 在窗口起点发生偏移后修正横向滚动位置，
// 保证可视区域左边缘下面还是原来那个日期
func AdjustScroll(oldStartOffset, newStartOffset int32, scrollLeft, columnWidth int) int {
	adjusted := scrollLeft + int(oldStartOffset-newStartOffset)*columnWidth
	if adjusted < 0 {
		adjusted = 0
	}
	return adjusted
}
