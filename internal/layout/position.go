package layout

import (
	"time"

	"github.com/sysu-ecnc-dev/board-timeline/backend/internal/busday"
)

// Position 是一个条目在横向网格上的像素位置，
// 左边界可以为负数（条目在可视窗口之外），裁剪是渲染层的事情
type Position struct {
	Left  int `json:"left"`
	Width int `json:"width"`
}

type Grid struct {
	OriginDate  time.Time
	ColumnWidth int
	Gutter      int
}

// Place 计算 [start, end] 这段日期在网格上的位置。
// 宽度包含首尾两个端点，且不会小于一列减去间隙，
// 这样零时长甚至反向的输入也不会塌缩成不可见的元素
func (g *Grid) Place(start, end time.Time) Position {
	left := busday.Offset(g.OriginDate, start) * g.ColumnWidth

	width := (busday.Offset(start, end)+1)*g.ColumnWidth - g.Gutter
	if minWidth := g.ColumnWidth - g.Gutter; width < minWidth {
		width = minWidth
	}

	return Position{
		Left:  left,
		Width: width,
	}
}
