package resolver

import (
	"time"

	"github.com/sysu-ecnc-dev/board-timeline/backend/internal/domain"
)

// laneBlock: 泳道内一个块在消解过程中的状态
type laneBlock struct {
	block     *domain.Block
	startWeek time.Time // 原始开始日期所在周的周一
	delta     int32     // 以周为单位的累计移动量
	dragged   bool      // 是否属于用户显式拖拽的集合
}

// Result 是一次拖拽消解的完整结果，
// 由调用方序列化后提交给外部的看板服务进行持久化
type Result struct {
	BlockMoves []domain.BlockMove `json:"blockMoves"`
	EventMoves []domain.EventMove `json:"eventMoves"`
}
