package resolver

import (
	"fmt"
	"time"
)

// resolveLane 用迭代不动点的方式消解一条泳道内的周槽冲突：
// 每一轮把仍然重叠的块沿移动方向再推一周，直到一整轮都没有发生推挤。
// 轮数上限取泳道长度，推挤链不可能超过泳道内块的数量
func (r *Resolver) resolveLane(lane []*laneBlock) error {
	dir := direction(r.weeksDelta)

	for _, lb := range lane {
		if lb.dragged {
			lb.delta = r.weeksDelta
		}
	}

	for pass := 0; pass < len(lane); pass++ {
		pushed := false

		for i := 0; i < len(lane); i++ {
			for j := i + 1; j < len(lane); j++ {
				a, b := lane[i], lane[j]

				if !candidateWeek(a).Equal(candidateWeek(b)) {
					continue
				}

				// 被拖拽的块固定在用户放下的位置上，永远不会被推挤，
				// 所以两个块都被拖拽时这一对无法处理，交给轮数上限兜底
				victim := pushVictim(a, b, dir)
				if victim == nil {
					continue
				}

				victim.delta += dir
				pushed = true
			}
		}

		if !pushed {
			break
		}
	}

	// 消解完成后泳道内所有块的目标周必须两两不同
	return validateLane(lane)
}

// candidateWeek 返回块按当前累计移动量计算出的目标周（周一）
func candidateWeek(lb *laneBlock) time.Time {
	return lb.startWeek.AddDate(0, 0, int(lb.delta)*7)
}

// pushVictim 决定冲突的一对块中哪一个被推开；返回 nil 表示两个都不能动
func pushVictim(a, b *laneBlock, dir int32) *laneBlock {
	switch {
	case a.dragged && b.dragged:
		return nil
	case a.dragged:
		return b
	case b.dragged:
		return a
	default:
		// 两个都不是被拖拽的块：推原始开始日期在移动方向上更靠前的那个，
		// 避免把块往回推进第二个冲突里
		return furtherAlong(a, b, dir)
	}
}

func validateLane(lane []*laneBlock) error {
	seen := make(map[time.Time]int64)
	for _, lb := range lane {
		week := candidateWeek(lb)
		if other, exists := seen[week]; exists {
			return fmt.Errorf("块 %d 和块 %d 在消解后仍然占据同一周", other, lb.block.ID)
		}
		seen[week] = lb.block.ID
	}
	return nil
}
