package resolver

func laneContainsDragged(lane []*laneBlock) bool {
	for _, lb := range lane {
		if lb.dragged {
			return true
		}
	}
	return false
}

func direction(weeksDelta int32) int32 {
	if weeksDelta > 0 {
		return 1
	}
	return -1
}

// furtherAlong 返回在移动方向上原始开始日期更靠前的块
func furtherAlong(a, b *laneBlock, dir int32) *laneBlock {
	if dir > 0 {
		if a.startWeek.After(b.startWeek) {
			return a
		}
		return b
	}
	if a.startWeek.Before(b.startWeek) {
		return a
	}
	return b
}
