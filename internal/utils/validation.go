package utils

import (
	"fmt"
	"time"

	"github.com/sysu-ecnc-dev/board-timeline/backend/internal/busday"
	"github.com/sysu-ecnc-dev/board-timeline/backend/internal/domain"
)

func ValidateBlockDates(b *domain.Block) error {
	if b.StartDate.After(b.EndDate) {
		return fmt.Errorf("块 %d 的结束日期不能早于开始日期", b.ID)
	}
	return nil
}

func ValidateBlocks(blocks []*domain.Block) error {
	for _, b := range blocks {
		if err := ValidateBlockDates(b); err != nil {
			return err
		}
	}

	// 检查同一条泳道内是否已经有块占据同一周
	for i := 0; i < len(blocks); i++ {
		for j := i + 1; j < len(blocks); j++ {
			if blocks[i].ProjectID != blocks[j].ProjectID {
				continue
			}
			if busday.MondayOf(blocks[i].StartDate).Equal(busday.MondayOf(blocks[j].StartDate)) {
				return fmt.Errorf("块 %d 和块 %d 占据了同一周", blocks[i].ID, blocks[j].ID)
			}
		}
	}

	return nil
}

func ValidateEventDates(e *domain.Event) error {
	if e.StartDate.After(e.EndDate) {
		return fmt.Errorf("事件 %d 的结束日期不能早于开始日期", e.ID)
	}
	return nil
}

func ValidateEvents(events []*domain.Event) error {
	for _, e := range events {
		if err := ValidateEventDates(e); err != nil {
			return err
		}
	}
	return nil
}

func ValidateAvailabilityEntry(a *domain.AvailabilityEntry) error {
	if a.WeekStart.Weekday() != time.Monday {
		return fmt.Errorf("用户 %d 的投入度条目没有锚定在周一", a.UserID)
	}
	if a.Dedication < 0 || a.Dedication > 100 {
		return fmt.Errorf("用户 %d 的投入度 %d 不在 0 到 100 之间", a.UserID, a.Dedication)
	}
	return nil
}

func ValidateAvailabilities(entries []*domain.AvailabilityEntry) error {
	for _, a := range entries {
		if err := ValidateAvailabilityEntry(a); err != nil {
			return err
		}
	}
	return nil
}
