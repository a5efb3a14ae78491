package drag

import (
	"errors"
	"fmt"
	"math"

	"github.com/sysu-ecnc-dev/board-timeline/backend/internal/domain"
	"github.com/sysu-ecnc-dev/board-timeline/backend/internal/resolver"
)

type Mode string

const (
	ModeSingle    Mode = "single"    // 只拖拽抓住的那个块
	ModeFollowing Mode = "following" // 拖拽抓住的块和它右侧的所有块
	ModeLane      Mode = "lane"      // 拖拽整条泳道
)

var ErrNotDragging = errors.New("当前没有进行中的拖拽")

// Controller 持有时间轴的本地快照和拖拽状态，
// 同一时刻只允许一个拖拽在进行中。
// 交互分成三个阶段：Begin 确定拖拽集合，Update 把像素位移吸附成周数，
// Commit 消解冲突并把结果应用到本地快照（乐观更新，持久化由调用方负责）
type Controller struct {
	blocks      []*domain.Block
	events      []*domain.Event
	columnWidth int

	dragging   bool
	draggedIDs []int64
	weeksDelta int32
}

func NewController(blocks []*domain.Block, events []*domain.Event, columnWidth int) *Controller {
	return &Controller{
		blocks:      blocks,
		events:      events,
		columnWidth: columnWidth,
	}
}

func (c *Controller) Dragging() bool {
	return c.dragging
}

func (c *Controller) Begin(blockID int64, mode Mode) error {
	if c.dragging {
		return errors.New("已经有一个拖拽在进行中")
	}

	var grabbed *domain.Block = nil
	for _, b := range c.blocks {
		if b.ID == blockID {
			grabbed = b
			break
		}
	}
	if grabbed == nil {
		return fmt.Errorf("块 %d 不存在", blockID)
	}

	draggedIDs := []int64{}
	for _, b := range c.blocks {
		if b.ProjectID != grabbed.ProjectID {
			continue
		}

		switch mode {
		case ModeSingle:
			if b.ID == grabbed.ID {
				draggedIDs = append(draggedIDs, b.ID)
			}
		case ModeFollowing:
			if !b.StartDate.Before(grabbed.StartDate) {
				draggedIDs = append(draggedIDs, b.ID)
			}
		case ModeLane:
			draggedIDs = append(draggedIDs, b.ID)
		default:
			return fmt.Errorf("未知的拖拽模式 %q", mode)
		}
	}

	c.dragging = true
	c.draggedIDs = draggedIDs
	c.weeksDelta = 0

	return nil
}

// Update 把横向像素位移吸附成整周的移动量并返回，一周占五列。
// 四舍五入是远离零的方向，拖过半周就吸附到下一周
func (c *Controller) Update(pixelDelta int) (int32, error) {
	if !c.dragging {
		return 0, ErrNotDragging
	}

	weekWidth := float64(c.columnWidth * 5)
	c.weeksDelta = int32(math.Round(float64(pixelDelta) / weekWidth))

	return c.weeksDelta, nil
}

// Commit 结束拖拽：消解冲突、把移动应用到本地快照并返回完整的移动集合。
// 没有净移动的拖拽返回空结果，不产生任何变更
func (c *Controller) Commit() (*resolver.Result, error) {
	if !c.dragging {
		return nil, ErrNotDragging
	}

	res, err := resolver.New(c.blocks, c.events, c.draggedIDs, c.weeksDelta)
	if err != nil {
		return nil, err
	}

	result, err := res.Resolve()
	if err != nil {
		return nil, err
	}

	c.apply(result)
	c.reset()

	return result, nil
}

// Cancel 放弃进行中的拖拽，本地快照保持不变
func (c *Controller) Cancel() {
	c.reset()
}

func (c *Controller) reset() {
	c.dragging = false
	c.draggedIDs = nil
	c.weeksDelta = 0
}

func (c *Controller) apply(result *resolver.Result) {
	for _, m := range result.BlockMoves {
		for _, b := range c.blocks {
			if b.ID == m.BlockID {
				b.StartDate = m.NewStartDate
				b.EndDate = m.NewEndDate
				break
			}
		}
	}

	for _, m := range result.EventMoves {
		for _, e := range c.events {
			if e.ID == m.EventID {
				e.StartDate = m.NewStartDate
				e.EndDate = m.NewEndDate
				break
			}
		}
	}
}
