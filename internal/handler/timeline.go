package handler

import (
	"net/http"
	"time"

	"github.com/sysu-ecnc-dev/board-timeline/backend/internal/busday"
	"github.com/sysu-ecnc-dev/board-timeline/backend/internal/domain"
	"github.com/sysu-ecnc-dev/board-timeline/backend/internal/layout"
	"github.com/sysu-ecnc-dev/board-timeline/backend/internal/resolver"
	"github.com/sysu-ecnc-dev/board-timeline/backend/internal/utils"
	"github.com/sysu-ecnc-dev/board-timeline/backend/internal/viewport"
)

type positionItem struct {
	ID    int64  `json:"id"`
	Kind  string `json:"kind"`
	Left  int    `json:"left"`
	Width int    `json:"width"`
}

func (h *Handler) ComputePositions(w http.ResponseWriter, r *http.Request) {
	var req struct {
		OriginDate  time.Time       `json:"originDate" validate:"required"`
		ColumnWidth *int            `json:"columnWidth" validate:"omitempty,min=1"`
		Gutter      *int            `json:"gutter" validate:"omitempty,min=0"`
		Blocks      []*domain.Block `json:"blocks"`
		Events      []*domain.Event `json:"events"`
	}

	if err := h.readJSON(w, r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	// 位置计算要容忍任意的 start/end 组合，这里只做最基本的日期校验
	for _, b := range req.Blocks {
		if err := utils.ValidateBlockDates(b); err != nil {
			h.badRequest(w, r, err)
			return
		}
	}
	if err := utils.ValidateEvents(req.Events); err != nil {
		h.badRequest(w, r, err)
		return
	}

	grid := &layout.Grid{
		OriginDate:  busday.Truncate(req.OriginDate),
		ColumnWidth: h.config.Timeline.ColumnWidth,
		Gutter:      h.config.Timeline.Gutter,
	}
	if req.ColumnWidth != nil {
		grid.ColumnWidth = *req.ColumnWidth
	}
	if req.Gutter != nil {
		grid.Gutter = *req.Gutter
	}

	items := make([]positionItem, 0, len(req.Blocks)+len(req.Events))
	for _, b := range req.Blocks {
		pos := grid.Place(b.StartDate, b.EndDate)
		items = append(items, positionItem{ID: b.ID, Kind: "block", Left: pos.Left, Width: pos.Width})
	}
	for _, e := range req.Events {
		pos := grid.Place(e.StartDate, e.EndDate)
		items = append(items, positionItem{ID: e.ID, Kind: "event", Left: pos.Left, Width: pos.Width})
	}

	h.successResponse(w, r, "计算布局位置成功", items)
}

func (h *Handler) ResolveDrag(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Blocks          []*domain.Block `json:"blocks" validate:"required"`
		Events          []*domain.Event `json:"events"`
		DraggedBlockIDs []int64         `json:"draggedBlockIDs" validate:"required"`
		WeeksDelta      int32           `json:"weeksDelta"`
	}

	if err := h.readJSON(w, r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	// 消解之前泳道内的数据必须是干净的，不然推挤没有意义
	if err := utils.ValidateBlocks(req.Blocks); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := utils.ValidateEvents(req.Events); err != nil {
		h.badRequest(w, r, err)
		return
	}

	res, err := resolver.New(req.Blocks, req.Events, req.DraggedBlockIDs, req.WeeksDelta)
	if err != nil {
		h.badRequest(w, r, err)
		return
	}

	result, err := res.Resolve()
	if err != nil {
		h.errorResponse(w, r, err.Error())
		return
	}

	h.successResponse(w, r, "消解拖拽冲突成功", result)
}

func (h *Handler) ComputeViewport(w http.ResponseWriter, r *http.Request) {
	var req struct {
		PivotDate      time.Time                   `json:"pivotDate" validate:"required"`
		ColumnWidth    *int                        `json:"columnWidth" validate:"omitempty,min=1"`
		ViewportWidth  int                         `json:"viewportWidth" validate:"min=0"`
		PaddingDays    *int                        `json:"paddingDays" validate:"omitempty,min=0"`
		BaseWeeks      *int                        `json:"baseWeeks" validate:"omitempty,min=1"`
		Blocks         []*domain.Block             `json:"blocks"`
		Events         []*domain.Event             `json:"events"`
		Availabilities []*domain.AvailabilityEntry `json:"availabilities"`
		Previous       *struct {
			DisplayStartOffset int32 `json:"displayStartOffset"`
			ScrollLeft         int   `json:"scrollLeft" validate:"min=0"`
		} `json:"previous"`
	}

	if err := h.readJSON(w, r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if err := utils.ValidateAvailabilities(req.Availabilities); err != nil {
		h.badRequest(w, r, err)
		return
	}

	params := &viewport.Parameters{
		PivotDate:     req.PivotDate,
		BaseWeeks:     h.config.Timeline.BaseWindowWeeks,
		PaddingDays:   h.config.Timeline.PaddingDays,
		ColumnWidth:   h.config.Timeline.ColumnWidth,
		ViewportWidth: req.ViewportWidth,
	}
	if req.BaseWeeks != nil {
		params.BaseWeeks = *req.BaseWeeks
	}
	if req.PaddingDays != nil {
		params.PaddingDays = *req.PaddingDays
	}
	if req.ColumnWidth != nil {
		params.ColumnWidth = *req.ColumnWidth
	}

	window := viewport.ComputeWindow(&viewport.Content{
		Blocks:         req.Blocks,
		Events:         req.Events,
		Availabilities: req.Availabilities,
	}, params)

	// 窗口起点变化时修正滚动位置，让可视区域左边缘下面还是原来那个日期
	scrollLeft := 0
	if req.Previous != nil {
		scrollLeft = viewport.AdjustScroll(req.Previous.DisplayStartOffset, window.DisplayStartOffset, req.Previous.ScrollLeft, params.ColumnWidth)
	}

	h.successResponse(w, r, "计算可视窗口成功", struct {
		domain.TimelineWindow
		ScrollLeft int `json:"scrollLeft"`
	}{
		TimelineWindow: window,
		ScrollLeft:     scrollLeft,
	})
}
