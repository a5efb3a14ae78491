package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/sysu-ecnc-dev/board-timeline/backend/internal/busday"
	"github.com/sysu-ecnc-dev/board-timeline/backend/internal/domain"
	"github.com/sysu-ecnc-dev/board-timeline/backend/internal/layout"
)

type Config struct {
	ColumnWidth  int
	Gutter       int
	LaneHeight   int
	HeaderHeight int
	LabelWidth   int
	Background   string
	GridColor    string
	TextColor    string
	EventColor   string
	BlockPalette []string
}

func DefaultConfig() *Config {
	return &Config{
		ColumnWidth:  28,
		Gutter:       4,
		LaneHeight:   36,
		HeaderHeight: 28,
		LabelWidth:   140,
		Background:   "#ffffff",
		GridColor:    "#e2e2e2",
		TextColor:    "#333333",
		EventColor:   "#d93025",
		BlockPalette: []string{"#4285f4", "#34a853", "#fbbc04", "#a142f4", "#f47c42"},
	}
}

type Lane struct {
	Name   string
	Blocks []*domain.Block
	Events []*domain.Event
}

var xmlEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")

// Timeline 把一组泳道渲染成 SVG：顶部是周标尺，每条泳道一行，
// 块画成圆角矩形，事件画成菱形标记
func Timeline(lanes []Lane, window domain.TimelineWindow, cfg *Config) string {
	columns := int(window.DisplayEndOffset-window.DisplayStartOffset) + 1
	if columns < 1 {
		columns = 1
	}

	grid := &layout.Grid{
		// 网格原点取可视窗口最左边那一列的日期，这样 left 都是非负的
		OriginDate:  busday.AddBusinessDays(window.OriginDate, int(window.DisplayStartOffset)),
		ColumnWidth: cfg.ColumnWidth,
		Gutter:      cfg.Gutter,
	}

	width := cfg.LabelWidth + columns*cfg.ColumnWidth
	height := cfg.HeaderHeight + len(lanes)*cfg.LaneHeight

	var sb strings.Builder
	fmt.Fprintf(&sb, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+"\n", width, height, width, height)
	fmt.Fprintf(&sb, `  <rect width="%d" height="%d" fill="%s"/>`+"\n", width, height, cfg.Background)

	// 周标尺和竖向网格线
	for col := 0; col < columns; col++ {
		day := busday.AddBusinessDays(grid.OriginDate, col)
		if day.Weekday() != time.Monday {
			continue
		}

		x := cfg.LabelWidth + col*cfg.ColumnWidth
		fmt.Fprintf(&sb, `  <line x1="%d" y1="%d" x2="%d" y2="%d" stroke="%s"/>`+"\n", x, cfg.HeaderHeight, x, height, cfg.GridColor)
		fmt.Fprintf(&sb, `  <text x="%d" y="%d" font-size="10" fill="%s">%s</text>`+"\n", x+2, cfg.HeaderHeight-8, cfg.TextColor, day.Format("01-02"))
	}

	// 泳道
	for i, lane := range lanes {
		top := cfg.HeaderHeight + i*cfg.LaneHeight

		fmt.Fprintf(&sb, `  <line x1="0" y1="%d" x2="%d" y2="%d" stroke="%s"/>`+"\n", top, width, top, cfg.GridColor)
		fmt.Fprintf(&sb, `  <text x="6" y="%d" font-size="12" fill="%s">%s</text>`+"\n", top+cfg.LaneHeight/2+4, cfg.TextColor, xmlEscaper.Replace(lane.Name))

		for _, b := range lane.Blocks {
			pos := grid.Place(b.StartDate, b.EndDate)
			// Go 的 % 会保留符号，块类型 ID 为负时要归一化到调色板范围内
			idx := int(b.BlockTypeID) % len(cfg.BlockPalette)
			if idx < 0 {
				idx += len(cfg.BlockPalette)
			}
			fill := cfg.BlockPalette[idx]
			fmt.Fprintf(&sb, `  <rect x="%d" y="%d" width="%d" height="%d" rx="3" fill="%s"/>`+"\n",
				cfg.LabelWidth+pos.Left, top+4, pos.Width, cfg.LaneHeight-8, fill)
		}

		for _, e := range lane.Events {
			pos := grid.Place(e.StartDate, e.StartDate)
			cx := cfg.LabelWidth + pos.Left + (cfg.ColumnWidth-cfg.Gutter)/2
			cy := top + cfg.LaneHeight - 8
			fmt.Fprintf(&sb, `  <path d="M %d %d l 4 4 l -4 4 l -4 -4 z" fill="%s"/>`+"\n", cx, cy-4, cfg.EventColor)
		}
	}

	sb.WriteString("</svg>\n")
	return sb.String()
}
