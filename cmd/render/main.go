package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/sysu-ecnc-dev/board-timeline/backend/internal/config"
	"github.com/sysu-ecnc-dev/board-timeline/backend/internal/fixture"
	"github.com/sysu-ecnc-dev/board-timeline/backend/internal/render"
	"github.com/sysu-ecnc-dev/board-timeline/backend/internal/utils"
	"github.com/sysu-ecnc-dev/board-timeline/backend/internal/viewport"
)

func main() {
	var input string
	var output string
	var viewportWidth int

	flag.StringVar(&input, "input", "timeline.yaml", "时间轴快照文件 (YAML)")
	flag.StringVar(&output, "output", "timeline.svg", "输出的 SVG 文件")
	flag.IntVar(&viewportWidth, "viewport-width", 0, "可视区域像素宽度，0 表示只按内容计算窗口")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	// 读取配置文件
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("无法读取配置文件", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// 读取时间轴快照
	doc, err := fixture.Load(input)
	if err != nil {
		logger.Error("无法读取时间轴快照", "path", input, "error", err)
		os.Exit(1)
	}

	blocks := doc.DomainBlocks()
	events := doc.DomainEvents()
	availabilities := doc.DomainAvailabilities()

	if err := utils.ValidateBlocks(blocks); err != nil {
		logger.Error("时间轴快照中的块不合法", "error", err)
		os.Exit(1)
	}
	if err := utils.ValidateEvents(events); err != nil {
		logger.Error("时间轴快照中的事件不合法", "error", err)
		os.Exit(1)
	}
	if err := utils.ValidateAvailabilities(availabilities); err != nil {
		logger.Error("时间轴快照中的投入度条目不合法", "error", err)
		os.Exit(1)
	}

	// 计算能装下全部内容的可视窗口
	window := viewport.ComputeWindow(&viewport.Content{
		Blocks:         blocks,
		Events:         events,
		Availabilities: availabilities,
	}, &viewport.Parameters{
		PivotDate:     doc.PivotDate,
		BaseWeeks:     cfg.Timeline.BaseWindowWeeks,
		PaddingDays:   cfg.Timeline.PaddingDays,
		ColumnWidth:   cfg.Timeline.ColumnWidth,
		ViewportWidth: viewportWidth,
	})

	// 每个项目一条泳道
	lanes := make([]render.Lane, 0, len(doc.Projects))
	for _, p := range doc.Projects {
		lane := render.Lane{Name: p.Name}
		for _, b := range blocks {
			if b.ProjectID == p.ID {
				lane.Blocks = append(lane.Blocks, b)
			}
		}
		for _, e := range events {
			if e.ProjectID == p.ID {
				lane.Events = append(lane.Events, e)
			}
		}
		lanes = append(lanes, lane)
	}

	renderCfg := render.DefaultConfig()
	renderCfg.ColumnWidth = cfg.Timeline.ColumnWidth
	renderCfg.Gutter = cfg.Timeline.Gutter

	svg := render.Timeline(lanes, window, renderCfg)
	if err := os.WriteFile(output, []byte(svg), 0644); err != nil {
		logger.Error("无法写入 SVG 文件", "path", output, "error", err)
		os.Exit(1)
	}

	logger.Info("渲染完成", "path", output, "lanes", len(lanes), "columns", window.DisplayEndOffset-window.DisplayStartOffset+1)
}
