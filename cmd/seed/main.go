package main

import (
	"flag"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/sysu-ecnc-dev/board-timeline/backend/internal/busday"
	"github.com/sysu-ecnc-dev/board-timeline/backend/internal/fixture"
	"github.com/sysu-ecnc-dev/board-timeline/backend/internal/utils"
)

func main() {
	var output string
	var projects int
	var users int

	flag.StringVar(&output, "output", "timeline.yaml", "输出的时间轴快照文件 (YAML)")
	flag.IntVar(&projects, "projects", 5, "要生成的项目数量")
	flag.IntVar(&users, "users", 3, "要生成投入度条目的用户数量")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	pivot := busday.MondayOf(time.Now())
	doc := &fixture.Document{
		PivotDate: pivot,
	}

	var nextBlockID int64 = 1
	var nextEventID int64 = 1

	for i := 0; i < projects; i++ {
		projectID := int64(i + 1)
		p := fixture.Project{
			ID:   projectID,
			Name: utils.GenerateRandomProjectName(),
		}

		for _, b := range utils.GenerateRandomBlockChain(&nextBlockID, projectID, pivot, rand.Intn(5)+2) {
			p.Blocks = append(p.Blocks, fixture.Block{
				ID:          b.ID,
				BlockTypeID: b.BlockTypeID,
				StartDate:   b.StartDate,
				EndDate:     b.EndDate,
				Position:    b.Position,
			})
		}

		for _, e := range utils.GenerateRandomEvents(&nextEventID, projectID, pivot, rand.Intn(3)) {
			p.Events = append(p.Events, fixture.Event{
				ID:        e.ID,
				StartDate: e.StartDate,
				EndDate:   e.EndDate,
			})
		}

		doc.Projects = append(doc.Projects, p)
	}

	// 投入度条目统一挂在第一个项目上，render 只拿它们算窗口
	if len(doc.Projects) > 0 && users > 0 {
		userIDs := make([]int64, users)
		userNames := make(map[int64]string, users)
		for i := range userIDs {
			userIDs[i] = int64(i + 1)
			userNames[userIDs[i]] = utils.GenerateRandomChineseName()
		}
		for _, a := range utils.GenerateRandomAvailabilities(userIDs, pivot, 8) {
			doc.Projects[0].Availabilities = append(doc.Projects[0].Availabilities, fixture.Availability{
				UserID:     a.UserID,
				UserName:   userNames[a.UserID],
				WeekStart:  a.WeekStart,
				Dedication: a.Dedication,
			})
		}
	}

	if err := fixture.Save(output, doc); err != nil {
		logger.Error("无法写入时间轴快照", "path", output, "error", err)
		os.Exit(1)
	}

	logger.Info("生成时间轴快照成功", "path", output, "projects", projects)
}
