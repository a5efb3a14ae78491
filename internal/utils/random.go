package utils

import (
	"math/rand"
	"time"

	"github.com/sysu-ecnc-dev/board-timeline/backend/internal/busday"
	"github.com/sysu-ecnc-dev/board-timeline/backend/internal/domain"
)

var projectNameParts = []string{
	"主城", "副本", "战斗", "剧情", "商城", "活动", "登录", "抽卡",
	"排行榜", "公会", "聊天", "背包", "任务", "成就", "新手引导",
}

func GenerateRandomProjectName() string {
	return projectNameParts[rand.Intn(len(projectNameParts))] + "模块" + GenerateRandomID(2, 2)
}

var commonSurnames = []string{
	"王", "李", "张", "刘", "陈", "杨", "赵", "黄", "周", "吴",
}
var commonNameCharacters = []string{
	"伟", "强", "芳", "敏", "静", "丽", "刚", "杰", "娟", "勇",
	"涛", "明", "军", "磊", "洋", "霞", "飞", "玲", "超", "华",
}

func GenerateRandomChineseName() string {
	surname := commonSurnames[rand.Intn(len(commonSurnames))]
	nameLength := rand.Intn(2) + 1
	name := ""

	for i := 0; i < nameLength; i++ {
		name += commonNameCharacters[rand.Intn(len(commonNameCharacters))]
	}
	return surname + name
}

var letters = []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ")
var digits = "0123456789"

func GenerateRandomID(letterLength int, digitLength int) string {
	random_id := make([]rune, letterLength+digitLength)
	for i := range random_id {
		if i < letterLength {
			random_id[i] = letters[rand.Intn(len(letters))]
		} else {
			random_id[i] = rune(digits[rand.Intn(len(digits))])
		}
	}
	return string(random_id)
}

// GenerateRandomBlockChain 生成一条泳道上的块：从 origin 所在周开始，
// 块与块之间偶尔留出空档，保证互不占用同一周
func GenerateRandomBlockChain(nextID *int64, projectID int64, origin time.Time, n int) []*domain.Block {
	blocks := make([]*domain.Block, 0, n)
	week := busday.MondayOf(origin)

	for i := 0; i < n; i++ {
		// 三分之一的概率在块之间留一个空周
		if rand.Intn(3) == 0 {
			week = week.AddDate(0, 0, 7)
		}

		weeks := rand.Intn(3) + 1 // 块的时长：1~3 周
		start := week
		end := busday.AddBusinessDays(start, weeks*5-1)

		blocks = append(blocks, &domain.Block{
			ID:          *nextID,
			ProjectID:   projectID,
			BlockTypeID: int64(rand.Intn(5) + 1),
			StartDate:   start,
			EndDate:     end,
			Position:    int32(i),
		})
		*nextID++

		week = week.AddDate(0, 0, weeks*7)
	}

	return blocks
}

func GenerateRandomEvents(nextID *int64, projectID int64, origin time.Time, n int) []*domain.Event {
	events := make([]*domain.Event, 0, n)

	for i := 0; i < n; i++ {
		day := busday.AddBusinessDays(busday.MondayOf(origin), rand.Intn(40))
		events = append(events, &domain.Event{
			ID:        *nextID,
			ProjectID: projectID,
			StartDate: day,
			EndDate:   day,
		})
		*nextID++
	}

	return events
}

func GenerateRandomAvailabilities(userIDs []int64, origin time.Time, weeks int) []*domain.AvailabilityEntry {
	entries := []*domain.AvailabilityEntry{}
	monday := busday.MondayOf(origin)

	for _, userID := range userIDs {
		for w := 0; w < weeks; w++ {
			// 投入度按 5% 的步长取值
			entries = append(entries, &domain.AvailabilityEntry{
				UserID:     userID,
				WeekStart:  monday.AddDate(0, 0, w*7),
				Dedication: int32(rand.Intn(21) * 5),
			})
		}
	}

	return entries
}
