package fixture

import (
	"fmt"
	"os"
	"time"

	"github.com/sysu-ecnc-dev/board-timeline/backend/internal/domain"
	"gopkg.in/yaml.v3"
)

// Document 是时间轴快照的 YAML 载体，
// 给 render 和手工调试用，不是线上数据格式
type Document struct {
	PivotDate time.Time `yaml:"pivot_date"`
	Projects  []Project `yaml:"projects"`
}

type Project struct {
	ID             int64          `yaml:"id"`
	Name           string         `yaml:"name"`
	Blocks         []Block        `yaml:"blocks,omitempty"`
	Events         []Event        `yaml:"events,omitempty"`
	Availabilities []Availability `yaml:"availabilities,omitempty"`
}

type Block struct {
	ID          int64     `yaml:"id"`
	BlockTypeID int64     `yaml:"block_type_id"`
	StartDate   time.Time `yaml:"start_date"`
	EndDate     time.Time `yaml:"end_date"`
	Position    int32     `yaml:"position"`
}

type Event struct {
	ID        int64     `yaml:"id"`
	StartDate time.Time `yaml:"start_date"`
	EndDate   time.Time `yaml:"end_date"`
}

type Availability struct {
	UserID     int64     `yaml:"user_id"`
	UserName   string    `yaml:"user_name,omitempty"`
	WeekStart  time.Time `yaml:"week_start"`
	Dedication int32     `yaml:"dedication"`
}

func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	doc := &Document{}
	if err := yaml.Unmarshal(data, doc); err != nil {
		return nil, fmt.Errorf("无法解析时间轴快照: %w", err)
	}

	return doc, nil
}

func Save(path string, doc *Document) error {
	data, err := yaml.Marshal(doc)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// DomainBlocks 把快照里所有项目的块摊平成领域对象
func (d *Document) DomainBlocks() []*domain.Block {
	blocks := []*domain.Block{}
	for _, p := range d.Projects {
		for _, b := range p.Blocks {
			blocks = append(blocks, &domain.Block{
				ID:          b.ID,
				ProjectID:   p.ID,
				BlockTypeID: b.BlockTypeID,
				StartDate:   b.StartDate,
				EndDate:     b.EndDate,
				Position:    b.Position,
			})
		}
	}
	return blocks
}

func (d *Document) DomainEvents() []*domain.Event {
	events := []*domain.Event{}
	for _, p := range d.Projects {
		for _, e := range p.Events {
			events = append(events, &domain.Event{
				ID:        e.ID,
				ProjectID: p.ID,
				StartDate: e.StartDate,
				EndDate:   e.EndDate,
			})
		}
	}
	return events
}

func (d *Document) DomainAvailabilities() []*domain.AvailabilityEntry {
	entries := []*domain.AvailabilityEntry{}
	for _, p := range d.Projects {
		for _, a := range p.Availabilities {
			entries = append(entries, &domain.AvailabilityEntry{
				UserID:     a.UserID,
				WeekStart:  a.WeekStart,
				Dedication: a.Dedication,
			})
		}
	}
	return entries
}
