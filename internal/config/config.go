package config

import (
	"errors"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	Server      struct {
		Port            string `env:"PORT" envDefault:"3000"`
		ReadTimeout     int    `env:"READ_TIMEOUT" envDefault:"10"`
		WriteTimeout    int    `env:"WRITE_TIMEOUT" envDefault:"15"`
		IdleTimeout     int    `env:"IDLE_TIMEOUT" envDefault:"60"`
		ShutdownTimeout int    `env:"SHUTDOWN_TIMEOUT" envDefault:"10"`
	} `envPrefix:"SERVER_"`
	Timeline struct {
		ColumnWidth     int `env:"COLUMN_WIDTH" envDefault:"28"` // 一个工作日一列的像素宽度
		Gutter          int `env:"GUTTER" envDefault:"4"`        // 块与块之间的像素间隙
		BaseWindowWeeks int `env:"BASE_WINDOW_WEEKS" envDefault:"8"`
		PaddingDays     int `env:"PADDING_DAYS" envDefault:"5"` // 内容两侧的留白，以工作日为单位
	} `envPrefix:"TIMELINE_"`
}

func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		aggErr := env.AggregateError{}
		if ok := errors.As(err, &aggErr); ok {
			// 只返回第一个错误使得日志更清晰
			return nil, aggErr.Errors[0]
		}
	}

	return cfg, nil
}
