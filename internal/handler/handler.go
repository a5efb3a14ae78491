package handler

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/locales/zh"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	zh_translations "github.com/go-playground/validator/v10/translations/zh"
	"github.com/sysu-ecnc-dev/board-timeline/backend/internal/config"
)

type Handler struct {
	validate   *validator.Validate
	config     *config.Config
	translator ut.Translator

	Mux *chi.Mux
}

func NewHandler(cfg *config.Config) (*Handler, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	zh := zh.New()
	uni := ut.New(zh, zh)
	trans, _ := uni.GetTranslator("zh")
	if err := zh_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, err
	}

	return &Handler{
		validate:   validate,
		config:     cfg,
		translator: trans,

		Mux: chi.NewRouter(),
	}, nil
}

func (h *Handler) RegisterRoutes() {
	h.Mux.Use(h.logger)
	h.Mux.Use(h.recoverer)

	// 布局引擎是无状态的纯计算服务，看板数据的持久化由外部服务负责
	h.Mux.Route("/timeline", func(r chi.Router) {
		r.Post("/positions", h.ComputePositions)
		r.Post("/viewport", h.ComputeViewport)
		r.Route("/drag", func(r chi.Router) {
			r.Post("/resolve", h.ResolveDrag)
		})
	})
}
