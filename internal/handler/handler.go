package handler

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-playground/locales/zh"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	zh_translations "github.com/go-playground/validator/v10/translations/zh"
	"github.com/prometheus/client_golang/prometheus"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"github.com/sysu-ecnc-dev/attendance-tracker/backend/internal/config"
	"github.com/sysu-ecnc-dev/attendance-tracker/backend/internal/metrics"
	"github.com/sysu-ecnc-dev/attendance-tracker/backend/internal/repository"
)

type Handler struct {
	validate        *validator.Validate
	config          *config.Config
	repository      *repository.Repository
	translator      ut.Translator
	mailChannel     *amqp.Channel
	redisClient     *redis.Client
	collector       *metrics.Collector
	metricsRegistry *prometheus.Registry

	Mux *chi.Mux
}

func NewHandler(cfg *config.Config, repo *repository.Repository, mailCh *amqp.Channel, rdb *redis.Client, collector *metrics.Collector, reg *prometheus.Registry) (*Handler, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	zh := zh.New()
	uni := ut.New(zh, zh)
	trans, _ := uni.GetTranslator("zh")
	if err := zh_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, err
	}

	return &Handler{
		validate:        validate,
		config:          cfg,
		repository:      repo,
		translator:      trans,
		mailChannel:     mailCh,
		redisClient:     rdb,
		collector:       collector,
		metricsRegistry: reg,

		Mux: chi.NewRouter(),
	}, nil
}

// reportOffset 返回报表分组所使用的固定本地时区偏移
func (h *Handler) reportOffset() time.Duration {
	return time.Duration(h.config.Report.UTCOffsetHours) * time.Hour
}

func (h *Handler) RegisterRoutes() {
	h.Mux.Use(h.logger)
	h.Mux.Use(h.recoverer)
	h.Mux.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	h.Mux.Route("/api", func(r chi.Router) {
		r.Get("/hello", h.Hello)

		// NFC 刷卡
		r.Post("/nfc-scan", h.CreateScan)
		r.Get("/scans/today", h.GetTodayScans)

		// 人员目录
		r.Route("/persons", func(r chi.Router) {
			r.Get("/", h.GetAllPersons)
			r.Post("/", h.CreatePerson)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.personInfo)
				r.Get("/", h.GetPerson)
			})
		})

		// 派工
		r.Route("/assignments", func(r chi.Router) {
			r.Post("/", h.CreateJobAssignment)
			r.Get("/", h.GetJobAssignments)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.jobAssignment)
				r.Delete("/", h.DeleteJobAssignment)
			})
		})

		// 工种目录
		r.Route("/jobs", func(r chi.Router) {
			r.Get("/", h.GetAllJobNames)
			r.Post("/", h.CreateJobName)
			r.Delete("/{id}", h.DeleteJobName)
		})

		// 班次配置
		r.Route("/shift-config", func(r chi.Router) {
			r.Get("/", h.GetShiftConfig)
			r.Put("/", h.ReplaceShiftConfig)
		})

		// 考勤日报
		r.Route("/reports/daily", func(r chi.Router) {
			r.Get("/", h.GetDailyReport)
			r.Post("/email", h.EmailDailyReport)
		})
	})

	h.Mux.Handle("/metrics", metrics.Handler(h.metricsRegistry))
}
