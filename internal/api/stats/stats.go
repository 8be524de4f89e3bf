package stats

import (
	"errors"
	"net/http"
	dto "trading_game/internal/api/dto/stats"
	"trading_game/internal/converter"
	"trading_game/internal/model"
	"trading_game/internal/service"
	"trading_game/pkg/req"
	"trading_game/pkg/resp"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

type HandlerDeps struct {
	Serv   service.StatsService
	Logger *zap.Logger
}

type Handler struct {
	serv service.StatsService
	log  *zap.Logger
}

func NewHandler(deps HandlerDeps) *Handler {
	log := deps.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{serv: deps.Serv, log: log}
}

// Get возвращает общую статистику, создавая строку при первом запросе
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	stats, err := h.serv.ReadStats(r.Context())
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToStatsResponse(*stats))
}

// Upsert сохраняет присланные клиентом значения (POST и PUT)
func (h *Handler) Upsert(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.StatsRequest](r.Body)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	stored, err := h.serv.UpsertStats(r.Context(), converter.ToGameStats(payload))
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	h.log.Debug("stats stored",
		zap.Int("wins", stored.Wins),
		zap.Int("losses", stored.Losses),
		zap.Int("total", stored.Total),
		zap.String("request_id", middleware.GetReqID(r.Context())),
	)

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToStatsResponse(*stored))
}

// Health проверяет доступность хранилища
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.serv.Ping(r.Context()); err != nil {
		h.log.Warn("health check failed", zap.Error(err))
		resp.WriteJSONResponse(w, http.StatusServiceUnavailable, dto.HealthResponse{Status: "unavailable", Error: err.Error()})
		return
	}
	resp.WriteJSONResponse(w, http.StatusOK, dto.HealthResponse{Status: "ok"})
}

func (h *Handler) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	fields := []zap.Field{
		zap.Error(err),
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.String("request_id", middleware.GetReqID(r.Context())),
	}

	var storageErr *model.StorageError
	if errors.As(err, &storageErr) {
		fields = append(fields, zap.String("op", storageErr.Op))
	}
	h.log.Error("stats request failed", fields...)

	resp.WriteError(w, http.StatusInternalServerError, err.Error())
}

// Register вешает обработчики ресурса статистики на переданный роутер
func (h *Handler) Register(r chi.Router) {
	r.Get("/", h.Get)
	r.Post("/", h.Upsert)
	r.Put("/", h.Upsert)
}
