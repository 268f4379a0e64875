package system

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"hotel/config"
	"hotel/infras/otel"
	"hotel/shared/constant"
	"hotel/transport/http/response"
)

// ConfigResponse is the client-facing slice of the configuration.
type ConfigResponse struct {
	HotelName string `json:"hotelName"`
}

// DebugResponse exposes the non-secret runtime settings.
type DebugResponse struct {
	AppName     string `json:"appName"`
	Environment string `json:"environment"`
	HotelName   string `json:"hotelName"`
	Region      string `json:"region"`
	TableName   string `json:"tableName"`
}

type Handler struct {
	cfg  *config.Config
	otel otel.Otel
}

func New(cfg *config.Config, otel otel.Otel) Handler {
	return Handler{
		cfg:  cfg,
		otel: otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/config", handler.GetConfig)
	router.Get("/debug", handler.GetDebug)
}

// GetConfig returns the public configuration.
// @Summary Get public configuration
// @Description Retrieve the hotel name shown by clients.
// @Tags System
// @Produce json
// @Success 200 {object} ConfigResponse
// @Router /api/config [get]
func (handler *Handler) GetConfig(writer http.ResponseWriter, request *http.Request) {
	_, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetConfig")
	defer scope.End()

	response.WithJSON(writer, http.StatusOK, ConfigResponse{
		HotelName: handler.cfg.App.HotelName,
	})
}

// GetDebug returns the non-secret runtime settings.
// @Summary Get runtime settings
// @Description Retrieve the resolved non-secret settings for troubleshooting.
// @Tags System
// @Produce json
// @Success 200 {object} DebugResponse
// @Router /api/debug [get]
func (handler *Handler) GetDebug(writer http.ResponseWriter, request *http.Request) {
	_, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDebug")
	defer scope.End()

	response.WithJSON(writer, http.StatusOK, DebugResponse{
		AppName:     handler.cfg.App.Name,
		Environment: handler.cfg.Server.Env,
		HotelName:   handler.cfg.App.HotelName,
		Region:      handler.cfg.DB.DynamoDB.Region,
		TableName:   handler.cfg.DB.DynamoDB.TableName,
	})
}
