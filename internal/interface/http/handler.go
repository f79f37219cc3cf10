package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yucatanweather/app/internal/domain/places"
	"github.com/yucatanweather/app/internal/domain/prediction"
)

// Handler wires the HTTP transport to domain services.
type Handler struct {
	placesSvc     places.Service
	predictionSvc prediction.Service
	logger        *slog.Logger
}

// NewHandler constructs the root HTTP handler.
func NewHandler(placesSvc places.Service, predictionSvc prediction.Service, logger *slog.Logger) *Handler {
	return &Handler{
		placesSvc:     placesSvc,
		predictionSvc: predictionSvc,
		logger:        logger.With("component", "http.handler"),
	}
}

// ListPlaces returns the validated location list.
func (h *Handler) ListPlaces(c *gin.Context) {
	list, err := h.placesSvc.List(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// Predict answers a free-form prediction request.
func (h *Handler) Predict(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil {
		fail(c, invalidRequest("unable to read request body", err))
		return
	}
	var body any
	if err := json.Unmarshal(raw, &body); err != nil {
		fail(c, invalidRequest("request body must be valid JSON", err))
		return
	}
	obj, ok := body.(map[string]any)
	if !ok {
		fail(c, invalidRequest("request body must be a JSON object", nil))
		return
	}

	resp, err := h.predictionSvc.Predict(c.Request.Context(), prediction.Request(obj))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
