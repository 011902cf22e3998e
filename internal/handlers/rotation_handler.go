package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/senyabanana/tender-vault/internal/models"
	"github.com/senyabanana/tender-vault/internal/services"
	"github.com/senyabanana/tender-vault/internal/utils"
)

// RotationHandler - структура для обработки HTTP-запросов к движку ротации.
type RotationHandler struct {
	Rotation *services.RotationService
	Award    *services.AwardService
	Logger   *log.Logger
	Timeout  time.Duration
}

// NewRotationHandler создаёт новый экземпляр RotationHandler.
func NewRotationHandler(rotation *services.RotationService, award *services.AwardService, logger *log.Logger, timeout time.Duration) *RotationHandler {
	return &RotationHandler{
		Rotation: rotation,
		Award:    award,
		Logger:   logger,
		Timeout:  timeout,
	}
}

// GetActiveCycle обрабатывает запросы на получение активного цикла показа тендера.
func (h *RotationHandler) GetActiveCycle(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		utils.SendErrorResponse(w, http.StatusBadRequest, "invalid method, only GET is allowed")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.Timeout)
	defer cancel()

	cycle, err := h.Rotation.ActiveCycle(ctx, r.PathValue("tenderId"))
	if err != nil {
		if errorResponse, ok := err.(*models.ErrorResponse); ok {
			h.Logger.Println(err)
			utils.SendErrorResponse(w, errorResponse.StatusCode, errorResponse.Message)
			return
		}
		h.Logger.Println(err)
		utils.SendErrorResponse(w, http.StatusInternalServerError, "failed to fetch active cycle")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err = json.NewEncoder(w).Encode(cycle); err != nil {
		h.Logger.Println(err)
	}
}

// AwardRequest представляет тело запроса события принятия отклика.
type AwardRequest struct {
	PerformerID string `json:"performerId"`
}

// AwardTender обрабатывает событие принятия отклика: активный цикл тендера
// превращается в настоящий заказ с назначенным исполнителем.
func (h *RotationHandler) AwardTender(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		utils.SendErrorResponse(w, http.StatusBadRequest, "invalid method, only POST is allowed")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.Timeout)
	defer cancel()

	var awardReq AwardRequest
	if err := json.NewDecoder(r.Body).Decode(&awardReq); err != nil {
		utils.SendErrorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.Award.ConvertToOrder(ctx, r.PathValue("tenderId"), awardReq.PerformerID)
	if err != nil {
		h.Logger.Println(err)
		switch {
		case errors.Is(err, models.ErrConversionConflict):
			utils.SendErrorResponse(w, http.StatusConflict, "cycle already expired or awarded")
		case errors.Is(err, models.ErrTenderNotFound):
			utils.SendErrorResponse(w, http.StatusNotFound, "tender not found")
		default:
			if errorResponse, ok := err.(*models.ErrorResponse); ok {
				utils.SendErrorResponse(w, errorResponse.StatusCode, errorResponse.Message)
				return
			}
			utils.SendErrorResponse(w, http.StatusInternalServerError, "failed to convert tender to order")
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err = json.NewEncoder(w).Encode(result); err != nil {
		h.Logger.Println(err)
	}
}
