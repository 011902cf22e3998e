package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/senyabanana/tender-vault/internal/models"
	"github.com/senyabanana/tender-vault/internal/services"
	"github.com/senyabanana/tender-vault/internal/utils"
)

// VaultHandler - структура для обработки HTTP-запросов к хранилищу тендеров.
type VaultHandler struct {
	Service *services.VaultService
	Logger  *log.Logger
	Timeout time.Duration
}

// NewVaultHandler создаёт новый экземпляр VaultHandler.
func NewVaultHandler(service *services.VaultService, logger *log.Logger, timeout time.Duration) *VaultHandler {
	return &VaultHandler{
		Service: service,
		Logger:  logger,
		Timeout: timeout,
	}
}

// StoreTender обрабатывает запросы на помещение тендера в хранилище.
func (h *VaultHandler) StoreTender(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		utils.SendErrorResponse(w, http.StatusBadRequest, "invalid method, only POST is allowed")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.Timeout)
	defer cancel()

	var tenderReq models.TenderRequest
	if err := json.NewDecoder(r.Body).Decode(&tenderReq); err != nil {
		utils.SendErrorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}

	tender, err := h.Service.StoreTender(ctx, tenderReq)
	if err != nil {
		if errorResponse, ok := err.(*models.ErrorResponse); ok {
			h.Logger.Println(err)
			utils.SendErrorResponse(w, errorResponse.StatusCode, errorResponse.Message)
			return
		}
		h.Logger.Println(err)
		utils.SendErrorResponse(w, http.StatusInternalServerError, "failed to store tender")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err = json.NewEncoder(w).Encode(tender); err != nil {
		h.Logger.Println(err)
	}
}

// GetOpenOrders обрабатывает запросы на получение витрины открытых анонимных заказов.
func (h *VaultHandler) GetOpenOrders(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		utils.SendErrorResponse(w, http.StatusBadRequest, "invalid method, only GET is allowed")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.Timeout)
	defer cancel()

	limitStr := r.URL.Query().Get("limit")
	offsetStr := r.URL.Query().Get("offset")
	serviceTypes := r.URL.Query()["service_type"]

	limit, offset, err := utils.ParseLimitOffset(limitStr, offsetStr)
	if err != nil {
		utils.SendErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	orders, err := h.Service.FetchOpenOrders(ctx, limit, offset, serviceTypes)
	if err != nil {
		if errorResponse, ok := err.(*models.ErrorResponse); ok {
			h.Logger.Println(err)
			utils.SendErrorResponse(w, errorResponse.StatusCode, errorResponse.Message)
			return
		}
		h.Logger.Println(err)
		utils.SendErrorResponse(w, http.StatusInternalServerError, "failed to fetch open orders")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err = json.NewEncoder(w).Encode(orders); err != nil {
		h.Logger.Println(err)
	}
}
