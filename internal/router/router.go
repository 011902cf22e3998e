package router

import (
	"net/http"

	"github.com/senyabanana/tender-vault/internal/handlers"
)

func InitRoutes(vaultHandler *handlers.VaultHandler, rotationHandler *handlers.RotationHandler) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/api/ping", handlers.PingHandler)

	mux.HandleFunc("/api/vault/new", vaultHandler.StoreTender)
	mux.HandleFunc("/api/rotation/active", vaultHandler.GetOpenOrders)

	mux.HandleFunc("GET /api/rotation/{tenderId}/cycle", rotationHandler.GetActiveCycle)
	mux.HandleFunc("POST /api/rotation/{tenderId}/award", rotationHandler.AwardTender)

	return mux
}
