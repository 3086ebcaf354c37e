package handlers

import (
	"net/http"

	"campus-cafe/internal/logger"
)

func Router(h *Handler, lg *logger.Logger) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /catalog", h.CatalogHandler.ListCatalog)
	mux.HandleFunc("POST /orders", h.OrderHandler.CreateOrder)
	mux.HandleFunc("GET /orders/{orderId}", h.OrderHandler.GetOrder)
	return requestLog(lg, mux)
}
