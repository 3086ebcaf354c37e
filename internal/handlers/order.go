package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"campus-cafe/internal/domain"
	"campus-cafe/internal/logger"
	"campus-cafe/internal/service"
)

type OrderHandler struct {
	service service.OrderServiceInterface
	lg      *logger.Logger
}

func NewOrderHandler(s service.OrderServiceInterface, lg *logger.Logger) *OrderHandler {
	return &OrderHandler{service: s, lg: lg}
}

func (oh *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	result, err := oh.service.PlaceOrder(r.Context(), req)
	if err != nil {
		if errors.Is(err, domain.ErrEmptyCart) {
			writeError(w, http.StatusBadRequest, "Cart is empty")
			return
		}
		oh.lg.Error("order_create_failed", err, nil)
		writeError(w, http.StatusInternalServerError, "Failed to create order")
		return
	}

	if len(result.Rejected) > 0 {
		oh.lg.Warn("order_lines_rejected", map[string]any{
			"order_id": result.OrderID, "rejected_ids": result.Rejected,
		})
	}

	writeJSON(w, http.StatusCreated, domain.CreateOrderResponse{OrderID: result.OrderID})
}

func (oh *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	orderID, err := strconv.ParseInt(r.PathValue("orderId"), 10, 64)
	if err != nil {
		writeError(w, http.StatusNotFound, "Order not found")
		return
	}

	details, err := oh.service.GetOrder(r.Context(), orderID)
	if err != nil {
		if errors.Is(err, domain.ErrOrderNotFound) {
			writeError(w, http.StatusNotFound, "Order not found")
			return
		}
		oh.lg.Error("order_get_failed", err, map[string]any{"order_id": orderID})
		writeError(w, http.StatusInternalServerError, "Failed to load order")
		return
	}

	writeJSON(w, http.StatusOK, domain.NewOrderDetailsResponse(details))
}
