package handlers

import (
	"campus-cafe/internal/logger"
	"campus-cafe/internal/service"
)

type Handler struct {
	OrderHandler   *OrderHandler
	CatalogHandler *CatalogHandler
}

func New(s *service.Service, lg *logger.Logger) *Handler {
	return &Handler{
		OrderHandler:   NewOrderHandler(s.Orders, lg),
		CatalogHandler: NewCatalogHandler(s.Catalog, lg),
	}
}
