package handlers

import (
	"net/http"

	"campus-cafe/internal/domain"
	"campus-cafe/internal/logger"
	"campus-cafe/internal/service"
)

type CatalogHandler struct {
	service service.CatalogServiceInterface
	lg      *logger.Logger
}

func NewCatalogHandler(s service.CatalogServiceInterface, lg *logger.Logger) *CatalogHandler {
	return &CatalogHandler{service: s, lg: lg}
}

func (ch *CatalogHandler) ListCatalog(w http.ResponseWriter, r *http.Request) {
	items, err := ch.service.ListCatalog(r.Context())
	if err != nil {
		ch.lg.Error("catalog_list_failed", err, nil)
		writeError(w, http.StatusInternalServerError, "Failed to load catalog")
		return
	}

	out := make([]domain.CatalogItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, domain.NewCatalogItemResponse(it))
	}
	writeJSON(w, http.StatusOK, out)
}
