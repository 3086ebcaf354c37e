package service

import (
	"campus-cafe/internal/events"
	"campus-cafe/internal/logger"
	"campus-cafe/internal/repository"
)

type Service struct {
	Catalog CatalogServiceInterface
	Orders  OrderServiceInterface
}

// New wires the service layer. publisher may be nil when the event feed is
// not configured.
func New(repo *repository.Repository, publisher events.PublisherInterface, lg *logger.Logger) *Service {
	return &Service{
		Catalog: NewCatalogService(repo.Catalog),
		Orders:  NewOrderService(repo.Catalog, repo.Orders, publisher, lg),
	}
}
