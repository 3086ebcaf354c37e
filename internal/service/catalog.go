package service

import (
	"context"

	"campus-cafe/internal/domain"
	"campus-cafe/internal/repository"
)

type CatalogServiceInterface interface {
	ListCatalog(ctx context.Context) ([]domain.CatalogItem, error)
}

type CatalogService struct {
	catalog repository.CatalogRepositoryInterface
}

func NewCatalogService(catalog repository.CatalogRepositoryInterface) CatalogServiceInterface {
	return &CatalogService{catalog: catalog}
}

func (cs *CatalogService) ListCatalog(ctx context.Context) ([]domain.CatalogItem, error) {
	return cs.catalog.ListItems(ctx)
}
