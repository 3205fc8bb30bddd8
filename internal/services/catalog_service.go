package services

import (
	"freshfold/internal/domain"
	"freshfold/internal/repos"
)

type CatalogService struct {
	Services *repos.ServiceRepo
}

func NewCatalogService(services *repos.ServiceRepo) *CatalogService {
	return &CatalogService{Services: services}
}

// ListActive returns bookable offerings, cheapest per-kg rate first. Cheap
// enough to re-run on every page view; the store is authoritative.
func (s *CatalogService) ListActive() ([]domain.Service, error) {
	return s.Services.ListActive()
}

func (s *CatalogService) GetService(id string) (domain.Service, error) {
	return s.Services.Get(id)
}
