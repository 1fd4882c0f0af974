package services

import (
	"context"

	"github.com/SscSPs/buylog/internal/apperrors"
	"github.com/SscSPs/buylog/internal/core/domain"
	portsrepo "github.com/SscSPs/buylog/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/buylog/internal/core/ports/services"
	"github.com/SscSPs/buylog/internal/utils/similarity"
)

// DefaultSimilarityThreshold is the Jaccard score at which two names are reported as likely duplicates.
const DefaultSimilarityThreshold = 0.8

type dedupService struct {
	BaseService
	catalogRepo portsrepo.CatalogRepositoryFacade
}

// NewDedupService creates a new duplicate finder over the catalog.
func NewDedupService(catalogRepo portsrepo.CatalogRepositoryFacade, options ...ServiceOption) portssvc.DedupSvc {
	return &dedupService{BaseService: newBaseService(options), catalogRepo: catalogRepo}
}

var _ portssvc.DedupSvc = (*dedupService)(nil)

func (s *dedupService) FindSimilarProducts(ctx context.Context, threshold float64) ([]domain.SimilarGroup, error) {
	products, err := s.catalogRepo.ListProducts(ctx, "")
	if err != nil {
		return nil, err
	}
	items := make([]similarity.Named, len(products))
	for i, p := range products {
		items[i] = similarity.Named{ID: p.ProductID, Name: p.Name}
	}
	return groupSimilar(items, threshold)
}

func (s *dedupService) FindSimilarVendors(ctx context.Context, threshold float64) ([]domain.SimilarGroup, error) {
	vendors, err := s.catalogRepo.ListVendors(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]similarity.Named, len(vendors))
	for i, v := range vendors {
		items[i] = similarity.Named{ID: v.VendorID, Name: v.Name}
	}
	return groupSimilar(items, threshold)
}

func groupSimilar(items []similarity.Named, threshold float64) ([]domain.SimilarGroup, error) {
	if threshold == 0 {
		threshold = DefaultSimilarityThreshold
	}
	if threshold < 0 || threshold > 1 {
		return nil, apperrors.NewValidationError("similarity threshold must be between 0 and 1")
	}

	groups := []domain.SimilarGroup{}
	for _, g := range similarity.Group(items, threshold) {
		group := domain.SimilarGroup{}
		for _, item := range g {
			group.IDs = append(group.IDs, item.ID)
			group.Names = append(group.Names, item.Name)
		}
		groups = append(groups, group)
	}
	return groups, nil
}
