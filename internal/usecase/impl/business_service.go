package impl

import (
	"context"
	"strings"

	"storefront/config"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type businessService struct {
	businessRepo repository.BusinessRepository
	productRepo  repository.ProductRepository
	qrcode       service.QRCodeService
	config       *config.Config
}

// BusinessServiceParams holds dependencies for BusinessService, injected by Fx.
type BusinessServiceParams struct {
	fx.In

	BusinessRepo repository.BusinessRepository
	ProductRepo  repository.ProductRepository
	QRCode       service.QRCodeService
	Config       *config.Config
}

// NewBusinessService creates a new business service instance
func NewBusinessService(params BusinessServiceParams) usecase.BusinessUsecase {
	return &businessService{
		businessRepo: params.BusinessRepo,
		productRepo:  params.ProductRepo,
		qrcode:       params.QRCode,
		config:       params.Config,
	}
}

// GetStorefront resolves a slug into the public profile: the business plus
// its active products. Inactive businesses behave as not found.
func (s *businessService) GetStorefront(ctx context.Context, slug string) (*usecase.StorefrontProfile, error) {
	business, err := s.resolveActiveBusiness(ctx, slug)
	if err != nil {
		return nil, err
	}

	status := entity.ProductActive
	products, err := s.productRepo.List(ctx, business.ID, &status)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list storefront products")
	}

	return &usecase.StorefrontProfile{
		Business: business,
		Products: products,
	}, nil
}

// GenerateStorefrontQR renders the storefront link as a PNG QR code.
func (s *businessService) GenerateStorefrontQR(ctx context.Context, slug string) ([]byte, error) {
	business, err := s.resolveActiveBusiness(ctx, slug)
	if err != nil {
		return nil, err
	}

	return s.qrcode.GenerateStorefrontQR(s.storefrontURL(business.Slug))
}

func (s *businessService) resolveActiveBusiness(ctx context.Context, slug string) (*entity.Business, error) {
	business, err := s.businessRepo.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, repository.ErrBusinessNotFound) {
			return nil, domainerrors.ErrBusinessNotFound
		}

		return nil, errors.Wrap(err, "failed to resolve business")
	}
	if !business.Active {
		return nil, domainerrors.ErrBusinessNotFound
	}

	return business, nil
}

func (s *businessService) storefrontURL(slug string) string {
	base := "https://storefront.local"
	if s.config != nil && s.config.Storefront.BaseURL != "" {
		base = strings.TrimRight(s.config.Storefront.BaseURL, "/")
	}

	return base + "/" + slug
}
