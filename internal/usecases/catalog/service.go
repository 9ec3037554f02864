package catalog

import (
	"context"
	"fmt"

	"github.com/JohnnyAlysson/store-manager-api/infrastructure/repository"
	"github.com/JohnnyAlysson/store-manager-api/internal/domain"
)

// CatalogService gerencia produtos e serviços. A quantidade de um produto só
// é substituída por aqui; o decremento unitário pertence ao fluxo de venda.
type CatalogService interface {
	CreateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error)
	UpdateProduct(ctx context.Context, req *domain.UpdateProductRequest) error
	DeleteProduct(ctx context.Context, productID int) error
	GetProduct(ctx context.Context, productID int) (*domain.Product, error)
	ListProducts(ctx context.Context) ([]*domain.Product, error)

	CreateService(ctx context.Context, service *domain.Service) (*domain.Service, error)
	UpdateService(ctx context.Context, req *domain.UpdateServiceRequest) error
	DeleteService(ctx context.Context, serviceID int) error
	GetService(ctx context.Context, serviceID int) (*domain.Service, error)
	ListServices(ctx context.Context) ([]*domain.Service, error)
}

type Service struct {
	products repository.ProductRepository
	services repository.ServiceRepository
}

func NewService(
	products repository.ProductRepository,
	services repository.ServiceRepository,
) CatalogService {
	return &Service{
		products: products,
		services: services,
	}
}

func (s *Service) CreateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	if product.Nome == "" {
		return nil, fmt.Errorf("%w: nome", ErrMissingRequiredData)
	}
	if product.Preco.IsNegative() {
		return nil, ErrNegativePrice
	}
	if product.Qtde < 0 {
		return nil, ErrNegativeQuantity
	}

	created, err := s.products.CreateProduct(ctx, product)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDatabaseOperation, err)
	}

	return created, nil
}

func (s *Service) UpdateProduct(ctx context.Context, req *domain.UpdateProductRequest) error {
	if req.Nome == nil && req.Preco == nil && req.Qtde == nil {
		return fmt.Errorf("%w: nenhum campo para atualizar", ErrMissingRequiredData)
	}
	if req.Preco != nil && req.Preco.IsNegative() {
		return ErrNegativePrice
	}
	if req.Qtde != nil && *req.Qtde < 0 {
		return ErrNegativeQuantity
	}

	if err := s.products.UpdateProduct(ctx, req); err != nil {
		return fmt.Errorf("%w: %v", ErrDatabaseOperation, err)
	}

	return nil
}

func (s *Service) DeleteProduct(ctx context.Context, productID int) error {
	if err := s.products.DeleteProduct(ctx, productID); err != nil {
		return fmt.Errorf("%w: %v", ErrDatabaseOperation, err)
	}
	return nil
}

func (s *Service) GetProduct(ctx context.Context, productID int) (*domain.Product, error) {
	return s.products.GetProductByID(ctx, productID)
}

func (s *Service) ListProducts(ctx context.Context) ([]*domain.Product, error) {
	return s.products.ListProducts(ctx)
}

func (s *Service) CreateService(ctx context.Context, service *domain.Service) (*domain.Service, error) {
	if service.Nome == "" {
		return nil, fmt.Errorf("%w: nome", ErrMissingRequiredData)
	}
	if service.Preco.IsNegative() {
		return nil, ErrNegativePrice
	}

	created, err := s.services.CreateService(ctx, service)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDatabaseOperation, err)
	}

	return created, nil
}

func (s *Service) UpdateService(ctx context.Context, req *domain.UpdateServiceRequest) error {
	if req.Nome == nil && req.Preco == nil {
		return fmt.Errorf("%w: nenhum campo para atualizar", ErrMissingRequiredData)
	}
	if req.Preco != nil && req.Preco.IsNegative() {
		return ErrNegativePrice
	}

	if err := s.services.UpdateService(ctx, req); err != nil {
		return fmt.Errorf("%w: %v", ErrDatabaseOperation, err)
	}

	return nil
}

func (s *Service) DeleteService(ctx context.Context, serviceID int) error {
	if err := s.services.DeleteService(ctx, serviceID); err != nil {
		return fmt.Errorf("%w: %v", ErrDatabaseOperation, err)
	}
	return nil
}

func (s *Service) GetService(ctx context.Context, serviceID int) (*domain.Service, error) {
	return s.services.GetServiceByID(ctx, serviceID)
}

func (s *Service) ListServices(ctx context.Context) ([]*domain.Service, error) {
	return s.services.ListServices(ctx)
}
