package service

import (
	"context"

	"product-catalog/internal/domain"
	"product-catalog/internal/repository"
)

// CatalogService defines the catalog operations exposed over HTTP. Each call
// maps to a single repository operation; repository errors are returned as is.
type CatalogService interface {
	CreateProduct(ctx context.Context, name, description string, price float64, qty int) (*domain.Product, error)
	GetProduct(ctx context.Context, id int64) (*domain.Product, error)
	GetProductWithReviews(ctx context.Context, id int64) (*domain.ProductDetail, error)
	ListProducts(ctx context.Context) ([]*domain.Product, error)
	UpdateProduct(ctx context.Context, id int64, name, description string, price float64, qty int) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id int64) (*domain.Product, error)
	CreateUser(ctx context.Context, name string) (*domain.User, error)
	CreateReview(ctx context.Context, text string, userID, productID int64) (*domain.Review, error)
}

type catalogService struct {
	productRepo repository.ProductRepository
	userRepo    repository.UserRepository
	reviewRepo  repository.ReviewRepository
}

// NewCatalogService creates a new instance of CatalogService
func NewCatalogService(
	productRepo repository.ProductRepository,
	userRepo repository.UserRepository,
	reviewRepo repository.ReviewRepository,
) CatalogService {
	return &catalogService{
		productRepo: productRepo,
		userRepo:    userRepo,
		reviewRepo:  reviewRepo,
	}
}

func (s *catalogService) CreateProduct(ctx context.Context, name, description string, price float64, qty int) (*domain.Product, error) {
	product := &domain.Product{
		Name:        name,
		Description: description,
		Price:       price,
		Qty:         qty,
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

func (s *catalogService) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	return s.productRepo.FindByID(ctx, id)
}

// GetProductWithReviews loads a product and then its reviews with reviewer
// names. The two reads are not isolated from concurrent writers.
func (s *catalogService) GetProductWithReviews(ctx context.Context, id int64) (*domain.ProductDetail, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	reviews, err := s.reviewRepo.ListByProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	return &domain.ProductDetail{
		Product: product,
		Reviews: reviews,
	}, nil
}

func (s *catalogService) ListProducts(ctx context.Context) ([]*domain.Product, error) {
	return s.productRepo.List(ctx)
}

// UpdateProduct overwrites all four mutable fields of the product.
func (s *catalogService) UpdateProduct(ctx context.Context, id int64, name, description string, price float64, qty int) (*domain.Product, error) {
	product := &domain.Product{
		ID:          id,
		Name:        name,
		Description: description,
		Price:       price,
		Qty:         qty,
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

func (s *catalogService) DeleteProduct(ctx context.Context, id int64) (*domain.Product, error) {
	return s.productRepo.Delete(ctx, id)
}

func (s *catalogService) CreateUser(ctx context.Context, name string) (*domain.User, error) {
	user := &domain.User{Name: name}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// CreateReview stores a review without checking that the user or product
// exists; the schema's foreign keys reject dangling references.
func (s *catalogService) CreateReview(ctx context.Context, text string, userID, productID int64) (*domain.Review, error) {
	review := &domain.Review{
		Text:      text,
		UserID:    userID,
		ProductID: productID,
	}

	if err := s.reviewRepo.Create(ctx, review); err != nil {
		return nil, err
	}

	return review, nil
}
