package transport

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"product-catalog/internal/domain"
	"product-catalog/internal/repository"
	"product-catalog/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Mock repositories for testing, backed by one in-memory store.
type mockStore struct {
	mu       sync.Mutex
	products map[int64]*domain.Product
	users    map[int64]*domain.User
	reviews  []*domain.Review
	nextID   map[string]int64
	failWith error
}

func newMockStore() *mockStore {
	return &mockStore{
		products: make(map[int64]*domain.Product),
		users:    make(map[int64]*domain.User),
		nextID:   make(map[string]int64),
	}
}

func (s *mockStore) id(table string) int64 {
	s.nextID[table]++
	return s.nextID[table]
}

type mockProductRepository struct{ *mockStore }

func (m mockProductRepository) nameTaken(name string, except int64) bool {
	for id, p := range m.products {
		if p.Name == name && id != except {
			return true
		}
	}
	return false
}

func (m mockProductRepository) Create(ctx context.Context, product *domain.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.failWith != nil {
		return m.failWith
	}
	if m.nameTaken(product.Name, 0) {
		return repository.ErrProductAlreadyExists
	}
	product.ID = m.id("products")
	stored := *product
	m.products[product.ID] = &stored
	return nil
}

func (m mockProductRepository) Update(ctx context.Context, product *domain.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.products[product.ID]; !ok {
		return repository.ErrProductNotFound
	}
	if m.nameTaken(product.Name, product.ID) {
		return repository.ErrProductAlreadyExists
	}
	stored := *product
	m.products[product.ID] = &stored
	return nil
}

func (m mockProductRepository) Delete(ctx context.Context, id int64) (*domain.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	product, ok := m.products[id]
	if !ok {
		return nil, repository.ErrProductNotFound
	}
	delete(m.products, id)

	kept := m.reviews[:0]
	for _, r := range m.reviews {
		if r.ProductID != id {
			kept = append(kept, r)
		}
	}
	m.reviews = kept
	return product, nil
}

func (m mockProductRepository) FindByID(ctx context.Context, id int64) (*domain.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	product, ok := m.products[id]
	if !ok {
		return nil, repository.ErrProductNotFound
	}
	copied := *product
	return &copied, nil
}

func (m mockProductRepository) List(ctx context.Context) ([]*domain.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.failWith != nil {
		return nil, m.failWith
	}
	products := []*domain.Product{}
	for _, p := range m.products {
		copied := *p
		products = append(products, &copied)
	}
	sort.Slice(products, func(i, j int) bool { return products[i].ID < products[j].ID })
	return products, nil
}

type mockUserRepository struct{ *mockStore }

func (m mockUserRepository) Create(ctx context.Context, user *domain.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, u := range m.users {
		if u.Name == user.Name {
			return repository.ErrUserAlreadyExists
		}
	}
	user.ID = m.id("users")
	stored := *user
	m.users[user.ID] = &stored
	return nil
}

type mockReviewRepository struct{ *mockStore }

func (m mockReviewRepository) Create(ctx context.Context, review *domain.Review) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.users[review.UserID]; !ok {
		return repository.ErrReviewTargetNotFound
	}
	if _, ok := m.products[review.ProductID]; !ok {
		return repository.ErrReviewTargetNotFound
	}
	review.ID = m.id("reviews")
	review.DateCreated = time.Now().UTC()
	stored := *review
	m.reviews = append(m.reviews, &stored)
	return nil
}

func (m mockReviewRepository) ListByProduct(ctx context.Context, productID int64) ([]*domain.ProductReview, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	reviews := []*domain.ProductReview{}
	for _, r := range m.reviews {
		if r.ProductID != productID {
			continue
		}
		pr := &domain.ProductReview{ID: r.ID, Text: r.Text, ReviewerID: r.UserID}
		if u, ok := m.users[r.UserID]; ok {
			name := u.Name
			pr.ReviewerName = &name
		}
		reviews = append(reviews, pr)
	}
	return reviews, nil
}

var errDatabaseDown = errors.New("connection refused")

// newTestRouter wires the handlers to a fresh store the same way the server does.
func newTestRouter() (chi.Router, *mockStore) {
	store := newMockStore()
	catalog := service.NewCatalogService(
		mockProductRepository{store},
		mockUserRepository{store},
		mockReviewRepository{store},
	)
	logger := zap.NewNop()

	router := chi.NewRouter()
	NewProductHandler(catalog, logger).RegisterRoutes(router)
	NewUserHandler(catalog, logger).RegisterRoutes(router)
	NewReviewHandler(catalog, logger).RegisterRoutes(router)

	return router, store
}
