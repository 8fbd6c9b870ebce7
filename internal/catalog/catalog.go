package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"silva_storefront/internal/cache"
	"silva_storefront/internal/models"

	"go.uber.org/zap"
)

var ErrProductNotFound = errors.New("produit introuvable")

const (
	keyCategories  = "catalog:categories:all"
	keyAllProducts = "catalog:products:all"
	keyProductsCat = "catalog:products:cat:"
)

// Backend regroupe les appels catalogue de l'API distante
type Backend interface {
	ListProducts(ctx context.Context, categoryID int64) ([]models.Product, error)
	ListCategories(ctx context.Context) ([]models.Category, error)
	CreateProduct(ctx context.Context, token string, in models.ProductInput) error
	UpdateProduct(ctx context.Context, token string, id int64, in models.ProductInput) error
	DeleteProduct(ctx context.Context, token string, id int64) error
	CreateCategory(ctx context.Context, token string, in models.CategoryInput) error
	UpdateCategory(ctx context.Context, token string, id int64, in models.CategoryInput) error
	DeleteCategory(ctx context.Context, token string, id int64) error
}

// Service sert le catalogue en lecture avec un cache, et invalide ce cache après chaque écriture admin.
// Une panne du cache n'est jamais bloquante : on retombe sur le backend.
type Service struct {
	backend Backend
	store   cache.Store
	ttl     time.Duration
	log     *zap.Logger

	mu sync.Mutex
	// catégories dont la liste de produits a été mise en cache
	filtered map[int64]struct{}
}

func NewService(backend Backend, store cache.Store, ttl time.Duration, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		backend:  backend,
		store:    store,
		ttl:      ttl,
		log:      logger,
		filtered: make(map[int64]struct{}),
	}
}

// Products renvoie les produits, filtrés par catégorie si categoryID > 0
func (s *Service) Products(ctx context.Context, categoryID int64) ([]models.Product, error) {
	key := keyAllProducts
	if categoryID > 0 {
		key = keyProductsCat + strconv.FormatInt(categoryID, 10)
	}

	var products []models.Product
	if s.readCache(ctx, key, &products) {
		return products, nil
	}

	products, err := s.backend.ListProducts(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	if products == nil {
		products = []models.Product{}
	}
	s.writeCache(ctx, key, products)
	if categoryID > 0 {
		s.mu.Lock()
		s.filtered[categoryID] = struct{}{}
		s.mu.Unlock()
	}
	return products, nil
}

func (s *Service) Categories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if s.readCache(ctx, keyCategories, &categories) {
		return categories, nil
	}

	categories, err := s.backend.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	if categories == nil {
		categories = []models.Category{}
	}
	s.writeCache(ctx, keyCategories, categories)
	return categories, nil
}

// Product cherche un produit dans le catalogue complet
func (s *Service) Product(ctx context.Context, id int64) (models.Product, error) {
	products, err := s.Products(ctx, 0)
	if err != nil {
		return models.Product{}, err
	}
	for _, p := range products {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Product{}, fmt.Errorf("%w: %d", ErrProductNotFound, id)
}

func (s *Service) CreateProduct(ctx context.Context, token string, in models.ProductInput) error {
	if err := s.backend.CreateProduct(ctx, token, in); err != nil {
		return err
	}
	s.InvalidateProducts(ctx)
	return nil
}

func (s *Service) UpdateProduct(ctx context.Context, token string, id int64, in models.ProductInput) error {
	if err := s.backend.UpdateProduct(ctx, token, id, in); err != nil {
		return err
	}
	s.InvalidateProducts(ctx)
	return nil
}

func (s *Service) DeleteProduct(ctx context.Context, token string, id int64) error {
	if err := s.backend.DeleteProduct(ctx, token, id); err != nil {
		return err
	}
	s.InvalidateProducts(ctx)
	return nil
}

func (s *Service) CreateCategory(ctx context.Context, token string, in models.CategoryInput) error {
	if err := s.backend.CreateCategory(ctx, token, in); err != nil {
		return err
	}
	s.invalidate(ctx, keyCategories)
	return nil
}

// UpdateCategory invalide aussi les produits : ils portent le nom de leur catégorie
func (s *Service) UpdateCategory(ctx context.Context, token string, id int64, in models.CategoryInput) error {
	if err := s.backend.UpdateCategory(ctx, token, id, in); err != nil {
		return err
	}
	s.invalidate(ctx, keyCategories)
	s.InvalidateProducts(ctx)
	return nil
}

func (s *Service) DeleteCategory(ctx context.Context, token string, id int64) error {
	if err := s.backend.DeleteCategory(ctx, token, id); err != nil {
		return err
	}
	s.invalidate(ctx, keyCategories)
	s.InvalidateProducts(ctx)
	return nil
}

func (s *Service) readCache(ctx context.Context, key string, dst any) bool {
	raw, err := s.store.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, cache.ErrMiss) {
			s.log.Warn("⚠️ Lecture cache catalogue impossible", zap.String("key", key), zap.Error(err))
		}
		return false
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		s.log.Warn("⚠️ Entrée cache catalogue corrompue", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

func (s *Service) writeCache(ctx context.Context, key string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := s.store.Set(ctx, key, string(data), s.ttl); err != nil {
		s.log.Warn("⚠️ Écriture cache catalogue impossible", zap.String("key", key), zap.Error(err))
	}
}

// InvalidateProducts oublie toutes les listes de produits en cache (après une écriture ou une vente)
func (s *Service) InvalidateProducts(ctx context.Context) {
	keys := []string{keyAllProducts}
	s.mu.Lock()
	for id := range s.filtered {
		keys = append(keys, keyProductsCat+strconv.FormatInt(id, 10))
	}
	s.mu.Unlock()
	s.invalidate(ctx, keys...)
}

func (s *Service) invalidate(ctx context.Context, keys ...string) {
	if err := s.store.Del(ctx, keys...); err != nil {
		s.log.Warn("⚠️ Invalidation cache catalogue impossible", zap.Strings("keys", keys), zap.Error(err))
	}
}
