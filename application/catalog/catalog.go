package catalog

import (
	"context"
	"encoding/json"
	"time"

	"github.com/muhammadheryan/restock/constant"
	"github.com/muhammadheryan/restock/model"
	catalogrepo "github.com/muhammadheryan/restock/repository/catalog"
	redisrepo "github.com/muhammadheryan/restock/repository/redis"
	"github.com/muhammadheryan/restock/utils/errors"
	"github.com/muhammadheryan/restock/utils/logger"
	"go.uber.org/zap"
)

const vendorsCacheKey = "catalog:vendors"

type CatalogApp interface {
	GetProduct(ctx context.Context, id uint64) (*model.Product, error)
	ListVendors(ctx context.Context) ([]model.Vendor, error)
	InvalidateVendors(ctx context.Context) error
}

type catalogAppImpl struct {
	catalogRepo catalogrepo.CatalogRepository
	redisRepo   redisrepo.Repository
	vendorTTL   time.Duration
}

func NewCatalogApp(catalogRepo catalogrepo.CatalogRepository, redisRepo redisrepo.Repository, vendorTTL time.Duration) CatalogApp {
	return &catalogAppImpl{catalogRepo: catalogRepo, redisRepo: redisRepo, vendorTTL: vendorTTL}
}

// GetProduct returns ErrNotFound for an unknown product.
func (s *catalogAppImpl) GetProduct(ctx context.Context, id uint64) (*model.Product, error) {
	product, err := s.catalogRepo.GetProduct(ctx, id)
	if err != nil {
		logger.Error("[GetProduct] error catalogRepo.GetProduct", zap.Uint64("product_id", id), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if product == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return product, nil
}

// ListVendors serves from Redis when possible. Cache failures only cost a DB read.
func (s *catalogAppImpl) ListVendors(ctx context.Context) ([]model.Vendor, error) {
	cached, err := s.redisRepo.Get(ctx, vendorsCacheKey)
	if err != nil {
		logger.Warn("[ListVendors] cache read", zap.String("error", err.Error()))
	}
	if cached != "" {
		var vendors []model.Vendor
		if err := json.Unmarshal([]byte(cached), &vendors); err == nil {
			return vendors, nil
		}
		logger.Warn("[ListVendors] corrupt cache entry dropped")
	}

	vendors, err := s.catalogRepo.ListVendors(ctx)
	if err != nil {
		logger.Error("[ListVendors] error catalogRepo.ListVendors", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if raw, err := json.Marshal(vendors); err == nil {
		if err := s.redisRepo.SetWithTTL(ctx, vendorsCacheKey, string(raw), s.vendorTTL); err != nil {
			logger.Warn("[ListVendors] cache write", zap.String("error", err.Error()))
		}
	}
	return vendors, nil
}

func (s *catalogAppImpl) InvalidateVendors(ctx context.Context) error {
	if err := s.redisRepo.Delete(ctx, vendorsCacheKey); err != nil {
		logger.Error("[InvalidateVendors] cache delete", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}
