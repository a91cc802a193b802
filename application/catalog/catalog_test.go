package catalog_test

import (
	"context"
	"errors"
	"testing"
	"time"

	appcatalog "github.com/muhammadheryan/restock/application/catalog"
	"github.com/muhammadheryan/restock/constant"
	catalogmocks "github.com/muhammadheryan/restock/mocks/repository/catalog"
	redismocks "github.com/muhammadheryan/restock/mocks/repository/redis"
	"github.com/muhammadheryan/restock/model"
	cerr "github.com/muhammadheryan/restock/utils/errors"
	"github.com/stretchr/testify/mock"
)

const vendorsKey = "catalog:vendors"

func TestCatalogApp_ListVendors(t *testing.T) {
	type fields struct {
		catalogRepo *catalogmocks.CatalogRepository
		redisRepo   *redismocks.Repository
	}
	vendors := []model.Vendor{{ID: 1, Email: "acme@vendor.test", FullName: "Acme"}}

	tests := []struct {
		name     string
		fields   fields
		mockCall func(f fields)
		want     int
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name:   "success: cache hit skips the database",
			fields: fields{catalogRepo: catalogmocks.NewCatalogRepository(t), redisRepo: redismocks.NewRepository(t)},
			mockCall: func(f fields) {
				f.redisRepo.On("Get", mock.Anything, vendorsKey).Return(`[{"id":1,"email":"acme@vendor.test","full_name":"Acme"},{"id":2,"email":"beta@vendor.test","full_name":"Beta"}]`, nil).Once()
			},
			want: 2,
		},
		{
			name:   "success: cache miss reads and fills the cache",
			fields: fields{catalogRepo: catalogmocks.NewCatalogRepository(t), redisRepo: redismocks.NewRepository(t)},
			mockCall: func(f fields) {
				f.redisRepo.On("Get", mock.Anything, vendorsKey).Return("", nil).Once()
				f.catalogRepo.On("ListVendors", mock.Anything).Return(vendors, nil).Once()
				f.redisRepo.On("SetWithTTL", mock.Anything, vendorsKey, mock.AnythingOfType("string"), 5*time.Minute).Return(nil).Once()
			},
			want: 1,
		},
		{
			name:   "success: redis down degrades to the database",
			fields: fields{catalogRepo: catalogmocks.NewCatalogRepository(t), redisRepo: redismocks.NewRepository(t)},
			mockCall: func(f fields) {
				f.redisRepo.On("Get", mock.Anything, vendorsKey).Return("", errors.New("connection refused")).Once()
				f.catalogRepo.On("ListVendors", mock.Anything).Return(vendors, nil).Once()
				f.redisRepo.On("SetWithTTL", mock.Anything, vendorsKey, mock.Anything, mock.Anything).Return(errors.New("connection refused")).Once()
			},
			want: 1,
		},
		{
			name:   "success: corrupt cache entry is ignored",
			fields: fields{catalogRepo: catalogmocks.NewCatalogRepository(t), redisRepo: redismocks.NewRepository(t)},
			mockCall: func(f fields) {
				f.redisRepo.On("Get", mock.Anything, vendorsKey).Return("{not json", nil).Once()
				f.catalogRepo.On("ListVendors", mock.Anything).Return(vendors, nil).Once()
				f.redisRepo.On("SetWithTTL", mock.Anything, vendorsKey, mock.Anything, mock.Anything).Return(nil).Once()
			},
			want: 1,
		},
		{
			name:   "error: database failure",
			fields: fields{catalogRepo: catalogmocks.NewCatalogRepository(t), redisRepo: redismocks.NewRepository(t)},
			mockCall: func(f fields) {
				f.redisRepo.On("Get", mock.Anything, vendorsKey).Return("", nil).Once()
				f.catalogRepo.On("ListVendors", mock.Anything).Return(nil, errors.New("db error")).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appcatalog.NewCatalogApp(tt.fields.catalogRepo, tt.fields.redisRepo, 5*time.Minute)

			got, err := app.ListVendors(context.Background())
			if (err != nil) != tt.wantErr {
				t.Fatalf("ListVendors() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
				return
			}
			if len(got) != tt.want {
				t.Fatalf("ListVendors() = %d vendors, want %d", len(got), tt.want)
			}
		})
	}
}

func TestCatalogApp_GetProduct(t *testing.T) {
	tests := []struct {
		name    string
		found   *model.Product
		repoErr error
		wantErr bool
		errCode constant.ErrorType
	}{
		{name: "found", found: &model.Product{ID: 4, Name: "Bolt"}},
		{name: "unknown product", wantErr: true, errCode: constant.ErrNotFound},
		{name: "database failure", repoErr: errors.New("db error"), wantErr: true, errCode: constant.ErrInternal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			catalogRepo := catalogmocks.NewCatalogRepository(t)
			catalogRepo.On("GetProduct", mock.Anything, uint64(4)).Return(tt.found, tt.repoErr).Once()

			app := appcatalog.NewCatalogApp(catalogRepo, redismocks.NewRepository(t), time.Minute)
			got, err := app.GetProduct(context.Background(), 4)
			if (err != nil) != tt.wantErr {
				t.Fatalf("GetProduct() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !cerr.Is(err, tt.errCode) {
					t.Fatalf("GetProduct() error = %v, want %s", err, constant.ErrorTypeCode[tt.errCode])
				}
				return
			}
			if got.Name != "Bolt" {
				t.Fatalf("GetProduct() = %+v", got)
			}
		})
	}
}

func TestCatalogApp_InvalidateVendors(t *testing.T) {
	redisRepo := redismocks.NewRepository(t)
	redisRepo.On("Delete", mock.Anything, vendorsKey).Return(nil).Once()
	redisRepo.On("Delete", mock.Anything, vendorsKey).Return(errors.New("connection refused")).Once()

	app := appcatalog.NewCatalogApp(catalogmocks.NewCatalogRepository(t), redisRepo, time.Minute)
	if err := app.InvalidateVendors(context.Background()); err != nil {
		t.Fatalf("InvalidateVendors() error = %v", err)
	}
	if err := app.InvalidateVendors(context.Background()); !cerr.Is(err, constant.ErrInternal) {
		t.Fatalf("InvalidateVendors() error = %v, want internal", err)
	}
}
