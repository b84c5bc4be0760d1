package contracts

import (
	"context"
	"mommycare-service/internal/app/models"
	"mommycare-service/internal/pkg/dto/requests"
	"mommycare-service/internal/pkg/dto/responses"
)

type ProductUsecase interface {
	FindActive(ctx context.Context, filter *requests.ProductFilter) ([]responses.Product, *responses.Pagination, error)
	FindCategories(ctx context.Context) ([]responses.ProductCategory, error)
	FindByID(ctx context.Context, productID string) (*responses.Product, error)
	TrackClick(ctx context.Context, productID string) (*responses.ProductClick, error)
	CreateProduct(ctx context.Context, sessionData string, request *requests.CreateProduct) (*responses.Product, error)
	FindMyProducts(ctx context.Context, sessionData string) ([]responses.Product, error)
	UpdateProduct(ctx context.Context, sessionData, productID string, request *requests.UpdateProduct) (*responses.Product, error)
	DeleteProduct(ctx context.Context, sessionData, productID string) error
	ReviewProduct(ctx context.Context, productID string, request *requests.ReviewProduct) (*responses.Product, error)
}

type ProductRepository interface {
	Create(ctx context.Context, entity *models.Product) (string, error)
	FindByID(ctx context.Context, productID string) (*models.Product, error)
	FindActive(ctx context.Context, filter *requests.ProductFilter) ([]models.Product, int64, error)
	FindByServiceProviderID(ctx context.Context, serviceProviderID string) ([]models.Product, error)
	CountActiveByCategory(ctx context.Context) ([]models.ProductCategoryCount, error)
	IncrementCounter(ctx context.Context, productID, counter string) (*models.Product, error)
	Update(ctx context.Context, entity *models.Product) error
	Delete(ctx context.Context, productID string) error
}
