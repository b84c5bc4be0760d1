package products

import (
	"context"
	"mommycare-service/internal/app/config"
	"mommycare-service/internal/app/contracts"
	"mommycare-service/internal/app/models"
	"mommycare-service/internal/pkg/constvars"
	"mommycare-service/internal/pkg/dto/requests"
	"mommycare-service/internal/pkg/dto/responses"
	"mommycare-service/internal/pkg/exceptions"
	"mommycare-service/internal/pkg/utils"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type productUsecase struct {
	ProductRepository contracts.ProductRepository
	RedisRepository   contracts.RedisRepository
	MinioStorage      contracts.Storage
	SessionService    contracts.SessionService
	InternalConfig    *config.InternalConfig
	Log               *zap.Logger
}

func NewProductUsecase(
	productRepository contracts.ProductRepository,
	redisRepository contracts.RedisRepository,
	minioStorage contracts.Storage,
	sessionService contracts.SessionService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.ProductUsecase {
	return &productUsecase{
		ProductRepository: productRepository,
		RedisRepository:   redisRepository,
		MinioStorage:      minioStorage,
		SessionService:    sessionService,
		InternalConfig:    internalConfig,
		Log:               logger,
	}
}

func (uc *productUsecase) FindActive(ctx context.Context, filter *requests.ProductFilter) ([]responses.Product, *responses.Pagination, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("productUsecase.FindActive called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCategoryKey, filter.Category),
	)

	if filter.Page <= 0 {
		filter.Page = constvars.AppDefaultPage
	}
	if filter.Limit <= 0 {
		filter.Limit = constvars.AppDefaultProductPageSize
	}
	if filter.Limit > constvars.AppMaxProductPageSize {
		filter.Limit = constvars.AppMaxProductPageSize
	}

	products, total, err := uc.ProductRepository.FindActive(ctx, filter)
	if err != nil {
		uc.Log.Error("productUsecase.FindActive error calling ProductRepository.FindActive",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, nil, err
	}

	response := uc.convertProducts(ctx, products)
	baseURL := uc.InternalConfig.App.EndpointPrefix + "/products"
	pagination := utils.BuildPaginationResponse(int(total), filter.Page, filter.Limit, baseURL, constvars.AppProductPaginationUrlFormat)

	uc.Log.Info("productUsecase.FindActive succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingProductCountKey, len(response)),
	)
	return response, pagination, nil
}

// FindCategories serves the category counts from redis and repopulates the
// cache from mongo on a miss.
func (uc *productUsecase) FindCategories(ctx context.Context) ([]responses.ProductCategory, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("productUsecase.FindCategories called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	var categories []models.ProductCategoryCount

	cachedCategories, err := uc.RedisRepository.Get(ctx, constvars.RedisKeyProductCategories)
	if err != nil {
		uc.Log.Warn("productUsecase.FindCategories error reading cache, falling back to database",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		cachedCategories = ""
	}

	if cachedCategories == "" {
		categories, err = uc.ProductRepository.CountActiveByCategory(ctx)
		if err != nil {
			uc.Log.Error("productUsecase.FindCategories error calling ProductRepository.CountActiveByCategory",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, err
		}

		cacheTTL := time.Duration(uc.InternalConfig.App.ProductCategoriesCacheTTLInMinutes) * time.Minute
		err = uc.RedisRepository.Set(ctx, constvars.RedisKeyProductCategories, categories, cacheTTL)
		if err != nil {
			uc.Log.Warn("productUsecase.FindCategories error caching categories",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
		}
	} else {
		err = json.Unmarshal([]byte(cachedCategories), &categories)
		if err != nil {
			return nil, exceptions.ErrCannotParseJSON(err)
		}
	}

	response := make([]responses.ProductCategory, len(categories))
	for i, category := range categories {
		response[i] = category.ConvertIntoResponse()
	}

	uc.Log.Info("productUsecase.FindCategories succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCategoryCountKey, len(response)),
	)
	return response, nil
}

func (uc *productUsecase) FindByID(ctx context.Context, productID string) (*responses.Product, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("productUsecase.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingProductIDKey, productID),
	)

	product, err := uc.ProductRepository.IncrementCounter(ctx, productID, constvars.ProductCounterViews)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, exceptions.ErrProductNotFound(nil)
	}

	response := product.ConvertIntoResponse(uc.imageURL(ctx, product.Image))
	return &response, nil
}

func (uc *productUsecase) TrackClick(ctx context.Context, productID string) (*responses.ProductClick, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("productUsecase.TrackClick called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingProductIDKey, productID),
	)

	product, err := uc.ProductRepository.IncrementCounter(ctx, productID, constvars.ProductCounterClicks)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, exceptions.ErrProductNotFound(nil)
	}

	return &responses.ProductClick{
		ExternalLink: product.ExternalLink,
		Clicks:       product.Clicks,
	}, nil
}

func (uc *productUsecase) CreateProduct(ctx context.Context, sessionData string, request *requests.CreateProduct) (*responses.Product, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("productUsecase.CreateProduct called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCategoryKey, request.Category),
	)

	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	slug := utils.GenerateUniqueSlug(request.Name)
	objectName, err := uc.uploadImage(ctx, request.Image, slug)
	if err != nil {
		return nil, err
	}

	product := &models.Product{
		ServiceProviderID: session.UserID,
		Name:              request.Name,
		Slug:              slug,
		Category:          request.Category,
		Price:             request.Price,
		Description:       request.Description,
		ExternalLink:      request.ExternalLink,
		Image:             objectName,
		Tags:              request.Tags,
		Status:            constvars.ProductStatusPending,
	}
	product.SetCreatedAtUpdatedAt()

	_, err = uc.ProductRepository.Create(ctx, product)
	if err != nil {
		uc.Log.Error("productUsecase.CreateProduct error calling ProductRepository.Create",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		uc.deleteImage(ctx, objectName)
		return nil, err
	}

	response := product.ConvertIntoResponse(uc.imageURL(ctx, product.Image))
	uc.Log.Info("productUsecase.CreateProduct succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingProductIDKey, response.ID),
	)
	return &response, nil
}

func (uc *productUsecase) FindMyProducts(ctx context.Context, sessionData string) ([]responses.Product, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("productUsecase.FindMyProducts called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	products, err := uc.ProductRepository.FindByServiceProviderID(ctx, session.UserID)
	if err != nil {
		uc.Log.Error("productUsecase.FindMyProducts error calling ProductRepository.FindByServiceProviderID",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	return uc.convertProducts(ctx, products), nil
}

// UpdateProduct applies the provided fields. A rejected product goes back to
// pending so an admin reviews the new version.
func (uc *productUsecase) UpdateProduct(ctx context.Context, sessionData, productID string, request *requests.UpdateProduct) (*responses.Product, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("productUsecase.UpdateProduct called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingProductIDKey, productID),
	)

	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	product, err := uc.findOwned(ctx, session.UserID, productID)
	if err != nil {
		return nil, err
	}

	if request.Name != "" {
		product.Name = request.Name
	}
	if request.Category != "" {
		product.Category = request.Category
	}
	if request.Price != nil {
		product.Price = *request.Price
	}
	if request.Description != "" {
		product.Description = request.Description
	}
	if request.ExternalLink != "" {
		product.ExternalLink = request.ExternalLink
	}
	if request.Tags != nil {
		product.Tags = request.Tags
	}

	previousImage, uploadedImage := "", ""
	if request.Image != "" {
		objectName, err := uc.uploadImage(ctx, request.Image, utils.GenerateUniqueSlug(product.Name))
		if err != nil {
			return nil, err
		}
		previousImage = product.Image
		uploadedImage = objectName
		product.Image = objectName
	}

	if product.Status == constvars.ProductStatusRejected {
		product.Status = constvars.ProductStatusPending
	}
	product.SetUpdatedAt()

	err = uc.ProductRepository.Update(ctx, product)
	if err != nil {
		uc.Log.Error("productUsecase.UpdateProduct error calling ProductRepository.Update",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		if uploadedImage != "" {
			uc.deleteImage(ctx, uploadedImage)
		}
		return nil, err
	}

	if previousImage != "" {
		uc.deleteImage(ctx, previousImage)
	}
	uc.invalidateCategories(ctx)

	response := product.ConvertIntoResponse(uc.imageURL(ctx, product.Image))
	return &response, nil
}

func (uc *productUsecase) DeleteProduct(ctx context.Context, sessionData, productID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("productUsecase.DeleteProduct called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingProductIDKey, productID),
	)

	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return err
	}

	product, err := uc.findOwned(ctx, session.UserID, productID)
	if err != nil {
		return err
	}

	err = uc.ProductRepository.Delete(ctx, productID)
	if err != nil {
		uc.Log.Error("productUsecase.DeleteProduct error calling ProductRepository.Delete",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	if product.Image != "" {
		uc.deleteImage(ctx, product.Image)
	}
	uc.invalidateCategories(ctx)
	return nil
}

func (uc *productUsecase) ReviewProduct(ctx context.Context, productID string, request *requests.ReviewProduct) (*responses.Product, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("productUsecase.ReviewProduct called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingProductIDKey, productID),
		zap.String(constvars.LoggingRequestStatusKey, request.Status),
	)

	product, err := uc.ProductRepository.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, exceptions.ErrProductNotFound(nil)
	}

	product.Status = request.Status
	product.SetUpdatedAt()

	err = uc.ProductRepository.Update(ctx, product)
	if err != nil {
		uc.Log.Error("productUsecase.ReviewProduct error calling ProductRepository.Update",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	uc.invalidateCategories(ctx)

	response := product.ConvertIntoResponse(uc.imageURL(ctx, product.Image))
	return &response, nil
}

func (uc *productUsecase) findOwned(ctx context.Context, serviceProviderID, productID string) (*models.Product, error) {
	product, err := uc.ProductRepository.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil || product.ServiceProviderID != serviceProviderID {
		return nil, exceptions.ErrProductNotFound(nil)
	}
	return product, nil
}

func (uc *productUsecase) uploadImage(ctx context.Context, dataURI, slug string) (string, error) {
	imageData, extension, err := utils.DecodeBase64Image(dataURI)
	if err != nil {
		return "", exceptions.ErrImageValidation(err)
	}

	objectName, err := uc.MinioStorage.UploadBase64Image(ctx, imageData, uc.InternalConfig.Minio.BucketName, slug+extension, extension)
	if err != nil {
		return "", err
	}
	return objectName, nil
}

func (uc *productUsecase) deleteImage(ctx context.Context, objectName string) {
	err := uc.MinioStorage.DeleteObject(ctx, uc.InternalConfig.Minio.BucketName, objectName)
	if err != nil {
		uc.Log.Warn("productUsecase.deleteImage error calling MinioStorage.DeleteObject",
			zap.String(constvars.LoggingObjectNameKey, objectName),
			zap.Error(err),
		)
	}
}

// imageURL presigns the object key. A storage failure leaves the url empty
// rather than failing the listing.
func (uc *productUsecase) imageURL(ctx context.Context, objectName string) string {
	if objectName == "" {
		return ""
	}

	expiry := time.Duration(uc.InternalConfig.App.MinioPreSignedUrlObjectExpiryTimeInHours) * time.Hour
	url, err := uc.MinioStorage.GetObjectUrlWithExpiryTime(ctx, uc.InternalConfig.Minio.BucketName, objectName, expiry)
	if err != nil {
		uc.Log.Warn("productUsecase.imageURL error calling MinioStorage.GetObjectUrlWithExpiryTime",
			zap.String(constvars.LoggingObjectNameKey, objectName),
			zap.Error(err),
		)
		return ""
	}
	return url
}

func (uc *productUsecase) convertProducts(ctx context.Context, products []models.Product) []responses.Product {
	response := make([]responses.Product, 0, len(products))
	for i := range products {
		response = append(response, products[i].ConvertIntoResponse(uc.imageURL(ctx, products[i].Image)))
	}
	return response
}

func (uc *productUsecase) invalidateCategories(ctx context.Context) {
	err := uc.RedisRepository.Delete(ctx, constvars.RedisKeyProductCategories)
	if err != nil {
		uc.Log.Warn("productUsecase.invalidateCategories error calling RedisRepository.Delete",
			zap.Error(err),
		)
	}
}
