package products

import (
	"context"
	"mommycare-service/internal/app/contracts"
	"mommycare-service/internal/app/models"
	"mommycare-service/internal/pkg/constvars"
	"mommycare-service/internal/pkg/dto/requests"
	"mommycare-service/internal/pkg/exceptions"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

type productMongoRepository struct {
	Collection *mongo.Collection
	Log        *zap.Logger
}

func NewProductMongoRepository(db *mongo.Database, logger *zap.Logger) contracts.ProductRepository {
	return &productMongoRepository{
		Collection: db.Collection(constvars.MongoCollectionProducts),
		Log:        logger,
	}
}

func (repo *productMongoRepository) Create(ctx context.Context, entity *models.Product) (string, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	repo.Log.Info("productMongoRepository.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCategoryKey, entity.Category),
	)

	entity.ID = primitive.NewObjectID()
	_, err := repo.Collection.InsertOne(ctx, entity)
	if err != nil {
		repo.Log.Error("productMongoRepository.Create error inserting document",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}

	repo.Log.Info("productMongoRepository.Create succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingProductIDKey, entity.ID.Hex()),
	)
	return entity.ID.Hex(), nil
}

func (repo *productMongoRepository) FindByID(ctx context.Context, productID string) (*models.Product, error) {
	objectID, err := primitive.ObjectIDFromHex(productID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var product models.Product
	err = repo.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&product)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &product, nil
}

// FindActive returns one page of active products, newest first, along with
// the total number of matches.
func (repo *productMongoRepository) FindActive(ctx context.Context, filter *requests.ProductFilter) ([]models.Product, int64, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	query := bson.M{"status": constvars.ProductStatusActive}
	if filter.Category != "" {
		query["category"] = filter.Category
	}
	if filter.Search != "" {
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(filter.Search), Options: "i"}
		query["$or"] = bson.A{
			bson.M{"name": pattern},
			bson.M{"description": pattern},
			bson.M{"tags": pattern},
		}
	}

	total, err := repo.Collection.CountDocuments(ctx, query)
	if err != nil {
		repo.Log.Error("productMongoRepository.FindActive error counting documents",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}

	findOptions := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(int64((filter.Page - 1) * filter.Limit)).
		SetLimit(int64(filter.Limit))
	cursor, err := repo.Collection.Find(ctx, query, findOptions)
	if err != nil {
		repo.Log.Error("productMongoRepository.FindActive error finding documents",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	result := make([]models.Product, 0)
	if err := cursor.All(ctx, &result); err != nil {
		return nil, 0, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return result, total, nil
}

func (repo *productMongoRepository) FindByServiceProviderID(ctx context.Context, serviceProviderID string) ([]models.Product, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := repo.Collection.Find(ctx, bson.M{"serviceProviderId": serviceProviderID}, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	result := make([]models.Product, 0)
	if err := cursor.All(ctx, &result); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return result, nil
}

func (repo *productMongoRepository) CountActiveByCategory(ctx context.Context) ([]models.ProductCategoryCount, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"status": constvars.ProductStatusActive}}},
		{{Key: "$group", Value: bson.M{"_id": "$category", "count": bson.M{"$sum": 1}}}},
		{{Key: "$sort", Value: bson.D{{Key: "count", Value: -1}, {Key: "_id", Value: 1}}}},
	}

	cursor, err := repo.Collection.Aggregate(ctx, pipeline)
	if err != nil {
		repo.Log.Error("productMongoRepository.CountActiveByCategory error aggregating documents",
			zap.Error(err),
		)
		return nil, exceptions.ErrMongoDBAggregate(err)
	}
	defer cursor.Close(ctx)

	result := make([]models.ProductCategoryCount, 0)
	if err := cursor.All(ctx, &result); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return result, nil
}

// IncrementCounter bumps views or clicks on an active product and returns
// the updated document, or nil when no active product has that id.
func (repo *productMongoRepository) IncrementCounter(ctx context.Context, productID, counter string) (*models.Product, error) {
	objectID, err := primitive.ObjectIDFromHex(productID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	filter := bson.M{"_id": objectID, "status": constvars.ProductStatusActive}
	update := bson.M{"$inc": bson.M{counter: 1}}
	updateOptions := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var product models.Product
	err = repo.Collection.FindOneAndUpdate(ctx, filter, update, updateOptions).Decode(&product)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return &product, nil
}

func (repo *productMongoRepository) Update(ctx context.Context, entity *models.Product) error {
	result, err := repo.Collection.ReplaceOne(ctx, bson.M{"_id": entity.ID}, entity)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	if result.MatchedCount == 0 {
		return exceptions.ErrProductNotFound(nil)
	}
	return nil
}

func (repo *productMongoRepository) Delete(ctx context.Context, productID string) error {
	objectID, err := primitive.ObjectIDFromHex(productID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	result, err := repo.Collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	if result.DeletedCount == 0 {
		return exceptions.ErrProductNotFound(nil)
	}
	return nil
}
