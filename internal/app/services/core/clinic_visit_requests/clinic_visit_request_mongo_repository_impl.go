package clinicVisitRequests

import (
	"context"
	"mommycare-service/internal/app/contracts"
	"mommycare-service/internal/app/models"
	"mommycare-service/internal/pkg/constvars"
	"mommycare-service/internal/pkg/dto/requests"
	"mommycare-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

type clinicVisitRequestMongoRepository struct {
	Collection *mongo.Collection
	Log        *zap.Logger
}

func NewClinicVisitRequestMongoRepository(db *mongo.Database, logger *zap.Logger) contracts.ClinicVisitRequestRepository {
	return &clinicVisitRequestMongoRepository{
		Collection: db.Collection(constvars.MongoCollectionClinicVisitRequests),
		Log:        logger,
	}
}

func (repo *clinicVisitRequestMongoRepository) Create(ctx context.Context, entity *models.ClinicVisitRequest) (string, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	repo.Log.Info("clinicVisitRequestMongoRepository.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRequestTypeKey, entity.RequestType),
	)

	entity.ID = primitive.NewObjectID()
	_, err := repo.Collection.InsertOne(ctx, entity)
	if err != nil {
		repo.Log.Error("clinicVisitRequestMongoRepository.Create error inserting document",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}

	repo.Log.Info("clinicVisitRequestMongoRepository.Create succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingClinicVisitRequestKey, entity.ID.Hex()),
	)
	return entity.ID.Hex(), nil
}

func (repo *clinicVisitRequestMongoRepository) FindByID(ctx context.Context, requestID string) (*models.ClinicVisitRequest, error) {
	objectID, err := primitive.ObjectIDFromHex(requestID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var clinicVisitRequest models.ClinicVisitRequest
	err = repo.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&clinicVisitRequest)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &clinicVisitRequest, nil
}

func (repo *clinicVisitRequestMongoRepository) FindByFilter(ctx context.Context, filter *requests.ClinicVisitRequestFilter) ([]models.ClinicVisitRequest, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	query := bson.M{}
	if filter.RequesterID != "" {
		query["requesterId"] = filter.RequesterID
	}
	if filter.RequestType != "" {
		query["requestType"] = filter.RequestType
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	}

	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := repo.Collection.Find(ctx, query, findOptions)
	if err != nil {
		repo.Log.Error("clinicVisitRequestMongoRepository.FindByFilter error finding documents",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	result := make([]models.ClinicVisitRequest, 0)
	if err := cursor.All(ctx, &result); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return result, nil
}

// UpdatePending writes the entity only while the stored request is still
// pending. A request that left pending in the meantime is a conflict.
func (repo *clinicVisitRequestMongoRepository) UpdatePending(ctx context.Context, entity *models.ClinicVisitRequest) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	filter := bson.M{
		"_id":    entity.ID,
		"status": constvars.ClinicVisitRequestStatusPending,
	}
	fields := bson.M{
		"payload":   entity.Payload,
		"status":    entity.Status,
		"updatedAt": entity.UpdatedAt,
	}
	if entity.StaffNotes != "" {
		fields["staffNotes"] = entity.StaffNotes
	}
	if entity.ReviewedBy != "" {
		fields["reviewedBy"] = entity.ReviewedBy
	}
	if entity.ReviewedAt != nil {
		fields["reviewedAt"] = entity.ReviewedAt
	}

	result, err := repo.Collection.UpdateOne(ctx, filter, bson.M{"$set": fields})
	if err != nil {
		repo.Log.Error("clinicVisitRequestMongoRepository.UpdatePending error updating document",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingClinicVisitRequestKey, entity.ID.Hex()),
			zap.Error(err),
		)
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	if result.MatchedCount == 0 {
		repo.Log.Warn("clinicVisitRequestMongoRepository.UpdatePending request is no longer pending",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingClinicVisitRequestKey, entity.ID.Hex()),
		)
		return exceptions.ErrClinicVisitRequestFinalized(nil)
	}
	return nil
}
