package midwifeAssignments

import (
	"context"
	"mommycare-service/internal/app/contracts"
	"mommycare-service/internal/app/models"
	"mommycare-service/internal/pkg/constvars"
	"mommycare-service/internal/pkg/exceptions"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type midwifeAssignmentMongoRepository struct {
	Collection *mongo.Collection
	Log        *zap.Logger
}

func NewMidwifeAssignmentMongoRepository(db *mongo.Database, logger *zap.Logger) contracts.MidwifeAssignmentRepository {
	return &midwifeAssignmentMongoRepository{
		Collection: db.Collection(constvars.MongoCollectionMidwifeAssignments),
		Log:        logger,
	}
}

func (repo *midwifeAssignmentMongoRepository) Create(ctx context.Context, entity *models.MidwifeAssignment) (string, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	repo.Log.Info("midwifeAssignmentMongoRepository.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingMidwifeIDKey, entity.MidwifeID),
		zap.String(constvars.LoggingMomIDKey, entity.MomID),
	)

	entity.ID = primitive.NewObjectID()
	_, err := repo.Collection.InsertOne(ctx, entity)
	if err != nil {
		repo.Log.Error("midwifeAssignmentMongoRepository.Create error inserting document",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return entity.ID.Hex(), nil
}

func (repo *midwifeAssignmentMongoRepository) FindActiveByMomID(ctx context.Context, momID string) (*models.MidwifeAssignment, error) {
	var assignment models.MidwifeAssignment
	filter := bson.M{"momId": momID, "status": constvars.MidwifeAssignmentStatusActive}
	err := repo.Collection.FindOne(ctx, filter).Decode(&assignment)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &assignment, nil
}

func (repo *midwifeAssignmentMongoRepository) DeactivateByMomID(ctx context.Context, momID string) (int64, error) {
	filter := bson.M{"momId": momID, "status": constvars.MidwifeAssignmentStatusActive}
	update := bson.M{"$set": bson.M{
		"status":    constvars.MidwifeAssignmentStatusInactive,
		"updatedAt": time.Now().UTC(),
	}}

	result, err := repo.Collection.UpdateMany(ctx, filter, update)
	if err != nil {
		return 0, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return result.ModifiedCount, nil
}
