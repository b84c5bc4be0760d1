package vaccinations

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
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

type vaccinationMongoRepository struct {
	Collection *mongo.Collection
	Log        *zap.Logger
}

func NewVaccinationMongoRepository(db *mongo.Database, logger *zap.Logger) contracts.VaccinationRepository {
	return &vaccinationMongoRepository{
		Collection: db.Collection(constvars.MongoCollectionVaccinationRecords),
		Log:        logger,
	}
}

// InsertMany relies on the unique (motherId, vaccineName) index so a second
// initialization cannot duplicate records even when two requests race.
func (repo *vaccinationMongoRepository) InsertMany(ctx context.Context, records []models.VaccinationRecord) ([]models.VaccinationRecord, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	repo.Log.Info("vaccinationMongoRepository.InsertMany called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingVaccinationCountKey, len(records)),
	)

	documents := make([]interface{}, 0, len(records))
	for i := range records {
		records[i].ID = primitive.NewObjectID()
		documents = append(documents, records[i])
	}

	_, err := repo.Collection.InsertMany(ctx, documents, options.InsertMany().SetOrdered(true))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, exceptions.ErrVaccinationsAlreadyInitialized(err)
		}
		repo.Log.Error("vaccinationMongoRepository.InsertMany error inserting documents",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrMongoDBInsertDocument(err)
	}

	repo.Log.Info("vaccinationMongoRepository.InsertMany succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return records, nil
}

func (repo *vaccinationMongoRepository) CountByMotherID(ctx context.Context, motherID string) (int64, error) {
	count, err := repo.Collection.CountDocuments(ctx, bson.M{"motherId": motherID})
	if err != nil {
		return 0, exceptions.ErrMongoDBFindDocument(err)
	}
	return count, nil
}

func (repo *vaccinationMongoRepository) FindByMotherID(ctx context.Context, motherID string) ([]models.VaccinationRecord, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	findOptions := options.Find().SetSort(bson.D{{Key: "dueDate", Value: 1}})
	cursor, err := repo.Collection.Find(ctx, bson.M{"motherId": motherID}, findOptions)
	if err != nil {
		repo.Log.Error("vaccinationMongoRepository.FindByMotherID error finding documents",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	records := make([]models.VaccinationRecord, 0)
	if err := cursor.All(ctx, &records); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return records, nil
}

func (repo *vaccinationMongoRepository) FindByMotherIDAndVaccineName(ctx context.Context, motherID, vaccineName string) (*models.VaccinationRecord, error) {
	var record models.VaccinationRecord
	err := repo.Collection.FindOne(ctx, bson.M{"motherId": motherID, "vaccineName": vaccineName}).Decode(&record)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &record, nil
}

func (repo *vaccinationMongoRepository) FindByIDAndMotherID(ctx context.Context, recordID, motherID string) (*models.VaccinationRecord, error) {
	objectID, err := primitive.ObjectIDFromHex(recordID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var record models.VaccinationRecord
	err = repo.Collection.FindOne(ctx, bson.M{"_id": objectID, "motherId": motherID}).Decode(&record)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &record, nil
}

// LinkClinicVisitRequest refuses completed records. The record was read
// moments before, so a miss means it was completed in between.
func (repo *vaccinationMongoRepository) LinkClinicVisitRequest(ctx context.Context, recordID, clinicVisitRequestID string) error {
	objectID, err := primitive.ObjectIDFromHex(recordID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	filter := bson.M{
		"_id":    objectID,
		"status": bson.M{"$ne": constvars.VaccinationStatusCompleted},
	}
	update := bson.M{"$set": bson.M{
		"clinicVisitRequestId": clinicVisitRequestID,
		"updatedAt":            time.Now().UTC(),
	}}
	result, err := repo.Collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	if result.MatchedCount == 0 {
		return exceptions.ErrVaccinationAlreadyCompleted(nil)
	}
	return nil
}

// Complete writes the completion fields only while the stored record is not
// yet completed, so two concurrent completions cannot both succeed.
func (repo *vaccinationMongoRepository) Complete(ctx context.Context, entity *models.VaccinationRecord) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	repo.Log.Info("vaccinationMongoRepository.Complete called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingVaccinationIDKey, entity.ID.Hex()),
	)

	filter := bson.M{
		"_id":      entity.ID,
		"motherId": entity.MotherID,
		"status":   bson.M{"$ne": constvars.VaccinationStatusCompleted},
	}
	update := bson.M{"$set": bson.M{
		"status":          constvars.VaccinationStatusCompleted,
		"vaccinationDate": entity.VaccinationDate,
		"batchNo":         entity.BatchNo,
		"adverseEffects":  entity.AdverseEffects,
		"notes":           entity.Notes,
		"updatedAt":       entity.UpdatedAt,
	}}

	result, err := repo.Collection.UpdateOne(ctx, filter, update)
	if err != nil {
		repo.Log.Error("vaccinationMongoRepository.Complete error updating document",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	if result.MatchedCount == 0 {
		repo.Log.Warn("vaccinationMongoRepository.Complete record already completed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingVaccinationIDKey, entity.ID.Hex()),
		)
		return exceptions.ErrVaccinationAlreadyCompleted(nil)
	}
	return nil
}

func (repo *vaccinationMongoRepository) MarkOverdueAsMissed(ctx context.Context, dueBefore time.Time) (int64, error) {
	filter := bson.M{
		"status":  constvars.VaccinationStatusPending,
		"dueDate": bson.M{"$lt": dueBefore},
	}
	update := bson.M{"$set": bson.M{
		"status":    constvars.VaccinationStatusMissed,
		"updatedAt": time.Now().UTC(),
	}}

	result, err := repo.Collection.UpdateMany(ctx, filter, update)
	if err != nil {
		repo.Log.Error("vaccinationMongoRepository.MarkOverdueAsMissed error updating documents",
			zap.Error(err),
		)
		return 0, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return result.ModifiedCount, nil
}
