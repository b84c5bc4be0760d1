package medicalReports

import (
	"context"
	"mommycare-service/internal/app/contracts"
	"mommycare-service/internal/app/models"
	"mommycare-service/internal/pkg/constvars"
	"mommycare-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

type medicalReportMongoRepository struct {
	Collection *mongo.Collection
	Log        *zap.Logger
}

func NewMedicalReportMongoRepository(db *mongo.Database, logger *zap.Logger) contracts.MedicalReportRepository {
	return &medicalReportMongoRepository{
		Collection: db.Collection(constvars.MongoCollectionMedicalReports),
		Log:        logger,
	}
}

func (repo *medicalReportMongoRepository) Create(ctx context.Context, entity *models.MedicalReport) (string, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	repo.Log.Info("medicalReportMongoRepository.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, entity.DoctorID),
		zap.String(constvars.LoggingPatientIDKey, entity.PatientID),
	)

	entity.ID = primitive.NewObjectID()
	_, err := repo.Collection.InsertOne(ctx, entity)
	if err != nil {
		repo.Log.Error("medicalReportMongoRepository.Create error inserting document",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return entity.ID.Hex(), nil
}

func (repo *medicalReportMongoRepository) FindByID(ctx context.Context, reportID string) (*models.MedicalReport, error) {
	objectID, err := primitive.ObjectIDFromHex(reportID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var report models.MedicalReport
	err = repo.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&report)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &report, nil
}

func (repo *medicalReportMongoRepository) FindByDoctorAndPatient(ctx context.Context, doctorID, patientID string) ([]models.MedicalReport, error) {
	return repo.findNewestFirst(ctx, bson.M{"doctorId": doctorID, "patientId": patientID})
}

func (repo *medicalReportMongoRepository) FindByPatient(ctx context.Context, patientID string) ([]models.MedicalReport, error) {
	return repo.findNewestFirst(ctx, bson.M{"patientId": patientID})
}

// UpdateContent replaces the report body only when entity.DoctorID still
// authored it. Patient and doctor snapshots are never rewritten.
func (repo *medicalReportMongoRepository) UpdateContent(ctx context.Context, entity *models.MedicalReport) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	filter := bson.M{"_id": entity.ID, "doctorId": entity.DoctorID}
	update := bson.M{"$set": bson.M{
		"visit":            entity.Visit,
		"examination":      entity.Examination,
		"diagnosis":        entity.Diagnosis,
		"treatment":        entity.Treatment,
		"labResults":       entity.LabResults,
		"notes":            entity.Notes,
		"recommendations":  entity.Recommendations,
		"followUp":         entity.FollowUp,
		"additionalFields": entity.AdditionalFields,
		"updatedAt":        entity.UpdatedAt,
	}}

	result, err := repo.Collection.UpdateOne(ctx, filter, update)
	if err != nil {
		repo.Log.Error("medicalReportMongoRepository.UpdateContent error updating document",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	if result.MatchedCount == 0 {
		return exceptions.ErrMedicalReportNotFound(nil)
	}
	return nil
}

func (repo *medicalReportMongoRepository) DeleteByDoctor(ctx context.Context, reportID, doctorID string) error {
	objectID, err := primitive.ObjectIDFromHex(reportID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	result, err := repo.Collection.DeleteOne(ctx, bson.M{"_id": objectID, "doctorId": doctorID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	if result.DeletedCount == 0 {
		return exceptions.ErrMedicalReportNotFound(nil)
	}
	return nil
}

// SummarizePatientsByDoctor lists every patient the doctor has reported on,
// most recently reported first.
func (repo *medicalReportMongoRepository) SummarizePatientsByDoctor(ctx context.Context, doctorID string) ([]models.ReportedPatientSummary, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"doctorId": doctorID}}},
		{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: 1}}}},
		{{Key: "$group", Value: bson.M{
			"_id":          "$patientId",
			"patientName":  bson.M{"$last": "$patientName"},
			"reportCount":  bson.M{"$sum": 1},
			"lastReportAt": bson.M{"$max": "$createdAt"},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "lastReportAt", Value: -1}}}},
	}

	cursor, err := repo.Collection.Aggregate(ctx, pipeline)
	if err != nil {
		repo.Log.Error("medicalReportMongoRepository.SummarizePatientsByDoctor error aggregating documents",
			zap.String(constvars.LoggingDoctorIDKey, doctorID),
			zap.Error(err),
		)
		return nil, exceptions.ErrMongoDBAggregate(err)
	}
	defer cursor.Close(ctx)

	result := make([]models.ReportedPatientSummary, 0)
	if err := cursor.All(ctx, &result); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return result, nil
}

func (repo *medicalReportMongoRepository) findNewestFirst(ctx context.Context, filter bson.M) ([]models.MedicalReport, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := repo.Collection.Find(ctx, filter, findOptions)
	if err != nil {
		repo.Log.Error("medicalReportMongoRepository.findNewestFirst error finding documents",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	result := make([]models.MedicalReport, 0)
	if err := cursor.All(ctx, &result); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return result, nil
}
