package database

import (
	"context"
	"mommycare-service/internal/pkg/constvars"
	"mommycare-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the indexes the services rely on for uniqueness.
// Creating an index that already exists is a no-op in mongo.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	indexes := map[string][]mongo.IndexModel{
		constvars.MongoCollectionUsers: {
			{
				Keys:    bson.D{{Key: "email", Value: 1}},
				Options: options.Index().SetUnique(true),
			},
			{
				Keys: bson.D{{Key: "role", Value: 1}, {Key: "isActive", Value: 1}},
			},
		},
		constvars.MongoCollectionVaccinationRecords: {
			{
				Keys:    bson.D{{Key: "motherId", Value: 1}, {Key: "vaccineName", Value: 1}},
				Options: options.Index().SetUnique(true),
			},
			{
				Keys: bson.D{{Key: "status", Value: 1}, {Key: "dueDate", Value: 1}},
			},
		},
		constvars.MongoCollectionClinicVisitRequests: {
			{
				Keys: bson.D{{Key: "requesterId", Value: 1}, {Key: "createdAt", Value: -1}},
			},
			{
				Keys: bson.D{{Key: "status", Value: 1}, {Key: "requestType", Value: 1}},
			},
		},
		constvars.MongoCollectionMidwifeAssignments: {
			{
				Keys: bson.D{{Key: "momId", Value: 1}},
				Options: options.Index().
					SetUnique(true).
					SetPartialFilterExpression(bson.M{"status": constvars.MidwifeAssignmentStatusActive}),
			},
		},
		constvars.MongoCollectionProducts: {
			{
				Keys: bson.D{{Key: "status", Value: 1}, {Key: "category", Value: 1}, {Key: "createdAt", Value: -1}},
			},
			{
				Keys:    bson.D{{Key: "slug", Value: 1}},
				Options: options.Index().SetUnique(true),
			},
			{
				Keys: bson.D{{Key: "serviceProviderId", Value: 1}},
			},
		},
		constvars.MongoCollectionConversations: {
			{
				Keys:    bson.D{{Key: "conversationKey", Value: 1}},
				Options: options.Index().SetUnique(true),
			},
			{
				Keys: bson.D{{Key: "participants", Value: 1}, {Key: "lastActivity", Value: -1}},
			},
		},
		constvars.MongoCollectionChatMessages: {
			{
				Keys: bson.D{{Key: "conversationId", Value: 1}, {Key: "createdAt", Value: -1}},
			},
			{
				Keys: bson.D{{Key: "recipientId", Value: 1}, {Key: "read", Value: 1}},
			},
		},
		constvars.MongoCollectionMedicalReports: {
			{
				Keys: bson.D{{Key: "doctorId", Value: 1}, {Key: "patientId", Value: 1}, {Key: "createdAt", Value: -1}},
			},
			{
				Keys: bson.D{{Key: "patientId", Value: 1}, {Key: "createdAt", Value: -1}},
			},
		},
	}

	for collection, models := range indexes {
		_, err := db.Collection(collection).Indexes().CreateMany(ctx, models)
		if err != nil {
			return exceptions.ErrMongoDBCreateIndex(err)
		}
	}
	return nil
}
