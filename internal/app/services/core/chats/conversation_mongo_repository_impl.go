package chats

import (
	"context"
	"mommycare-service/internal/app/contracts"
	"mommycare-service/internal/app/models"
	"mommycare-service/internal/pkg/constvars"
	"mommycare-service/internal/pkg/exceptions"
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

type conversationMongoRepository struct {
	Collection *mongo.Collection
	Log        *zap.Logger
}

func NewConversationMongoRepository(db *mongo.Database, logger *zap.Logger) contracts.ConversationRepository {
	return &conversationMongoRepository{
		Collection: db.Collection(constvars.MongoCollectionConversations),
		Log:        logger,
	}
}

// FindOrCreate upserts on the unique conversation key. Two first messages
// racing each other can both miss and collide on the index, in which case the
// loser reads the winner's document.
func (repo *conversationMongoRepository) FindOrCreate(ctx context.Context, firstUserID, secondUserID string) (*models.Conversation, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	conversationKey := models.BuildConversationKey(firstUserID, secondUserID)

	participants := []string{firstUserID, secondUserID}
	sort.Strings(participants)

	now := time.Now().UTC()
	filter := bson.M{"conversationKey": conversationKey}
	update := bson.M{"$setOnInsert": bson.M{
		"conversationKey": conversationKey,
		"participants":    participants,
		"lastActivity":    now,
		"createdAt":       now,
		"updatedAt":       now,
	}}
	upsertOptions := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var conversation models.Conversation
	err := repo.Collection.FindOneAndUpdate(ctx, filter, update, upsertOptions).Decode(&conversation)
	if err == nil {
		return &conversation, nil
	}
	if !mongo.IsDuplicateKeyError(err) {
		repo.Log.Error("conversationMongoRepository.FindOrCreate error upserting document",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrMongoDBUpdateDocument(err)
	}

	repo.Log.Info("conversationMongoRepository.FindOrCreate lost upsert race, reading existing conversation",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	err = repo.Collection.FindOne(ctx, filter).Decode(&conversation)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &conversation, nil
}

func (repo *conversationMongoRepository) FindByID(ctx context.Context, conversationID string) (*models.Conversation, error) {
	objectID, err := primitive.ObjectIDFromHex(conversationID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var conversation models.Conversation
	err = repo.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&conversation)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &conversation, nil
}

func (repo *conversationMongoRepository) FindByParticipant(ctx context.Context, userID string) ([]models.Conversation, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	findOptions := options.Find().SetSort(bson.D{{Key: "lastActivity", Value: -1}})
	cursor, err := repo.Collection.Find(ctx, bson.M{"participants": userID}, findOptions)
	if err != nil {
		repo.Log.Error("conversationMongoRepository.FindByParticipant error finding documents",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	result := make([]models.Conversation, 0)
	if err := cursor.All(ctx, &result); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return result, nil
}

func (repo *conversationMongoRepository) UpdateLastMessage(ctx context.Context, conversationID string, lastMessage *models.ConversationLastMessage) error {
	objectID, err := primitive.ObjectIDFromHex(conversationID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	update := bson.M{"$set": bson.M{
		"lastMessage":  lastMessage,
		"lastActivity": lastMessage.SentAt,
		"updatedAt":    time.Now().UTC(),
	}}
	result, err := repo.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	if result.MatchedCount == 0 {
		return exceptions.ErrConversationNotFound(nil)
	}
	return nil
}
