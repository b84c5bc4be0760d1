package chats

import (
	"context"
	"mommycare-service/internal/app/contracts"
	"mommycare-service/internal/app/models"
	"mommycare-service/internal/pkg/constvars"
	"mommycare-service/internal/pkg/dto/requests"
	"mommycare-service/internal/pkg/exceptions"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

type chatMessageMongoRepository struct {
	Collection *mongo.Collection
	Log        *zap.Logger
}

type unreadCountRow struct {
	ConversationID string `bson:"_id"`
	Count          int64  `bson:"count"`
}

func NewChatMessageMongoRepository(db *mongo.Database, logger *zap.Logger) contracts.ChatMessageRepository {
	return &chatMessageMongoRepository{
		Collection: db.Collection(constvars.MongoCollectionChatMessages),
		Log:        logger,
	}
}

func (repo *chatMessageMongoRepository) Create(ctx context.Context, entity *models.ChatMessage) (string, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	repo.Log.Info("chatMessageMongoRepository.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingConversationIDKey, entity.ConversationID),
	)

	entity.ID = primitive.NewObjectID()
	_, err := repo.Collection.InsertOne(ctx, entity)
	if err != nil {
		repo.Log.Error("chatMessageMongoRepository.Create error inserting document",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return entity.ID.Hex(), nil
}

func (repo *chatMessageMongoRepository) FindByID(ctx context.Context, messageID string) (*models.ChatMessage, error) {
	objectID, err := primitive.ObjectIDFromHex(messageID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var message models.ChatMessage
	err = repo.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&message)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &message, nil
}

// FindByConversation pages from the newest message backwards and returns each
// page oldest first, the order a thread is rendered in.
func (repo *chatMessageMongoRepository) FindByConversation(ctx context.Context, conversationID string, filter *requests.ChatMessageFilter) ([]models.ChatMessage, int64, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	query := bson.M{"conversationId": conversationID}

	total, err := repo.Collection.CountDocuments(ctx, query)
	if err != nil {
		repo.Log.Error("chatMessageMongoRepository.FindByConversation error counting documents",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}

	findOptions := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}).
		SetSkip(int64((filter.Page - 1) * filter.Limit)).
		SetLimit(int64(filter.Limit))

	cursor, err := repo.Collection.Find(ctx, query, findOptions)
	if err != nil {
		repo.Log.Error("chatMessageMongoRepository.FindByConversation error finding documents",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	result := make([]models.ChatMessage, 0)
	if err := cursor.All(ctx, &result); err != nil {
		return nil, 0, exceptions.ErrMongoDBIterateDocuments(err)
	}

	for i, j := 0, len(result)-1; i < j; i, j = i+1, j-1 {
		result[i], result[j] = result[j], result[i]
	}
	return result, total, nil
}

func (repo *chatMessageMongoRepository) MarkRead(ctx context.Context, conversationID, recipientID string, readAt time.Time) (int64, error) {
	filter := bson.M{
		"conversationId": conversationID,
		"recipientId":    recipientID,
		"read":           false,
	}
	update := bson.M{"$set": bson.M{
		"read":      true,
		"readAt":    readAt,
		"status":    constvars.ChatMessageStatusRead,
		"updatedAt": readAt,
	}}

	result, err := repo.Collection.UpdateMany(ctx, filter, update)
	if err != nil {
		return 0, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return result.ModifiedCount, nil
}

// DeleteBySender matches on the sender as well as the id, so a message is
// only ever removed by its author.
func (repo *chatMessageMongoRepository) DeleteBySender(ctx context.Context, messageID, senderID string) error {
	objectID, err := primitive.ObjectIDFromHex(messageID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	result, err := repo.Collection.DeleteOne(ctx, bson.M{"_id": objectID, "senderId": senderID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	if result.DeletedCount == 0 {
		return exceptions.ErrChatMessageNotFound(nil)
	}
	return nil
}

func (repo *chatMessageMongoRepository) CountUnreadByConversation(ctx context.Context, recipientID string) (map[string]int64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"recipientId": recipientID, "read": false}}},
		{{Key: "$group", Value: bson.M{"_id": "$conversationId", "count": bson.M{"$sum": 1}}}},
	}

	cursor, err := repo.Collection.Aggregate(ctx, pipeline)
	if err != nil {
		repo.Log.Error("chatMessageMongoRepository.CountUnreadByConversation error aggregating documents",
			zap.Error(err),
		)
		return nil, exceptions.ErrMongoDBAggregate(err)
	}
	defer cursor.Close(ctx)

	rows := make([]unreadCountRow, 0)
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}

	result := make(map[string]int64, len(rows))
	for _, row := range rows {
		result[row.ConversationID] = row.Count
	}
	return result, nil
}
