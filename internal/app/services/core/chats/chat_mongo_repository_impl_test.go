package chats

import (
	"context"
	"mommycare-service/internal/app/models"
	"mommycare-service/internal/pkg/constvars"
	"mommycare-service/internal/pkg/dto/requests"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
	"go.uber.org/zap"
)

func TestConversationMongoRepository_FindOrCreate(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	conversationID := primitive.NewObjectID()
	stored := bson.D{
		{Key: "_id", Value: conversationID},
		{Key: "conversationKey", Value: "doc-1_mom-1"},
		{Key: "participants", Value: bson.A{"doc-1", "mom-1"}},
	}

	mt.Run("Upsert Returns Conversation", func(mt *mtest.T) {
		repo := &conversationMongoRepository{Collection: mt.Coll, Log: zap.NewNop()}
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: stored}))

		conversation, err := repo.FindOrCreate(context.Background(), "mom-1", "doc-1")

		assert.NoError(mt, err)
		assert.Equal(mt, conversationID, conversation.ID)
		assert.Equal(mt, []string{"doc-1", "mom-1"}, conversation.Participants)
	})

	mt.Run("Lost Upsert Race Reads Existing", func(mt *mtest.T) {
		repo := &conversationMongoRepository{Collection: mt.Coll, Log: zap.NewNop()}
		mt.AddMockResponses(
			mtest.CreateCommandErrorResponse(mtest.CommandError{Code: 11000, Name: "DuplicateKey", Message: "E11000 duplicate key error"}),
			mtest.CreateCursorResponse(0, "mommycare.conversations", mtest.FirstBatch, stored),
		)

		conversation, err := repo.FindOrCreate(context.Background(), "doc-1", "mom-1")

		assert.NoError(mt, err)
		assert.Equal(mt, "doc-1_mom-1", conversation.ConversationKey)
	})
}

func TestConversationMongoRepository_UpdateLastMessage(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("Missing Conversation", func(mt *mtest.T) {
		repo := &conversationMongoRepository{Collection: mt.Coll, Log: zap.NewNop()}
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}, bson.E{Key: "nModified", Value: 0}))

		err := repo.UpdateLastMessage(context.Background(), primitive.NewObjectID().Hex(), &models.ConversationLastMessage{Content: "hi"})

		assert.Equal(mt, constvars.StatusNotFound, statusCodeOf(err))
	})
}

func TestChatMessageMongoRepository_FindByConversation(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("Page Is Returned Oldest First", func(mt *mtest.T) {
		repo := &chatMessageMongoRepository{Collection: mt.Coll, Log: zap.NewNop()}
		now := time.Now().UTC()
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, "mommycare.chat_messages", mtest.FirstBatch, bson.D{{Key: "n", Value: 3}}),
			mtest.CreateCursorResponse(0, "mommycare.chat_messages", mtest.FirstBatch,
				bson.D{{Key: "_id", Value: primitive.NewObjectID()}, {Key: "content", Value: "newest"}, {Key: "createdAt", Value: now}},
				bson.D{{Key: "_id", Value: primitive.NewObjectID()}, {Key: "content", Value: "older"}, {Key: "createdAt", Value: now.Add(-time.Minute)}},
			),
		)

		messages, total, err := repo.FindByConversation(context.Background(), "conv-1", &requests.ChatMessageFilter{Page: 1, Limit: 2})

		assert.NoError(mt, err)
		assert.Equal(mt, int64(3), total)
		assert.Equal(mt, "older", messages[0].Content)
		assert.Equal(mt, "newest", messages[1].Content)
	})
}

func TestChatMessageMongoRepository_DeleteBySender(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("Deletes Own Message", func(mt *mtest.T) {
		repo := &chatMessageMongoRepository{Collection: mt.Coll, Log: zap.NewNop()}
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}))

		err := repo.DeleteBySender(context.Background(), primitive.NewObjectID().Hex(), "mom-1")

		assert.NoError(mt, err)
	})

	mt.Run("Nothing Deleted Is Not Found", func(mt *mtest.T) {
		repo := &chatMessageMongoRepository{Collection: mt.Coll, Log: zap.NewNop()}
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}))

		err := repo.DeleteBySender(context.Background(), primitive.NewObjectID().Hex(), "mom-1")

		assert.Equal(mt, constvars.StatusNotFound, statusCodeOf(err))
	})
}

func TestChatMessageMongoRepository_CountUnreadByConversation(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("Groups Unread By Conversation", func(mt *mtest.T) {
		repo := &chatMessageMongoRepository{Collection: mt.Coll, Log: zap.NewNop()}
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "mommycare.chat_messages", mtest.FirstBatch,
			bson.D{{Key: "_id", Value: "conv-1"}, {Key: "count", Value: int64(2)}},
			bson.D{{Key: "_id", Value: "conv-2"}, {Key: "count", Value: int64(1)}},
		))

		counts, err := repo.CountUnreadByConversation(context.Background(), "doc-1")

		assert.NoError(mt, err)
		assert.Equal(mt, map[string]int64{"conv-1": 2, "conv-2": 1}, counts)
	})
}
