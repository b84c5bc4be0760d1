package clinicVisitRequests

import (
	"context"
	"mommycare-service/internal/pkg/constvars"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
	"go.uber.org/zap"
)

func TestClinicVisitRequestMongoRepository_UpdatePending(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("Pending Request Is Updated", func(mt *mtest.T) {
		repo := &clinicVisitRequestMongoRepository{Collection: mt.Coll, Log: zap.NewNop()}
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 1},
			bson.E{Key: "nModified", Value: 1},
		))

		entity := pendingRequest("mom-1")
		entity.Status = constvars.ClinicVisitRequestStatusCancelled

		err := repo.UpdatePending(context.Background(), entity)

		assert.NoError(mt, err)
	})

	mt.Run("Request No Longer Pending Conflicts", func(mt *mtest.T) {
		repo := &clinicVisitRequestMongoRepository{Collection: mt.Coll, Log: zap.NewNop()}
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 0},
			bson.E{Key: "nModified", Value: 0},
		))

		entity := pendingRequest("mom-1")
		entity.Status = constvars.ClinicVisitRequestStatusApproved

		err := repo.UpdatePending(context.Background(), entity)

		assert.Equal(mt, constvars.StatusConflict, statusCodeOf(err))
	})

	mt.Run("Write Error", func(mt *mtest.T) {
		repo := &clinicVisitRequestMongoRepository{Collection: mt.Coll, Log: zap.NewNop()}
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    2,
			Message: "bad value",
			Name:    "BadValue",
		}))

		err := repo.UpdatePending(context.Background(), pendingRequest("mom-1"))

		assert.Error(mt, err)
		assert.NotEqual(mt, constvars.StatusConflict, statusCodeOf(err))
	})
}
