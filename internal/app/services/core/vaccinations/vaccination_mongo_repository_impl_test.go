package vaccinations

import (
	"context"
	"mommycare-service/internal/app/models"
	"mommycare-service/internal/pkg/constvars"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
	"go.uber.org/zap"
)

func updateResponse(matched int) bson.D {
	return mtest.CreateSuccessResponse(
		bson.E{Key: "n", Value: matched},
		bson.E{Key: "nModified", Value: matched},
	)
}

func TestVaccinationMongoRepository_Complete(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	vaccinationDate := time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)

	mt.Run("Pending Record Is Completed", func(mt *mtest.T) {
		repo := &vaccinationMongoRepository{Collection: mt.Coll, Log: zap.NewNop()}
		mt.AddMockResponses(updateResponse(1))

		err := repo.Complete(context.Background(), &models.VaccinationRecord{
			ID:              primitive.NewObjectID(),
			MotherID:        "mom-1",
			VaccinationDate: &vaccinationDate,
		})

		assert.NoError(mt, err)
	})

	mt.Run("Record Completed Elsewhere Conflicts", func(mt *mtest.T) {
		repo := &vaccinationMongoRepository{Collection: mt.Coll, Log: zap.NewNop()}
		mt.AddMockResponses(updateResponse(0))

		err := repo.Complete(context.Background(), &models.VaccinationRecord{
			ID:              primitive.NewObjectID(),
			MotherID:        "mom-1",
			VaccinationDate: &vaccinationDate,
		})

		assert.Equal(mt, constvars.StatusConflict, statusCodeOf(err))
	})
}

func TestVaccinationMongoRepository_LinkClinicVisitRequest(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("Links Open Record", func(mt *mtest.T) {
		repo := &vaccinationMongoRepository{Collection: mt.Coll, Log: zap.NewNop()}
		mt.AddMockResponses(updateResponse(1))

		err := repo.LinkClinicVisitRequest(context.Background(), primitive.NewObjectID().Hex(), "cvr-1")

		assert.NoError(mt, err)
	})

	mt.Run("Completed Record Conflicts", func(mt *mtest.T) {
		repo := &vaccinationMongoRepository{Collection: mt.Coll, Log: zap.NewNop()}
		mt.AddMockResponses(updateResponse(0))

		err := repo.LinkClinicVisitRequest(context.Background(), primitive.NewObjectID().Hex(), "cvr-1")

		assert.Equal(mt, constvars.StatusConflict, statusCodeOf(err))
	})

	mt.Run("Malformed Record ID", func(mt *mtest.T) {
		repo := &vaccinationMongoRepository{Collection: mt.Coll, Log: zap.NewNop()}

		err := repo.LinkClinicVisitRequest(context.Background(), "not-an-id", "cvr-1")

		assert.Error(mt, err)
	})
}
