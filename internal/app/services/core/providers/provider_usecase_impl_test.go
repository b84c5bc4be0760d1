package providers

import (
	"context"
	"errors"
	"mommycare-service/internal/app/contracts/mocks"
	"mommycare-service/internal/app/models"
	"mommycare-service/internal/pkg/constvars"
	"mommycare-service/internal/pkg/dto/requests"
	"mommycare-service/internal/pkg/exceptions"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type providerFixture struct {
	userRepo            *mocks.MockUserRepository
	assignmentRepo      *mocks.MockMidwifeAssignmentRepository
	notificationService *mocks.MockNotificationService
	sessionService      *mocks.MockSessionService
	usecase             *providerUsecase
}

func newProviderFixture() *providerFixture {
	f := &providerFixture{
		userRepo:            new(mocks.MockUserRepository),
		assignmentRepo:      new(mocks.MockMidwifeAssignmentRepository),
		notificationService: new(mocks.MockNotificationService),
		sessionService:      new(mocks.MockSessionService),
	}
	f.usecase = NewProviderUsecase(f.userRepo, f.assignmentRepo, f.notificationService, f.sessionService, zap.NewNop()).(*providerUsecase)
	return f
}

func (f *providerFixture) withSession(sessionData, userID, role string) {
	f.sessionService.On("ParseSessionData", mock.Anything, sessionData).
		Return(&models.Session{UserID: userID, Role: role}, nil)
}

func newUser(firstName, role string, isActive bool) models.User {
	return models.User{
		ID:        primitive.NewObjectID(),
		FirstName: firstName,
		LastName:  "Test",
		Role:      role,
		IsActive:  isActive,
	}
}

func statusCodeOf(err error) int {
	var customErr *exceptions.CustomError
	if errors.As(err, &customErr) {
		return customErr.StatusCode
	}
	return 0
}

func TestProviderUsecase_FindProviders_Mom(t *testing.T) {
	ctx := context.Background()
	doctorZaki := newUser("Zaki", constvars.RoleDoctor, true)
	doctorAyu := newUser("Ayu", constvars.RoleDoctor, true)
	midwife := newUser("Maya", constvars.RoleMidwife, true)

	t.Run("Doctors Plus Assigned Midwife Sorted By Name", func(t *testing.T) {
		f := newProviderFixture()
		f.withSession("mom", "mom-1", constvars.RoleMom)
		f.userRepo.On("FindActiveByRoles", ctx, []string{constvars.RoleDoctor}).Return([]models.User{doctorZaki, doctorAyu}, nil)
		f.assignmentRepo.On("FindActiveByMomID", ctx, "mom-1").Return(&models.MidwifeAssignment{MidwifeID: midwife.ID.Hex()}, nil)
		f.userRepo.On("FindByID", ctx, midwife.ID.Hex()).Return(&midwife, nil)

		providers, err := f.usecase.FindProviders(ctx, "mom", "")

		assert.NoError(t, err)
		assert.Len(t, providers, 3)
		assert.Equal(t, "Ayu Test", providers[0].Name)
		assert.Equal(t, "Maya Test", providers[1].Name)
		assert.Equal(t, "Zaki Test", providers[2].Name)

		myMidwifeCount := 0
		for _, provider := range providers {
			if provider.IsMyMidwife {
				myMidwifeCount++
				assert.Equal(t, constvars.SpecialtyMidwifery, provider.Specialty)
			}
		}
		assert.Equal(t, 1, myMidwifeCount)
	})

	t.Run("No Assignment Returns Doctors Only", func(t *testing.T) {
		f := newProviderFixture()
		f.withSession("mom", "mom-1", constvars.RoleMom)
		f.userRepo.On("FindActiveByRoles", ctx, []string{constvars.RoleDoctor}).Return([]models.User{doctorAyu}, nil)
		f.assignmentRepo.On("FindActiveByMomID", ctx, "mom-1").Return(nil, nil)

		providers, err := f.usecase.FindProviders(ctx, "mom", "")

		assert.NoError(t, err)
		assert.Len(t, providers, 1)
		assert.False(t, providers[0].IsMyMidwife)
	})

	t.Run("Midwife Filter Skips Doctors", func(t *testing.T) {
		f := newProviderFixture()
		f.withSession("mom", "mom-1", constvars.RoleMom)
		f.assignmentRepo.On("FindActiveByMomID", ctx, "mom-1").Return(&models.MidwifeAssignment{MidwifeID: midwife.ID.Hex()}, nil)
		f.userRepo.On("FindByID", ctx, midwife.ID.Hex()).Return(&midwife, nil)

		providers, err := f.usecase.FindProviders(ctx, "mom", "Midwife")

		assert.NoError(t, err)
		assert.Len(t, providers, 1)
		f.userRepo.AssertNotCalled(t, "FindActiveByRoles", mock.Anything, mock.Anything)
	})

	t.Run("Inactive Assigned Midwife Is Hidden", func(t *testing.T) {
		f := newProviderFixture()
		inactive := newUser("Rina", constvars.RoleMidwife, false)
		f.withSession("mom", "mom-1", constvars.RoleMom)
		f.userRepo.On("FindActiveByRoles", ctx, []string{constvars.RoleDoctor}).Return([]models.User{}, nil)
		f.assignmentRepo.On("FindActiveByMomID", ctx, "mom-1").Return(&models.MidwifeAssignment{MidwifeID: inactive.ID.Hex()}, nil)
		f.userRepo.On("FindByID", ctx, inactive.ID.Hex()).Return(&inactive, nil)

		providers, err := f.usecase.FindProviders(ctx, "mom", "")

		assert.NoError(t, err)
		assert.Empty(t, providers)
	})
}

func TestProviderUsecase_FindProviders_Staff(t *testing.T) {
	ctx := context.Background()
	self := newUser("Budi", constvars.RoleDoctor, true)
	colleague := newUser("Citra", constvars.RoleMidwife, true)

	t.Run("Excludes Caller", func(t *testing.T) {
		f := newProviderFixture()
		f.withSession("doctor", self.ID.Hex(), constvars.RoleDoctor)
		f.userRepo.On("FindActiveByRoles", ctx, []string{constvars.RoleDoctor, constvars.RoleMidwife}).Return([]models.User{self, colleague}, nil)

		providers, err := f.usecase.FindProviders(ctx, "doctor", "")

		assert.NoError(t, err)
		assert.Len(t, providers, 1)
		assert.Equal(t, colleague.ID.Hex(), providers[0].ID)
		assert.False(t, providers[0].IsMyMidwife)
	})

	t.Run("Other Roles Are Forbidden", func(t *testing.T) {
		f := newProviderFixture()
		f.withSession("seller", "sp-1", constvars.RoleServiceProvider)

		_, err := f.usecase.FindProviders(ctx, "seller", "")

		assert.Equal(t, constvars.StatusForbidden, statusCodeOf(err))
	})
}

func TestProviderUsecase_FindMyMidwife(t *testing.T) {
	ctx := context.Background()

	t.Run("Not Assigned", func(t *testing.T) {
		f := newProviderFixture()
		f.withSession("mom", "mom-1", constvars.RoleMom)
		f.assignmentRepo.On("FindActiveByMomID", ctx, "mom-1").Return(nil, nil)

		_, err := f.usecase.FindMyMidwife(ctx, "mom")

		assert.Equal(t, constvars.StatusNotFound, statusCodeOf(err))
	})

	t.Run("Assigned", func(t *testing.T) {
		f := newProviderFixture()
		midwife := newUser("Maya", constvars.RoleMidwife, true)
		f.withSession("mom", "mom-1", constvars.RoleMom)
		f.assignmentRepo.On("FindActiveByMomID", ctx, "mom-1").Return(&models.MidwifeAssignment{MidwifeID: midwife.ID.Hex()}, nil)
		f.userRepo.On("FindByID", ctx, midwife.ID.Hex()).Return(&midwife, nil)

		provider, err := f.usecase.FindMyMidwife(ctx, "mom")

		assert.NoError(t, err)
		assert.True(t, provider.IsMyMidwife)
	})
}

func TestProviderUsecase_AssignMidwife(t *testing.T) {
	ctx := context.Background()
	midwife := newUser("Maya", constvars.RoleMidwife, true)
	mom := newUser("Sari", constvars.RoleMom, true)

	t.Run("Replaces Active Assignment", func(t *testing.T) {
		f := newProviderFixture()
		f.withSession("admin", "admin-1", constvars.RoleAdmin)
		f.userRepo.On("FindByID", ctx, midwife.ID.Hex()).Return(&midwife, nil)
		f.userRepo.On("FindByID", ctx, mom.ID.Hex()).Return(&mom, nil)
		f.assignmentRepo.On("DeactivateByMomID", ctx, mom.ID.Hex()).Return(int64(1), nil)
		f.assignmentRepo.On("Create", ctx, mock.MatchedBy(func(assignment *models.MidwifeAssignment) bool {
			return assignment.Status == constvars.MidwifeAssignmentStatusActive && assignment.AssignedBy == "admin-1"
		})).Return("assignment-1", nil)
		f.notificationService.On("Notify", ctx, mock.Anything).Return(nil)

		result, err := f.usecase.AssignMidwife(ctx, "admin", &requests.AssignMidwife{MidwifeID: midwife.ID.Hex(), MomID: mom.ID.Hex()})

		assert.NoError(t, err)
		assert.Equal(t, constvars.MidwifeAssignmentStatusActive, result.Status)
		f.assignmentRepo.AssertExpectations(t)
	})

	t.Run("Target Is Not A Midwife", func(t *testing.T) {
		f := newProviderFixture()
		f.withSession("admin", "admin-1", constvars.RoleAdmin)
		f.userRepo.On("FindByID", ctx, mom.ID.Hex()).Return(&mom, nil)

		_, err := f.usecase.AssignMidwife(ctx, "admin", &requests.AssignMidwife{MidwifeID: mom.ID.Hex(), MomID: mom.ID.Hex()})

		assert.Equal(t, constvars.StatusBadRequest, statusCodeOf(err))
		f.assignmentRepo.AssertNotCalled(t, "DeactivateByMomID", mock.Anything, mock.Anything)
	})
}
