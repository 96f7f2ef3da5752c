package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/blogem/useradmin/mapper"
	mappermocks "github.com/blogem/useradmin/mapper/mocks"
	"github.com/blogem/useradmin/metrics"
	"github.com/blogem/useradmin/models"
	"github.com/blogem/useradmin/repositories"
	"github.com/blogem/useradmin/repositories/mocks"
	servicemocks "github.com/blogem/useradmin/services/mocks"
	"github.com/blogem/useradmin/userctx"
	"github.com/blogem/useradmin/validation"
	validationmocks "github.com/blogem/useradmin/validation/mocks"
)

func newTestMetrics() *metrics.Metrics {
	reg := prometheus.NewRegistry()
	return metrics.NewWithRegistry(reg, reg)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

var noActor = (*int)(nil)

// UserServiceTestSuite tests the user service against mocked storage and audit log
type UserServiceTestSuite struct {
	suite.Suite
	service      UserService
	mockUserRepo *mocks.MockUserRepository
	mockLogs     *servicemocks.MockLogService
	metrics      *metrics.Metrics
	ctx          context.Context
}

// SetupTest sets up the test suite before each test
func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockUserRepo = mocks.NewMockUserRepository(suite.T())
	suite.mockLogs = servicemocks.NewMockLogService(suite.T())
	suite.metrics = newTestMetrics()
	suite.ctx = context.Background()

	suite.service = NewUserService(
		suite.mockUserRepo,
		suite.mockLogs,
		validation.New(),
		mapper.New(),
		suite.metrics,
		discardLogger(),
	)
}

func (suite *UserServiceTestSuite) outcome(operation, outcome string) float64 {
	return testutil.ToFloat64(suite.metrics.UserOperations.WithLabelValues(operation, outcome))
}

// TestCreateUser_Success creates a user and logs exactly one Create entry
func (suite *UserServiceTestSuite) TestCreateUser_Success() {
	form := &models.UserForm{
		Forename:    "New",
		Surname:     "User",
		Email:       "new@example.com",
		DateOfBirth: date(1990, 1, 1),
		IsActive:    true,
	}

	suite.mockUserRepo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*models.User")).
		RunAndReturn(func(_ context.Context, user *models.User) error {
			suite.Equal(0, user.ID)
			suite.Equal("new@example.com", user.Email)
			suite.True(user.IsActive)
			user.ID = 12
			return nil
		}).Once()
	suite.mockLogs.EXPECT().
		LogAction(mock.Anything, models.ActionCreate, models.EntityTypeUser, 12, "Created user: New User", noActor).
		Return(nil).Once()

	result, err := suite.service.CreateUser(suite.ctx, form)

	assert.NoError(suite.T(), err)
	assert.True(suite.T(), result.Success)
	assert.Empty(suite.T(), result.Errors)
	assert.Equal(suite.T(), 1.0, suite.outcome("create", metrics.OutcomeSuccess))
}

// TestCreateUser_IgnoresSubmittedID never lets the form choose the identifier
func (suite *UserServiceTestSuite) TestCreateUser_IgnoresSubmittedID() {
	form := &models.UserForm{ID: 99, Forename: "New", Surname: "User", Email: "new@example.com"}

	suite.mockUserRepo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(u *models.User) bool { return u.ID == 0 })).
		RunAndReturn(func(_ context.Context, user *models.User) error {
			user.ID = 13
			return nil
		}).Once()
	suite.mockLogs.EXPECT().LogAction(mock.Anything, models.ActionCreate, models.EntityTypeUser, 13, mock.Anything, noActor).
		Return(nil).Once()

	result, err := suite.service.CreateUser(suite.ctx, form)

	assert.NoError(suite.T(), err)
	assert.True(suite.T(), result.Success)
}

// TestCreateUser_ValidationFailure neither persists nor logs, and reports every message
func (suite *UserServiceTestSuite) TestCreateUser_ValidationFailure() {
	form := &models.UserForm{Email: "not-an-email"}

	result, err := suite.service.CreateUser(suite.ctx, form)

	assert.NoError(suite.T(), err)
	assert.False(suite.T(), result.Success)
	assert.Equal(suite.T(), []string{
		"Forename is required",
		"Surname is required",
		"Email must be a valid email address",
	}, result.Errors)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "Create", mock.Anything, mock.Anything)
	suite.mockLogs.AssertNotCalled(suite.T(), "LogAction", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	assert.Equal(suite.T(), 1.0, suite.outcome("create", metrics.OutcomeInvalid))
}

// TestCreateUser_PersistenceFailure propagates store faults without logging
func (suite *UserServiceTestSuite) TestCreateUser_PersistenceFailure() {
	form := &models.UserForm{Forename: "New", Surname: "User", Email: "new@example.com"}
	storeErr := errors.New("database connection failed")

	suite.mockUserRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(storeErr).Once()

	result, err := suite.service.CreateUser(suite.ctx, form)

	assert.Nil(suite.T(), result)
	assert.ErrorIs(suite.T(), err, storeErr)
	assert.Equal(suite.T(), 1.0, suite.outcome("create", metrics.OutcomeError))
}

// TestCreateUser_LogFailure keeps the stored user and reports success
func (suite *UserServiceTestSuite) TestCreateUser_LogFailure() {
	form := &models.UserForm{Forename: "New", Surname: "User", Email: "new@example.com"}

	suite.mockUserRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil).Once()
	suite.mockLogs.EXPECT().LogAction(mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("logs table locked")).Once()

	result, err := suite.service.CreateUser(suite.ctx, form)

	assert.NoError(suite.T(), err)
	assert.True(suite.T(), result.Success)
	assert.Equal(suite.T(), 1.0, testutil.ToFloat64(suite.metrics.LogAppendFailures))
}

// TestUpdateUser_EmailOnly logs a single Email change
func (suite *UserServiceTestSuite) TestUpdateUser_EmailOnly() {
	existing := &models.User{ID: 5, Forename: "Old", Surname: "Timer", Email: "old@x.com", DateOfBirth: date(1980, 2, 3), IsActive: true}
	form := &models.UserForm{ID: 5, Forename: "Old", Surname: "Timer", Email: "new@x.com", DateOfBirth: date(1980, 2, 3), IsActive: true}

	suite.mockUserRepo.EXPECT().GetByID(mock.Anything, 5).Return(existing, nil).Once()
	suite.mockUserRepo.EXPECT().Update(mock.Anything, mock.MatchedBy(func(u *models.User) bool {
		return u.ID == 5 && u.Email == "new@x.com"
	})).Return(nil).Once()
	suite.mockLogs.EXPECT().
		LogAction(mock.Anything, models.ActionUpdate, models.EntityTypeUser, 5,
			"Updated user: Email changed from 'old@x.com' to 'new@x.com'", noActor).
		Return(nil).Once()

	result, err := suite.service.UpdateUser(suite.ctx, form)

	assert.NoError(suite.T(), err)
	assert.True(suite.T(), result.Success)
	assert.Equal(suite.T(), "new@x.com", existing.Email, "existing record is updated in place")
}

// TestUpdateUser_ActorFromContext forwards the acting user to the audit log
func (suite *UserServiceTestSuite) TestUpdateUser_ActorFromContext() {
	existing := &models.User{ID: 5, Forename: "Same", Surname: "User", Email: "same@x.com"}
	form := &models.UserForm{ID: 5, Forename: "Same", Surname: "User", Email: "same@x.com"}

	suite.mockUserRepo.EXPECT().GetByID(mock.Anything, 5).Return(existing, nil).Once()
	suite.mockUserRepo.EXPECT().Update(mock.Anything, existing).Return(nil).Once()
	suite.mockLogs.EXPECT().
		LogAction(mock.Anything, models.ActionUpdate, models.EntityTypeUser, 5, NoUserChanges,
			mock.MatchedBy(func(actor *int) bool { return actor != nil && *actor == 3 })).
		Return(nil).Once()

	result, err := suite.service.UpdateUser(userctx.WithActorID(suite.ctx, 3), form)

	assert.NoError(suite.T(), err)
	assert.True(suite.T(), result.Success)
}

// TestUpdateUser_ValidationFailure does not look the user up
func (suite *UserServiceTestSuite) TestUpdateUser_ValidationFailure() {
	form := &models.UserForm{ID: 5, Forename: "", Surname: "User", Email: "user@example.com"}

	result, err := suite.service.UpdateUser(suite.ctx, form)

	assert.NoError(suite.T(), err)
	assert.False(suite.T(), result.Success)
	assert.Equal(suite.T(), []string{"Forename is required"}, result.Errors)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "GetByID", mock.Anything, mock.Anything)
}

// TestUpdateUser_NotFound reports the missing user and logs nothing
func (suite *UserServiceTestSuite) TestUpdateUser_NotFound() {
	form := &models.UserForm{ID: 9999, Forename: "New", Surname: "User", Email: "new@example.com"}

	suite.mockUserRepo.EXPECT().GetByID(mock.Anything, 9999).
		Return(nil, fmt.Errorf("user with ID 9999: %w", repositories.ErrNotFound)).Once()

	result, err := suite.service.UpdateUser(suite.ctx, form)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.Failed(UserNotFound), result)
	assert.Equal(suite.T(), 1.0, suite.outcome("update", metrics.OutcomeNotFound))
}

// TestUpdateUser_PersistenceFailure propagates the update fault without logging
func (suite *UserServiceTestSuite) TestUpdateUser_PersistenceFailure() {
	existing := &models.User{ID: 5, Forename: "Old", Surname: "User", Email: "old@x.com"}
	form := &models.UserForm{ID: 5, Forename: "New", Surname: "User", Email: "old@x.com"}
	storeErr := errors.New("disk I/O error")

	suite.mockUserRepo.EXPECT().GetByID(mock.Anything, 5).Return(existing, nil).Once()
	suite.mockUserRepo.EXPECT().Update(mock.Anything, existing).Return(storeErr).Once()

	result, err := suite.service.UpdateUser(suite.ctx, form)

	assert.Nil(suite.T(), result)
	assert.ErrorIs(suite.T(), err, storeErr)
}

// TestDeleteUser_Success deletes and logs with empty details
func (suite *UserServiceTestSuite) TestDeleteUser_Success() {
	existing := &models.User{ID: 7, Forename: "Gone", Surname: "Soon", Email: "gone@example.com"}

	suite.mockUserRepo.EXPECT().GetByID(mock.Anything, 7).Return(existing, nil).Once()
	suite.mockUserRepo.EXPECT().Delete(mock.Anything, existing).Return(nil).Once()
	suite.mockLogs.EXPECT().LogAction(mock.Anything, models.ActionDelete, models.EntityTypeUser, 7, "", noActor).
		Return(nil).Once()

	result, err := suite.service.DeleteUser(suite.ctx, 7)

	assert.NoError(suite.T(), err)
	assert.True(suite.T(), result.Success)
}

// TestDeleteUser_NotFound reports "User not found" and logs nothing
func (suite *UserServiceTestSuite) TestDeleteUser_NotFound() {
	suite.mockUserRepo.EXPECT().GetByID(mock.Anything, 9999).Return(nil, repositories.ErrNotFound).Once()

	result, err := suite.service.DeleteUser(suite.ctx, 9999)

	assert.NoError(suite.T(), err)
	assert.False(suite.T(), result.Success)
	assert.Equal(suite.T(), []string{"User not found"}, result.Errors)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "Delete", mock.Anything, mock.Anything)
}

// TestListUsers applies the tri-state active filter
func (suite *UserServiceTestSuite) TestListUsers() {
	all := []models.User{
		{ID: 1, Forename: "A", Surname: "One", IsActive: true},
		{ID: 2, Forename: "B", Surname: "Two", IsActive: false},
	}
	suite.mockUserRepo.EXPECT().GetAll(mock.Anything).Return(all, nil).Once()
	suite.mockUserRepo.EXPECT().GetByActive(mock.Anything, false).Return(all[1:], nil).Once()
	suite.mockUserRepo.EXPECT().GetByActive(mock.Anything, true).Return([]models.User{}, nil).Once()

	users, err := suite.service.ListUsers(suite.ctx, nil)
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), users, 2)
	assert.Equal(suite.T(), "One", users[0].Surname)

	inactive := false
	users, err = suite.service.ListUsers(suite.ctx, &inactive)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), []models.UserSummary{{ID: 2, Forename: "B", Surname: "Two"}}, users)

	active := true
	users, err = suite.service.ListUsers(suite.ctx, &active)
	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), users)
	assert.Empty(suite.T(), users)
}

// TestGetUser attaches the user's audit history
func (suite *UserServiceTestSuite) TestGetUser() {
	user := &models.User{ID: 4, Forename: "Memphis", Surname: "Raines", Email: "mraines@example.com", IsActive: true}
	history := []models.LogSummary{
		{ID: 9, Action: models.ActionUpdate, EntityType: models.EntityTypeUser, EntityID: 4},
		{ID: 2, Action: models.ActionCreate, EntityType: models.EntityTypeUser, EntityID: 4},
	}

	suite.mockUserRepo.EXPECT().GetByID(mock.Anything, 4).Return(user, nil).Once()
	suite.mockLogs.EXPECT().ListLogsForEntity(mock.Anything, models.EntityTypeUser, 4).Return(history, nil).Once()

	detail, found, err := suite.service.GetUser(suite.ctx, 4)

	assert.NoError(suite.T(), err)
	assert.True(suite.T(), found)
	assert.Equal(suite.T(), "Raines", detail.Surname)
	assert.Equal(suite.T(), history, detail.Logs)
}

// TestGetUser_NotFound reports not found without querying logs
func (suite *UserServiceTestSuite) TestGetUser_NotFound() {
	suite.mockUserRepo.EXPECT().GetByID(mock.Anything, 404).Return(nil, repositories.ErrNotFound).Once()

	detail, found, err := suite.service.GetUser(suite.ctx, 404)

	assert.NoError(suite.T(), err)
	assert.False(suite.T(), found)
	assert.Nil(suite.T(), detail)
}

// TestUserServiceTestSuite runs the user service test suite
func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}

// TestCreateUser_EffectOrder checks validate, map, persist, log happen once each, in that order
func TestCreateUser_EffectOrder(t *testing.T) {
	var calls []string

	validator := validationmocks.NewMockValidator(t)
	m := mappermocks.NewMockMapper(t)
	repo := mocks.NewMockUserRepository(t)
	logs := servicemocks.NewMockLogService(t)

	validator.EXPECT().Validate(mock.Anything).
		Run(func(interface{}) { calls = append(calls, "validate") }).
		Return(true, nil).Once()
	m.EXPECT().Map(mock.Anything, mock.Anything).
		RunAndReturn(func(dst, src interface{}) error {
			calls = append(calls, "map")
			return mapper.New().Map(dst, src)
		}).Once()
	repo.EXPECT().Create(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, u *models.User) error {
			calls = append(calls, "persist")
			u.ID = 1
			return nil
		}).Once()
	logs.EXPECT().LogAction(mock.Anything, models.ActionCreate, models.EntityTypeUser, 1, "Created user: New User", noActor).
		Run(func(context.Context, string, string, int, string, *int) { calls = append(calls, "log") }).
		Return(nil).Once()

	service := NewUserService(repo, logs, validator, m, newTestMetrics(), discardLogger())
	result, err := service.CreateUser(context.Background(), &models.UserForm{Forename: "New", Surname: "User", Email: "new@example.com"})

	assert.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, []string{"validate", "map", "persist", "log"}, calls)
}

// TestUpdateUser_ValidatorMessagesPassThrough returns the validator's messages verbatim
func TestUpdateUser_ValidatorMessagesPassThrough(t *testing.T) {
	validator := validationmocks.NewMockValidator(t)
	validator.EXPECT().Validate(mock.Anything).Return(false, []string{"first problem", "second problem"}).Once()

	service := NewUserService(
		mocks.NewMockUserRepository(t),
		servicemocks.NewMockLogService(t),
		validator,
		mappermocks.NewMockMapper(t),
		newTestMetrics(),
		discardLogger(),
	)

	result, err := service.UpdateUser(context.Background(), &models.UserForm{ID: 1})

	assert.NoError(t, err)
	assert.Equal(t, models.Failed("first problem", "second problem"), result)
}
