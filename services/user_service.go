package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/blogem/useradmin/mapper"
	"github.com/blogem/useradmin/metrics"
	"github.com/blogem/useradmin/models"
	"github.com/blogem/useradmin/repositories"
	"github.com/blogem/useradmin/userctx"
	"github.com/blogem/useradmin/validation"
)

// UserNotFound is reported when an operation targets a missing user
const UserNotFound = "User not found"

// UserService interface defines user management business logic. Every
// successful mutation is appended to the audit log before returning.
type UserService interface {
	CreateUser(ctx context.Context, form *models.UserForm) (*models.OperationResult, error)
	UpdateUser(ctx context.Context, form *models.UserForm) (*models.OperationResult, error)
	DeleteUser(ctx context.Context, id int) (*models.OperationResult, error)
	ListUsers(ctx context.Context, active *bool) ([]models.UserSummary, error)
	GetUser(ctx context.Context, id int) (*models.UserDetail, bool, error)
}

// userService implements UserService interface
type userService struct {
	userRepo  repositories.UserRepository
	logs      LogService
	validator validation.Validator
	mapper    mapper.Mapper
	metrics   *metrics.Metrics
	logger    *slog.Logger
}

// NewUserService creates a new user service
func NewUserService(
	userRepo repositories.UserRepository,
	logs LogService,
	v validation.Validator,
	m mapper.Mapper,
	met *metrics.Metrics,
	logger *slog.Logger,
) UserService {
	return &userService{
		userRepo:  userRepo,
		logs:      logs,
		validator: v,
		mapper:    m,
		metrics:   met,
		logger:    logger,
	}
}

// CreateUser validates, stores and audits a new user
func (s *userService) CreateUser(ctx context.Context, form *models.UserForm) (*models.OperationResult, error) {
	if valid, messages := s.validator.Validate(form); !valid {
		s.metrics.UserOperation("create", metrics.OutcomeInvalid)
		return models.Failed(messages...), nil
	}

	var user models.User
	if err := s.mapper.Map(&user, form); err != nil {
		return nil, err
	}
	user.ID = 0

	if err := s.userRepo.Create(ctx, &user); err != nil {
		s.metrics.UserOperation("create", metrics.OutcomeError)
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.audit(ctx, models.ActionCreate, user.ID, "Created user: "+user.FullName())

	s.metrics.UserOperation("create", metrics.OutcomeSuccess)
	return models.Succeeded(), nil
}

// UpdateUser validates the form, applies it to the stored user and audits the field changes
func (s *userService) UpdateUser(ctx context.Context, form *models.UserForm) (*models.OperationResult, error) {
	if valid, messages := s.validator.Validate(form); !valid {
		s.metrics.UserOperation("update", metrics.OutcomeInvalid)
		return models.Failed(messages...), nil
	}

	user, err := s.userRepo.GetByID(ctx, form.ID)
	if errors.Is(err, repositories.ErrNotFound) {
		s.metrics.UserOperation("update", metrics.OutcomeNotFound)
		return models.Failed(UserNotFound), nil
	}
	if err != nil {
		s.metrics.UserOperation("update", metrics.OutcomeError)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	// Diff against the stored values before they are overwritten
	details := DescribeUserChanges(user, form)

	if err := s.mapper.Map(user, form); err != nil {
		return nil, err
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			s.metrics.UserOperation("update", metrics.OutcomeNotFound)
			return models.Failed(UserNotFound), nil
		}
		s.metrics.UserOperation("update", metrics.OutcomeError)
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	s.audit(ctx, models.ActionUpdate, user.ID, details)

	s.metrics.UserOperation("update", metrics.OutcomeSuccess)
	return models.Succeeded(), nil
}

// DeleteUser removes a user and audits the deletion
func (s *userService) DeleteUser(ctx context.Context, id int) (*models.OperationResult, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		s.metrics.UserOperation("delete", metrics.OutcomeNotFound)
		return models.Failed(UserNotFound), nil
	}
	if err != nil {
		s.metrics.UserOperation("delete", metrics.OutcomeError)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if err := s.userRepo.Delete(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			s.metrics.UserOperation("delete", metrics.OutcomeNotFound)
			return models.Failed(UserNotFound), nil
		}
		s.metrics.UserOperation("delete", metrics.OutcomeError)
		return nil, fmt.Errorf("failed to delete user: %w", err)
	}

	s.audit(ctx, models.ActionDelete, id, "")

	s.metrics.UserOperation("delete", metrics.OutcomeSuccess)
	return models.Succeeded(), nil
}

// ListUsers returns all users, or only those whose active flag matches when active is set
func (s *userService) ListUsers(ctx context.Context, active *bool) ([]models.UserSummary, error) {
	var users []models.User
	var err error
	if active == nil {
		users, err = s.userRepo.GetAll(ctx)
	} else {
		users, err = s.userRepo.GetByActive(ctx, *active)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	summaries := make([]models.UserSummary, 0, len(users))
	if len(users) == 0 {
		return summaries, nil
	}
	if err := s.mapper.Map(&summaries, &users); err != nil {
		return nil, err
	}
	return summaries, nil
}

// GetUser returns the user with its audit history; found is false when the user does not exist
func (s *userService) GetUser(ctx context.Context, id int) (*models.UserDetail, bool, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to get user: %w", err)
	}

	var detail models.UserDetail
	if err := s.mapper.Map(&detail, user); err != nil {
		return nil, false, err
	}

	detail.Logs, err = s.logs.ListLogsForEntity(ctx, models.EntityTypeUser, user.ID)
	if err != nil {
		return nil, false, err
	}

	return &detail, true, nil
}

// audit appends a log entry for a committed change. A failed append leaves the
// change in place: it is logged and counted, not reported to the caller.
func (s *userService) audit(ctx context.Context, action string, userID int, details string) {
	err := s.logs.LogAction(ctx, action, models.EntityTypeUser, userID, details, userctx.ActorID(ctx))
	if err == nil {
		return
	}

	s.metrics.LogAppendFailed()
	s.logger.ErrorContext(ctx, "audit log append failed",
		slog.String("action", action),
		slog.String("entity_type", models.EntityTypeUser),
		slog.Int("entity_id", userID),
		slog.String("error", err.Error()),
	)
}
