package services

import (
	"log/slog"

	"github.com/blogem/useradmin/mapper"
	"github.com/blogem/useradmin/metrics"
	"github.com/blogem/useradmin/repositories"
	"github.com/blogem/useradmin/validation"
)

// Services holds all service instances
type Services struct {
	User UserService
	Log  LogService
}

// NewServices creates and initializes all service instances
func NewServices(
	repos *repositories.Repositories,
	v validation.Validator,
	m mapper.Mapper,
	met *metrics.Metrics,
	logger *slog.Logger,
	logOpts ...LogServiceOption,
) *Services {
	logs := NewLogService(repos.Log, m, met, logOpts...)

	return &Services{
		User: NewUserService(repos.User, logs, v, m, met, logger),
		Log:  logs,
	}
}
