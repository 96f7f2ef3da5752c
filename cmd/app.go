package cmd

import (
	"database/sql"

	"github.com/blogem/useradmin/database"
	"github.com/blogem/useradmin/mapper"
	"github.com/blogem/useradmin/metrics"
	"github.com/blogem/useradmin/repositories"
	"github.com/blogem/useradmin/services"
	"github.com/blogem/useradmin/validation"
)

// app is the wired application shared by the commands
type app struct {
	db       *sql.DB
	metrics  *metrics.Metrics
	services *services.Services
}

// newApp opens the database, applies pending migrations and wires the services
func newApp() (*app, error) {
	db, err := database.InitializeDatabase(logger, appConfig.DatabasePath)
	if err != nil {
		return nil, err
	}

	met := metrics.New()
	repos := repositories.NewRepositories(db)
	srvs := services.NewServices(
		repos,
		validation.New(),
		mapper.New(),
		met,
		logger,
		services.WithPageSize(appConfig.LogPageSize),
	)

	return &app{
		db:       db,
		metrics:  met,
		services: srvs,
	}, nil
}

func (a *app) Close() error {
	return a.db.Close()
}
