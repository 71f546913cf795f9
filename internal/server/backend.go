package server

import (
	"context"
	"database/sql"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"credvault/internal/config"
	"credvault/internal/database"
	"credvault/internal/database/migration"
	handlers "credvault/internal/http/handler"
	"credvault/internal/model"
	"credvault/internal/repository"
	"credvault/internal/repository/mongodb"
	"credvault/internal/repository/postgres"
	"credvault/internal/service"
)

// backend is an opened document store together with the services built on it.
type backend struct {
	pinger   handlers.Pinger
	services handlers.Services
	jobHunt  repository.DocumentRepository[model.JobHuntCredential]
	close    func(context.Context) error
}

func openBackend(ctx context.Context, cfg config.StoreConfig, log *zap.Logger) (*backend, error) {
	switch cfg.Driver {
	case config.DriverMongo:
		return openMongo(ctx, cfg, log)
	case config.DriverPostgres:
		return openPostgres(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Driver)
	}
}

func mongoRepo[T any](db *mongo.Database, collection string) repository.DocumentRepository[T] {
	return mongodb.NewDocumentMongo[T](db.Collection(collection))
}

func openMongo(ctx context.Context, cfg config.StoreConfig, log *zap.Logger) (*backend, error) {
	m, err := database.NewMongo(cfg)
	if err != nil {
		return nil, err
	}
	if err := migration.EnsureIndexes(ctx, m.DB, log); err != nil {
		_ = m.Close(context.Background())
		return nil, err
	}

	jobHunt := mongoRepo[model.JobHuntCredential](m.DB, model.CollectionJobHuntCredentials)
	return &backend{
		pinger: m,
		services: handlers.Services{
			Credentials:         service.NewCredentialService(mongoRepo[model.Credential](m.DB, model.CollectionCredentials)),
			Mailboxes:           service.NewMailboxService(mongoRepo[model.Mailbox](m.DB, model.CollectionMailboxes)),
			Areas:               service.NewAreaService(mongoRepo[model.Area](m.DB, model.CollectionAreas)),
			PersonalDetailTypes: service.NewPersonalDetailTypeService(mongoRepo[model.PersonalDetailType](m.DB, model.CollectionPersonalDetailTypes)),
			Countries:           service.NewCountryService(mongoRepo[model.Country](m.DB, model.CollectionCountries)),
			JobHuntCredentials:  service.NewJobHuntCredentialService(jobHunt),
		},
		jobHunt: jobHunt,
		close:   m.Close,
	}, nil
}

func postgresRepo[T any](db *sql.DB, collection string) repository.DocumentRepository[T] {
	return postgres.NewDocumentPostgres[T](db, collection)
}

func openPostgres(ctx context.Context, cfg config.StoreConfig, log *zap.Logger) (*backend, error) {
	db, err := database.NewPostgres(ctx, cfg.Postgres)
	if err != nil {
		return nil, err
	}
	if err := migration.EnsureMigrated(ctx, db, log); err != nil {
		_ = db.Close()
		return nil, err
	}

	jobHunt := postgresRepo[model.JobHuntCredential](db, model.CollectionJobHuntCredentials)
	return &backend{
		pinger: db,
		services: handlers.Services{
			Credentials:         service.NewCredentialService(postgresRepo[model.Credential](db, model.CollectionCredentials)),
			Mailboxes:           service.NewMailboxService(postgresRepo[model.Mailbox](db, model.CollectionMailboxes)),
			Areas:               service.NewAreaService(postgresRepo[model.Area](db, model.CollectionAreas)),
			PersonalDetailTypes: service.NewPersonalDetailTypeService(postgresRepo[model.PersonalDetailType](db, model.CollectionPersonalDetailTypes)),
			Countries:           service.NewCountryService(postgresRepo[model.Country](db, model.CollectionCountries)),
			JobHuntCredentials:  service.NewJobHuntCredentialService(jobHunt),
		},
		jobHunt: jobHunt,
		close:   func(context.Context) error { return db.Close() },
	}, nil
}
