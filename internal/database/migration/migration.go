package migration

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"credvault/internal/model"
)

// Collection describes one document collection and the field it is looked up by
// besides _id, if any.
type Collection struct {
	Name     string
	AltField string
}

// Collections lists every collection the service stores.
var Collections = []Collection{
	{Name: model.CollectionCredentials},
	{Name: model.CollectionMailboxes, AltField: "address"},
	{Name: model.CollectionAreas, AltField: "name"},
	{Name: model.CollectionPersonalDetailTypes, AltField: "detail"},
	{Name: model.CollectionCountries, AltField: "name"},
	{Name: model.CollectionJobHuntCredentials},
}

type migrationStep struct {
	Name string
	SQL  string
}

func postgresSteps(collections []Collection) []migrationStep {
	var steps []migrationStep
	for _, c := range collections {
		table := pgx.Identifier{c.Name}.Sanitize()
		steps = append(steps, migrationStep{
			Name: "create_table_" + c.Name,
			SQL: `CREATE TABLE IF NOT EXISTS ` + table + ` (
  id  TEXT  PRIMARY KEY,
  doc JSONB NOT NULL
);`,
		})
		if c.AltField != "" {
			index := pgx.Identifier{"idx_" + c.Name + "_" + c.AltField}.Sanitize()
			steps = append(steps, migrationStep{
				Name: "create_index_" + c.Name + "_" + c.AltField,
				SQL:  fmt.Sprintf(`CREATE INDEX IF NOT EXISTS %s ON %s ((doc->>'%s'));`, index, table, c.AltField),
			})
		}
	}
	return steps
}

// EnsureMigrated creates the document tables unless the sentinel table already exists.
func EnsureMigrated(ctx context.Context, db *sql.DB, log *zap.Logger) error {
	start := time.Now()
	log = log.With(zap.String("component", "database"))
	log.Info("db_migration_check", zap.String("status", "starting"))

	var exists bool
	sentinel := "public." + model.CollectionJobHuntCredentials
	if err := db.QueryRowContext(ctx, "SELECT to_regclass($1) IS NOT NULL", sentinel).Scan(&exists); err != nil {
		log.Error("db_migration_failed",
			zap.String("status", "error"),
			zap.Error(err),
			zap.Duration("duration_ms", time.Since(start)),
		)
		return fmt.Errorf("failed to check sentinel table: %w", err)
	}

	if exists {
		log.Info("db_migration_skip",
			zap.String("status", "success"),
			zap.String("reason", "schema already exists"),
			zap.Duration("duration_ms", time.Since(start)),
		)
		return nil
	}

	log.Info("db_migration_start", zap.String("status", "in_progress"))

	for _, step := range postgresSteps(Collections) {
		stepStart := time.Now()
		if _, err := db.ExecContext(ctx, step.SQL); err != nil {
			log.Error("db_migration_failed",
				zap.String("status", "error"),
				zap.String("migration_step", step.Name),
				zap.Error(err),
				zap.Duration("step_duration_ms", time.Since(stepStart)),
			)
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}
		log.Info("db_migration_step",
			zap.String("status", "success"),
			zap.String("migration_step", step.Name),
			zap.Duration("step_duration_ms", time.Since(stepStart)),
		)
	}

	log.Info("db_migration_success",
		zap.String("status", "success"),
		zap.Duration("duration_ms", time.Since(start)),
	)
	return nil
}
