package maintenance

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/sarpras/reservation-service/pkg/auth"
	"github.com/sarpras/reservation-service/pkg/postgres"
	"github.com/sarpras/reservation-service/reservation/internal/repository"
	"github.com/sarpras/reservation-service/reservation/migrations"
)

// Migrate runs a goose command against the embedded migrations.
func Migrate(pool *pgxpool.Pool, command string, args ...string) error {
	return postgres.Migrate(pool, migrations.MigrationFiles, command, args...)
}

// IssueToken signs a token for an existing profile, carrying its stored role.
func IssueToken(ctx context.Context, pool *pgxpool.Pool, cfg auth.Config, userID uuid.UUID, log *zap.Logger) (string, error) {
	repo, err := repository.NewRepository(pool, log)
	if err != nil {
		return "", err
	}
	profile, err := repo.GetProfile(ctx, userID)
	if err != nil {
		return "", errors.Wrapf(err, "profile %s", userID)
	}
	return auth.NewToken(cfg, profile.ID, string(profile.Role), time.Now())
}
