package repository

import (
	"context"

	"fintrack/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type AchievementRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewAchievementRepository(db *pgxpool.Pool, logger *zap.Logger) *AchievementRepository {
	return &AchievementRepository{
		db:     db,
		logger: logger,
	}
}

// UpsertCatalog seeds catalog entries, skipping codes that already exist.
// Safe to run on every startup.
func (r *AchievementRepository) UpsertCatalog(ctx context.Context, achievements []*models.Achievement) error {
	if len(achievements) == 0 {
		return nil
	}

	builder := squirrel.Insert("achievements").
		Columns("id", "code", "name", "description", "icon", "created_at").
		Suffix("ON CONFLICT (code) DO NOTHING").
		PlaceholderFormat(squirrel.Dollar)

	for _, ach := range achievements {
		builder = builder.Values(ach.ID, ach.Code, ach.Name, ach.Description, ach.Icon, ach.CreatedAt)
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *AchievementRepository) ListAll(ctx context.Context) ([]*models.Achievement, error) {
	query := squirrel.Select("id", "code", "name", "description", "icon", "created_at").
		From("achievements").
		OrderBy("created_at ASC", "code ASC").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var achievements []*models.Achievement
	for rows.Next() {
		var ach models.Achievement
		if err := rows.Scan(&ach.ID, &ach.Code, &ach.Name, &ach.Description, &ach.Icon, &ach.CreatedAt); err != nil {
			return nil, err
		}
		achievements = append(achievements, &ach)
	}

	return achievements, rows.Err()
}

func (r *AchievementRepository) GetByCode(ctx context.Context, code string) (*models.Achievement, error) {
	query := squirrel.Select("id", "code", "name", "description", "icon", "created_at").
		From("achievements").
		Where(squirrel.Eq{"code": code}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var ach models.Achievement
	err = r.db.QueryRow(ctx, sql, args...).Scan(&ach.ID, &ach.Code, &ach.Name, &ach.Description, &ach.Icon, &ach.CreatedAt)
	if err != nil {
		return nil, err
	}

	return &ach, nil
}

// Grant inserts a user-achievement row. It returns false when the user
// already holds the achievement: ON CONFLICT DO NOTHING makes the duplicate
// a no-op, including under concurrent grants, so callers never see an error
// for the race.
func (r *AchievementRepository) Grant(ctx context.Context, ua *models.UserAchievement) (bool, error) {
	query := squirrel.Insert("user_achievements").
		Columns("id", "user_id", "achievement_id", "earned_at").
		Values(ua.ID, ua.UserID, ua.AchievementID, ua.EarnedAt).
		Suffix("ON CONFLICT (user_id, achievement_id) DO NOTHING").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return false, err
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return false, err
	}

	return tag.RowsAffected() > 0, nil
}

// ListEarnedIDs returns the achievement ids the user already holds.
func (r *AchievementRepository) ListEarnedIDs(ctx context.Context, userID uuid.UUID) (map[uuid.UUID]bool, error) {
	query := squirrel.Select("achievement_id").
		From("user_achievements").
		Where(squirrel.Eq{"user_id": userID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	earned := make(map[uuid.UUID]bool)
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		earned[id] = true
	}

	return earned, rows.Err()
}
