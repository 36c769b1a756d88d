package repository

import (
	"context"
	"fmt"

	"menu-board/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// menuGroupRepository implements the MenuGroupRepository interface using
// PostgreSQL.
type menuGroupRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewMenuGroupRepository creates a new PostgreSQL-backed menu group repository.
func NewMenuGroupRepository(pool *pgxpool.Pool, logger zerolog.Logger) MenuGroupRepository {
	return &menuGroupRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "menu-group").Logger(),
	}
}

// Create inserts a new menu group.
func (r *menuGroupRepository) Create(ctx context.Context, group *model.MenuGroup) error {
	query := `
		INSERT INTO menu_groups (id, name, created_at)
		VALUES ($1, $2, $3)
	`

	_, err := r.pool.Exec(ctx, query, group.ID, group.Name, group.CreatedAt)
	if err != nil {
		r.logger.Error().Err(err).
			Str("menu_group_id", group.ID.String()).
			Msg("failed to insert menu group")
		return fmt.Errorf("failed to insert menu group: %w", err)
	}

	return nil
}

// GetAll retrieves all menu groups ordered by name.
func (r *menuGroupRepository) GetAll(ctx context.Context) ([]model.MenuGroup, error) {
	query := `
		SELECT id, name, created_at
		FROM menu_groups
		ORDER BY name
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query menu groups")
		return nil, fmt.Errorf("failed to query menu groups: %w", err)
	}
	defer rows.Close()

	var groups []model.MenuGroup
	for rows.Next() {
		var g model.MenuGroup
		if err := rows.Scan(&g.ID, &g.Name, &g.CreatedAt); err != nil {
			r.logger.Error().Err(err).Msg("failed to scan menu group row")
			return nil, fmt.Errorf("failed to scan menu group: %w", err)
		}
		groups = append(groups, g)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating menu group rows")
		return nil, fmt.Errorf("error iterating menu groups: %w", err)
	}

	return groups, nil
}

// Exists reports whether a menu group with the given ID exists.
func (r *menuGroupRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `
		SELECT EXISTS (SELECT 1 FROM menu_groups WHERE id = $1)
	`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, id).Scan(&exists); err != nil {
		r.logger.Error().Err(err).
			Str("menu_group_id", id.String()).
			Msg("failed to check menu group existence")
		return false, fmt.Errorf("failed to check menu group existence: %w", err)
	}

	return exists, nil
}
