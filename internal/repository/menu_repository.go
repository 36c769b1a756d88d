package repository

import (
	"context"
	"fmt"

	"menu-board/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// menuRepository implements the MenuRepository interface using PostgreSQL.
type menuRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewMenuRepository creates a new PostgreSQL-backed menu repository.
func NewMenuRepository(pool *pgxpool.Pool, logger zerolog.Logger) MenuRepository {
	return &menuRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "menu").Logger(),
	}
}

// Create inserts a new menu together with its line items in a single
// transaction.
func (r *menuRepository) Create(ctx context.Context, menu *model.Menu) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to begin transaction")
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil && rbErr != pgx.ErrTxClosed {
				r.logger.Error().Err(rbErr).Msg("failed to rollback transaction")
			}
		}
	}()

	menuQuery := `
		INSERT INTO menus (id, name, price, menu_group_id, displayed, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err = tx.Exec(ctx, menuQuery,
		menu.ID, menu.Name, menu.Price.Decimal(), menu.MenuGroupID,
		menu.Displayed, menu.CreatedAt, menu.UpdatedAt)
	if err != nil {
		r.logger.Error().Err(err).Str("menu_id", menu.ID.String()).Msg("failed to insert menu")
		return fmt.Errorf("failed to insert menu: %w", err)
	}

	itemQuery := `
		INSERT INTO menu_line_items (id, menu_id, product_id, quantity, seq)
		VALUES ($1, $2, $3, $4, $5)
	`

	for _, item := range menu.LineItems {
		if _, err = tx.Exec(ctx, itemQuery,
			item.ID, item.MenuID, item.ProductID, item.Quantity, item.Seq); err != nil {
			r.logger.Error().Err(err).
				Str("menu_id", menu.ID.String()).
				Str("product_id", item.ProductID.String()).
				Msg("failed to insert menu line item")
			return fmt.Errorf("failed to insert menu line item: %w", err)
		}
	}

	if err = tx.Commit(ctx); err != nil {
		r.logger.Error().Err(err).Str("menu_id", menu.ID.String()).Msg("failed to commit transaction")
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// GetByID retrieves a menu with its line items.
func (r *menuRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Menu, error) {
	query := `
		SELECT id, name, price, menu_group_id, displayed, created_at, updated_at
		FROM menus
		WHERE id = $1
	`

	m, err := scanMenu(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			r.logger.Debug().Str("menu_id", id.String()).Msg("menu not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("menu_id", id.String()).Msg("failed to query menu")
		return nil, fmt.Errorf("failed to query menu: %w", err)
	}

	menus := []model.Menu{*m}
	if err := r.attachLineItems(ctx, menus); err != nil {
		return nil, err
	}

	return &menus[0], nil
}

// GetAll retrieves all menus with their line items.
func (r *menuRepository) GetAll(ctx context.Context) ([]model.Menu, error) {
	query := `
		SELECT id, name, price, menu_group_id, displayed, created_at, updated_at
		FROM menus
		ORDER BY name
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query menus")
		return nil, fmt.Errorf("failed to query menus: %w", err)
	}
	defer rows.Close()

	menus, err := collectMenus(rows, r.logger)
	if err != nil {
		return nil, err
	}

	if err := r.attachLineItems(ctx, menus); err != nil {
		return nil, err
	}

	return menus, nil
}

// GetAllContainingProduct retrieves every menu that has a line item
// referencing the given product.
func (r *menuRepository) GetAllContainingProduct(ctx context.Context, productID uuid.UUID) ([]model.Menu, error) {
	query := `
		SELECT DISTINCT m.id, m.name, m.price, m.menu_group_id, m.displayed, m.created_at, m.updated_at
		FROM menus m
		JOIN menu_line_items li ON li.menu_id = m.id
		WHERE li.product_id = $1
		ORDER BY m.name
	`

	rows, err := r.pool.Query(ctx, query, productID)
	if err != nil {
		r.logger.Error().Err(err).
			Str("product_id", productID.String()).
			Msg("failed to query menus containing product")
		return nil, fmt.Errorf("failed to query menus containing product: %w", err)
	}
	defer rows.Close()

	menus, err := collectMenus(rows, r.logger)
	if err != nil {
		return nil, err
	}

	if err := r.attachLineItems(ctx, menus); err != nil {
		return nil, err
	}

	return menus, nil
}

// UpdateDisplayed persists the displayed flag for an existing menu.
func (r *menuRepository) UpdateDisplayed(ctx context.Context, id uuid.UUID, displayed bool) error {
	query := `
		UPDATE menus
		SET displayed = $2, updated_at = now()
		WHERE id = $1
	`

	tag, err := r.pool.Exec(ctx, query, id, displayed)
	if err != nil {
		r.logger.Error().Err(err).Str("menu_id", id.String()).Msg("failed to update menu displayed flag")
		return fmt.Errorf("failed to update menu displayed flag: %w", err)
	}

	if tag.RowsAffected() == 0 {
		r.logger.Warn().Str("menu_id", id.String()).Msg("menu not found for displayed update")
		return model.ErrMenuNotFound
	}

	return nil
}

// UpdatePrice persists a new price for an existing menu.
func (r *menuRepository) UpdatePrice(ctx context.Context, id uuid.UUID, price model.Money) error {
	query := `
		UPDATE menus
		SET price = $2, updated_at = now()
		WHERE id = $1
	`

	tag, err := r.pool.Exec(ctx, query, id, price.Decimal())
	if err != nil {
		r.logger.Error().Err(err).Str("menu_id", id.String()).Msg("failed to update menu price")
		return fmt.Errorf("failed to update menu price: %w", err)
	}

	if tag.RowsAffected() == 0 {
		r.logger.Warn().Str("menu_id", id.String()).Msg("menu not found for price update")
		return model.ErrMenuNotFound
	}

	return nil
}

// attachLineItems loads the line items for the given menus in one query and
// assigns them in seq order.
func (r *menuRepository) attachLineItems(ctx context.Context, menus []model.Menu) error {
	if len(menus) == 0 {
		return nil
	}

	menuIDs := make([]uuid.UUID, len(menus))
	index := make(map[uuid.UUID]*model.Menu, len(menus))
	for i := range menus {
		menuIDs[i] = menus[i].ID
		index[menus[i].ID] = &menus[i]
	}

	query := `
		SELECT id, menu_id, product_id, quantity, seq
		FROM menu_line_items
		WHERE menu_id = ANY($1)
		ORDER BY menu_id, seq
	`

	rows, err := r.pool.Query(ctx, query, menuIDs)
	if err != nil {
		r.logger.Error().Err(err).Int("menu_count", len(menus)).Msg("failed to query menu line items")
		return fmt.Errorf("failed to query menu line items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var item model.MenuLineItem
		if err := rows.Scan(&item.ID, &item.MenuID, &item.ProductID, &item.Quantity, &item.Seq); err != nil {
			r.logger.Error().Err(err).Msg("failed to scan menu line item row")
			return fmt.Errorf("failed to scan menu line item: %w", err)
		}
		if menu, ok := index[item.MenuID]; ok {
			menu.LineItems = append(menu.LineItems, item)
		}
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating menu line item rows")
		return fmt.Errorf("error iterating menu line items: %w", err)
	}

	return nil
}

// scanMenu scans a single menu row.
func scanMenu(row pgx.Row) (*model.Menu, error) {
	var m model.Menu
	var price decimal.Decimal

	if err := row.Scan(&m.ID, &m.Name, &price, &m.MenuGroupID, &m.Displayed, &m.CreatedAt, &m.UpdatedAt); err != nil {
		return nil, err
	}

	money, err := model.NewMoney(price)
	if err != nil {
		return nil, fmt.Errorf("invalid stored price: %w", err)
	}
	m.Price = money

	return &m, nil
}

// collectMenus drains rows into a menu slice.
func collectMenus(rows pgx.Rows, logger zerolog.Logger) ([]model.Menu, error) {
	var menus []model.Menu
	for rows.Next() {
		m, err := scanMenu(rows)
		if err != nil {
			logger.Error().Err(err).Msg("failed to scan menu row")
			return nil, fmt.Errorf("failed to scan menu: %w", err)
		}
		menus = append(menus, *m)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("error iterating menu rows")
		return nil, fmt.Errorf("error iterating menus: %w", err)
	}

	return menus, nil
}
