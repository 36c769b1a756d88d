package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"menu-board/internal/model"
	"menu-board/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// menuGroupService implements MenuGroupService.
type menuGroupService struct {
	menuGroupRepo repository.MenuGroupRepository
	logger        zerolog.Logger
}

// NewMenuGroupService creates a new menu group service.
func NewMenuGroupService(menuGroupRepo repository.MenuGroupRepository, logger zerolog.Logger) MenuGroupService {
	return &menuGroupService{
		menuGroupRepo: menuGroupRepo,
		logger:        logger.With().Str("service", "menu-group").Logger(),
	}
}

// Create registers a new menu group. Group names are internal labels, so
// only the blank check applies; the profanity gate covers customer-facing
// product and menu names.
func (s *menuGroupService) Create(ctx context.Context, req *model.MenuGroupRequest) (*model.MenuGroup, error) {
	if req == nil || req.Name == nil || strings.TrimSpace(*req.Name) == "" {
		return nil, model.ErrInvalidName
	}

	group := &model.MenuGroup{
		ID:        uuid.New(),
		Name:      *req.Name,
		CreatedAt: time.Now(),
	}

	if err := s.menuGroupRepo.Create(ctx, group); err != nil {
		s.logger.Error().Err(err).Str("menu_group_id", group.ID.String()).Msg("failed to create menu group")
		return nil, fmt.Errorf("failed to create menu group: %w", err)
	}

	s.logger.Info().
		Str("menu_group_id", group.ID.String()).
		Str("name", group.Name).
		Msg("menu group created")

	return group, nil
}

// GetAll retrieves all menu groups.
func (s *menuGroupService) GetAll(ctx context.Context) ([]model.MenuGroup, error) {
	groups, err := s.menuGroupRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to get all menu groups")
		return nil, fmt.Errorf("failed to get menu groups: %w", err)
	}

	return groups, nil
}
