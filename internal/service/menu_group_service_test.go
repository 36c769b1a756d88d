package service

import (
	"context"
	"testing"

	"menu-board/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMenuGroupService_Create(t *testing.T) {
	ctx := context.Background()

	menuGroupRepo := new(MockMenuGroupRepository)
	menuGroupRepo.On("Create", ctx, mock.AnythingOfType("*model.MenuGroup")).Return(nil)

	service := NewMenuGroupService(menuGroupRepo, zerolog.Nop())

	group, err := service.Create(ctx, &model.MenuGroupRequest{Name: strPtr("lunch specials")})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, group.ID)
	assert.Equal(t, "lunch specials", group.Name)
	menuGroupRepo.AssertExpectations(t)
}

func TestMenuGroupService_Create_InvalidName(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name string
		req  *model.MenuGroupRequest
	}{
		{"Nil request", nil},
		{"Nil name", &model.MenuGroupRequest{}},
		{"Blank name", &model.MenuGroupRequest{Name: strPtr("  ")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			menuGroupRepo := new(MockMenuGroupRepository)
			service := NewMenuGroupService(menuGroupRepo, zerolog.Nop())

			_, err := service.Create(ctx, tt.req)

			assert.ErrorIs(t, err, model.ErrInvalidName)
			menuGroupRepo.AssertNotCalled(t, "Create")
		})
	}
}

func TestMenuGroupService_GetAll(t *testing.T) {
	ctx := context.Background()

	groups := []model.MenuGroup{{ID: uuid.New(), Name: "lunch specials"}}

	menuGroupRepo := new(MockMenuGroupRepository)
	menuGroupRepo.On("GetAll", ctx).Return(groups, nil)

	service := NewMenuGroupService(menuGroupRepo, zerolog.Nop())

	actual, err := service.GetAll(ctx)

	require.NoError(t, err)
	assert.Len(t, actual, 1)
}
