package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"github.com/dovietdong/WebApiBase/internal/errors"
	"github.com/dovietdong/WebApiBase/internal/model"
)

func TestUserService_GetUser(t *testing.T) {
	created := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("existing user maps to DTO", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByID", mock.Anything, uint(5)).Return(&model.User{
			ID:           5,
			Username:     "user",
			Email:        "user@example.com",
			PasswordHash: "$2a$10$secret",
			Role:         model.RoleUser,
			CreatedAt:    created,
		}, nil)

		svc := NewUserService(mockRepo)
		dto, err := svc.GetUser(context.Background(), 5)

		assert.NoError(t, err)
		assert.Equal(t, uint(5), dto.ID)
		assert.Equal(t, "user", dto.Username)
		assert.Equal(t, "user@example.com", dto.Email)
		assert.Equal(t, model.RoleUser, dto.Role)
		assert.Equal(t, created, dto.CreatedAt)
		mockRepo.AssertExpectations(t)
	})

	t.Run("missing user", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByID", mock.Anything, uint(99)).Return(nil, gorm.ErrRecordNotFound)

		svc := NewUserService(mockRepo)
		dto, err := svc.GetUser(context.Background(), 99)

		assert.ErrorIs(t, err, errors.ErrUserNotFound)
		assert.Nil(t, dto)
		mockRepo.AssertExpectations(t)
	})
}

func TestUserService_ListUsers(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockRepo.On("List", mock.Anything).Return([]model.User{
		{ID: 1, Username: "admin", Email: "admin@example.com", Role: model.RoleAdmin},
		{ID: 2, Username: "user", Email: "user@example.com", Role: model.RoleUser},
	}, nil)

	svc := NewUserService(mockRepo)
	dtos, err := svc.ListUsers(context.Background())

	assert.NoError(t, err)
	assert.Len(t, dtos, 2)
	assert.Equal(t, "admin", dtos[0].Username)
	assert.Equal(t, model.RoleAdmin, dtos[0].Role)
	mockRepo.AssertExpectations(t)
}
