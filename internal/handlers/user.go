package handlers

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"github.com/serroba/tinyurl/internal/user"
	"go.uber.org/zap"
)

// UserHandler handles user creation and click history queries.
type UserHandler struct {
	store  user.Store
	logger *zap.Logger
}

// NewUserHandler creates a handler over the user store.
func NewUserHandler(store user.Store, logger *zap.Logger) *UserHandler {
	return &UserHandler{store: store, logger: logger}
}

// CreateUser creates a user with zeroed counters.
func (h *UserHandler) CreateUser(ctx context.Context, req *CreateUserRequest) (*UserResponse, error) {
	u := &user.User{Name: req.Name}

	if err := h.store.Insert(ctx, u); err != nil {
		if errors.Is(err, user.ErrAlreadyExists) {
			return nil, huma.Error409Conflict("user " + req.Name + " already exists")
		}

		h.logger.Error("user insert failed", zap.String("name", req.Name), zap.Error(err))

		return nil, huma.Error500InternalServerError("failed to create user")
	}

	return &UserResponse{Body: *u}, nil
}

// GetUser returns a user with its click counters.
func (h *UserHandler) GetUser(ctx context.Context, req *GetUserRequest) (*UserResponse, error) {
	u, err := h.store.FindByName(ctx, req.Name)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil, huma.Error404NotFound("user " + req.Name + " not found")
		}

		h.logger.Error("user lookup failed", zap.String("name", req.Name), zap.Error(err))

		return nil, huma.Error500InternalServerError("failed to fetch user")
	}

	return &UserResponse{Body: *u}, nil
}

// ListClicks returns a user's click history in store-native order.
func (h *UserHandler) ListClicks(ctx context.Context, req *ListClicksRequest) (*ListClicksResponse, error) {
	cursor, err := h.store.Clicks(ctx, req.Name)
	if err != nil {
		h.logger.Error("click query failed", zap.String("name", req.Name), zap.Error(err))

		return nil, huma.Error500InternalServerError("failed to list clicks")
	}
	defer func() { _ = cursor.Close(ctx) }()

	resp := &ListClicksResponse{}
	resp.Body.Clicks = []user.ClickView{}

	for cursor.Next(ctx) {
		resp.Body.Clicks = append(resp.Body.Clicks, cursor.Click().View())
	}

	if err := cursor.Err(); err != nil {
		h.logger.Error("click cursor failed", zap.String("name", req.Name), zap.Error(err))

		return nil, huma.Error500InternalServerError("failed to list clicks")
	}

	return resp, nil
}
