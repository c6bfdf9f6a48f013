package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/serroba/tinyurl/internal/shortener"
	"go.uber.org/zap"
)

// TinyHandler handles short code creation and resolution.
type TinyHandler struct {
	allocator *shortener.Allocator
	resolver  *shortener.Resolver
	baseURL   string
	logger    *zap.Logger
}

// NewTinyHandler creates a handler over the allocator and resolver.
func NewTinyHandler(
	allocator *shortener.Allocator,
	resolver *shortener.Resolver,
	baseURL string,
	logger *zap.Logger,
) *TinyHandler {
	return &TinyHandler{
		allocator: allocator,
		resolver:  resolver,
		baseURL:   baseURL,
		logger:    logger,
	}
}

// CreateTiny allocates a short code for the requested long URL. The
// long URL is stored as given; an empty value is accepted and resolves
// to not-found.
func (h *TinyHandler) CreateTiny(ctx context.Context, req *CreateTinyRequest) (*CreateTinyResponse, error) {
	mapping := &shortener.Mapping{
		LongURL:  req.Body.LongURL,
		UserName: req.Body.UserName,
	}

	code, err := h.allocator.Allocate(ctx, mapping)
	if err != nil {
		if errors.Is(err, shortener.ErrSpaceExhausted) {
			return nil, huma.Error503ServiceUnavailable("short code space exhausted")
		}

		h.logger.Error("allocation failed", zap.Error(err))

		return nil, huma.Error500InternalServerError("failed to allocate short code")
	}

	resp := &CreateTinyResponse{}
	resp.Body.Code = string(code)
	resp.Body.ShortURL = fmt.Sprintf("%s/%s", h.baseURL, code)

	return resp, nil
}

// Redirect resolves a short code to its original URL.
func (h *TinyHandler) Redirect(ctx context.Context, req *RedirectRequest) (*RedirectResponse, error) {
	target, err := h.resolver.Resolve(ctx, shortener.Code(req.Code))
	if err != nil {
		if errors.Is(err, shortener.ErrNotFound) {
			return nil, huma.Error404NotFound(req.Code + " not found")
		}

		h.logger.Error("resolution failed", zap.String("code", req.Code), zap.Error(err))

		return nil, huma.Error500InternalServerError("failed to resolve short code")
	}

	resp := &RedirectResponse{Status: http.StatusMovedPermanently}
	resp.Headers.Location = target

	return resp, nil
}
