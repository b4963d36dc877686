// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	deliverycontext "cartbridge/internal/delivery/context"
	"cartbridge/internal/delivery/http/response"
	"cartbridge/internal/domain/entity"
	domainerrors "cartbridge/internal/domain/errors"
	"cartbridge/internal/domain/service"
	"cartbridge/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CartHandler holds dependencies for cart-related handlers.
type CartHandler struct {
	sessions usecase.CartSessionUsecase
	logger   *slog.Logger
}

// NewCartHandler is the constructor for CartHandler, injected by Fx.
func NewCartHandler(sessions usecase.CartSessionUsecase, logger *slog.Logger) *CartHandler {
	return &CartHandler{
		sessions: sessions,
		logger:   logger,
	}
}

// UpdateItemInput is the PATCH body for one cart row. Exactly one concern
// is updated per call: quantity, customizations, or notes.
type UpdateItemInput struct {
	Quantity       *int                   `json:"quantity,omitempty"`
	Customizations *entity.Customizations `json:"customizations,omitempty"`
	Notes          *string                `json:"notes,omitempty"`
}

// GetCart returns the uniform cart read model.
func (h *CartHandler) GetCart(c echo.Context) error {
	engine, err := h.engine(c)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, engine.View(), "Cart retrieved successfully")
}

// AddItem puts a product in the cart.
func (h *CartHandler) AddItem(c echo.Context) error {
	var input *usecase.AddItemInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid add item input")
	}
	if err := c.Validate(input); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	engine, err := h.engine(c)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := engine.AddItem(c.Request().Context(), input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, engine.View(), "Item added to cart")
}

// UpdateItem updates one row of the cart by index.
func (h *CartHandler) UpdateItem(c echo.Context) error {
	index, err := h.index(c)
	if err != nil {
		return err
	}

	var input *UpdateItemInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid update item input")
	}

	engine, err := h.engine(c)
	if err != nil {
		return errors.WithStack(err)
	}

	ctx := c.Request().Context()
	switch {
	case input.Quantity != nil:
		err = engine.UpdateQuantity(ctx, index, *input.Quantity)
	case input.Customizations != nil:
		err = engine.UpdateCustomizations(ctx, index, *input.Customizations)
	case input.Notes != nil:
		err = engine.UpdateNotes(ctx, index, *input.Notes)
	default:
		return response.BadRequest(c, "INVALID_INPUT", "One of quantity, customizations or notes is required")
	}
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, engine.View(), "Cart item updated")
}

// RemoveItem removes one row of the cart by index.
func (h *CartHandler) RemoveItem(c echo.Context) error {
	index, err := h.index(c)
	if err != nil {
		return err
	}

	engine, err := h.engine(c)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := engine.RemoveItem(c.Request().Context(), index); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, engine.View(), "Cart item removed")
}

// ClearCart empties the cart.
func (h *CartHandler) ClearCart(c echo.Context) error {
	engine, err := h.engine(c)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := engine.ClearCart(c.Request().Context()); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, engine.View(), "Cart cleared")
}

// RefreshCart reloads the backend mirror from the server.
func (h *CartHandler) RefreshCart(c echo.Context) error {
	engine, err := h.engine(c)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := engine.Refresh(c.Request().Context()); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, engine.View(), "Cart refreshed")
}

// Login is the auth signal integration point: the external auth component
// calls it after a successful login or registration, passing the fresh
// bearer token, and the engine merges the guest cart into the backend one.
func (h *CartHandler) Login(c echo.Context) error {
	ctx := c.Request().Context()
	if service.AuthTokenFromContext(ctx) == "" {
		return domainerrors.ErrMissingAuthToken
	}

	engine, err := h.engine(c)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := engine.SwitchToAuthMode(ctx); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, engine.View(), "Cart switched to authenticated mode")
}

// Logout reverts the engine to the persisted guest cart.
func (h *CartHandler) Logout(c echo.Context) error {
	engine, err := h.engine(c)
	if err != nil {
		return errors.WithStack(err)
	}

	engine.SwitchToGuestMode()

	return response.Success(c, http.StatusOK, engine.View(), "Cart switched to guest mode")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}

// engine resolves the calling client's cart engine.
func (h *CartHandler) engine(c echo.Context) (usecase.CartUsecase, error) {
	clientID := deliverycontext.GetClientID(c)
	if clientID == "" {
		return nil, domainerrors.ErrMissingClientID
	}

	return h.sessions.Session(c.Request().Context(), clientID)
}

// index parses the :index route parameter.
func (h *CartHandler) index(c echo.Context) (int, error) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		return 0, domainerrors.ErrValidationFailed.WithDetails("index must be an integer")
	}

	return index, nil
}
