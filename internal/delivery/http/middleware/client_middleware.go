package middleware

import (
	"strings"

	deliverycontext "cartbridge/internal/delivery/context"
	domainerrors "cartbridge/internal/domain/errors"
	"cartbridge/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// ClientMiddleware identifies the storefront client behind every cart
// request and forwards its credentials.
type ClientMiddleware struct{}

// NewClientMiddleware is the constructor for ClientMiddleware.
func NewClientMiddleware() *ClientMiddleware {
	return &ClientMiddleware{}
}

// Identify requires the X-Client-Id header on every cart route and, when
// an Authorization bearer token is present, stashes it on the request
// context so the cart API client can forward it upstream.
func (m *ClientMiddleware) Identify(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		clientID := strings.TrimSpace(c.Request().Header.Get(deliverycontext.HeaderXClientID))
		if clientID == "" {
			return domainerrors.ErrMissingClientID
		}
		deliverycontext.SetClientID(c, clientID)

		authHeader := c.Request().Header.Get("Authorization")
		if token := strings.TrimPrefix(authHeader, "Bearer "); token != authHeader && token != "" {
			req := c.Request()
			c.SetRequest(req.WithContext(service.WithAuthToken(req.Context(), token)))
		}

		return next(c)
	}
}

// RequestID generates or extracts a request ID for tracing.
func (m *ClientMiddleware) RequestID(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := c.Request().Header.Get(deliverycontext.HeaderXRequestID)
		if requestID == "" {
			requestID = deliverycontext.GetRequestID(c)
		}
		deliverycontext.SetRequestID(c, requestID)
		c.Response().Header().Set(deliverycontext.HeaderXRequestID, requestID)

		req := c.Request()
		c.SetRequest(req.WithContext(deliverycontext.WithRequestID(req.Context(), requestID)))

		return next(c)
	}
}
