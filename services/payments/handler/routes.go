package handler

import (
	"github.com/golang-jwt/jwt/v4"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/pollvault/payments-service/internal/pkg/models"
	httpHandler "github.com/pollvault/payments-service/services/payments/handler/http"
)

// Handler coordinates the HTTP handlers for the payments service
type Handler struct {
	paymentHandler *httpHandler.PaymentHandler
	cfg            *models.Config
}

// NewHandler creates and initializes all handlers
func NewHandler(paymentHandler *httpHandler.PaymentHandler, cfg *models.Config) *Handler {
	return &Handler{
		paymentHandler: paymentHandler,
		cfg:            cfg,
	}
}

// GetJWTMiddleware returns the configured JWT middleware for HTTP requests
func (h *Handler) GetJWTMiddleware() echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		SigningKey: []byte(h.cfg.JWT.Secret),
		SuccessHandler: func(c echo.Context) {
			// Parse the token directly from Authorization header to avoid type conflicts
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader != "" && len(authHeader) > 7 && authHeader[:7] == "Bearer " {
				tokenString := authHeader[7:]
				token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
					return []byte(h.cfg.JWT.Secret), nil
				})
				if err == nil && token.Valid {
					if claims, ok := token.Claims.(jwt.MapClaims); ok {
						if userID, exists := claims["user_id"]; exists {
							c.Set("user_id", userID)
						}
					}
				}
			}
		},
	})
}

// RegisterRoutes registers all payment routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	// All payment routes require an authenticated user
	paymentGroup := e.Group("/payments", h.GetJWTMiddleware())

	// Payment method lookup
	paymentGroup.GET("/methods", h.paymentHandler.GetPaymentMethods)
	paymentGroup.GET("/methods/available", h.paymentHandler.GetAvailablePaymentMethods)

	// Currency conversion
	paymentGroup.GET("/convert", h.paymentHandler.ConvertAmount)

	// Wallet payments
	paymentGroup.POST("/wallet", h.paymentHandler.ProcessWalletPayment)

	// Transactions
	paymentGroup.POST("/transactions", h.paymentHandler.CreateTransaction)
	paymentGroup.PATCH("/transactions/:id/status", h.paymentHandler.UpdateTransactionStatus)

	// Gateway initiation
	paymentGroup.POST("/stripe/initialize", h.paymentHandler.InitializeStripePayment)
	paymentGroup.POST("/paystack/initialize", h.paymentHandler.InitializePaystackPayment)

	// Retry payment flow
	paymentGroup.GET("/retry/:id/options", h.paymentHandler.GetRetryPaymentOptions)
	paymentGroup.POST("/retry", h.paymentHandler.RetryPayment)
}
