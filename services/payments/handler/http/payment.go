package http

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pollvault/payments-service/internal/pkg/logger"
	"github.com/pollvault/payments-service/internal/pkg/models"
	"github.com/pollvault/payments-service/internal/utils"
	"github.com/pollvault/payments-service/services/payments"
)

// PaymentHandler handles HTTP requests for payment operations
type PaymentHandler struct {
	paymentUC payments.PaymentUC
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(paymentUC payments.PaymentUC) *PaymentHandler {
	return &PaymentHandler{
		paymentUC: paymentUC,
	}
}

// userIDFromContext returns the authenticated user id set by the JWT
// middleware
func userIDFromContext(c echo.Context) string {
	if userID := c.Get("user_id"); userID != nil {
		return fmt.Sprintf("%v", userID)
	}
	return ""
}

// respondError maps usecase errors onto the response envelope
func respondError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, payments.ErrInsufficientPoints):
		return utils.PaymentRequiredResponse(c, err.Error())
	case errors.Is(err, payments.ErrTransactionNotFound),
		errors.Is(err, payments.ErrProfileNotFound):
		return utils.NotFoundResponse(c, err.Error())
	case errors.Is(err, payments.ErrRateNotFound),
		errors.Is(err, payments.ErrMethodNotAvailable),
		errors.Is(err, payments.ErrRetryNotAllowed):
		return utils.BadRequestResponse(c, err.Error())
	}
	return utils.InternalServerErrorResponse(c, err.Error())
}

// GetPaymentMethods handles listing all active payment methods
func (h *PaymentHandler) GetPaymentMethods(c echo.Context) error {
	methods, err := h.paymentUC.GetPaymentMethods(c.Request().Context())
	if err != nil {
		logger.Error("Failed to get payment methods", logger.Err(err))
		return respondError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Payment methods retrieved successfully", methods)
}

// GetAvailablePaymentMethods handles listing methods available for a country
// and currency
func (h *PaymentHandler) GetAvailablePaymentMethods(c echo.Context) error {
	countryCode := c.QueryParam("country")
	currency := c.QueryParam("currency")

	methods, err := h.paymentUC.GetAvailablePaymentMethods(c.Request().Context(), countryCode, currency)
	if err != nil {
		logger.Error("Failed to get available payment methods",
			logger.String("country", countryCode),
			logger.String("currency", currency),
			logger.Err(err))
		return respondError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Available payment methods retrieved successfully", methods)
}

// ProcessWalletPayment handles wallet point payments
func (h *PaymentHandler) ProcessWalletPayment(c echo.Context) error {
	var req models.WalletPaymentRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	req.UserID = userIDFromContext(c)

	if req.Amount <= 0 {
		return utils.BadRequestResponse(c, "Amount must be positive")
	}

	txn, err := h.paymentUC.ProcessWalletPayment(c.Request().Context(), &req)
	if err != nil {
		logger.Warn("Wallet payment failed",
			logger.String("user_id", req.UserID),
			logger.Float64("amount", req.Amount),
			logger.Err(err))
		return respondError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Wallet payment completed successfully", txn)
}

// CreateTransaction handles transaction creation requests
func (h *PaymentHandler) CreateTransaction(c echo.Context) error {
	var req models.CreateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	req.UserID = userIDFromContext(c)

	if req.Amount <= 0 {
		return utils.BadRequestResponse(c, "Amount must be positive")
	}

	txn, err := h.paymentUC.CreateTransaction(c.Request().Context(), &req)
	if err != nil {
		logger.Error("Failed to create transaction",
			logger.String("user_id", req.UserID),
			logger.Err(err))
		return respondError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Transaction created successfully", txn)
}

type updateStatusRequest struct {
	Status               models.TransactionStatus `json:"status"`
	GatewayTransactionID string                   `json:"gateway_transaction_id"`
}

// UpdateTransactionStatus handles transaction status updates
func (h *PaymentHandler) UpdateTransactionStatus(c echo.Context) error {
	transactionID := c.Param("id")
	if transactionID == "" {
		return utils.BadRequestResponse(c, "Invalid transaction ID")
	}

	var req updateStatusRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	switch req.Status {
	case models.TransactionStatusCompleted, models.TransactionStatusFailed, models.TransactionStatusRefunded:
	default:
		return utils.BadRequestResponse(c, "Invalid target status")
	}

	err := h.paymentUC.UpdateTransactionStatus(c.Request().Context(), transactionID, req.Status, req.GatewayTransactionID)
	if err != nil {
		logger.Error("Failed to update transaction status",
			logger.String("transaction_id", transactionID),
			logger.String("status", string(req.Status)),
			logger.Err(err))
		return respondError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Transaction status updated successfully", nil)
}

// InitializeStripePayment handles Stripe payment initiation
func (h *PaymentHandler) InitializeStripePayment(c echo.Context) error {
	var req models.GatewayPaymentRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	req.UserID = userIDFromContext(c)

	if req.Amount <= 0 {
		return utils.BadRequestResponse(c, "Amount must be positive")
	}

	result, err := h.paymentUC.InitializeStripePayment(c.Request().Context(), &req)
	if err != nil {
		logger.Error("Stripe payment initiation failed",
			logger.String("user_id", req.UserID),
			logger.Err(err))
		return respondError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Stripe payment initialized successfully", result)
}

// InitializePaystackPayment handles Paystack payment initiation
func (h *PaymentHandler) InitializePaystackPayment(c echo.Context) error {
	var req models.GatewayPaymentRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	req.UserID = userIDFromContext(c)

	if req.Amount <= 0 {
		return utils.BadRequestResponse(c, "Amount must be positive")
	}

	result, err := h.paymentUC.InitializePaystackPayment(c.Request().Context(), &req)
	if err != nil {
		logger.Error("Paystack payment initiation failed",
			logger.String("user_id", req.UserID),
			logger.Err(err))
		return respondError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Paystack payment initialized successfully", result)
}

// ConvertAmount handles currency conversion lookups
func (h *PaymentHandler) ConvertAmount(c echo.Context) error {
	amountStr := c.QueryParam("amount")
	fromCurrency := c.QueryParam("from")
	toCurrency := c.QueryParam("to")

	amount, err := strconv.ParseFloat(amountStr, 64)
	if err != nil || fromCurrency == "" || toCurrency == "" {
		return utils.BadRequestResponse(c, "amount, from and to are required")
	}

	converted, err := h.paymentUC.ConvertAmount(c.Request().Context(), amount, fromCurrency, toCurrency)
	if err != nil {
		return respondError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Amount converted successfully", map[string]interface{}{
		"amount":    converted,
		"currency":  toCurrency,
		"original":  amount,
		"from":      fromCurrency,
		"converted": true,
	})
}

// GetRetryPaymentOptions loads the data the retry-payment dialog renders
func (h *PaymentHandler) GetRetryPaymentOptions(c echo.Context) error {
	transactionID := c.Param("id")
	if transactionID == "" {
		return utils.BadRequestResponse(c, "Invalid transaction ID")
	}
	countryCode := c.QueryParam("country")

	options, err := h.paymentUC.GetRetryPaymentOptions(c.Request().Context(), userIDFromContext(c), transactionID, countryCode)
	if err != nil {
		logger.Warn("Failed to load retry payment options",
			logger.String("transaction_id", transactionID),
			logger.Err(err))
		return respondError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Retry payment options retrieved successfully", options)
}

// RetryPayment re-invokes payment initiation for a failed promotion payment
func (h *PaymentHandler) RetryPayment(c echo.Context) error {
	var req models.RetryPaymentRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	req.UserID = userIDFromContext(c)

	if req.TransactionID == "" || req.MethodType == "" {
		return utils.BadRequestResponse(c, "transaction_id and method_type are required")
	}

	result, err := h.paymentUC.RetryPromotionPayment(c.Request().Context(), &req)
	if err != nil {
		logger.Warn("Retry payment failed",
			logger.String("transaction_id", req.TransactionID),
			logger.String("method_type", req.MethodType),
			logger.Err(err))
		return respondError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Payment retry initiated successfully", result)
}
