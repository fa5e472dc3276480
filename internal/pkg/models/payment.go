package models

// WalletPaymentRequest represents a request to pay for a promotion with
// wallet points
type WalletPaymentRequest struct {
	UserID   string  `json:"user_id"`
	PollID   string  `json:"poll_id,omitempty"`
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

// CreateTransactionRequest represents a request to record a new transaction.
// When OriginalCurrency is empty the service derives the stored amount from
// the profile's preferred currency; callers that already normalized the
// amount (gateway initiation) set Original* themselves.
type CreateTransactionRequest struct {
	UserID           string            `json:"user_id"`
	PollID           string            `json:"poll_id,omitempty"`
	Amount           float64           `json:"amount"`
	Currency         string            `json:"currency"`
	OriginalAmount   float64           `json:"original_amount,omitempty"`
	OriginalCurrency string            `json:"original_currency,omitempty"`
	PaymentMethod    string            `json:"payment_method"`
	Status           TransactionStatus `json:"status,omitempty"`
	Metadata         Metadata          `json:"metadata,omitempty"`
}

// GatewayPaymentRequest represents a request to initiate an off-platform
// charge through an external gateway
type GatewayPaymentRequest struct {
	UserID   string  `json:"user_id"`
	PollID   string  `json:"poll_id,omitempty"`
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
	Email    string  `json:"email,omitempty"`
}

// StripeInitResult carries the client secret the embedded payment form needs
type StripeInitResult struct {
	ClientSecret  string `json:"client_secret"`
	TransactionID string `json:"transaction_id"`
}

// PaystackInitResult carries the hosted checkout URL the browser redirects to
type PaystackInitResult struct {
	AuthorizationURL string `json:"authorization_url"`
	TransactionID    string `json:"transaction_id"`
}

// PaymentIntentRequest is the payload for the create-payment-intent function
type PaymentIntentRequest struct {
	Amount        float64 `json:"amount"`
	Currency      string  `json:"currency"`
	TransactionID string  `json:"transaction_id"`
	UserID        string  `json:"user_id"`
}

// PaymentIntentResponse is the create-payment-intent function response
type PaymentIntentResponse struct {
	ClientSecret    string `json:"clientSecret"`
	PaymentIntentID string `json:"paymentIntentId"`
}

// PaystackInitRequest is the payload for the paystack-initiate-payment function
type PaystackInitRequest struct {
	Amount        float64 `json:"amount"`
	Currency      string  `json:"currency"`
	TransactionID string  `json:"transaction_id"`
	UserID        string  `json:"user_id"`
	Email         string  `json:"email,omitempty"`
}

// PaystackInitResponse is the paystack-initiate-payment function response
type PaystackInitResponse struct {
	AuthorizationURL string `json:"authorizationUrl"`
	Reference        string `json:"reference"`
}

// RetryPaymentOptions is everything the retry-payment dialog needs to render:
// the failed transaction, the selectable methods and current rates for
// displaying converted point costs
type RetryPaymentOptions struct {
	Transaction *Transaction    `json:"transaction"`
	Methods     []PaymentMethod `json:"methods"`
	Rates       []ExchangeRate  `json:"rates"`
}

// RetryPaymentRequest represents a user-initiated retry of a failed
// promotion payment with a chosen method
type RetryPaymentRequest struct {
	UserID        string `json:"user_id"`
	TransactionID string `json:"transaction_id"`
	MethodType    string `json:"method_type"`
	Email         string `json:"email,omitempty"`
}

// RetryPaymentResult carries exactly one continuation: a redirect URL, an
// embedded-form client secret, or neither when the payment already completed
type RetryPaymentResult struct {
	TransactionID    string `json:"transaction_id"`
	AuthorizationURL string `json:"authorization_url,omitempty"`
	ClientSecret     string `json:"client_secret,omitempty"`
	Completed        bool   `json:"completed"`
}
