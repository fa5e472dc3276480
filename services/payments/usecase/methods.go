package usecase

import (
	"context"

	"github.com/pollvault/payments-service/internal/pkg/models"
)

// GetPaymentMethods returns all active payment methods ordered by name
func (uc *PaymentUC) GetPaymentMethods(ctx context.Context) ([]models.PaymentMethod, error) {
	return uc.paymentRepo.GetActivePaymentMethods(ctx)
}

// GetAvailablePaymentMethods returns the active methods enabled for a
// country, optionally narrowed to those supporting a currency. A method
// without currency configuration supports every currency.
func (uc *PaymentUC) GetAvailablePaymentMethods(ctx context.Context, countryCode, currency string) ([]models.PaymentMethod, error) {
	enabledTypes, err := uc.paymentRepo.GetCountryPaymentMethodTypes(ctx, countryCode)
	if err != nil {
		return nil, err
	}

	methods, err := uc.paymentRepo.GetActivePaymentMethods(ctx)
	if err != nil {
		return nil, err
	}

	var typeSet map[string]bool
	if enabledTypes != nil {
		typeSet = make(map[string]bool, len(enabledTypes))
		for _, t := range enabledTypes {
			typeSet[t] = true
		}
	}

	available := make([]models.PaymentMethod, 0, len(methods))
	for _, method := range methods {
		if typeSet != nil && !typeSet[string(method.Type)] {
			continue
		}
		if currency != "" && !method.Config.SupportsCurrency(currency) {
			continue
		}
		available = append(available, method)
	}

	return available, nil
}
