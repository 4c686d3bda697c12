package repositories

import (
	"context"

	"github.com/SscSPs/workspace_finance_app/internal/core/domain"
)

// CreditCardReader defines read operations for credit card data
type CreditCardReader interface {
	FindCreditCardByID(ctx context.Context, workspaceID, creditCardID string) (*domain.CreditCard, error)
	ListCreditCards(ctx context.Context, workspaceID string) ([]domain.CreditCard, error)
}

// CreditCardWriter defines write operations for credit card data
type CreditCardWriter interface {
	SaveCreditCard(ctx context.Context, card domain.CreditCard) error
	UpdateCreditCard(ctx context.Context, card domain.CreditCard) error
	// DeleteCreditCard removes the card; its transactions keep existing unlinked.
	DeleteCreditCard(ctx context.Context, workspaceID, creditCardID string) error
}

// CreditCardRepositoryFacade combines all credit-card-related repository interfaces
type CreditCardRepositoryFacade interface {
	CreditCardReader
	CreditCardWriter
}
