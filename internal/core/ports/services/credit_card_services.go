package services

import (
	"context"

	"github.com/SscSPs/workspace_finance_app/internal/core/domain"
	"github.com/SscSPs/workspace_finance_app/internal/dto"
)

// CreditCardReaderSvc returns cards together with the invoice of the billing
// cycle that contains today.
type CreditCardReaderSvc interface {
	GetCreditCardByID(ctx context.Context, scope domain.WorkspaceScope, creditCardID string) (*domain.CreditCardWithInvoice, error)
	ListCreditCards(ctx context.Context, scope domain.WorkspaceScope) ([]domain.CreditCardWithInvoice, error)
}

// CreditCardWriterSvc defines write operations for credit card data
type CreditCardWriterSvc interface {
	CreateCreditCard(ctx context.Context, scope domain.WorkspaceScope, req dto.CreateCreditCardRequest) (*domain.CreditCardWithInvoice, error)
	UpdateCreditCard(ctx context.Context, scope domain.WorkspaceScope, creditCardID string, req dto.UpdateCreditCardRequest) (*domain.CreditCardWithInvoice, error)
	DeleteCreditCard(ctx context.Context, scope domain.WorkspaceScope, creditCardID string) error
}

// CreditCardSvcFacade combines all credit-card-related service interfaces
type CreditCardSvcFacade interface {
	CreditCardReaderSvc
	CreditCardWriterSvc
}
