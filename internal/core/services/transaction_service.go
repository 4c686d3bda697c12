package services

import (
	"context"
	"log/slog"
	"strings"

	"github.com/SscSPs/workspace_finance_app/internal/apperrors"
	"github.com/SscSPs/workspace_finance_app/internal/core/domain"
	portsrepo "github.com/SscSPs/workspace_finance_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/workspace_finance_app/internal/core/ports/services"
	"github.com/SscSPs/workspace_finance_app/internal/dto"
	"github.com/SscSPs/workspace_finance_app/internal/utils/accounting"
	"github.com/google/uuid"
)

type transactionService struct {
	BaseService
	txnRepo      portsrepo.TransactionRepositoryFacade
	accountRepo  portsrepo.AccountReader
	cardRepo     portsrepo.CreditCardReader
	categoryRepo portsrepo.CategoryReader
}

// NewTransactionService creates the transaction service. The referenced
// account, card and category are checked to belong to the caller's workspace.
func NewTransactionService(
	txnRepo portsrepo.TransactionRepositoryFacade,
	accountRepo portsrepo.AccountReader,
	cardRepo portsrepo.CreditCardReader,
	categoryRepo portsrepo.CategoryReader,
	opts ...ServiceOption,
) portssvc.TransactionSvcFacade {
	return &transactionService{
		BaseService:  newBaseService(opts),
		txnRepo:      txnRepo,
		accountRepo:  accountRepo,
		cardRepo:     cardRepo,
		categoryRepo: categoryRepo,
	}
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

func (s *transactionService) CreateTransaction(ctx context.Context, scope domain.WorkspaceScope, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	if req.Date.IsZero() || !req.Date.IsValid() {
		return nil, apperrors.NewValidationFailedError("date is required")
	}
	status := req.Status
	if status == "" {
		status = domain.StatusPaid
	}

	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		WorkspaceID:   scope.WorkspaceID,
		AccountID:     req.AccountID,
		CreditCardID:  req.CreditCardID,
		CategoryID:    req.CategoryID,
		Type:          req.Type,
		Amount:        req.Amount,
		Date:          req.Date,
		Status:        status,
		Description:   strings.TrimSpace(req.Description),
		AuditFields:   auditFields(scope.UserID, s.Now()),
	}
	if !nonEmpty(txn.CategoryID) {
		txn.CategoryID = nil
	}
	if err := accounting.ValidateTransaction(txn); err != nil {
		return nil, err
	}
	if err := s.checkReferences(ctx, scope, txn); err != nil {
		return nil, err
	}

	if err := s.txnRepo.CreateTransaction(ctx, txn); err != nil {
		s.LogFailure(ctx, err, "Failed to create transaction", slog.String("transaction_id", txn.TransactionID))
		return nil, err
	}

	s.LogInfo(ctx, "Transaction created",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("balance_delta", accounting.CreationDelta(txn).String()))
	return &txn, nil
}

// checkReferences makes sure every id in txn points into the caller's
// workspace and that the category matches the transaction type.
func (s *transactionService) checkReferences(ctx context.Context, scope domain.WorkspaceScope, txn domain.Transaction) error {
	if txn.AffectsAccount() {
		if _, err := s.accountRepo.FindAccountByID(ctx, scope.WorkspaceID, *txn.AccountID); err != nil {
			s.LogFailure(ctx, err, "Transaction account lookup failed", slog.String("account_id", *txn.AccountID))
			return err
		}
	}
	if nonEmpty(txn.CreditCardID) {
		if _, err := s.cardRepo.FindCreditCardByID(ctx, scope.WorkspaceID, *txn.CreditCardID); err != nil {
			s.LogFailure(ctx, err, "Transaction credit card lookup failed", slog.String("credit_card_id", *txn.CreditCardID))
			return err
		}
	}
	if nonEmpty(txn.CategoryID) {
		category, err := s.categoryRepo.FindCategoryByID(ctx, scope.WorkspaceID, *txn.CategoryID)
		if err != nil {
			s.LogFailure(ctx, err, "Transaction category lookup failed", slog.String("category_id", *txn.CategoryID))
			return err
		}
		if category.Type != txn.Type {
			return apperrors.NewValidationFailedError("category type must match the transaction type")
		}
	}
	return nil
}

func (s *transactionService) GetTransactionByID(ctx context.Context, scope domain.WorkspaceScope, transactionID string) (*domain.Transaction, error) {
	txn, err := s.txnRepo.FindTransactionByID(ctx, scope.WorkspaceID, transactionID)
	if err != nil {
		s.LogFailure(ctx, err, "Failed to find transaction", slog.String("transaction_id", transactionID))
		return nil, err
	}
	return txn, nil
}

func (s *transactionService) ListTransactions(ctx context.Context, scope domain.WorkspaceScope, filter domain.TransactionFilter) (*domain.TransactionPage, error) {
	page, err := s.txnRepo.ListTransactions(ctx, scope.WorkspaceID, filter)
	if err != nil {
		s.LogFailure(ctx, err, "Failed to list transactions")
		return nil, err
	}
	if page.Transactions == nil {
		page.Transactions = []domain.Transaction{}
	}
	return page, nil
}

func (s *transactionService) UpdateTransaction(ctx context.Context, scope domain.WorkspaceScope, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error) {
	if req.Status == nil && req.Description == nil {
		return nil, apperrors.NewValidationFailedError("status or description is required")
	}
	if req.Status != nil {
		if err := accounting.ValidateStatus(*req.Status); err != nil {
			return nil, err
		}
	}
	change := domain.TransactionChange{Status: req.Status}
	if req.Description != nil {
		description := strings.TrimSpace(*req.Description)
		change.Description = &description
	}

	txn, err := s.txnRepo.ChangeTransaction(ctx, scope.WorkspaceID, transactionID, change, scope.UserID, s.Now())
	if err != nil {
		s.LogFailure(ctx, err, "Failed to update transaction", slog.String("transaction_id", transactionID))
		return nil, err
	}

	s.LogInfo(ctx, "Transaction updated",
		slog.String("transaction_id", transactionID),
		slog.String("status", string(txn.Status)))
	return txn, nil
}

func (s *transactionService) DeleteTransaction(ctx context.Context, scope domain.WorkspaceScope, transactionID string) error {
	deleted, err := s.txnRepo.DeleteTransaction(ctx, scope.WorkspaceID, transactionID, scope.UserID, s.Now())
	if err != nil {
		s.LogFailure(ctx, err, "Failed to delete transaction", slog.String("transaction_id", transactionID))
		return err
	}
	s.LogInfo(ctx, "Transaction deleted",
		slog.String("transaction_id", transactionID),
		slog.String("balance_delta", accounting.DeletionDelta(*deleted).String()))
	return nil
}
