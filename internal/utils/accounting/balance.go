package accounting

import (
	"fmt"

	"github.com/SscSPs/workspace_finance_app/internal/apperrors"
	"github.com/SscSPs/workspace_finance_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SignedAmount applies the sign implied by the transaction type:
// income adds to a balance, expense subtracts from it.
func SignedAmount(txnType domain.TransactionType, amount decimal.Decimal) decimal.Decimal {
	if txnType == domain.Expense {
		return amount.Neg()
	}
	return amount
}

// CreationDelta is the balance change caused by inserting txn.
// Only a paid transaction linked to an account moves a balance.
func CreationDelta(txn domain.Transaction) decimal.Decimal {
	if !txn.AffectsAccount() || !txn.IsPaid() {
		return decimal.Zero
	}
	return SignedAmount(txn.Type, txn.Amount)
}

// DeletionDelta is the balance change that undoes txn when it is deleted.
// Pending and card-only transactions never touched a balance, so they undo nothing.
func DeletionDelta(txn domain.Transaction) decimal.Decimal {
	return CreationDelta(txn).Neg()
}

// StatusTransitionDelta is the balance change of moving txn to newStatus.
//
// Settlement is a two-state machine {pending, paid} with symmetric edges:
// pending->paid applies the signed amount and paid->pending removes it.
func StatusTransitionDelta(txn domain.Transaction, newStatus domain.TransactionStatus) (decimal.Decimal, error) {
	if err := ValidateStatus(newStatus); err != nil {
		return decimal.Zero, err
	}
	if !txn.AffectsAccount() || txn.Status == newStatus {
		return decimal.Zero, nil
	}
	signed := SignedAmount(txn.Type, txn.Amount)
	if newStatus == domain.StatusPaid {
		return signed, nil
	}
	return signed.Neg(), nil
}

// ValidateStatus rejects anything outside {paid, pending}.
func ValidateStatus(status domain.TransactionStatus) error {
	switch status {
	case domain.StatusPaid, domain.StatusPending:
		return nil
	default:
		return apperrors.NewValidationFailedError(fmt.Sprintf("status must be one of paid, pending (got %q)", status))
	}
}

// ValidateTransaction checks the invariants a transaction must hold before it
// is written: a non-negative amount and exactly one funding source.
func ValidateTransaction(txn domain.Transaction) error {
	if txn.Amount.IsNegative() {
		return apperrors.NewValidationFailedError("amount must not be negative")
	}
	if txn.Type != domain.Income && txn.Type != domain.Expense {
		return apperrors.NewValidationFailedError("type must be one of income, expense")
	}
	if err := ValidateStatus(txn.Status); err != nil {
		return err
	}
	hasAccount := txn.AffectsAccount()
	hasCard := txn.CreditCardID != nil && *txn.CreditCardID != ""
	if hasAccount == hasCard {
		return apperrors.NewValidationFailedError("a transaction must reference exactly one of accountId or creditCardId")
	}
	return nil
}
