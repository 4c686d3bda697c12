package domain

import (
	"time"

	"cloud.google.com/go/civil"
)

// TransactionFilter narrows a transaction listing. Nil fields do not filter.
type TransactionFilter struct {
	From         *civil.Date
	To           *civil.Date
	Type         *TransactionType
	Status       *TransactionStatus
	AccountID    *string
	CreditCardID *string
	CategoryID   *string
	Limit        int
	// After resumes a listing ordered by (date desc, created_at desc, id desc)
	// just past the given row.
	After *TransactionCursor
}

// TransactionCursor identifies a row in the transaction listing order.
type TransactionCursor struct {
	Date          civil.Date
	CreatedAt     time.Time
	TransactionID string
}

// TransactionChange is the patch accepted for an existing transaction.
// Only status and description may change after creation.
type TransactionChange struct {
	Status      *TransactionStatus
	Description *string
}

// TransactionPage is one page of a transaction listing.
type TransactionPage struct {
	Transactions []Transaction
	Next         *TransactionCursor
}
