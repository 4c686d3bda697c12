package services

import (
	"context"
	"log/slog"

	"cloud.google.com/go/civil"
	"github.com/SscSPs/workspace_finance_app/internal/apperrors"
	"github.com/SscSPs/workspace_finance_app/internal/core/domain"
	portsrepo "github.com/SscSPs/workspace_finance_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/workspace_finance_app/internal/core/ports/services"
	"github.com/SscSPs/workspace_finance_app/internal/dto"
	"github.com/SscSPs/workspace_finance_app/internal/utils/accounting"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const defaultCardColor = "#111827"

type creditCardService struct {
	BaseService
	cardRepo      portsrepo.CreditCardRepositoryFacade
	accountRepo   portsrepo.AccountReader
	reportingRepo portsrepo.ReportingRepository
}

// NewCreditCardService creates the credit card service. Invoices are computed
// for the billing cycle containing the clock's today.
func NewCreditCardService(
	cardRepo portsrepo.CreditCardRepositoryFacade,
	accountRepo portsrepo.AccountReader,
	reportingRepo portsrepo.ReportingRepository,
	opts ...ServiceOption,
) portssvc.CreditCardSvcFacade {
	return &creditCardService{
		BaseService:   newBaseService(opts),
		cardRepo:      cardRepo,
		accountRepo:   accountRepo,
		reportingRepo: reportingRepo,
	}
}

var _ portssvc.CreditCardSvcFacade = (*creditCardService)(nil)

func (s *creditCardService) CreateCreditCard(ctx context.Context, scope domain.WorkspaceScope, req dto.CreateCreditCardRequest) (*domain.CreditCardWithInvoice, error) {
	name, err := requireName("name", req.Name)
	if err != nil {
		return nil, err
	}
	if err := validateCardTerms(req.ClosingDay, req.Limit); err != nil {
		return nil, err
	}
	if nonEmpty(req.AccountID) {
		if _, err := s.accountRepo.FindAccountByID(ctx, scope.WorkspaceID, *req.AccountID); err != nil {
			s.LogFailure(ctx, err, "Paying account lookup failed", slog.String("account_id", *req.AccountID))
			return nil, err
		}
	}
	color := req.Color
	if color == "" {
		color = defaultCardColor
	}

	card := domain.CreditCard{
		CreditCardID: uuid.NewString(),
		WorkspaceID:  scope.WorkspaceID,
		AccountID:    req.AccountID,
		Name:         name,
		ClosingDay:   req.ClosingDay,
		Limit:        req.Limit,
		Color:        color,
		AuditFields:  auditFields(scope.UserID, s.Now()),
	}
	if err := s.cardRepo.SaveCreditCard(ctx, card); err != nil {
		s.LogFailure(ctx, err, "Failed to save credit card", slog.String("credit_card_id", card.CreditCardID))
		return nil, err
	}

	s.LogInfo(ctx, "Credit card created", slog.String("credit_card_id", card.CreditCardID))
	// A new card has no transactions, so its invoice is empty.
	cycle, err := accounting.ComputeBillingCycle(s.Today(), card.ClosingDay)
	if err != nil {
		return nil, err
	}
	return &domain.CreditCardWithInvoice{
		CreditCard: card,
		Invoice:    accounting.SummarizeInvoice(cycle, card.Limit, nil),
	}, nil
}

func (s *creditCardService) GetCreditCardByID(ctx context.Context, scope domain.WorkspaceScope, creditCardID string) (*domain.CreditCardWithInvoice, error) {
	card, err := s.cardRepo.FindCreditCardByID(ctx, scope.WorkspaceID, creditCardID)
	if err != nil {
		s.LogFailure(ctx, err, "Failed to find credit card", slog.String("credit_card_id", creditCardID))
		return nil, err
	}
	withInvoices, err := s.attachInvoices(ctx, scope, []domain.CreditCard{*card})
	if err != nil {
		return nil, err
	}
	return &withInvoices[0], nil
}

func (s *creditCardService) ListCreditCards(ctx context.Context, scope domain.WorkspaceScope) ([]domain.CreditCardWithInvoice, error) {
	cards, err := s.cardRepo.ListCreditCards(ctx, scope.WorkspaceID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list credit cards")
		return nil, err
	}
	return s.attachInvoices(ctx, scope, cards)
}

func (s *creditCardService) UpdateCreditCard(ctx context.Context, scope domain.WorkspaceScope, creditCardID string, req dto.UpdateCreditCardRequest) (*domain.CreditCardWithInvoice, error) {
	card, err := s.cardRepo.FindCreditCardByID(ctx, scope.WorkspaceID, creditCardID)
	if err != nil {
		s.LogFailure(ctx, err, "Failed to find credit card", slog.String("credit_card_id", creditCardID))
		return nil, err
	}

	if req.Name != nil {
		if card.Name, err = requireName("name", *req.Name); err != nil {
			return nil, err
		}
	}
	if req.ClosingDay != nil {
		card.ClosingDay = *req.ClosingDay
	}
	if req.Limit.Valid {
		card.Limit = req.Limit.Decimal
	}
	if req.Color != nil {
		card.Color = *req.Color
	}
	switch {
	case req.ClearAccount:
		card.AccountID = nil
	case nonEmpty(req.AccountID):
		if _, err := s.accountRepo.FindAccountByID(ctx, scope.WorkspaceID, *req.AccountID); err != nil {
			s.LogFailure(ctx, err, "Paying account lookup failed", slog.String("account_id", *req.AccountID))
			return nil, err
		}
		card.AccountID = req.AccountID
	}
	if err := validateCardTerms(card.ClosingDay, card.Limit); err != nil {
		return nil, err
	}
	card.Touch(scope.UserID, s.Now())

	if err := s.cardRepo.UpdateCreditCard(ctx, *card); err != nil {
		s.LogFailure(ctx, err, "Failed to update credit card", slog.String("credit_card_id", creditCardID))
		return nil, err
	}

	withInvoices, err := s.attachInvoices(ctx, scope, []domain.CreditCard{*card})
	if err != nil {
		return nil, err
	}
	return &withInvoices[0], nil
}

func (s *creditCardService) DeleteCreditCard(ctx context.Context, scope domain.WorkspaceScope, creditCardID string) error {
	if err := s.cardRepo.DeleteCreditCard(ctx, scope.WorkspaceID, creditCardID); err != nil {
		s.LogFailure(ctx, err, "Failed to delete credit card", slog.String("credit_card_id", creditCardID))
		return err
	}
	s.LogInfo(ctx, "Credit card deleted", slog.String("credit_card_id", creditCardID))
	return nil
}

// attachInvoices computes each card's current cycle and loads the expenses
// of all cards with one query spanning the union of their cycles.
func (s *creditCardService) attachInvoices(ctx context.Context, scope domain.WorkspaceScope, cards []domain.CreditCard) ([]domain.CreditCardWithInvoice, error) {
	result := make([]domain.CreditCardWithInvoice, len(cards))
	if len(cards) == 0 {
		return result, nil
	}

	today := s.Today()
	cycles := make([]domain.BillingCycle, len(cards))
	ids := make([]string, len(cards))
	var from, to civil.Date
	for i, card := range cards {
		cycle, err := accounting.ComputeBillingCycle(today, card.ClosingDay)
		if err != nil {
			s.LogError(ctx, err, "Stored credit card has an invalid closing day", slog.String("credit_card_id", card.CreditCardID))
			return nil, err
		}
		cycles[i] = cycle
		ids[i] = card.CreditCardID
		if i == 0 || cycle.Start.Before(from) {
			from = cycle.Start
		}
		if i == 0 || cycle.End.After(to) {
			to = cycle.End
		}
	}

	expenses, err := s.reportingRepo.ListCardExpensesInRange(ctx, scope.WorkspaceID, ids, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to load credit card expenses")
		return nil, err
	}
	byCard := make(map[string][]domain.Transaction, len(cards))
	for _, txn := range expenses {
		if txn.CreditCardID != nil {
			byCard[*txn.CreditCardID] = append(byCard[*txn.CreditCardID], txn)
		}
	}

	for i, card := range cards {
		result[i] = domain.CreditCardWithInvoice{
			CreditCard: card,
			Invoice:    accounting.SummarizeInvoice(cycles[i], card.Limit, byCard[card.CreditCardID]),
		}
	}
	return result, nil
}

func validateCardTerms(closingDay int, limit decimal.Decimal) error {
	if closingDay < 1 || closingDay > 31 {
		return apperrors.NewValidationFailedError("closingDay must be between 1 and 31")
	}
	if limit.IsNegative() {
		return apperrors.NewValidationFailedError("limit must not be negative")
	}
	return nil
}
