package services

import (
	"context"
	"log/slog"

	"cloud.google.com/go/civil"
	"github.com/SscSPs/workspace_finance_app/internal/core/domain"
	portsrepo "github.com/SscSPs/workspace_finance_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/workspace_finance_app/internal/core/ports/services"
	"github.com/SscSPs/workspace_finance_app/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

const recentTransactionCount = 5

type dashboardService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepository
	accountRepo   portsrepo.AccountReader
	categoryRepo  portsrepo.CategoryReader
	goalRepo      portsrepo.GoalReader
	txnRepo       portsrepo.TransactionReader
	creditCards   portssvc.CreditCardReaderSvc
}

// NewDashboardService creates the dashboard service. Card invoices come from
// the credit card service so both always agree.
func NewDashboardService(repos portsrepo.RepositoryProvider, creditCards portssvc.CreditCardReaderSvc, opts ...ServiceOption) portssvc.DashboardSvc {
	return &dashboardService{
		BaseService:   newBaseService(opts),
		reportingRepo: repos.ReportingRepo,
		accountRepo:   repos.AccountRepo,
		categoryRepo:  repos.CategoryRepo,
		goalRepo:      repos.GoalRepo,
		txnRepo:       repos.TransactionRepo,
		creditCards:   creditCards,
	}
}

var _ portssvc.DashboardSvc = (*dashboardService)(nil)

func (s *dashboardService) GetDashboard(ctx context.Context, scope domain.WorkspaceScope, month civil.Date) (*domain.Dashboard, error) {
	if month.IsZero() {
		month = s.Today()
	}
	start, end := accounting.MonthWindow(month)
	prevStart, prevEnd := accounting.MonthWindow(accounting.PreviousMonth(month))

	var (
		current, previous []domain.Transaction
		categories        []domain.Category
		accounts          []domain.Account
		totalBalance      decimal.Decimal
		goals             []domain.Goal
		cards             []domain.CreditCardWithInvoice
		recent            *domain.TransactionPage
	)
	active := domain.GoalActive

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		current, err = s.reportingRepo.ListPaidTransactionsInRange(gctx, scope.WorkspaceID, start, end)
		return err
	})
	g.Go(func() (err error) {
		previous, err = s.reportingRepo.ListPaidTransactionsInRange(gctx, scope.WorkspaceID, prevStart, prevEnd)
		return err
	})
	g.Go(func() (err error) {
		categories, err = s.categoryRepo.ListCategories(gctx, scope.WorkspaceID, nil)
		return err
	})
	g.Go(func() (err error) {
		accounts, err = s.accountRepo.ListAccounts(gctx, scope.WorkspaceID)
		return err
	})
	g.Go(func() (err error) {
		totalBalance, err = s.reportingRepo.SumAccountBalances(gctx, scope.WorkspaceID)
		return err
	})
	g.Go(func() (err error) {
		goals, err = s.goalRepo.ListGoals(gctx, scope.WorkspaceID, &active)
		return err
	})
	g.Go(func() (err error) {
		cards, err = s.creditCards.ListCreditCards(gctx, scope)
		return err
	})
	g.Go(func() (err error) {
		recent, err = s.txnRepo.ListTransactions(gctx, scope.WorkspaceID, domain.TransactionFilter{Limit: recentTransactionCount})
		return err
	})
	if err := g.Wait(); err != nil {
		s.LogFailure(ctx, err, "Failed to load dashboard data", slog.String("month", start.String()))
		return nil, err
	}

	summary := accounting.SummarizeMonth(start, end, current, categories)
	last := accounting.SummarizeMonth(prevStart, prevEnd, previous, nil)

	dashboard := &domain.Dashboard{
		MonthSummary:       summary,
		TotalBalance:       totalBalance,
		LastMonthExpense:   last.MonthExpense,
		ExpenseVariation:   accounting.ExpenseVariation(summary.MonthExpense, last.MonthExpense),
		Accounts:           nonNil(accounts),
		CreditCards:        nonNil(cards),
		ActiveGoals:        nonNil(goals),
		RecentTransactions: []domain.Transaction{},
	}
	if recent != nil && recent.Transactions != nil {
		dashboard.RecentTransactions = recent.Transactions
	}

	s.LogDebug(ctx, "Dashboard built",
		slog.String("month", start.String()),
		slog.Int("transactions", len(current)))
	return dashboard, nil
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
