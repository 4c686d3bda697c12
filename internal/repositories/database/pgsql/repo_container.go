package pgsql

import (
	portsrepo "github.com/SscSPs/workspace_finance_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	accountRepo := newPgxAccountRepository(dbPool)

	return portsrepo.RepositoryProvider{
		WorkspaceRepo:   newPgxWorkspaceRepository(dbPool),
		AccountRepo:     accountRepo,
		CreditCardRepo:  newPgxCreditCardRepository(dbPool),
		CategoryRepo:    newPgxCategoryRepository(dbPool),
		TransactionRepo: newPgxTransactionRepository(dbPool, accountRepo),
		GoalRepo:        newPgxGoalRepository(dbPool),
		UserRepo:        newPgxUserRepository(dbPool),
		ReportingRepo:   newReportingRepository(dbPool),
	}
}
