package services

import (
	"context"

	"cloud.google.com/go/civil"
	"github.com/SscSPs/workspace_finance_app/internal/core/domain"
)

// DashboardSvc builds the aggregated monthly view.
type DashboardSvc interface {
	// GetDashboard aggregates the month containing month. A zero month means
	// the current one.
	GetDashboard(ctx context.Context, scope domain.WorkspaceScope, month civil.Date) (*domain.Dashboard, error)
}
