package services

// ServiceContainer holds instances of all the application services.
// Handlers receive it whole and pick the facades they need.
type ServiceContainer struct {
	Workspace   WorkspaceSvcFacade
	Account     AccountSvcFacade
	CreditCard  CreditCardSvcFacade
	Category    CategorySvcFacade
	Transaction TransactionSvcFacade
	Goal        GoalSvcFacade
	Dashboard   DashboardSvc
	Onboarding  OnboardingSvc
	User        UserSvcFacade
	Auth        AuthSvcFacade
}
