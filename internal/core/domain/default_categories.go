package domain

// CategorySeed is the declarative description of a category created
// together with every new workspace.
type CategorySeed struct {
	Name     string
	Type     TransactionType
	Icon     string
	ColorHex string
}

// DefaultCategories is applied in the same database transaction that creates
// a workspace. The list is fixed; changing it only affects new workspaces.
var DefaultCategories = []CategorySeed{
	{Name: "Salary", Type: Income, Icon: "briefcase", ColorHex: "#22C55E"},
	{Name: "Freelance", Type: Income, Icon: "laptop", ColorHex: "#10B981"},
	{Name: "Investments", Type: Income, Icon: "trending-up", ColorHex: "#14B8A6"},
	{Name: "Other Income", Type: Income, Icon: "plus-circle", ColorHex: "#84CC16"},
	{Name: "Housing", Type: Expense, Icon: "home", ColorHex: "#EF4444"},
	{Name: "Food", Type: Expense, Icon: "utensils", ColorHex: "#F97316"},
	{Name: "Transportation", Type: Expense, Icon: "car", ColorHex: "#F59E0B"},
	{Name: "Health", Type: Expense, Icon: "heart-pulse", ColorHex: "#EC4899"},
	{Name: "Education", Type: Expense, Icon: "graduation-cap", ColorHex: "#8B5CF6"},
	{Name: "Leisure", Type: Expense, Icon: "gamepad-2", ColorHex: "#6366F1"},
	{Name: "Shopping", Type: Expense, Icon: "shopping-bag", ColorHex: "#3B82F6"},
	{Name: "Bills", Type: Expense, Icon: "receipt", ColorHex: "#0EA5E9"},
	{Name: "Other Expenses", Type: Expense, Icon: "more-horizontal", ColorHex: "#64748B"},
}
