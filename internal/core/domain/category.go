package domain

// Category groups transactions. Default categories are seeded with the
// workspace and cannot be deleted.
type Category struct {
	CategoryID  string          `json:"categoryID"`
	WorkspaceID string          `json:"workspaceID"`
	Name        string          `json:"name"`
	Type        TransactionType `json:"type"`
	Icon        string          `json:"icon"`
	ColorHex    string          `json:"colorHex"`
	IsDefault   bool            `json:"isDefault"`
	AuditFields
}
