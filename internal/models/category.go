package models

// Category is the row shape of the categories table.
type Category struct {
	CategoryID   string `db:"category_id"`
	WorkspaceID  string `db:"workspace_id"`
	Name         string `db:"name"`
	CategoryType string `db:"category_type"`
	Icon         string `db:"icon"`
	ColorHex     string `db:"color_hex"`
	IsDefault    bool   `db:"is_default"`
	AuditFields
}
