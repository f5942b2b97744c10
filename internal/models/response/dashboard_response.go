package response

// MenuStatisticsResponse summarizes the stored menu configuration
type MenuStatisticsResponse struct {
	TotalMenus        int64 `json:"total_menus" example:"24"`
	GlobalMenus       int64 `json:"global_menus" example:"18"`
	UserSpecificMenus int64 `json:"user_specific_menus" example:"6"`
	LinkMenus         int64 `json:"link_menus" example:"20"`
	FilterMenus       int64 `json:"filter_menus" example:"4"`
	RootMenus         int64 `json:"root_menus" example:"8"`
	ChildMenus        int64 `json:"child_menus" example:"16"`
	Assignments       int64 `json:"assignments" example:"40"`
	Users             int64 `json:"users" example:"10"`
}

// MenuIssue is one structural problem found in stored menu rows
type MenuIssue struct {
	MenuID   string `json:"menu_id"`
	MenuName string `json:"menu_name"`
	Issue    string `json:"issue" example:"dangling_parent"`
	ParentID string `json:"parent_id,omitempty"`
}

// MenuAuditReport is the result of scanning stored menu rows
type MenuAuditReport struct {
	ScannedMenus int         `json:"scanned_menus"`
	Issues       []MenuIssue `json:"issues"`
}
