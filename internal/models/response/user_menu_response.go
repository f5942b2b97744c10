package response

// UserMenuAssignmentResponse lists a user's assigned menu ids and every menu they could be given
type UserMenuAssignmentResponse struct {
	AssignedMenuIDs []string       `json:"assignedMenuIds"`
	AllMenus        []MenuResponse `json:"allMenus"`
}

// AssignGlobalResponse reports the outcome of a bulk global assignment
type AssignGlobalResponse struct {
	UserCount       int `json:"userCount" example:"12"`
	MenuCount       int `json:"menuCount" example:"2"`
	AssignmentCount int `json:"assignmentCount" example:"24"`
}

// AssignableUserResponse is a user shown in the assignment picker
type AssignableUserResponse struct {
	ID    string `json:"id" example:"65a1f0c2a1b2c3d4e5f60719"`
	Name  string `json:"name" example:"Jane"`
	Email string `json:"email" example:"jane@example.com"`
	Role  string `json:"role" example:"manager"`
}
