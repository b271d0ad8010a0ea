package staff

type StaffResponse struct {
	ID       string `json:"id"`
	BranchID string `json:"branch_id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Position string `json:"position,omitempty"`
	IsActive bool   `json:"is_active"`
}
