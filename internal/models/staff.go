package models

// StaffAccount is a provisioning request. Write-only on this side: built from
// the admin form, sent once, never stored.
type StaffAccount struct {
	FullName     string `json:"full_name"`
	Username     string `json:"username"`
	Password     string `json:"password"`
	DepartmentID string `json:"department_id"`
}
