package auth

import "jobboard_backend/internal/models"

// Identity is the authenticated caller of an operation.
type Identity struct {
	UserID string
	Role   models.UserRole
}

func (i Identity) IsAdmin() bool {
	return i.Role == models.UserRoleAdmin
}

// HasRole проверяет, входит ли роль субъекта в список
func (i Identity) HasRole(roles ...models.UserRole) bool {
	for _, r := range roles {
		if i.Role == r {
			return true
		}
	}
	return false
}

// CanManageJob reports whether the identity may update or delete job.
func (i Identity) CanManageJob(job *models.JobPosting) bool {
	return i.IsAdmin() || job.PostedBy == i.UserID
}

// CanUseCompany reports whether the identity may attach postings to company.
func (i Identity) CanUseCompany(company *models.Company) bool {
	return i.IsAdmin() || company.OwnerID == i.UserID
}

// UserIDOf returns the user id of an optional identity, or "" when anonymous.
func UserIDOf(i *Identity) string {
	if i == nil {
		return ""
	}
	return i.UserID
}
