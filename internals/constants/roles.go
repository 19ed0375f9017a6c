package constants

import "fmt"

// Role names (stored on users and carried in the JWT "role" claim)
const (
	RoleScholar = "scholar"
	RoleAdmin   = "admin"
)

// Role error message templates
const (
	ErrOnlyAdminsCanAccess   = "❌ Only admins may access %s."
	ErrOnlyScholarsCanAccess = "❌ Only scholars may access %s."
)

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorScholar(feature string) string {
	return fmt.Sprintf(ErrOnlyScholarsCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleScholar,
		RoleAdmin,
	}

	AdminOnly = []string{
		RoleAdmin,
	}

	ScholarOnly = []string{
		RoleScholar,
	}
)
