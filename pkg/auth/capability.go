package auth

import "github.com/asifrahman/medibook/internal/domain"

// Capability is the pre-validated authorization context handed to the
// core. Services ask it what the actor may do instead of branching on a
// role string.
type Capability struct {
	ActorID    int
	userType   string
	hospitalID int
}

func NewCapability(actorID int, userType string, hospitalID int) Capability {
	return Capability{
		ActorID:    actorID,
		userType:   userType,
		hospitalID: hospitalID,
	}
}

// CanActOnHospital reports whether the actor may approve, decline or
// otherwise administer bookings of the given hospital.
func (c Capability) CanActOnHospital(hospitalID int) bool {
	switch c.userType {
	case domain.AdminUserType:
		return true
	case domain.AuthorityUserType:
		return c.hospitalID == hospitalID
	}
	return false
}

func (c Capability) IsAdmin() bool {
	return c.userType == domain.AdminUserType
}
