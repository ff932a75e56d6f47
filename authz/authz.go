// Package authz holds the ownership decision used by every property mutation.
package authz

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/JusticeOpara/real-estate-hub/models"
)

// Principal is the authenticated actor extracted from a verified token.
type Principal struct {
	ID     primitive.ObjectID
	Email  string
	Role   string
	Active bool
}

func (p Principal) IsAdmin() bool {
	return p.Role == models.RoleAdmin
}

// CanMutate reports whether the principal may update or delete a resource
// owned by ownerID. Admins may mutate anything; everyone else only their own
// resources. A zero ownerID (missing or malformed owner data) denies
// non-admins.
func CanMutate(p Principal, ownerID primitive.ObjectID) bool {
	if p.IsAdmin() {
		return true
	}
	if ownerID.IsZero() {
		return false
	}
	return p.ID == ownerID
}
