// Package authz is the pure authorization policy: a decision over a
// principal and the owner of the target resource, with no storage access.
package authz

import "github.com/google/uuid"

// Principal is the authenticated identity attached to every request by the
// auth middleware. Services trust it completely.
type Principal struct {
	ID          uuid.UUID
	IsSuperuser bool
	IsActive    bool
}

// CanReadOrder reports whether p may read the order owned by ownerID.
func CanReadOrder(p Principal, ownerID uuid.UUID) bool {
	return p.IsSuperuser || p.ID == ownerID
}

// CanDeleteOrder mirrors CanReadOrder: owner or superuser.
func CanDeleteOrder(p Principal, ownerID uuid.UUID) bool {
	return p.IsSuperuser || p.ID == ownerID
}

// CanCreateOrder allows any active principal. The created order's owner is
// always forced to p.ID by the order service, never taken from the payload.
func CanCreateOrder(p Principal) bool {
	return p.IsActive
}

// CanMutateProduct covers create, patch and delete. Reads are public.
func CanMutateProduct(p Principal) bool {
	return p.IsSuperuser
}

// CanManageUsers covers admin user creation and deletion.
func CanManageUsers(p Principal) bool {
	return p.IsSuperuser
}
