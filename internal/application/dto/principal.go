package dto

// Principal is the authenticated caller extracted from the bearer token.
type Principal struct {
	OwnerID string
	Admin   bool
}

// CanAccess reports whether the principal may see data of ownerID.
func (p Principal) CanAccess(ownerID string) bool {
	return p.Admin || p.OwnerID == ownerID
}
