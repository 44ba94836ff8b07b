package auth

import "realestate_backend/internal/models"

// RoleSet is the set of user types a route accepts. An empty set means the
// route is public.
type RoleSet map[models.UserType]struct{}

func NewRoleSet(roles ...models.UserType) RoleSet {
	set := make(RoleSet, len(roles))
	for _, r := range roles {
		set[r] = struct{}{}
	}
	return set
}

// IsPublic reports whether no role is required.
func (s RoleSet) IsPublic() bool {
	return len(s) == 0
}

// Allows reports whether role is a member of the set.
func (s RoleSet) Allows(role models.UserType) bool {
	_, ok := s[role]
	return ok
}
