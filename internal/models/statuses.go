package models

import "strings"

// UserType is the role a user signs up with.
type UserType string

const (
	UserTypeBuyer   UserType = "BUYER"
	UserTypeRealtor UserType = "REALTOR"
	UserTypeAdmin   UserType = "ADMIN"
)

// AllUserTypes lists every role, in declaration order.
var AllUserTypes = []UserType{UserTypeBuyer, UserTypeRealtor, UserTypeAdmin}

func (t UserType) IsValid() bool {
	switch t {
	case UserTypeBuyer, UserTypeRealtor, UserTypeAdmin:
		return true
	}
	return false
}

// ParseUserType accepts any letter case, e.g. "realtor".
func ParseUserType(s string) (UserType, bool) {
	t := UserType(strings.ToUpper(strings.TrimSpace(s)))
	return t, t.IsValid()
}

type PropertyType string

const (
	PropertyTypeResidential PropertyType = "RESIDENTIAL"
	PropertyTypeCondo       PropertyType = "CONDO"
)

func (p PropertyType) IsValid() bool {
	switch p {
	case PropertyTypeResidential, PropertyTypeCondo:
		return true
	}
	return false
}
