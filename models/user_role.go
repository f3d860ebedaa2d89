package models

type UserRole string

const (
	UserRoleUser    UserRole = "user"
	UserRoleHR      UserRole = "hr"
	UserRoleManager UserRole = "manager"
	UserRoleAdmin   UserRole = "admin"
)

func (r UserRole) Valid() bool {
	switch r {
	case UserRoleUser, UserRoleHR, UserRoleManager, UserRoleAdmin:
		return true
	}
	return false
}
