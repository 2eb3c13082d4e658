// file: internals/constants/roles.go
package constants

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)
