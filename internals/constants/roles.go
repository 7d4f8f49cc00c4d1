package constants

// Role petugas aplikasi bansos.
const (
	RoleAdmin   = "admin"
	RolePetugas = "petugas"
)

// AllowedRoles dipakai validasi register & middleware role.
var AllowedRoles = []string{RoleAdmin, RolePetugas}
