package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin    = "admin"
	RoleEmpleado = "empleado"
)

// User representa un usuario del sistema.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"passwordHash"` // bcrypt, nunca en plano
	Role         string    `json:"role"`         // admin, empleado
	FullName     string    `json:"fullName"`
	Email        string    `json:"email"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Actor identidad del usuario que ejecuta una operación. El núcleo solo la lee.
type Actor struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	FullName string `json:"fullName"`
	Role     string `json:"role"`
}

// DisplayName nombre a registrar en los movimientos: FullName o, si falta, Username.
func (a Actor) DisplayName() string {
	if a.FullName != "" {
		return a.FullName
	}
	return a.Username
}

// IsAdmin indica si el actor tiene rol admin.
func (a Actor) IsAdmin() bool { return a.Role == RoleAdmin }

// Actor devuelve la identidad pública del usuario.
func (u *User) Actor() Actor {
	return Actor{ID: u.ID, Username: u.Username, FullName: u.FullName, Role: u.Role}
}
