package constant

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

type contextKey string

const (
	UserIDKey contextKey = "user_id"
	RoleKey   contextKey = "role"

	ClientIPKey contextKey = "client_ip"
)
