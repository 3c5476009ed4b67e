package tables

import (
	"time"

	"github.com/google/uuid"
)

// AuthResponse carries a user and fresh token pair. Tokens travel in
// HttpOnly cookies only, never in the response body.
type AuthResponse struct {
	User         *User  `json:"user"`
	AccessToken  string `json:"-"`
	RefreshToken string `json:"-"`
}

type User struct {
	tableName     struct{}  `bun:"table:users,alias:u"`
	Id            uuid.UUID `json:"id" bun:"id,pk,type:uuid,default:gen_random_uuid()"`
	Email         string    `json:"email" bun:"email,unique,notnull"`
	PasswordHash  string    `json:"-" bun:"password_hash,notnull"`
	FullName      string    `json:"full_name" bun:"full_name"`
	EmailVerified bool      `json:"email_verified" bun:"email_verified,notnull,default:false"`
	LastLogin     time.Time `json:"last_login" bun:"last_login,default:now()"`
	CreatedAt     time.Time `json:"created_at" bun:"created_at,notnull,default:now()"`
}

// UserRole is the roles association: a user is an admin exactly when a
// (user_id, "admin") row exists. Roles are never stored on the user row.
type UserRole struct {
	tableName struct{}  `bun:"table:user_roles,alias:ur"`
	Id        uuid.UUID `json:"id" bun:"id,pk,type:uuid,default:gen_random_uuid()"`
	UserId    uuid.UUID `json:"user_id" bun:"user_id,type:uuid,notnull"`
	Role      string    `json:"role" bun:"role,notnull"`
	CreatedAt time.Time `json:"created_at" bun:"created_at,notnull,default:now()"`
}

const RoleAdmin = "admin"
