package entity

import (
	"time"

	"github.com/google/uuid"
)

type UserRole string

const (
	UserRoleMember UserRole = "MEMBER"
	UserRoleAdmin  UserRole = "ADMIN"
)

// User mirrors the auth provider's member record. Position is free
// text maintained by team admins ("Senior Editor", "Channel Manager").
type User struct {
	Id        uuid.UUID
	FullName  string
	Role      UserRole
	Position  string
	CreatedAt time.Time
	UpdatedAt *time.Time
}
