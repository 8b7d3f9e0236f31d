package models

import "time"

const (
	RoleAdmin      = "admin"
	RoleCommercial = "commercial"
)

const (
	ProjectNasderm  = "nasderm"
	ProjectNasmedic = "nasmedic"
)

type User struct {
	ID           uint      `gorm:"primaryKey"`
	Username     string    `gorm:"uniqueIndex;not null"`
	PasswordHash string    `gorm:"not null" json:"-"`
	Role         string    `gorm:"not null;default:commercial"`
	Zone         string    `gorm:"not null;default:''"`
	Project      string    `gorm:"not null"`
	CreatedAt    time.Time `gorm:"not null"`
}

func (user User) IsAdmin() bool {
	return user.Role == RoleAdmin
}

func (user User) IsCommercial() bool {
	return user.Role == RoleCommercial
}

func IsKnownRole(role string) bool {
	return role == RoleAdmin || role == RoleCommercial
}

func IsKnownProject(project string) bool {
	return project == ProjectNasderm || project == ProjectNasmedic
}

// Projects lists the sales divisions in display order.
func Projects() []string {
	return []string{ProjectNasderm, ProjectNasmedic}
}
