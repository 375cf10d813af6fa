package db_models

// Role is the closed set of account roles. Exactly one per account,
// fixed at registration.
type Role string

const (
	RoleStudent   Role = "STUDENT"
	RoleExternal  Role = "EXTERNAL"
	RoleOrganizer Role = "ORGANIZER"
	RoleAdmin     Role = "ADMIN"
)

func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleExternal, RoleOrganizer, RoleAdmin:
		return true
	}
	return false
}

type User struct {
	BaseModel
	Email        string `gorm:"uniqueIndex;size:100;not null"`
	PasswordHash string `gorm:"size:255;not null"`
	Role         Role   `gorm:"size:20;not null"`
}
