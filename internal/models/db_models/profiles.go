package db_models

// Role profiles: one row per account, keyed by the account email.

type Student struct {
	BaseModel
	UserEmail  string `gorm:"uniqueIndex;size:100;not null"`
	Name       string `gorm:"size:100;not null"`
	RollNumber string `gorm:"uniqueIndex;size:20;not null"`
}

type ExternalParticipant struct {
	BaseModel
	UserEmail   string `gorm:"uniqueIndex;size:100;not null"`
	Name        string `gorm:"size:100;not null"`
	CollegeName string `gorm:"size:100;not null"`
}

type Organiser struct {
	BaseModel
	UserEmail string `gorm:"uniqueIndex;size:100;not null"`
	Name      string `gorm:"size:100;not null"`
}
