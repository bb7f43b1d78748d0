package models

// UserModel is the persistence model for user accounts.
// Timestamps are stored as unix milliseconds.
type UserModel struct {
	ID           uint   `gorm:"primarykey"`
	Name         string `gorm:"not null;size:100"`
	Email        string `gorm:"uniqueIndex;not null;size:255"`
	Sector       string `gorm:"not null;size:50;index:idx_users_sector"`
	Role         string `gorm:"not null;size:20"`
	Active       bool   `gorm:"not null;default:true"`
	PasswordHash string `gorm:"not null;size:255"`
	CreatedAt    int64  `gorm:"not null"`
}

func (UserModel) TableName() string {
	return "users"
}
