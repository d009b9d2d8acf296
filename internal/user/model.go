package user

import "time"

type User struct {
	ID           string `gorm:"primaryKey"` // UUID assigned at signup
	CreatedAt    time.Time
	Username     string `gorm:"uniqueIndex"`
	Email        string `gorm:"uniqueIndex"`
	PasswordHash string `json:"-"`
	Firstname    string
	Lastname     string
	Bio          string
	AvatarURL    string
	IsAdmin      bool
}

// Public returns the fields safe to show to anyone
func (u *User) Public() map[string]interface{} {
	return map[string]interface{}{
		"id":         u.ID,
		"username":   u.Username,
		"firstname":  u.Firstname,
		"lastname":   u.Lastname,
		"bio":        u.Bio,
		"avatar_url": u.AvatarURL,
	}
}
