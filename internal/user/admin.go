package user

import (
	"errors"

	"gorm.io/gorm"

	"github.com/marke1-web/hw05-final/internal/database"
)

// IsAdmin checks whether a user may manage groups
func IsAdmin(userID string) (bool, error) {
	var isAdmin bool
	if err := database.DB.Model(&User{}).Select("is_admin").Where("id = ?", userID).Scan(&isAdmin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return isAdmin, nil
}
