package follow

import (
	"errors"

	"gorm.io/gorm"

	"github.com/marke1-web/hw05-final/internal/database"
)

// IsFollowing reports whether an edge follower -> author exists
func IsFollowing(followerID, authorID string) (bool, error) {
	var f Follow
	err := database.DB.
		Where("user_id = ? AND author_id = ?", followerID, authorID).
		First(&f).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}

	return true, nil
}
