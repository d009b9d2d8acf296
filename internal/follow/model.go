package follow

import (
	"time"
)

type Follow struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UserID    string    `json:"user_id" gorm:"uniqueIndex:idx_follows_user_author"`   // the follower
	AuthorID  string    `json:"author_id" gorm:"uniqueIndex:idx_follows_user_author"` // the followed
}

func (Follow) TableName() string {
	return "follows"
}
