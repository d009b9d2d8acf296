package post

import (
	"time"

	"github.com/marke1-web/hw05-final/internal/group"
	"github.com/marke1-web/hw05-final/internal/user"
)

type Post struct {
	ID       uint `gorm:"primaryKey"`
	Text     string
	PubDate  time.Time `gorm:"index"` // set once at creation, never updated
	UserID   string
	User     user.User `gorm:"foreignKey:UserID"`
	GroupID  *uint     // nullable, cleared when the group is deleted
	Group    *group.Group `gorm:"foreignKey:GroupID"`
	ImageURL string
}

func (Post) TableName() string {
	return "posts"
}
