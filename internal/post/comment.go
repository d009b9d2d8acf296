package post

import (
	"time"
)

type Comment struct {
	ID      uint      `json:"id" gorm:"primaryKey"`
	PostID  uint      `json:"post_id" gorm:"index"`
	UserID  string    `json:"user_id"`
	Text    string    `json:"text"`
	Created time.Time `json:"created" gorm:"column:created"`
}

func (Comment) TableName() string {
	return "comments"
}
