package group

type Group struct {
	ID          uint   `gorm:"primaryKey"`
	Title       string
	Slug        string `gorm:"uniqueIndex"`
	Description string
}

func (Group) TableName() string {
	return "groups"
}
