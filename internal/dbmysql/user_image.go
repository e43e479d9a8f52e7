package dbmysql

import "time"

type UserImage struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uint64    `gorm:"column:user_id;not null;index" json:"user_id"`
	ImageID   string    `gorm:"column:image_id;size:24;not null" json:"image_id"` // GridFS ObjectID hex
	Width     int       `gorm:"column:width" json:"width"`
	Height    int       `gorm:"column:height" json:"height"`
	Location  string    `gorm:"column:location;type:enum('profile','cover');not null" json:"location"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}
