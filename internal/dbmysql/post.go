package dbmysql

import (
	"time"
)

type Post struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID      uint64    `gorm:"column:user_id;not null;index" json:"user_id"`
	Body        string    `gorm:"column:body;type:text" json:"body"`
	ImageID     *string   `gorm:"column:image_id;size:24" json:"image_id,omitempty"` // GridFS ObjectID hex
	ImageWidth  *int      `gorm:"column:image_width" json:"image_width,omitempty"`
	ImageHeight *int      `gorm:"column:image_height" json:"image_height,omitempty"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	User  *User  `gorm:"-" json:"user,omitempty"`
	Likes []Like `gorm:"-" json:"likes,omitempty"`
}
