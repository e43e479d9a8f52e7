package dbmysql

import "time"

type Like struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uint64    `gorm:"column:user_id;not null;index:idx_user_post,unique" json:"user_id"`
	PostID    uint64    `gorm:"column:post_id;not null;index:idx_user_post,unique" json:"post_id"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}
