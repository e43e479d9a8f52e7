package dbmysql

import (
	"time"

	"gorm.io/gorm"
)

// Friend is a directed friend request that becomes a bidirectional
// relationship once confirmed. UserID is the requester, FriendID the
// recipient; the roles are fixed at creation. ConfirmedAt and Status are
// always set together: both null while pending, both populated once accepted.
// PairLow/PairHigh hold the pair in normalized order so the unique index
// treats (A,B) and (B,A) as the same pair; the database rejects a second row
// for the pair no matter which side inserts it.
type Friend struct {
	ID          uint64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID      uint64     `gorm:"column:user_id;not null;index:idx_user_friend" json:"user_id"`
	FriendID    uint64     `gorm:"column:friend_id;not null;index:idx_user_friend" json:"friend_id"`
	PairLow     uint64     `gorm:"column:pair_low;not null;uniqueIndex:idx_friend_pair,priority:1" json:"-"`
	PairHigh    uint64     `gorm:"column:pair_high;not null;uniqueIndex:idx_friend_pair,priority:2" json:"-"`
	ConfirmedAt *time.Time `gorm:"column:confirmed_at" json:"confirmed_at"`
	Status      *int       `gorm:"column:status" json:"status"`
	CreatedAt   time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	User       *User `gorm:"-" json:"user,omitempty"`
	FriendUser *User `gorm:"-" json:"friend_user,omitempty"`
}

// BeforeCreate fills the normalized pair columns from the directional ones.
func (f *Friend) BeforeCreate(tx *gorm.DB) error {
	f.PairLow, f.PairHigh = f.UserID, f.FriendID
	if f.PairLow > f.PairHigh {
		f.PairLow, f.PairHigh = f.PairHigh, f.PairLow
	}
	return nil
}

// Involves reports whether the row is the relationship between a and b,
// regardless of who sent the original request.
func (f *Friend) Involves(a, b uint64) bool {
	return (f.UserID == a && f.FriendID == b) || (f.UserID == b && f.FriendID == a)
}

func (f *Friend) IsPending() bool {
	return f.ConfirmedAt == nil && f.Status == nil
}

func (f *Friend) IsConfirmed() bool {
	return f.ConfirmedAt != nil && f.Status != nil
}

// Confirm moves the row to the accepted state, setting timestamp and status
// in one step so no partial state is ever observable.
func (f *Friend) Confirm(status int, at time.Time) {
	f.ConfirmedAt = &at
	f.Status = &status
}
