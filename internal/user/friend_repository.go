package user

import (
	"context"
	"errors"

	"openbook/internal/dbmysql"

	"gorm.io/gorm"
)

type FriendRepository interface {
	// FirstOrCreateFriendRequest returns the existing row for the unordered
	// pair {requesterID, recipientID} in either direction, or inserts a new
	// pending row when none exists. The unique index on the normalized pair
	// columns rejects a concurrent insert for the same pair regardless of
	// direction; losing that race falls back to returning the winner's row.
	FirstOrCreateFriendRequest(ctx context.Context, requesterID, recipientID uint64) (*dbmysql.Friend, error)

	// GetPendingRequest resolves the pending row sent by requesterID to
	// recipientID. The lookup is directional on purpose: only the original
	// recipient may act on a request. Returns (nil, nil) when absent or
	// already resolved.
	GetPendingRequest(ctx context.Context, requesterID, recipientID uint64) (*dbmysql.Friend, error)

	// FindBetween is the symmetric lookup: the single row whose pair is
	// {userA, userB} in either orientation, or (nil, nil).
	FindBetween(ctx context.Context, userA, userB uint64) (*dbmysql.Friend, error)

	UpdateFriendRequest(ctx context.Context, friend *dbmysql.Friend) error
	DeleteFriendRequest(ctx context.Context, friend *dbmysql.Friend) error

	// ListConfirmedFriendIDs returns the ids of every user confirmed as a
	// friend of userID, whichever side sent the original request.
	ListConfirmedFriendIDs(ctx context.Context, userID uint64) ([]uint64, error)
}

type friendRepository struct {
	db *gorm.DB
}

func NewFriendRepository(db *gorm.DB) FriendRepository {
	return &friendRepository{db: db}
}

func (r *friendRepository) FirstOrCreateFriendRequest(ctx context.Context, requesterID, recipientID uint64) (*dbmysql.Friend, error) {
	existing, err := r.FindBetween(ctx, requesterID, recipientID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	created := dbmysql.Friend{UserID: requesterID, FriendID: recipientID}
	err = r.db.WithContext(ctx).Create(&created).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		// A concurrent send for the same pair won the insert, in this
		// direction or the reverse one. Return that row.
		return r.FindBetween(ctx, requesterID, recipientID)
	}
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *friendRepository) GetPendingRequest(ctx context.Context, requesterID, recipientID uint64) (*dbmysql.Friend, error) {
	var friend dbmysql.Friend
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND friend_id = ? AND confirmed_at IS NULL", requesterID, recipientID).
		First(&friend).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &friend, nil
}

func (r *friendRepository) FindBetween(ctx context.Context, userA, userB uint64) (*dbmysql.Friend, error) {
	var friend dbmysql.Friend
	err := r.db.WithContext(ctx).
		Where("(user_id = ? AND friend_id = ?) OR (user_id = ? AND friend_id = ?)",
			userA, userB, userB, userA).
		First(&friend).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &friend, nil
}

func (r *friendRepository) UpdateFriendRequest(ctx context.Context, friend *dbmysql.Friend) error {
	return r.db.WithContext(ctx).Save(friend).Error
}

func (r *friendRepository) DeleteFriendRequest(ctx context.Context, friend *dbmysql.Friend) error {
	return r.db.WithContext(ctx).Delete(friend).Error
}

func (r *friendRepository) ListConfirmedFriendIDs(ctx context.Context, userID uint64) ([]uint64, error) {
	var friends []dbmysql.Friend
	err := r.db.WithContext(ctx).
		Where("(user_id = ? OR friend_id = ?) AND confirmed_at IS NOT NULL", userID, userID).
		Find(&friends).Error
	if err != nil {
		return nil, err
	}

	ids := make([]uint64, 0, len(friends))
	for _, f := range friends {
		if f.UserID == userID {
			ids = append(ids, f.FriendID)
		} else {
			ids = append(ids, f.UserID)
		}
	}
	return ids, nil
}
