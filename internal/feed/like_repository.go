package feed

import (
	"context"

	"openbook/internal/dbmysql"

	"gorm.io/gorm"
)

type LikeRepository interface {
	// FirstOrCreateLike records that userID likes postID. Liking the same
	// post twice returns the existing row unchanged.
	FirstOrCreateLike(ctx context.Context, userID, postID uint64) (*dbmysql.Like, error)
	ListLikesByPost(ctx context.Context, postID uint64) ([]dbmysql.Like, error)
	ListLikesByPosts(ctx context.Context, postIDs []uint64) ([]dbmysql.Like, error)
}

type likeRepository struct {
	db *gorm.DB
}

func NewLikeRepository(db *gorm.DB) LikeRepository {
	return &likeRepository{db: db}
}

// FirstOrCreateLike runs the check and the insert in one transaction; the
// composite unique index on (user_id, post_id) backstops concurrent likes of
// the same post by the same user.
func (r *likeRepository) FirstOrCreateLike(ctx context.Context, userID, postID uint64) (*dbmysql.Like, error) {
	var like dbmysql.Like
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.
			Where("user_id = ? AND post_id = ?", userID, postID).
			FirstOrCreate(&like, dbmysql.Like{UserID: userID, PostID: postID}).Error
	})
	if err != nil {
		return nil, err
	}
	return &like, nil
}

func (r *likeRepository) ListLikesByPost(ctx context.Context, postID uint64) ([]dbmysql.Like, error) {
	var likes []dbmysql.Like
	err := r.db.WithContext(ctx).
		Where("post_id = ?", postID).
		Order("id ASC").
		Find(&likes).Error
	if err != nil {
		return nil, err
	}
	return likes, nil
}

func (r *likeRepository) ListLikesByPosts(ctx context.Context, postIDs []uint64) ([]dbmysql.Like, error) {
	if len(postIDs) == 0 {
		return nil, nil
	}

	var likes []dbmysql.Like
	err := r.db.WithContext(ctx).
		Where("post_id IN ?", postIDs).
		Order("id ASC").
		Find(&likes).Error
	if err != nil {
		return nil, err
	}
	return likes, nil
}
