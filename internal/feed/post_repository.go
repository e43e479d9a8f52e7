package feed

import (
	"context"
	"errors"

	"openbook/internal/dbmysql"

	"gorm.io/gorm"
)

type PostRepository interface {
	CreatePost(ctx context.Context, post *dbmysql.Post) error
	// GetPostByID returns (nil, nil) when no post exists with the given id.
	GetPostByID(ctx context.Context, postID uint64) (*dbmysql.Post, error)
	// ListPostsByUsers returns the posts authored by any of userIDs, newest
	// first.
	ListPostsByUsers(ctx context.Context, userIDs []uint64) ([]dbmysql.Post, error)
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) CreatePost(ctx context.Context, post *dbmysql.Post) error {
	return r.db.WithContext(ctx).Create(post).Error
}

func (r *postRepository) GetPostByID(ctx context.Context, postID uint64) (*dbmysql.Post, error) {
	var post dbmysql.Post
	err := r.db.WithContext(ctx).First(&post, "id = ?", postID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *postRepository) ListPostsByUsers(ctx context.Context, userIDs []uint64) ([]dbmysql.Post, error) {
	if len(userIDs) == 0 {
		return nil, nil
	}

	var posts []dbmysql.Post
	err := r.db.WithContext(ctx).
		Where("user_id IN ?", userIDs).
		Order("created_at DESC, id DESC").
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}
