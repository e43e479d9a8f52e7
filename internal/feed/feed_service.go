package feed

import (
	"context"
	"fmt"

	"openbook/internal/dbmysql"
)

// FriendLister is the slice of the friendship store the feed needs: who
// counts as a confirmed friend of a user.
type FriendLister interface {
	ListConfirmedFriendIDs(ctx context.Context, userID uint64) ([]uint64, error)
}

// UserFinder resolves post authors for presentation.
type UserFinder interface {
	GetUsersByIDs(ctx context.Context, userIDs []uint64) ([]*dbmysql.User, error)
}

// PostImage describes an already-stored image attached to a new post.
type PostImage struct {
	ImageID string
	Width   int
	Height  int
}

type FeedService interface {
	// CreatePost stores a post for authorID; image is optional.
	CreatePost(ctx context.Context, authorID uint64, body string, image *PostImage) (*dbmysql.Post, error)
	// GetTimeline returns the viewer's own posts plus the posts of their
	// confirmed friends, newest first, with authors and likes attached.
	GetTimeline(ctx context.Context, userID uint64) ([]dbmysql.Post, error)
	// GetUserPosts returns the posts authored by ownerID, newest first.
	GetUserPosts(ctx context.Context, ownerID uint64) ([]dbmysql.Post, error)
	// LikePost records that userID likes postID and returns the post's
	// likes. Liking twice is a no-op.
	LikePost(ctx context.Context, userID, postID uint64) ([]dbmysql.Like, error)
}

type feedService struct {
	posts   PostRepository
	likes   LikeRepository
	friends FriendLister
	users   UserFinder
}

func NewFeedService(posts PostRepository, likes LikeRepository, friends FriendLister, users UserFinder) FeedService {
	return &feedService{
		posts:   posts,
		likes:   likes,
		friends: friends,
		users:   users,
	}
}

func (s *feedService) CreatePost(ctx context.Context, authorID uint64, body string, image *PostImage) (*dbmysql.Post, error) {
	post := &dbmysql.Post{
		UserID: authorID,
		Body:   body,
	}
	if image != nil {
		imageID := image.ImageID
		width := image.Width
		height := image.Height
		post.ImageID = &imageID
		post.ImageWidth = &width
		post.ImageHeight = &height
	}

	if err := s.posts.CreatePost(ctx, post); err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}

	hydrated := []dbmysql.Post{*post}
	if err := s.hydrate(ctx, hydrated); err != nil {
		return nil, err
	}
	return &hydrated[0], nil
}

func (s *feedService) GetTimeline(ctx context.Context, userID uint64) ([]dbmysql.Post, error) {
	friendIDs, err := s.friends.ListConfirmedFriendIDs(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list friends: %w", err)
	}

	authorIDs := append([]uint64{userID}, friendIDs...)
	posts, err := s.posts.ListPostsByUsers(ctx, authorIDs)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}

	if err := s.hydrate(ctx, posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (s *feedService) GetUserPosts(ctx context.Context, ownerID uint64) ([]dbmysql.Post, error) {
	posts, err := s.posts.ListPostsByUsers(ctx, []uint64{ownerID})
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}

	if err := s.hydrate(ctx, posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (s *feedService) LikePost(ctx context.Context, userID, postID uint64) ([]dbmysql.Like, error) {
	post, err := s.posts.GetPostByID(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("get post: %w", err)
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	if _, err := s.likes.FirstOrCreateLike(ctx, userID, postID); err != nil {
		return nil, fmt.Errorf("like post: %w", err)
	}

	likes, err := s.likes.ListLikesByPost(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("list likes: %w", err)
	}
	return likes, nil
}

// hydrate attaches authors and likes to posts in place.
func (s *feedService) hydrate(ctx context.Context, posts []dbmysql.Post) error {
	if len(posts) == 0 {
		return nil
	}

	authorIDs := make([]uint64, 0, len(posts))
	seen := map[uint64]bool{}
	postIDs := make([]uint64, 0, len(posts))
	for i := range posts {
		postIDs = append(postIDs, posts[i].ID)
		if !seen[posts[i].UserID] {
			seen[posts[i].UserID] = true
			authorIDs = append(authorIDs, posts[i].UserID)
		}
	}

	authors, err := s.users.GetUsersByIDs(ctx, authorIDs)
	if err != nil {
		return fmt.Errorf("resolve authors: %w", err)
	}
	byID := make(map[uint64]*dbmysql.User, len(authors))
	for _, u := range authors {
		byID[u.UserID] = u
	}

	likes, err := s.likes.ListLikesByPosts(ctx, postIDs)
	if err != nil {
		return fmt.Errorf("list likes: %w", err)
	}
	likesByPost := map[uint64][]dbmysql.Like{}
	for _, l := range likes {
		likesByPost[l.PostID] = append(likesByPost[l.PostID], l)
	}

	for i := range posts {
		posts[i].User = byID[posts[i].UserID]
		posts[i].Likes = likesByPost[posts[i].ID]
	}
	return nil
}
