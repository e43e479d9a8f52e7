package feed

import (
	"fmt"

	"openbook/internal/common"
	"openbook/internal/dbmysql"

	"github.com/dustin/go-humanize"
)

// Presenter shapes posts and likes into the response envelopes the API
// serves. Collections nest one full document per item.
type Presenter struct {
	AppBaseURL   string
	MediaBaseURL string
}

type PostResource struct {
	Type       string         `json:"type"`
	PostID     uint64         `json:"post_id"`
	Attributes PostAttributes `json:"attributes"`
}

type PostAttributes struct {
	Body     string          `json:"body"`
	Image    *string         `json:"image"`
	PostedAt string          `json:"posted_at"`
	PostedBy common.Document `json:"posted_by"`
	Likes    LikesAttribute  `json:"likes"`
}

// LikesAttribute summarizes a post's likes for the viewer.
type LikesAttribute struct {
	Data          []common.Document `json:"data"`
	LikeCount     int               `json:"like_count"`
	UserLikesPost bool              `json:"user_likes_post"`
}

type LikeResource struct {
	Type       string   `json:"type"`
	LikeID     uint64   `json:"like_id"`
	Attributes struct{} `json:"attributes"`
}

type authorResource struct {
	Type       string           `json:"type"`
	UserID     uint64           `json:"user_id"`
	Attributes authorAttributes `json:"attributes"`
}

type authorAttributes struct {
	Name string `json:"name"`
}

// PostDocument renders one post. viewerID drives the user_likes_post flag.
func (p *Presenter) PostDocument(post *dbmysql.Post, viewerID uint64) common.Document {
	var image *string
	if post.ImageID != nil {
		url := p.MediaBaseURL + *post.ImageID
		image = &url
	}

	var authorName string
	if post.User != nil {
		authorName = post.User.Name
	}

	likes := LikesAttribute{
		Data:      make([]common.Document, 0, len(post.Likes)),
		LikeCount: len(post.Likes),
	}
	for _, like := range post.Likes {
		if like.UserID == viewerID {
			likes.UserLikesPost = true
		}
		likes.Data = append(likes.Data, p.LikeDocument(&like, post.ID))
	}

	return common.Document{
		Data: PostResource{
			Type:   "posts",
			PostID: post.ID,
			Attributes: PostAttributes{
				Body:     post.Body,
				Image:    image,
				PostedAt: humanize.Time(post.CreatedAt),
				PostedBy: common.Document{
					Data: authorResource{
						Type:       "users",
						UserID:     post.UserID,
						Attributes: authorAttributes{Name: authorName},
					},
					Links: &common.Links{
						Self: fmt.Sprintf("%s/users/%d", p.AppBaseURL, post.UserID),
					},
				},
				Likes: likes,
			},
		},
		Links: &common.Links{
			Self: fmt.Sprintf("%s/posts/%d", p.AppBaseURL, post.ID),
		},
	}
}

// PostCollectionDocument renders a list of posts, one full document per item.
func (p *Presenter) PostCollectionDocument(posts []dbmysql.Post, viewerID uint64) common.Document {
	items := make([]common.Document, 0, len(posts))
	for i := range posts {
		items = append(items, p.PostDocument(&posts[i], viewerID))
	}

	return common.Document{
		Data: items,
		Links: &common.Links{
			Self: p.AppBaseURL + "/posts",
		},
	}
}

func (p *Presenter) LikeDocument(like *dbmysql.Like, postID uint64) common.Document {
	return common.Document{
		Data: LikeResource{
			Type:   "likes",
			LikeID: like.ID,
		},
		Links: &common.Links{
			Self: fmt.Sprintf("%s/posts/%d", p.AppBaseURL, postID),
		},
	}
}

// LikeCollectionDocument renders the likes of a post.
func (p *Presenter) LikeCollectionDocument(likes []dbmysql.Like, postID uint64) common.Document {
	items := make([]common.Document, 0, len(likes))
	for i := range likes {
		items = append(items, p.LikeDocument(&likes[i], postID))
	}

	return common.Document{
		Data: items,
		Links: &common.Links{
			Self: p.AppBaseURL + "/posts",
		},
	}
}
