package user

import (
	"fmt"

	"openbook/internal/common"
	"openbook/internal/dbmysql"

	"github.com/dustin/go-humanize"
)

// Presenter shapes domain records into the response envelopes the API serves.
type Presenter struct {
	AppBaseURL   string
	MediaBaseURL string
}

type FriendRequestResource struct {
	Type            string                  `json:"type"`
	FriendRequestID uint64                  `json:"friend_request_id"`
	Attributes      FriendRequestAttributes `json:"attributes"`
}

type FriendRequestAttributes struct {
	// ConfirmedAt is null while pending, a human-relative time once accepted.
	ConfirmedAt *string `json:"confirmed_at"`
	FriendID    uint64  `json:"friend_id"`
	UserID      uint64  `json:"user_id"`
}

type UserResource struct {
	Type       string         `json:"type"`
	UserID     uint64         `json:"user_id"`
	Attributes UserAttributes `json:"attributes"`
}

type UserAttributes struct {
	Name         string           `json:"name"`
	Friendship   *common.Document `json:"friendship"`
	ProfileImage *common.Document `json:"profile_image"`
	CoverImage   *common.Document `json:"cover_image"`
}

type UserImageResource struct {
	Type        string              `json:"type"`
	UserImageID uint64              `json:"user_image_id"`
	Attributes  UserImageAttributes `json:"attributes"`
}

type UserImageAttributes struct {
	Path     string `json:"path"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	Location string `json:"location"`
}

func (p *Presenter) FriendRequestDocument(f *dbmysql.Friend) common.Document {
	var confirmedAt *string
	if f.ConfirmedAt != nil {
		human := humanize.Time(*f.ConfirmedAt)
		confirmedAt = &human
	}

	return common.Document{
		Data: FriendRequestResource{
			Type:            "friend-request",
			FriendRequestID: f.ID,
			Attributes: FriendRequestAttributes{
				ConfirmedAt: confirmedAt,
				FriendID:    f.FriendID,
				UserID:      f.UserID,
			},
		},
		Links: &common.Links{
			Self: fmt.Sprintf("%s/users/%d", p.AppBaseURL, f.FriendID),
		},
	}
}

// UserDocument renders a profile. friendship is the symmetric resolution
// between the viewer and the profile owner; nil renders as null rather than
// an error.
func (p *Presenter) UserDocument(u *dbmysql.User, friendship *dbmysql.Friend, profileImage, coverImage *dbmysql.UserImage) common.Document {
	attrs := UserAttributes{Name: u.Name}

	if friendship != nil {
		doc := p.FriendRequestDocument(friendship)
		attrs.Friendship = &doc
	}
	if profileImage != nil {
		doc := p.UserImageDocument(profileImage)
		attrs.ProfileImage = &doc
	}
	if coverImage != nil {
		doc := p.UserImageDocument(coverImage)
		attrs.CoverImage = &doc
	}

	return common.Document{
		Data: UserResource{
			Type:       "users",
			UserID:     u.UserID,
			Attributes: attrs,
		},
		Links: &common.Links{
			Self: fmt.Sprintf("%s/users/%d", p.AppBaseURL, u.UserID),
		},
	}
}

func (p *Presenter) UserImageDocument(img *dbmysql.UserImage) common.Document {
	return common.Document{
		Data: UserImageResource{
			Type:        "user-images",
			UserImageID: img.ID,
			Attributes: UserImageAttributes{
				Path:     p.MediaBaseURL + img.ImageID,
				Width:    img.Width,
				Height:   img.Height,
				Location: img.Location,
			},
		},
		Links: &common.Links{
			Self: fmt.Sprintf("%s/users/%d", p.AppBaseURL, img.UserID),
		},
	}
}
