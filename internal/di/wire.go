//go:build wireinject
// +build wireinject

package di

import (
	"openbook/internal/config"
	"openbook/internal/dbmongo"
	"openbook/internal/dbmysql"
	"openbook/internal/feed"
	"openbook/internal/media"
	"openbook/internal/user"

	"github.com/google/wire"
)

// InitializeApplication builds the full object graph; wire generates the
// real body in wire_gen.go.
func InitializeApplication() (*Application, error) {
	wire.Build(
		config.LoadConfig,
		dbmysql.NewMySQL,
		dbmongo.NewMongoConnection,
		dbmongo.NewImageStorage,
		provideUserImageUploader,
		provideFeedImageUploader,
		provideImageDownloader,
		provideFriendLister,
		provideUserFinder,
		user.NewUserRepository,
		user.NewFriendRepository,
		user.NewUserImageRepository,
		user.NewUserService,
		user.NewFriendshipService,
		user.NewHandler,
		feed.NewPostRepository,
		feed.NewLikeRepository,
		feed.NewFeedService,
		feed.NewHandler,
		media.NewHTTPServer,
		wire.Struct(new(Application), "*"),
	)
	return &Application{}, nil
}
