package di

import (
	"openbook/internal/config"
	"openbook/internal/dbmongo"
	"openbook/internal/feed"
	"openbook/internal/media"
	"openbook/internal/user"

	"gorm.io/gorm"
)

// Application holds the wired object graph shared by the entrypoints.
type Application struct {
	Config      *config.Config
	DB          *gorm.DB
	Mongo       *dbmongo.MongoClient
	Images      *dbmongo.ImageStorage
	UserHandler *user.Handler
	FeedHandler *feed.Handler
	MediaServer *media.HTTPServer
}

func provideUserImageUploader(storage *dbmongo.ImageStorage) user.ImageUploader {
	return storage
}

func provideFeedImageUploader(storage *dbmongo.ImageStorage) feed.ImageUploader {
	return storage
}

func provideImageDownloader(storage *dbmongo.ImageStorage) media.ImageDownloader {
	return storage
}

func provideFriendLister(repo user.FriendRepository) feed.FriendLister {
	return repo
}

func provideUserFinder(repo user.UserRepository) feed.UserFinder {
	return repo
}
