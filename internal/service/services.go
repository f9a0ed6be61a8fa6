package service

import (
	"github.com/dsemenov/go-shield/internal/config"
	"github.com/dsemenov/go-shield/internal/logger"
	"github.com/dsemenov/go-shield/internal/store"
)

type Services struct {
	AuthService   AuthService
	ItemService   ItemService
	UploadService UploadService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:   NewAuthService(storages.UserRepository, cfg.Auth, logger),
		ItemService:   NewItemService(storages.ItemRepository, logger),
		UploadService: NewUploadService(cfg.Storage.Uploads, logger),
	}
}
