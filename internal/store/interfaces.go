package store

import (
	"context"

	"github.com/dsemenov/go-shield/models"
)

// ItemFilter narrows and pages an item listing. A nil OwnerID lists items of
// every owner.
type ItemFilter struct {
	OwnerID *int64
	Limit   uint64
	Offset  uint64
}

type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByID(ctx context.Context, id int64) (models.User, error)
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
}

type ItemRepository interface {
	CreateItem(ctx context.Context, item models.Item) (models.Item, error)
	FindItemByID(ctx context.Context, id int64) (models.Item, error)
	ListItems(ctx context.Context, filter ItemFilter) ([]models.Item, error)
	UpdateItem(ctx context.Context, id int64, update models.ItemUpdate) (models.Item, error)
	DeleteItem(ctx context.Context, id int64) error
}
