package store

import (
	"context"
	"sync"

	"github.com/dsemenov/go-shield/internal/logger"
	"github.com/dsemenov/go-shield/models"
)

// memoryUserRepository is a mutex-guarded in-memory implementation of
// [UserRepository]. IDs are assigned sequentially and never reused, matching
// the behavior of the PostgreSQL sequence.
type memoryUserRepository struct {
	mu     sync.RWMutex
	users  map[int64]models.User
	nextID int64
	logger *logger.Logger
}

// NewMemoryUserRepository constructs an empty in-memory [UserRepository].
func NewMemoryUserRepository(log *logger.Logger) UserRepository {
	log.Debug().Msg("creating in-memory user repository")
	return &memoryUserRepository{
		users:  make(map[int64]models.User),
		nextID: 1,
		logger: log,
	}
}

func (r *memoryUserRepository) CreateUser(_ context.Context, user models.User) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.users {
		if existing.Username == user.Username {
			return models.User{}, ErrUsernameAlreadyExists
		}
		if existing.Email == user.Email {
			return models.User{}, ErrEmailAlreadyExists
		}
	}

	user.ID = r.nextID
	r.nextID++
	r.users[user.ID] = user

	return user, nil
}

func (r *memoryUserRepository) FindUserByID(_ context.Context, id int64) (models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return models.User{}, ErrNoUserWasFound
	}
	return user, nil
}

func (r *memoryUserRepository) FindUserByUsername(_ context.Context, username string) (models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users {
		if user.Username == username {
			return user, nil
		}
	}
	return models.User{}, ErrNoUserWasFound
}

func (r *memoryUserRepository) FindUserByEmail(_ context.Context, email string) (models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}
	return models.User{}, ErrNoUserWasFound
}

// memoryItemRepository is a mutex-guarded in-memory implementation of
// [ItemRepository].
type memoryItemRepository struct {
	mu     sync.RWMutex
	items  map[int64]models.Item
	order  []int64
	nextID int64
	logger *logger.Logger
}

// NewMemoryItemRepository constructs an empty in-memory [ItemRepository].
func NewMemoryItemRepository(log *logger.Logger) ItemRepository {
	log.Debug().Msg("creating in-memory item repository")
	return &memoryItemRepository{
		items:  make(map[int64]models.Item),
		nextID: 1,
		logger: log,
	}
}

func (r *memoryItemRepository) CreateItem(_ context.Context, item models.Item) (models.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item.ID = r.nextID
	r.nextID++
	r.items[item.ID] = item
	r.order = append(r.order, item.ID)

	return item, nil
}

func (r *memoryItemRepository) FindItemByID(_ context.Context, id int64) (models.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[id]
	if !ok {
		return models.Item{}, ErrItemNotFound
	}
	return item, nil
}

func (r *memoryItemRepository) ListItems(_ context.Context, filter ItemFilter) ([]models.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]models.Item, 0)
	for _, id := range r.order {
		item, ok := r.items[id]
		if !ok {
			continue
		}
		if filter.OwnerID != nil && item.OwnerID != *filter.OwnerID {
			continue
		}
		matched = append(matched, item)
	}

	if filter.Offset >= uint64(len(matched)) {
		return []models.Item{}, nil
	}
	matched = matched[filter.Offset:]

	if filter.Limit > 0 && filter.Limit < uint64(len(matched)) {
		matched = matched[:filter.Limit]
	}

	return matched, nil
}

func (r *memoryItemRepository) UpdateItem(_ context.Context, id int64, update models.ItemUpdate) (models.Item, error) {
	if update.Empty() {
		return models.Item{}, ErrEmptyItemUpdate
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[id]
	if !ok {
		return models.Item{}, ErrItemNotFound
	}

	if update.Name != nil {
		item.Name = *update.Name
	}
	if update.Description != nil {
		item.Description = *update.Description
	}
	r.items[id] = item

	return item, nil
}

func (r *memoryItemRepository) DeleteItem(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return ErrItemNotFound
	}
	delete(r.items, id)

	for i, orderedID := range r.order {
		if orderedID == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}

	return nil
}
