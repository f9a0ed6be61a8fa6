package service

import (
	"context"
	"fmt"

	"github.com/dsemenov/go-shield/internal/logger"
	"github.com/dsemenov/go-shield/internal/store"
	"github.com/dsemenov/go-shield/internal/validate"
	"github.com/dsemenov/go-shield/models"
)

// Item field and paging bounds enforced on every write and listing.
const (
	minItemNameLength        = 1
	maxItemNameLength        = 100
	maxItemDescriptionLength = 500

	minListLimit  = 1
	maxListLimit  = 100
	minListOffset = 0
)

// itemService is the concrete implementation of [ItemService].
type itemService struct {
	itemRepository store.ItemRepository
	logger         *logger.Logger
}

// NewItemService constructs an [ItemService] wired to the given repository.
func NewItemService(itemRepository store.ItemRepository, logger *logger.Logger) ItemService {
	return &itemService{
		itemRepository: itemRepository,
		logger:         logger,
	}
}

// CreateItem validates the request and persists a new item owned by the
// principal. The owner is always taken from the verified token, never from
// the request body.
func (s *itemService) CreateItem(ctx context.Context, principal models.Token, request models.ItemCreateRequest) (models.Item, error) {
	log := logger.FromContext(ctx)

	if err := validateItemFields(&request.Name, &request.Description); err != nil {
		return models.Item{}, err
	}

	created, err := s.itemRepository.CreateItem(ctx, models.Item{
		Name:        request.Name,
		OwnerID:     principal.UserID,
		Description: request.Description,
	})
	if err != nil {
		log.Err(err).Int64("owner_id", principal.UserID).Msg("item creation ended with error")
		return models.Item{}, fmt.Errorf("item creation ended with error: %w", err)
	}

	return created, nil
}

// GetItem fetches a single item, enforcing that the principal owns it or
// holds the admin role.
func (s *itemService) GetItem(ctx context.Context, principal models.Token, id int64) (models.Item, error) {
	if err := validateItemID(id); err != nil {
		return models.Item{}, err
	}

	item, err := s.itemRepository.FindItemByID(ctx, id)
	if err != nil {
		return models.Item{}, err
	}

	if !canAccess(principal, item) {
		return models.Item{}, ErrPermissionDenied
	}

	return item, nil
}

// ListItems returns a page of items. Regular users only ever see their own
// items; admins see everything.
func (s *itemService) ListItems(ctx context.Context, principal models.Token, limit, offset int64) ([]models.Item, error) {
	if err := validatePaging(limit, offset); err != nil {
		return nil, err
	}

	filter := store.ItemFilter{
		Limit:  uint64(limit),
		Offset: uint64(offset),
	}
	if principal.UserRole != models.RoleAdmin {
		ownerID := principal.UserID
		filter.OwnerID = &ownerID
	}

	return s.itemRepository.ListItems(ctx, filter)
}

// UpdateItem applies a partial update after ownership and field validation.
func (s *itemService) UpdateItem(ctx context.Context, principal models.Token, id int64, request models.ItemUpdateRequest) (models.Item, error) {
	if err := validateItemID(id); err != nil {
		return models.Item{}, err
	}
	if err := validateItemFields(request.Name, request.Description); err != nil {
		return models.Item{}, err
	}

	item, err := s.itemRepository.FindItemByID(ctx, id)
	if err != nil {
		return models.Item{}, err
	}
	if !canAccess(principal, item) {
		return models.Item{}, ErrPermissionDenied
	}

	return s.itemRepository.UpdateItem(ctx, id, models.ItemUpdate{
		Name:        request.Name,
		Description: request.Description,
	})
}

// DeleteItem removes an item after ownership validation.
func (s *itemService) DeleteItem(ctx context.Context, principal models.Token, id int64) error {
	if err := validateItemID(id); err != nil {
		return err
	}

	item, err := s.itemRepository.FindItemByID(ctx, id)
	if err != nil {
		return err
	}
	if !canAccess(principal, item) {
		return ErrPermissionDenied
	}

	return s.itemRepository.DeleteItem(ctx, id)
}

// canAccess reports whether the principal may operate on the item:
// the owner always can, the admin role can on anything.
func canAccess(principal models.Token, item models.Item) bool {
	return principal.UserRole == models.RoleAdmin || principal.UserID == item.OwnerID
}

// validateItemFields checks the mutable item fields. Nil fields are skipped
// so the same check serves both creation and partial updates.
func validateItemFields(name, description *string) error {
	violations := make([]FieldViolation, 0, 2)

	if name != nil {
		if outcome := validate.CheckLength(*name, minItemNameLength, maxItemNameLength); !outcome.OK {
			violations = append(violations, FieldViolation{Field: "name", Message: outcome.Message})
		} else if outcome = validate.CheckFormat(*name); !outcome.OK {
			violations = append(violations, FieldViolation{Field: "name", Message: outcome.Message})
		}
	}

	if description != nil && *description != "" {
		if outcome := validate.CheckLength(*description, 1, maxItemDescriptionLength); !outcome.OK {
			violations = append(violations, FieldViolation{Field: "description", Message: outcome.Message})
		} else if outcome = validate.CheckFormat(*description); !outcome.OK {
			violations = append(violations, FieldViolation{Field: "description", Message: outcome.Message})
		}
	}

	if len(violations) > 0 {
		return &ValidationError{Violations: violations}
	}
	return nil
}

// validateItemID rejects identifiers outside the positive signed 32-bit
// range before they reach the repository.
func validateItemID(id int64) error {
	if outcome := validate.CheckRange(id, validate.Int64Ptr(1), nil); !outcome.OK {
		return &ValidationError{Violations: []FieldViolation{{Field: "id", Message: outcome.Message}}}
	}
	return nil
}

// validatePaging bounds the listing parameters so a single request can never
// demand an unbounded result set.
func validatePaging(limit, offset int64) error {
	violations := make([]FieldViolation, 0, 2)

	if outcome := validate.CheckRange(limit, validate.Int64Ptr(minListLimit), validate.Int64Ptr(maxListLimit)); !outcome.OK {
		violations = append(violations, FieldViolation{Field: "limit", Message: outcome.Message})
	}
	if outcome := validate.CheckRange(offset, validate.Int64Ptr(minListOffset), nil); !outcome.OK {
		violations = append(violations, FieldViolation{Field: "offset", Message: outcome.Message})
	}

	if len(violations) > 0 {
		return &ValidationError{Violations: violations}
	}
	return nil
}
