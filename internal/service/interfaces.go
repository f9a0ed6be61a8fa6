package service

import (
	"context"

	"github.com/dsemenov/go-shield/models"
)

// AuthService handles account registration, credential verification and
// token lifecycle.
type AuthService interface {
	RegisterUser(ctx context.Context, request models.RegisterRequest) (models.Token, error)
	Login(ctx context.Context, request models.LoginRequest) (models.Token, error)
	VerifyToken(ctx context.Context, tokenString string) (models.Token, error)
}

// ItemService handles the CRUD lifecycle of user-owned items, enforcing
// input validation and ownership on every operation.
type ItemService interface {
	CreateItem(ctx context.Context, principal models.Token, request models.ItemCreateRequest) (models.Item, error)
	GetItem(ctx context.Context, principal models.Token, id int64) (models.Item, error)
	ListItems(ctx context.Context, principal models.Token, limit, offset int64) ([]models.Item, error)
	UpdateItem(ctx context.Context, principal models.Token, id int64, request models.ItemUpdateRequest) (models.Item, error)
	DeleteItem(ctx context.Context, principal models.Token, id int64) error
}

// FileUpload carries an uploaded file through validation and persistence.
type FileUpload struct {
	// Filename is the client-supplied name. Used only to salvage a safe
	// extension; never used as a storage path.
	Filename string

	// DeclaredMIMEType is the Content-Type the client claimed for the file.
	DeclaredMIMEType string

	// Content is the full file body.
	Content []byte
}

// UploadService validates uploaded files and persists the accepted ones
// under server-generated names.
type UploadService interface {
	SaveUpload(ctx context.Context, upload FileUpload) (models.UploadResponse, error)
}
