package client

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dsemenov/go-shield/internal/config"
	handlerhttp "github.com/dsemenov/go-shield/internal/handler/http"
	"github.com/dsemenov/go-shield/internal/logger"
	"github.com/dsemenov/go-shield/internal/service"
	"github.com/dsemenov/go-shield/internal/store"
	"github.com/dsemenov/go-shield/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngMagic = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}

func newTestClient(t *testing.T) *Client {
	t.Helper()

	cfg := &config.StructuredConfig{
		Auth: config.Auth{
			TokenSignKey:  "test-sign-key",
			TokenIssuer:   "go-shield-test",
			TokenDuration: time.Hour,
		},
		Storage: config.Storage{
			Uploads: config.Uploads{Dir: t.TempDir()},
		},
		Server: config.Server{
			ProcessTimeout: 2 * time.Second,
		},
	}

	log := logger.Nop()
	storages := store.NewMemoryStorages(log)
	services := service.NewServices(storages, cfg, log)
	router := handlerhttp.NewHandler(services, cfg, log).Init()

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	c, err := New(srv.URL, 5*time.Second)
	require.NoError(t, err)
	return c
}

func register(t *testing.T, c *Client, username string) models.TokenResponse {
	t.Helper()

	issued, err := c.Register(context.Background(), models.RegisterRequest{
		Username: username,
		Email:    username + "@example.com",
		Password: "a long enough password",
	})
	require.NoError(t, err)
	return issued
}

func TestNew_AddressNormalization(t *testing.T) {
	tests := []struct {
		name    string
		address string
		wantErr bool
	}{
		{name: "full url", address: "http://localhost:8080"},
		{name: "scheme-less", address: "localhost:8080"},
		{name: "trailing slash", address: "http://localhost:8080/"},
		{name: "empty", address: "", wantErr: true},
		{name: "blank", address: "   ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.address, time.Second)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestClient_RegisterStoresToken(t *testing.T) {
	c := newTestClient(t)

	issued := register(t, c, "alice")

	assert.NotEmpty(t, issued.AccessToken)
	assert.Equal(t, "bearer", issued.TokenType)
	assert.Equal(t, issued.AccessToken, c.Token())
}

func TestClient_LoginWrongPassword(t *testing.T) {
	c := newTestClient(t)
	register(t, c, "alice")
	c.SetToken("")

	_, err := c.Login(context.Background(), models.LoginRequest{
		Username: "alice",
		Password: "definitely not the password",
	})

	require.ErrorIs(t, err, ErrUnauthorized)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 401, apiErr.StatusCode)
	assert.NotEmpty(t, apiErr.Problem.CorrelationID)
	assert.Empty(t, c.Token())
}

func TestClient_RegisterValidationProblem(t *testing.T) {
	c := newTestClient(t)

	_, err := c.Register(context.Background(), models.RegisterRequest{
		Username: "ab",
		Email:    "not-an-email",
		Password: "short",
	})

	require.ErrorIs(t, err, ErrValidation)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.NotEmpty(t, apiErr.Problem.Errors)
}

func TestClient_ItemLifecycle(t *testing.T) {
	c := newTestClient(t)
	register(t, c, "alice")
	ctx := context.Background()

	created, err := c.CreateItem(ctx, models.ItemCreateRequest{Name: "first", Description: "keep"})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "first", created.Name)

	found, err := c.GetItem(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, found)

	newName := "renamed"
	updated, err := c.UpdateItem(ctx, created.ID, models.ItemUpdateRequest{Name: &newName})
	require.NoError(t, err)
	assert.Equal(t, "renamed", updated.Name)
	assert.Equal(t, "keep", updated.Description)

	items, err := c.ListItems(ctx, 0, 0)
	require.NoError(t, err)
	require.Len(t, items, 1)

	require.NoError(t, c.DeleteItem(ctx, created.ID))

	_, err = c.GetItem(ctx, created.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestClient_ItemsRequireToken(t *testing.T) {
	c := newTestClient(t)

	_, err := c.ListItems(context.Background(), 0, 0)

	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestClient_ForeignItemForbidden(t *testing.T) {
	c := newTestClient(t)
	register(t, c, "alice")

	created, err := c.CreateItem(context.Background(), models.ItemCreateRequest{Name: "private"})
	require.NoError(t, err)

	register(t, c, "bob")

	_, err = c.GetItem(context.Background(), created.ID)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestClient_Upload(t *testing.T) {
	c := newTestClient(t)

	content := append(append([]byte{}, pngMagic...), []byte("imagedata")...)
	uploaded, err := c.Upload(context.Background(), "photo.png", "image/png", content)

	require.NoError(t, err)
	assert.Equal(t, "image/png", uploaded.MIMEType)
	assert.Equal(t, int64(len(content)), uploaded.Size)
	assert.NotEqual(t, "photo.png", uploaded.Filename)
	assert.NotEmpty(t, uploaded.CorrelationID)
}

func TestClient_UploadDeclaredTypeMismatch(t *testing.T) {
	c := newTestClient(t)

	content := append(append([]byte{}, pngMagic...), []byte("imagedata")...)
	_, err := c.Upload(context.Background(), "photo.png", "application/pdf", content)

	assert.ErrorIs(t, err, ErrValidation)
}

func TestClient_Process(t *testing.T) {
	c := newTestClient(t)

	processed, err := c.Process(context.Background(), 0)

	require.NoError(t, err)
	assert.True(t, processed.Result.Processed)
	assert.NotEmpty(t, processed.CorrelationID)
}

func TestClient_Logout(t *testing.T) {
	c := newTestClient(t)
	register(t, c, "alice")

	require.NoError(t, c.Logout(context.Background()))
	assert.Empty(t, c.Token())

	var apiErr *APIError
	_, err := c.ListItems(context.Background(), 0, 0)
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 401, apiErr.StatusCode)
}

func TestClient_ProcessTimeout(t *testing.T) {
	c := newTestClient(t)

	_, err := c.Process(context.Background(), 10)

	assert.ErrorIs(t, err, ErrRequestTimeout)
}
