package models

// RegisterRequest is the JSON body accepted by POST /api/v1/auth/register.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the JSON body accepted by POST /api/v1/auth/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// TokenResponse is returned after a successful registration or login.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// ItemCreateRequest is the JSON body accepted by POST /api/v1/items.
type ItemCreateRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// ItemUpdateRequest is the JSON body accepted by PATCH /api/v1/items/{id}.
// Nil fields are left untouched (partial update semantics).
type ItemUpdateRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

// UploadResponse is returned after a successful file upload. Filename is the
// server-generated storage name, never the client-supplied one.
type UploadResponse struct {
	Filename      string `json:"filename"`
	MIMEType      string `json:"mime_type"`
	Size          int64  `json:"size"`
	CorrelationID string `json:"correlation_id"`
}

// ProcessResult describes the outcome of a bounded demo operation.
type ProcessResult struct {
	Processed    bool    `json:"processed"`
	DelaySeconds float64 `json:"delay_seconds"`
}

// ProcessResponse is returned by POST /process when the operation finishes
// before its deadline.
type ProcessResponse struct {
	Result        ProcessResult `json:"result"`
	CorrelationID string        `json:"correlation_id"`
}
