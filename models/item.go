package models

// Item is a user-owned record managed through the CRUD API.
type Item struct {
	// ID is the internal unique identifier, assigned sequentially by the
	// repository.
	ID int64 `json:"id"`

	// Name is the display name of the record. Free text, validated at the
	// trust boundary before it reaches the repository.
	Name string `json:"name"`

	// OwnerID references the user who created the record.
	OwnerID int64 `json:"owner_id"`

	// Description is optional free text.
	Description string `json:"description,omitempty"`
}

// ItemUpdate carries the mutable fields of an [Item] for a partial update.
// Nil fields are left untouched.
type ItemUpdate struct {
	Name        *string
	Description *string
}

// Empty reports whether the update would change nothing.
func (u ItemUpdate) Empty() bool {
	return u.Name == nil && u.Description == nil
}

// TableName returns the name of the database table
// associated with the Item model.
func (i Item) TableName() string {
	return "items"
}
