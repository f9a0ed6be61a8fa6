// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Semenov

package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/dsemenov/go-shield/models"
)

const (
	createUser = `INSERT INTO users (username, email, password_hash, role)
    VALUES ($1, $2, $3, $4)
    RETURNING id, username, email, password_hash, role;`

	findUserByID = `SELECT id, username, email, password_hash, role
    FROM users
    WHERE id = $1;`

	findUserByUsername = `SELECT id, username, email, password_hash, role
    FROM users
    WHERE username = $1;`

	findUserByEmail = `SELECT id, username, email, password_hash, role
    FROM users
    WHERE email = $1;`

	createItem = `INSERT INTO items (name, owner_id, description)
    VALUES ($1, $2, $3)
    RETURNING id, name, owner_id, description;`

	findItemByID = `SELECT id, name, owner_id, description
    FROM items
    WHERE id = $1;`

	deleteItem = `DELETE FROM items
    WHERE id = $1;`
)

// psql builds parameterised queries with PostgreSQL $N placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildListItemsQuery assembles the item listing query. The owner predicate
// is attached only when the filter carries one; limit and offset are always
// attached so a listing can never return an unbounded result set.
func buildListItemsQuery(filter ItemFilter) (string, []any, error) {
	builder := psql.
		Select("id", "name", "owner_id", "description").
		From(models.Item{}.TableName()).
		OrderBy("id ASC").
		Limit(filter.Limit).
		Offset(filter.Offset)

	if filter.OwnerID != nil {
		builder = builder.Where(sq.Eq{"owner_id": *filter.OwnerID})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildUpdateItemQuery assembles a partial UPDATE from the non-nil fields of
// update. Returns [ErrEmptyItemUpdate] when there is nothing to change.
func buildUpdateItemQuery(id int64, update models.ItemUpdate) (string, []any, error) {
	if update.Empty() {
		return "", nil, ErrEmptyItemUpdate
	}

	builder := psql.
		Update(models.Item{}.TableName()).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING id, name, owner_id, description")

	if update.Name != nil {
		builder = builder.Set("name", *update.Name)
	}
	if update.Description != nil {
		builder = builder.Set("description", *update.Description)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
