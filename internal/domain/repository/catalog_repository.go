package repository

import (
	"context"

	"userauth/internal/domain/entity"
)

// CatalogRepository persists the character reference data.
type CatalogRepository interface {
	// CreateAffiliation persists a new affiliation and fills in its ID.
	CreateAffiliation(ctx context.Context, affiliation *entity.Affiliation) error

	// CreateCharacter persists a new character and fills in its ID.
	CreateCharacter(ctx context.Context, character *entity.Character) error

	// DeleteAll removes every character, then every affiliation.
	DeleteAll(ctx context.Context) error
}
