package postgres

import (
	"context"

	"gorm.io/gorm"

	"userauth/internal/domain/entity"
	domainerrors "userauth/internal/domain/errors"
	"userauth/internal/domain/repository"
	"userauth/internal/infra/persistence/model"
)

// catalogRepository implements the domain.CatalogRepository interface using GORM.
type catalogRepository struct {
	db *gorm.DB
}

// NewCatalogRepository is the constructor for catalogRepository.
func NewCatalogRepository(db *gorm.DB) repository.CatalogRepository {
	return &catalogRepository{db: db}
}

func (repo *catalogRepository) CreateAffiliation(ctx context.Context, affiliation *entity.Affiliation) error {
	affiliationM := &model.AffiliationModel{Name: affiliation.Name}
	if err := repo.db.WithContext(ctx).Create(affiliationM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create affiliation "+affiliation.Name)
	}

	affiliation.ID = affiliationM.ID

	return nil
}

func (repo *catalogRepository) CreateCharacter(ctx context.Context, character *entity.Character) error {
	characterM := &model.CharacterModel{
		Name:          character.Name,
		AffiliationID: character.AffiliationID,
		LifePoints:    character.LifePoints,
		Size:          character.Size,
		Age:           character.Age,
		Weight:        character.Weight,
		ImageURL:      character.ImageURL,
	}
	if err := repo.db.WithContext(ctx).Create(characterM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "unknown affiliation for character "+character.Name)
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create character "+character.Name)
	}

	character.ID = characterM.ID

	return nil
}

// DeleteAll removes characters before affiliations to satisfy the foreign key.
func (repo *catalogRepository) DeleteAll(ctx context.Context) error {
	db := repo.db.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true})

	if err := db.Delete(&model.CharacterModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete characters")
	}
	if err := db.Delete(&model.AffiliationModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete affiliations")
	}

	return nil
}
