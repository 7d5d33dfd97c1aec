// Package seed resets the database to a known state: reference characters
// grouped by affiliation plus one admin account.
package seed

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"go.uber.org/fx"

	"userauth/config"
	"userauth/internal/domain/entity"
	"userauth/internal/domain/repository"
	"userauth/internal/domain/service"
	"userauth/internal/errors"
	"userauth/internal/util"
)

// Result counts the rows written by a run.
type Result struct {
	Affiliations int
	Characters   int
	Users        int
}

// Params holds dependencies for Seeder, injected by Fx.
type Params struct {
	fx.In

	Config    *config.Config
	TxManager repository.TransactionManager
	Hasher    service.PasswordHasher
	Logger    *slog.Logger
}

// Seeder writes Characters and the admin user.
type Seeder struct {
	cfg        *config.SeedConfig
	txManager  repository.TransactionManager
	hasher     service.PasswordHasher
	logger     *slog.Logger
	characters []CharacterFixture
}

// NewSeeder validates the seed section of the configuration.
func NewSeeder(params Params) (*Seeder, error) {
	seedCfg := params.Config.Seed
	if seedCfg == nil {
		return nil, errors.New("seed configuration is required")
	}
	if strings.TrimSpace(seedCfg.AdminEmail) == "" || seedCfg.AdminPassword == "" {
		return nil, errors.New("seed admin email and password are required")
	}

	return &Seeder{
		cfg:        seedCfg,
		txManager:  params.TxManager,
		hasher:     params.Hasher,
		logger:     params.Logger,
		characters: Characters,
	}, nil
}

// Run wipes characters, affiliations and users, then recreates them in a
// single transaction. Nothing is written when any step fails.
func (s *Seeder) Run(ctx context.Context) (*Result, error) {
	start := time.Now()

	adminHash, err := s.hasher.Hash(s.cfg.AdminPassword)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash admin password")
	}

	result := &Result{}
	err = s.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		catalogRepo := txRepoFactory.CatalogRepo()
		userRepo := txRepoFactory.UserRepo()

		s.logger.Info("Cleaning database")
		if err := catalogRepo.DeleteAll(ctx); err != nil {
			return errors.Wrap(err, "failed to clear catalog")
		}
		if err := userRepo.DeleteAll(ctx); err != nil {
			return errors.Wrap(err, "failed to clear users")
		}

		s.logger.Info("Creating affiliations")
		affiliationIDs, err := s.createAffiliations(ctx, catalogRepo)
		if err != nil {
			return err
		}
		result.Affiliations = len(affiliationIDs)

		s.logger.Info("Adding characters")
		for _, fixture := range s.characters {
			character := &entity.Character{
				Name:          fixture.Name,
				AffiliationID: affiliationIDs[fixture.Affiliation],
				LifePoints:    util.ClampToInt32(fixture.Bounty),
				Size:          fixture.Size,
				Age:           fixture.Age,
				Weight:        fixture.Weight,
				ImageURL:      s.cfg.ImageBaseURL + fixture.Image,
			}
			if err := catalogRepo.CreateCharacter(ctx, character); err != nil {
				return errors.Wrapf(err, "failed to create character %s", fixture.Name)
			}
			result.Characters++
			s.logger.Debug("Character added", slog.String("name", character.Name), slog.Int64("id", character.ID))
		}

		s.logger.Info("Adding admin user", slog.String("email", s.cfg.AdminEmail))
		users := []*entity.User{{Email: s.cfg.AdminEmail, PasswordHash: adminHash}}
		if err := userRepo.CreateMany(ctx, users); err != nil {
			return errors.Wrap(err, "failed to create admin user")
		}
		result.Users = len(users)

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Seed completed",
		slog.Int("affiliations", result.Affiliations),
		slog.Int("characters", result.Characters),
		slog.Int("users", result.Users),
		slog.String("elapsed", util.FormatDuration(time.Since(start))),
	)

	return result, nil
}

// createAffiliations inserts each distinct affiliation once, in order of first appearance.
func (s *Seeder) createAffiliations(ctx context.Context, catalogRepo repository.CatalogRepository) (map[string]int64, error) {
	ids := make(map[string]int64)
	for _, fixture := range s.characters {
		if _, ok := ids[fixture.Affiliation]; ok {
			continue
		}

		affiliation := &entity.Affiliation{Name: fixture.Affiliation}
		if err := catalogRepo.CreateAffiliation(ctx, affiliation); err != nil {
			return nil, errors.Wrapf(err, "failed to create affiliation %s", fixture.Affiliation)
		}
		ids[fixture.Affiliation] = affiliation.ID
	}

	return ids, nil
}
