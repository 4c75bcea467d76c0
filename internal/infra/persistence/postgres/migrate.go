package postgres

import (
	"context"
	"log/slog"
	"strings"

	"petclinic/config"
	"petclinic/internal/domain/entity"
	"petclinic/internal/errors"
	"petclinic/internal/infra/persistence/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// migrate brings the schema up to date, seeds the fixed role rows and, when
// configured, creates the initial superadmin account. All steps are idempotent
// so restarting the service is safe.
func migrate(ctx context.Context, db *gorm.DB, cfg *config.Config, logger *slog.Logger) error {
	if err := db.WithContext(ctx).Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		return errors.Wrap(err, "failed to ensure uuid-ossp extension")
	}

	if err := db.WithContext(ctx).AutoMigrate(
		&model.UserModel{},
		&model.RoleModel{},
		&model.OwnerModel{},
		&model.PetModel{},
		&model.VisitModel{},
		&model.VetModel{},
	); err != nil {
		return errors.Wrap(err, "auto migrate failed")
	}

	if err := seedRoles(ctx, db); err != nil {
		return err
	}

	return seedSuperAdmin(ctx, db, cfg, logger)
}

func seedRoles(ctx context.Context, db *gorm.DB) error {
	roles := []model.RoleModel{
		{Name: string(entity.RoleUser)},
		{Name: string(entity.RoleAdmin)},
		{Name: string(entity.RoleSuperAdmin)},
	}

	err := db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "name"}}, DoNothing: true}).
		Create(&roles).Error
	if err != nil {
		return errors.Wrap(err, "failed to seed roles")
	}

	return nil
}

// seedSuperAdmin creates the bootstrap superadmin once. The account gets no
// owner profile; it exists purely for administration.
func seedSuperAdmin(ctx context.Context, db *gorm.DB, cfg *config.Config, logger *slog.Logger) error {
	bootstrap := cfg.Bootstrap
	if bootstrap == nil || bootstrap.SuperAdminEmail == "" || bootstrap.SuperAdminPassword == "" {
		return nil
	}

	email := strings.ToLower(strings.TrimSpace(bootstrap.SuperAdminEmail))

	var count int64
	if err := db.WithContext(ctx).Model(&model.UserModel{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return errors.Wrap(err, "failed to check bootstrap superadmin")
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(bootstrap.SuperAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return errors.Wrap(err, "failed to hash bootstrap superadmin password")
	}

	var roleRows []model.RoleModel
	roleNames := entity.Roles{entity.RoleUser, entity.RoleAdmin, entity.RoleSuperAdmin}.ToStrings()
	if err := db.WithContext(ctx).Where("name IN ?", roleNames).Find(&roleRows).Error; err != nil {
		return errors.Wrap(err, "failed to load roles for bootstrap superadmin")
	}

	userM := model.UserModel{
		Email:        email,
		Name:         bootstrap.SuperAdminName,
		PasswordHash: string(hash),
		Roles:        roleRows,
	}
	if err := db.WithContext(ctx).Create(&userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return nil
		}

		return errors.Wrap(err, "failed to create bootstrap superadmin")
	}

	if logger != nil {
		logger.LogAttrs(ctx, slog.LevelInfo, "bootstrap superadmin created",
			slog.String("email", email),
		)
	}

	return nil
}
