package migration_1

import (
	"fmt"

	"gorm.io/gorm"
)

type TokenizedFile struct {
	OriginalTokenCount int  `gorm:"not null;default:0"`
	Truncated          bool `gorm:"not null;default:false"`
}

func Migration(db *gorm.DB) error {
	if err := db.Migrator().AddColumn(&TokenizedFile{}, "original_token_count"); err != nil {
		return fmt.Errorf("error adding OriginalTokenCount column: %w", err)
	}
	if err := db.Migrator().AddColumn(&TokenizedFile{}, "truncated"); err != nil {
		return fmt.Errorf("error adding Truncated column: %w", err)
	}

	if err := db.Model(&TokenizedFile{}).
		Where("original_token_count = 0").
		Update("original_token_count", gorm.Expr("token_count")).Error; err != nil {
		return fmt.Errorf("error backfilling OriginalTokenCount: %w", err)
	}

	return nil
}

func Rollback(db *gorm.DB) error {
	if err := db.Migrator().DropColumn(&TokenizedFile{}, "Truncated"); err != nil {
		return fmt.Errorf("error dropping Truncated column: %w", err)
	}
	if err := db.Migrator().DropColumn(&TokenizedFile{}, "OriginalTokenCount"); err != nil {
		return fmt.Errorf("error dropping OriginalTokenCount column: %w", err)
	}

	return nil
}
