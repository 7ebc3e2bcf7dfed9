package migration_0

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Run struct {
	Id uuid.UUID `gorm:"type:uuid;primaryKey"`

	Stage  string         `gorm:"size:20;not null"`
	Status string         `gorm:"size:20;not null"`
	Config datatypes.JSON `gorm:"type:jsonb"`
	Error  sql.NullString

	CreationTime   time.Time
	CompletionTime sql.NullTime

	TokenizedFiles []TokenizedFile `gorm:"foreignKey:RunId;constraint:OnDelete:CASCADE"`
	TrainingEvents []TrainingEvent `gorm:"foreignKey:RunId;constraint:OnDelete:CASCADE"`
	Artifacts      []Artifact      `gorm:"foreignKey:RunId;constraint:OnDelete:CASCADE"`
}

type TokenizedFile struct {
	RunId  uuid.UUID `gorm:"type:uuid;primaryKey"`
	Source string    `gorm:"primaryKey"`

	RecordName string
	TokenCount int
}

type TrainingEvent struct {
	Id    uint      `gorm:"primaryKey;autoIncrement"`
	RunId uuid.UUID `gorm:"type:uuid;index"`

	Kind       string `gorm:"size:20;not null"`
	Step       int
	Epoch      float64
	Metrics    datatypes.JSON `gorm:"type:jsonb"`
	Checkpoint sql.NullString
	Timestamp  time.Time
}

type Artifact struct {
	RunId uuid.UUID `gorm:"type:uuid;primaryKey"`
	Key   string    `gorm:"primaryKey"`

	Bucket string
	Size   int64
}

func Migration(db *gorm.DB) error {
	if err := db.AutoMigrate(&Run{}, &TokenizedFile{}, &TrainingEvent{}, &Artifact{}); err != nil {
		return fmt.Errorf("initial migration failed: %w", err)
	}
	return nil
}
