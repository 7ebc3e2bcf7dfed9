package database

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	StagePreprocess string = "PREPROCESS"
	StageTrain      string = "TRAIN"
	StageEvaluate   string = "EVALUATE"
	StageDeploy     string = "DEPLOY"
)

const (
	JobQueued    string = "QUEUED"
	JobRunning   string = "RUNNING"
	JobCompleted string = "COMPLETED"
	JobFailed    string = "FAILED"
)

// Run is one invocation of a pipeline stage.
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

	RecordName         string
	TokenCount         int
	OriginalTokenCount int  `gorm:"not null;default:0"`
	Truncated          bool `gorm:"not null;default:false"`
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
