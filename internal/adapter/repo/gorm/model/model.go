package model

import "time"

type Plant struct {
	ID          uint   `gorm:"primaryKey;autoIncrement"`
	PlantID     string `gorm:"uniqueIndex;size:64;not null"`
	OwnerID     string `gorm:"index;size:64;not null"`
	Name        string `gorm:"size:128;not null"`
	Health      int32  `gorm:"not null"`
	Xp          int32  `gorm:"not null"`
	Level       int32  `gorm:"not null"`
	SoilQuality int32  `gorm:"not null"`
	Mood        string `gorm:"size:16;not null"`
	Badges      []byte `gorm:"type:jsonb"`
	Care        []byte `gorm:"type:jsonb"`
	Version     int64  `gorm:"not null"`
	LastUpdated time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Plant) TableName() string { return "plants" }

type Interaction struct {
	ID          uint   `gorm:"primaryKey;autoIncrement"`
	PlantID     string `gorm:"index:idx_interactions_plant_created;size:64;not null"`
	ActionType  string `gorm:"size:32;not null"`
	EffectValue int32  `gorm:"not null"`
	CreatedAt   time.Time `gorm:"index:idx_interactions_plant_created"`
}

func (Interaction) TableName() string { return "interactions" }

type CareExecution struct {
	ID             uint   `gorm:"primaryKey;autoIncrement"`
	PlantID        string `gorm:"uniqueIndex:idx_care_exec_plant_key;size:64;not null"`
	IdempotencyKey string `gorm:"uniqueIndex:idx_care_exec_plant_key;size:128;not null"`
	ActionType     string `gorm:"size:32;not null"`
	UpdatedState   []byte `gorm:"type:jsonb"`
	Records        []byte `gorm:"type:jsonb"`
	Unlocked       []byte `gorm:"type:jsonb"`
	AppliedAt      time.Time
	CreatedAt      time.Time
}

func (CareExecution) TableName() string { return "care_executions" }

type Owner struct {
	ID        uint   `gorm:"primaryKey;autoIncrement"`
	OwnerID   string `gorm:"uniqueIndex;size:64;not null"`
	Username  string `gorm:"uniqueIndex;size:64;not null"`
	Email     string `gorm:"size:255;not null"`
	CreatedAt time.Time
}

func (Owner) TableName() string { return "owners" }
