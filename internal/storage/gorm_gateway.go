package storage

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Snapshot is one persisted collection payload, keyed by its storage key.
type Snapshot struct {
	Key       string    `gorm:"primaryKey" json:"key"`
	Payload   []byte    `gorm:"not null" json:"payload"`
	UpdatedAt time.Time `json:"updated_at"`
}

// gormGateway persists snapshots through a GORM connection.
type gormGateway struct {
	db *gorm.DB
}

// NewGormGateway creates a SnapshotGateway backed by the given database.
func NewGormGateway(db *gorm.DB) SnapshotGateway {
	return &gormGateway{db: db}
}

func (g *gormGateway) Load(key string) ([]byte, bool, error) {
	var snap Snapshot
	if err := g.db.First(&snap, "key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return snap.Payload, true, nil
}

func (g *gormGateway) Save(key string, payload []byte) error {
	snap := Snapshot{Key: key, Payload: payload, UpdatedAt: time.Now()}
	return g.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
	}).Create(&snap).Error
}
