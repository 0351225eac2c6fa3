package store

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/midoshouse/midos.house-sub000/internal/engine"
)

// Team is a registered participant. Hard settings and MQ dungeons are only
// offered when both teams of a race accept them.
type Team struct {
	ID             string `gorm:"primaryKey"`
	Name           string `gorm:"not null"`
	Plural         bool   `gorm:"not null;default:false"`
	HardSettingsOK bool   `gorm:"not null;default:false"`
	MQOK           bool   `gorm:"column:mq_ok;not null;default:false"`
	CreatedAt      time.Time
}

type Race struct {
	ID        uuid.UUID   `gorm:"type:uuid;primaryKey"`
	Kind      string      `gorm:"not null"`
	HighSeed  string      `gorm:"not null;index"`
	LowSeed   string      `gorm:"not null;index"`
	Game      int         `gorm:"not null;default:0"`
	Draft     DraftColumn `gorm:"type:jsonb;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// DraftKind parses the stored kind.
func (r Race) DraftKind() (engine.Kind, error) {
	return engine.ParseKind(r.Kind)
}

// DraftColumn stores a draft in its flat JSON form.
type DraftColumn struct {
	engine.Draft
}

func (c DraftColumn) Value() (driver.Value, error) {
	b, err := json.Marshal(c.Draft)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (c *DraftColumn) Scan(src any) error {
	var b []byte
	switch v := src.(type) {
	case []byte:
		b = v
	case string:
		b = []byte(v)
	case nil:
		c.Draft = engine.Draft{Settings: engine.Picks{}}
		return nil
	default:
		return fmt.Errorf("scan draft: unsupported type %T", src)
	}
	return json.Unmarshal(b, &c.Draft)
}
