package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// Tag is a badge attached to an idea card ("High Demand", "Tech Ready", ...).
type Tag struct {
	Label string `json:"label"`
	Type  string `json:"type"`
	Icon  string `json:"icon"`
}

// TagList stores tags as a jsonb column.
type TagList []Tag

func (t TagList) Value() (driver.Value, error) {
	if t == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(t)
}

func (t *TagList) Scan(value interface{}) error {
	if value == nil {
		*t = TagList{}
		return nil
	}
	b, ok := value.([]byte)
	if !ok {
		return errors.New("taglist: expected []byte from database")
	}
	return json.Unmarshal(b, t)
}

// JSONMap stores free-form structured data (implementation guides) as jsonb.
type JSONMap map[string]interface{}

func (m JSONMap) Value() (driver.Value, error) {
	if m == nil {
		return nil, nil
	}
	return json.Marshal(m)
}

func (m *JSONMap) Scan(value interface{}) error {
	if value == nil {
		*m = nil
		return nil
	}
	b, ok := value.([]byte)
	if !ok {
		return errors.New("jsonmap: expected []byte from database")
	}
	return json.Unmarshal(b, m)
}

// Idea is a curated idea seeded from external sources. The five aggregate
// fields are derived from the vote list and rewritten on every vote.
type Idea struct {
	ID                  string    `gorm:"type:uuid;primaryKey" json:"id"`
	Title               string    `gorm:"not null" json:"title"`
	Description         string    `json:"description"`
	Category            string    `gorm:"index" json:"category"`
	Tags                TagList   `gorm:"type:jsonb" json:"tags"`
	Source              string    `gorm:"default:HackerNews" json:"source"`
	SourceURL           string    `json:"source_url,omitempty"`
	ImplementationGuide JSONMap   `gorm:"type:jsonb" json:"implementation_guide,omitempty"`
	CreatedAt           time.Time `json:"created_at"`

	Votes    []Vote    `gorm:"foreignKey:IdeaID;references:ID" json:"votes"`
	Comments []Comment `gorm:"foreignKey:IdeaID;references:ID" json:"comments"`

	ValidationScore    float64 `gorm:"default:0" json:"validation_score"`
	TotalVotes         int     `gorm:"default:0" json:"total_votes"`
	AvgFeasibility     float64 `gorm:"default:0" json:"avg_feasibility"`
	AvgMarketPotential float64 `gorm:"default:0" json:"avg_market_potential"`
	AvgInterest        float64 `gorm:"default:0" json:"avg_interest"`
}
