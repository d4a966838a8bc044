package entity

import (
	"time"

	"github.com/google/uuid"
)

// Strictness controls how closely generated text must follow the prompt.
type Strictness string

const (
	// StrictnessFree lets the backend embellish freely.
	StrictnessFree Strictness = "free"
	// StrictnessModerate preserves the prompt's stated entities and events.
	StrictnessModerate Strictness = "moderate"
	// StrictnessStrict forbids elements absent from the prompt.
	StrictnessStrict Strictness = "strict"

	// DefaultStrictness applies when a request omits the level.
	DefaultStrictness = StrictnessModerate
)

// Valid reports whether s is a known strictness level.
func (s Strictness) Valid() bool {
	switch s {
	case StrictnessFree, StrictnessModerate, StrictnessStrict:
		return true
	}
	return false
}

// ContentUnit is one generated-text result attached to a chapter, paired with
// the prompt that produced it. Units are immutable once generated; correction
// happens by deleting and regenerating. Display order is creation order.
type ContentUnit struct {
	ID            string     `json:"id" gorm:"type:uuid;primaryKey"`
	ChapterID     string     `json:"chapter_id" gorm:"type:uuid;index;not null"`
	UserPrompt    string     `json:"user_prompt" gorm:"type:text;not null"`
	GeneratedText string     `json:"generated_text" gorm:"type:text;not null"`
	Summary       string     `json:"summary,omitempty" gorm:"type:text"`
	Strictness    Strictness `json:"strictness" gorm:"type:varchar(16);default:'moderate'"`
	CreatedAt     time.Time  `json:"created_at" gorm:"autoCreateTime"`
}

// TableName sets the table name.
func (ContentUnit) TableName() string {
	return "contents"
}

// NewContentUnit creates a content unit for a chapter.
func NewContentUnit(chapterID, userPrompt, generatedText, summary string, strictness Strictness) *ContentUnit {
	if !strictness.Valid() {
		strictness = DefaultStrictness
	}
	return &ContentUnit{
		ID:            uuid.NewString(),
		ChapterID:     chapterID,
		UserPrompt:    userPrompt,
		GeneratedText: generatedText,
		Summary:       summary,
		Strictness:    strictness,
		CreatedAt:     time.Now(),
	}
}
