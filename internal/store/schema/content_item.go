package schema

import (
	"time"

	"github.com/Asamoah4284/PENNIT-sub001/internal/domain"
)

// ContentItem represents the content_items table - a published post or work.
// The view and read counters are monotonic and mutated only by the attribution
// engine through atomic relative increments; content CRUD itself belongs to an
// external collaborator.
type ContentItem struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// AuthorID identifies the author the item's counted reads accrue to
	AuthorID string `gorm:"column:author_id;not null;type:text;index:idx_content_items_author"`
	// Kind is "post" or "work"
	Kind domain.ContentKind `gorm:"column:kind;not null;type:text"`
	// Category determines the point weight for works (poem, short_story, novel)
	Category domain.WorkCategory `gorm:"column:category;type:text"`
	// Title is carried for operator-facing logs only
	Title string `gorm:"column:title;type:text"`
	// ViewCount is the number of deduplicated views, never decremented
	ViewCount int64 `gorm:"column:view_count;not null;default:0"`
	// ReadCount is the number of counted reads, never decremented
	ReadCount int64 `gorm:"column:read_count;not null;default:0"`
	// CreatedAt is set by the owning collaborator on content creation
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now()"`

	// Associations
	ViewEvents []ViewEvent `gorm:"foreignKey:ContentID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the ContentItem model
func (ContentItem) TableName() string {
	return "content_items"
}
