package schema

import (
	"time"
)

// ViewEvent represents the view_events table - one row per (content item,
// viewer, window occurrence). The row anchors a 24-hour dedup window at its
// CreatedAt; progress and time-spent are merged with a running maximum and the
// counted-as-read flag transitions false to true at most once per row.
type ViewEvent struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// ContentID references the content item this event belongs to
	ContentID int64 `gorm:"column:content_id;not null;uniqueIndex:uq_view_events_window,priority:1;index:idx_view_events_content_created,priority:1;index:idx_view_events_content_user,priority:1;index:idx_view_events_content_ip,priority:1"`
	// ViewerUserID is the authenticated viewer's user id, nil for anonymous viewers
	ViewerUserID *string `gorm:"column:viewer_user_id;type:text;index:idx_view_events_content_user,priority:2"`
	// ViewerIP is the client IP, always recorded as the dedup fallback
	ViewerIP string `gorm:"column:viewer_ip;not null;type:text;index:idx_view_events_content_ip,priority:2"`
	// ViewerKey is the uniqueness key arbitrating concurrent first inserts:
	// "user:<id>" for authenticated viewers, "ip:<addr>" otherwise
	ViewerKey string `gorm:"column:viewer_key;not null;type:text;uniqueIndex:uq_view_events_window,priority:2"`
	// BucketDate is the UTC calendar date of CreatedAt, part of the window
	// uniqueness key. The rolling window itself is enforced by the lookup
	// query; this column only serializes same-instant first inserts.
	BucketDate time.Time `gorm:"column:bucket_date;not null;type:date;uniqueIndex:uq_view_events_window,priority:3"`
	// ProgressPercentage is the max-merged reading progress in [0,100]
	ProgressPercentage int `gorm:"column:progress_percentage;not null;default:0"`
	// TimeSpentSeconds is the max-merged time spent reading
	TimeSpentSeconds int `gorm:"column:time_spent_seconds;not null;default:0"`
	// CountedAsRead transitions false to true exactly once per window
	CountedAsRead bool `gorm:"column:counted_as_read;not null;default:false;index:idx_view_events_counted"`
	// CreatedAt anchors the dedup window
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();index:idx_view_events_content_created,priority:2;index:idx_view_events_content_user,priority:3;index:idx_view_events_content_ip,priority:3"`
	// UpdatedAt records the latest merge
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now()"`
}

// TableName specifies the table name for the ViewEvent model
func (ViewEvent) TableName() string {
	return "view_events"
}
