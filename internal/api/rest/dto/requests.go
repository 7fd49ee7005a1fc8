package dto

// ProgressRequest is the body of a reading-progress report.
// Pointer fields distinguish an omitted value from a genuine zero.
type ProgressRequest struct {
	ProgressPercentage *int `json:"progress_percentage" binding:"required"`
	TimeSpentSeconds   *int `json:"time_spent_seconds" binding:"required"`
}
