package models

import "time"

// Status is the processing state of a try-on job.
type Status string

const (
	StatusProcessing Status = "processing"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
)

// TryOn represents a virtual try-on job and its result.
// ResultImageURL is stored as a relative path and rewritten to an
// absolute URL per request; it is set only when Status is "completed".
// ErrorMessage is set only when Status is "failed".
type TryOn struct {
	ID             string    `bson:"_id" json:"id"`
	Status         Status    `bson:"status" json:"status"`
	Message        string    `bson:"message" json:"message"`
	ResultImageURL *string   `bson:"result_image_url" json:"result_image_url"`
	CreatedAt      time.Time `bson:"created_at" json:"created_at"`
	ErrorMessage   *string   `bson:"error_message,omitempty" json:"error_message,omitempty"`
}

// TryOnListResponse is the envelope for listing try-ons
type TryOnListResponse struct {
	Message string   `json:"message"`
	Data    []*TryOn `json:"data"`
	Total   int      `json:"total"`
}
