// internal/domain/models/resource.go
package models

import "time"

// Resource is member material (exercise, recipe, document or link).
// Content holds either a URL or the text itself.
type Resource struct {
	ID          string    `bson:"_id" json:"id"`
	Title       string    `bson:"title" json:"title"`
	Description string    `bson:"description" json:"description"`
	Category    string    `bson:"category" json:"category"`
	Content     string    `bson:"content" json:"content"`
	TargetRole  []Role    `bson:"target_role" json:"target_role"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
}

// Event is a scheduled meeting or workshop.
type Event struct {
	ID             string    `bson:"_id" json:"id"`
	Title          string    `bson:"title" json:"title"`
	Description    string    `bson:"description" json:"description"`
	Date           time.Time `bson:"date" json:"date"`
	Location       string    `bson:"location" json:"location"`
	TargetAudience []Role    `bson:"target_audience" json:"target_audience"`
	CreatedAt      time.Time `bson:"created_at" json:"created_at"`
}

// FAQ is a question/answer pair shown to the roles in TargetRole.
type FAQ struct {
	ID         string    `bson:"_id" json:"id" yaml:"-"`
	Question   string    `bson:"question" json:"question" yaml:"question"`
	Answer     string    `bson:"answer" json:"answer" yaml:"answer"`
	Category   string    `bson:"category" json:"category" yaml:"category"`
	TargetRole []Role    `bson:"target_role" json:"target_role" yaml:"target_role"`
	CreatedAt  time.Time `bson:"created_at" json:"created_at" yaml:"-"`
}

// ContactRequest is an inbound question, referral or support request.
type ContactRequest struct {
	ID          string    `bson:"_id" json:"id"`
	Name        string    `bson:"name" json:"name"`
	Email       string    `bson:"email" json:"email"`
	Phone       *string   `bson:"phone,omitempty" json:"phone"`
	Message     string    `bson:"message" json:"message"`
	RequestType string    `bson:"request_type" json:"request_type"` // info | referral | support
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
}
