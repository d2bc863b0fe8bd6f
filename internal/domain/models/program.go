// internal/domain/models/program.go
package models

import "time"

// Program is one of the GLI programmes offered in the municipality.
type Program struct {
	ID          string    `bson:"_id" json:"id" yaml:"-"`
	Name        string    `bson:"name" json:"name" yaml:"name"`
	Description string    `bson:"description" json:"description" yaml:"description"`
	Duration    string    `bson:"duration" json:"duration" yaml:"duration"`
	FocusAreas  []string  `bson:"focus_areas" json:"focus_areas" yaml:"focus_areas"`
	TargetGroup string    `bson:"target_group" json:"target_group" yaml:"target_group"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at" yaml:"-"`
}

// Coach is a lifestyle coach and the programmes they run.
type Coach struct {
	ID             string    `bson:"_id" json:"id" yaml:"-"`
	Name           string    `bson:"name" json:"name" yaml:"name"`
	Specialization string    `bson:"specialization" json:"specialization" yaml:"specialization"`
	Phone          string    `bson:"phone" json:"phone" yaml:"phone"`
	Email          string    `bson:"email" json:"email" yaml:"email"`
	Location       string    `bson:"location" json:"location" yaml:"location"`
	Programs       []string  `bson:"programs" json:"programs" yaml:"programs"`
	CreatedAt      time.Time `bson:"created_at" json:"created_at" yaml:"-"`
}
