// internal/app/features/resources/handler.go
package resources

import (
	eventstore "github.com/dalemusser/gliweb/internal/app/store/events"
	resourcestore "github.com/dalemusser/gliweb/internal/app/store/resources"
	"go.uber.org/zap"
)

// MemberHandler serves the role-scoped reads a signed-in user gets:
// resources and events whose audience includes the caller's role.
type MemberHandler struct {
	Resources *resourcestore.Store
	Events    *eventstore.Store
	Log       *zap.Logger
}

// NewMemberHandler is called from bootstrap with the shared stores.
func NewMemberHandler(resources *resourcestore.Store, events *eventstore.Store, logger *zap.Logger) *MemberHandler {
	return &MemberHandler{
		Resources: resources,
		Events:    events,
		Log:       logger,
	}
}
