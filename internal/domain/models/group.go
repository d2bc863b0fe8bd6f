// internal/domain/models/group.go
package models

// GLIType is the programme a GLI group follows.
type GLIType string

const (
	GLITypeBeweegkuur GLIType = "Beweegkuur"
	GLITypeCool       GLIType = "Cool"
	GLITypeSlimmer    GLIType = "Slimmer"
)

// GLITypes lists the programme types in the order statistics report them.
var GLITypes = []GLIType{GLITypeBeweegkuur, GLITypeCool, GLITypeSlimmer}

func (t GLIType) Valid() bool {
	for _, known := range GLITypes {
		if t == known {
			return true
		}
	}
	return false
}

// GroupStatus is the scheduling state of a group.
type GroupStatus string

const (
	StatusPlanning    GroupStatus = "In planning"
	StatusOpen        GroupStatus = "Inschrijving open"
	StatusBeschikbaar GroupStatus = "Beschikbaar"
	StatusVol         GroupStatus = "Vol"
	StatusGestart     GroupStatus = "Gestart"
	StatusAfgerond    GroupStatus = "Afgerond"
	StatusGeannuleerd GroupStatus = "Geannuleerd"
)

var GroupStatuses = []GroupStatus{
	StatusPlanning, StatusOpen, StatusBeschikbaar, StatusVol,
	StatusGestart, StatusAfgerond, StatusGeannuleerd,
}

func (s GroupStatus) Valid() bool {
	for _, known := range GroupStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// Active reports whether the group is open for enrollment or running.
func (s GroupStatus) Active() bool {
	return s == StatusOpen || s == StatusGestart
}

// GLIGroup is one row of the Airtable scheduling table.
// ID and CreatedTime are assigned by Airtable.
type GLIGroup struct {
	ID          string      `json:"id"`
	Provider    string      `json:"gli_aanbieder"`
	Type        GLIType     `json:"type_gli"`
	StartDate   Date        `json:"startdatum_groep"`
	EndDate     *Date       `json:"einddatum_groep"`
	GroupNumber string      `json:"groepnummer"`
	Status      GroupStatus `json:"status"`
	CreatedTime string      `json:"created_time"`
}

// GLIGroupCreate is the payload for a new group.
type GLIGroupCreate struct {
	Provider    string      `json:"gli_aanbieder"`
	Type        GLIType     `json:"type_gli"`
	StartDate   Date        `json:"startdatum_groep"`
	EndDate     *Date       `json:"einddatum_groep,omitempty"`
	GroupNumber string      `json:"groepnummer"`
	Status      GroupStatus `json:"status"`
}

// GLIGroupUpdate is a partial update; nil fields keep their stored value.
type GLIGroupUpdate struct {
	Provider    *string      `json:"gli_aanbieder,omitempty"`
	Type        *GLIType     `json:"type_gli,omitempty"`
	StartDate   *Date        `json:"startdatum_groep,omitempty"`
	EndDate     *Date        `json:"einddatum_groep,omitempty"`
	GroupNumber *string      `json:"groepnummer,omitempty"`
	Status      *GroupStatus `json:"status,omitempty"`
}

// IsEmpty reports whether the update carries no fields at all.
func (u GLIGroupUpdate) IsEmpty() bool {
	return u.Provider == nil && u.Type == nil && u.StartDate == nil &&
		u.EndDate == nil && u.GroupNumber == nil && u.Status == nil
}

// GLIStatistics summarizes the whole scheduling table.
type GLIStatistics struct {
	Total       int            `json:"total_groepen"`
	Active      int            `json:"actieve_groepen"`
	Planned     int            `json:"geplande_groepen"`
	Full        int            `json:"volle_groepen"`
	PerType     map[string]int `json:"per_type"`
	PerProvider map[string]int `json:"per_aanbieder"`
}
