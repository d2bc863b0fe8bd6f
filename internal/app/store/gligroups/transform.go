// internal/app/store/gligroups/transform.go
package gligroupstore

import (
	"fmt"
	"strconv"

	"github.com/dalemusser/gliweb/internal/domain/models"
)

// toGroup maps a raw record to a group. Missing provider, type, status and
// group number fall back to "", Beweegkuur, In planning and "". A missing
// start date or a value of the wrong kind is an error.
func toGroup(rec Record) (models.GLIGroup, error) {
	g := models.GLIGroup{
		ID:          rec.ID,
		Type:        models.GLITypeBeweegkuur,
		Status:      models.StatusPlanning,
		CreatedTime: rec.CreatedTime,
	}

	var err error
	if g.Provider, err = stringField(rec, FieldProvider); err != nil {
		return models.GLIGroup{}, err
	}

	if s, err := stringField(rec, FieldType); err != nil {
		return models.GLIGroup{}, err
	} else if s != "" {
		g.Type = models.GLIType(s)
		if !g.Type.Valid() {
			return models.GLIGroup{}, fmt.Errorf("record %s: unknown %s %q", rec.ID, FieldType, s)
		}
	}

	if s, err := stringField(rec, FieldStatus); err != nil {
		return models.GLIGroup{}, err
	} else if s != "" {
		g.Status = models.GroupStatus(s)
		if !g.Status.Valid() {
			return models.GLIGroup{}, fmt.Errorf("record %s: unknown %s %q", rec.ID, FieldStatus, s)
		}
	}

	start, err := dateField(rec, FieldStartDate)
	if err != nil {
		return models.GLIGroup{}, err
	}
	if start == nil {
		return models.GLIGroup{}, fmt.Errorf("record %s: missing %s", rec.ID, FieldStartDate)
	}
	g.StartDate = *start

	if g.EndDate, err = dateField(rec, FieldEndDate); err != nil {
		return models.GLIGroup{}, err
	}

	switch v := rec.Fields[FieldGroupNumber].(type) {
	case nil:
	case string:
		g.GroupNumber = v
	case float64:
		g.GroupNumber = strconv.FormatFloat(v, 'f', -1, 64)
	default:
		g.GroupNumber = fmt.Sprint(v)
	}

	return g, nil
}

func stringField(rec Record, name string) (string, error) {
	switch v := rec.Fields[name].(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	default:
		return "", fmt.Errorf("record %s: %s is %T, want text", rec.ID, name, v)
	}
}

func dateField(rec Record, name string) (*models.Date, error) {
	switch v := rec.Fields[name].(type) {
	case nil:
		return nil, nil
	case string:
		if v == "" {
			return nil, nil
		}
		d, err := models.ParseDate(v)
		if err != nil {
			return nil, fmt.Errorf("record %s: %s: %w", rec.ID, name, err)
		}
		return &d, nil
	default:
		return nil, fmt.Errorf("record %s: %s is %T, want a date", rec.ID, name, v)
	}
}

// createFields serializes a new group. Dates go out as YYYY-MM-DD and
// enums as their text value. An absent end date is not sent.
func createFields(in models.GLIGroupCreate) map[string]any {
	f := map[string]any{
		FieldProvider:    in.Provider,
		FieldType:        string(in.Type),
		FieldStartDate:   in.StartDate.String(),
		FieldGroupNumber: in.GroupNumber,
		FieldStatus:      string(in.Status),
	}
	if in.EndDate != nil {
		f[FieldEndDate] = in.EndDate.String()
	}
	return f
}

// updateFields serializes only the fields set on u.
func updateFields(u models.GLIGroupUpdate) map[string]any {
	f := map[string]any{}
	if u.Provider != nil {
		f[FieldProvider] = *u.Provider
	}
	if u.Type != nil {
		f[FieldType] = string(*u.Type)
	}
	if u.StartDate != nil {
		f[FieldStartDate] = u.StartDate.String()
	}
	if u.EndDate != nil {
		f[FieldEndDate] = u.EndDate.String()
	}
	if u.GroupNumber != nil {
		f[FieldGroupNumber] = *u.GroupNumber
	}
	if u.Status != nil {
		f[FieldStatus] = string(*u.Status)
	}
	return f
}
