// internal/app/store/gligroups/table.go
package gligroupstore

import "context"

// Column names in the Airtable scheduling table.
const (
	FieldProvider    = "GLI aanbieder"
	FieldType        = "Type GLI"
	FieldStartDate   = "Startdatum groep"
	FieldEndDate     = "Einddatum groep"
	FieldGroupNumber = "Groepnummer"
	FieldStatus      = "Status"
)

// Record is a raw table row.
type Record struct {
	ID          string
	Fields      map[string]any
	CreatedTime string
}

// Page is one page of a listing. An empty Offset means it was the last.
type Page struct {
	Records []Record
	Offset  string
}

// Table is the subset of the Airtable API the store needs. The Airtable
// implementation lives in airtable.go; tests substitute an in-memory one.
type Table interface {
	List(ctx context.Context, formula, offset string) (Page, error)
	Get(ctx context.Context, id string) (Record, error)
	Create(ctx context.Context, fields map[string]any) (Record, error)
	Update(ctx context.Context, id string, fields map[string]any) (Record, error)
	Delete(ctx context.Context, id string) error
}
