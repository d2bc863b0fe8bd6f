// internal/app/store/gligroups/airtable.go
package gligroupstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/mehanizm/airtable"
)

// AirtableTable adapts a table of the Airtable REST API to Table.
// The client has no context support; ctx is only checked before each call.
type AirtableTable struct {
	t *airtable.Table
}

// NewAirtableTable connects to table in base using a personal access token.
func NewAirtableTable(token, baseID, table string) *AirtableTable {
	client := airtable.NewClient(token)
	return &AirtableTable{t: client.GetTable(baseID, table)}
}

func (a *AirtableTable) List(ctx context.Context, formula, offset string) (Page, error) {
	if err := ctx.Err(); err != nil {
		return Page{}, err
	}
	q := a.t.GetRecords()
	if formula != "" {
		q = q.WithFilterFormula(formula)
	}
	if offset != "" {
		q = q.WithOffset(offset)
	}
	recs, err := q.Do()
	if err != nil {
		return Page{}, fmt.Errorf("airtable list: %w", err)
	}
	page := Page{Offset: recs.Offset}
	for _, r := range recs.Records {
		page.Records = append(page.Records, fromAirtable(r))
	}
	return page, nil
}

func (a *AirtableTable) Get(ctx context.Context, id string) (Record, error) {
	if err := ctx.Err(); err != nil {
		return Record{}, err
	}
	r, err := a.t.GetRecord(id)
	if err != nil {
		return Record{}, fmt.Errorf("airtable get %s: %w", id, err)
	}
	return fromAirtable(r), nil
}

func (a *AirtableTable) Create(ctx context.Context, fields map[string]any) (Record, error) {
	if err := ctx.Err(); err != nil {
		return Record{}, err
	}
	out, err := a.t.AddRecords(&airtable.Records{
		Records: []*airtable.Record{{Fields: fields}},
	})
	if err != nil {
		return Record{}, fmt.Errorf("airtable create: %w", err)
	}
	return single(out)
}

func (a *AirtableTable) Update(ctx context.Context, id string, fields map[string]any) (Record, error) {
	if err := ctx.Err(); err != nil {
		return Record{}, err
	}
	out, err := a.t.UpdateRecordsPartial(&airtable.Records{
		Records: []*airtable.Record{{ID: id, Fields: fields}},
	})
	if err != nil {
		return Record{}, fmt.Errorf("airtable update %s: %w", id, err)
	}
	return single(out)
}

func (a *AirtableTable) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	out, err := a.t.DeleteRecords([]string{id})
	if err != nil {
		return fmt.Errorf("airtable delete %s: %w", id, err)
	}
	if out == nil || len(out.Records) != 1 || !out.Records[0].Deleted {
		return fmt.Errorf("airtable delete %s: not confirmed", id)
	}
	return nil
}

func single(out *airtable.Records) (Record, error) {
	if out == nil || len(out.Records) != 1 {
		return Record{}, errors.New("airtable: expected exactly one record in response")
	}
	return fromAirtable(out.Records[0]), nil
}

func fromAirtable(r *airtable.Record) Record {
	return Record{ID: r.ID, Fields: r.Fields, CreatedTime: r.CreatedTime}
}
