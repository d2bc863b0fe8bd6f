package testutil

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	gligroupstore "github.com/dalemusser/gliweb/internal/app/store/gligroups"
)

// ErrFakeNotFound is what FakeTable returns for unknown record ids.
var ErrFakeNotFound = errors.New("fake table: record not found")

// FakeTable is an in-memory gligroupstore.Table. It understands the
// formulas the store builds ({F}='v', AND(...), OR(...)) and pages its
// listings PageSize records at a time. Set one of the *Err fields to make
// that operation fail.
type FakeTable struct {
	mu      sync.Mutex
	order   []string
	records map[string]gligroupstore.Record
	nextID  int

	PageSize    int
	CreatedTime string
	Formulas    []string

	ListErr   error
	GetErr    error
	CreateErr error
	UpdateErr error
	DeleteErr error
}

func NewFakeTable() *FakeTable {
	return &FakeTable{
		records:     map[string]gligroupstore.Record{},
		PageSize:    100,
		CreatedTime: "2024-01-15T10:30:00.000Z",
	}
}

// Put stores fields as a new record and returns it.
func (f *FakeTable) Put(fields map[string]any) gligroupstore.Record {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.put(fields)
}

func (f *FakeTable) put(fields map[string]any) gligroupstore.Record {
	f.nextID++
	rec := gligroupstore.Record{
		ID:          fmt.Sprintf("recTEST%04d", f.nextID),
		Fields:      copyFields(fields),
		CreatedTime: f.CreatedTime,
	}
	f.records[rec.ID] = rec
	f.order = append(f.order, rec.ID)
	return rec
}

// Len returns the number of stored records.
func (f *FakeTable) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.records)
}

// Fields returns a copy of a record's fields, or nil.
func (f *FakeTable) Fields(id string) map[string]any {
	f.mu.Lock()
	defer f.mu.Unlock()
	rec, ok := f.records[id]
	if !ok {
		return nil
	}
	return copyFields(rec.Fields)
}

func (f *FakeTable) List(_ context.Context, formula, offset string) (gligroupstore.Page, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Formulas = append(f.Formulas, formula)
	if f.ListErr != nil {
		return gligroupstore.Page{}, f.ListErr
	}

	var matched []gligroupstore.Record
	for _, id := range f.order {
		rec := f.records[id]
		ok, err := MatchFormula(formula, rec.Fields)
		if err != nil {
			return gligroupstore.Page{}, err
		}
		if ok {
			matched = append(matched, rec)
		}
	}

	start := 0
	if offset != "" {
		if _, err := fmt.Sscanf(offset, "page:%d", &start); err != nil {
			return gligroupstore.Page{}, fmt.Errorf("fake table: bad offset %q", offset)
		}
	}
	end := start + f.PageSize
	page := gligroupstore.Page{}
	if end < len(matched) {
		page.Offset = fmt.Sprintf("page:%d", end)
	} else {
		end = len(matched)
	}
	if start < end {
		page.Records = matched[start:end]
	}
	return page, nil
}

func (f *FakeTable) Get(_ context.Context, id string) (gligroupstore.Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.GetErr != nil {
		return gligroupstore.Record{}, f.GetErr
	}
	rec, ok := f.records[id]
	if !ok {
		return gligroupstore.Record{}, ErrFakeNotFound
	}
	rec.Fields = copyFields(rec.Fields)
	return rec, nil
}

func (f *FakeTable) Create(_ context.Context, fields map[string]any) (gligroupstore.Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.CreateErr != nil {
		return gligroupstore.Record{}, f.CreateErr
	}
	return f.put(fields), nil
}

func (f *FakeTable) Update(_ context.Context, id string, fields map[string]any) (gligroupstore.Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.UpdateErr != nil {
		return gligroupstore.Record{}, f.UpdateErr
	}
	rec, ok := f.records[id]
	if !ok {
		return gligroupstore.Record{}, ErrFakeNotFound
	}
	for k, v := range fields {
		rec.Fields[k] = v
	}
	f.records[id] = rec
	rec.Fields = copyFields(rec.Fields)
	return rec, nil
}

func (f *FakeTable) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.DeleteErr != nil {
		return f.DeleteErr
	}
	if _, ok := f.records[id]; !ok {
		return ErrFakeNotFound
	}
	delete(f.records, id)
	for i, oid := range f.order {
		if oid == id {
			f.order = append(f.order[:i], f.order[i+1:]...)
			break
		}
	}
	return nil
}

func copyFields(in map[string]any) map[string]any {
	out := make(map[string]any, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

// MatchFormula evaluates the formula subset the store emits against fields.
// An empty formula matches everything.
func MatchFormula(formula string, fields map[string]any) (bool, error) {
	if formula == "" {
		return true, nil
	}
	p := &formulaParser{s: formula}
	ok, err := p.expr(fields)
	if err != nil {
		return false, err
	}
	if p.skipSpace(); p.i != len(p.s) {
		return false, fmt.Errorf("formula %q: trailing input at %d", p.s, p.i)
	}
	return ok, nil
}

type formulaParser struct {
	s string
	i int
}

func (p *formulaParser) skipSpace() {
	for p.i < len(p.s) && p.s[p.i] == ' ' {
		p.i++
	}
}

func (p *formulaParser) expr(fields map[string]any) (bool, error) {
	p.skipSpace()
	rest := p.s[p.i:]
	switch {
	case strings.HasPrefix(rest, "AND("):
		p.i += len("AND(")
		return p.list(fields, true)
	case strings.HasPrefix(rest, "OR("):
		p.i += len("OR(")
		return p.list(fields, false)
	default:
		return p.cond(fields)
	}
}

func (p *formulaParser) list(fields map[string]any, all bool) (bool, error) {
	result := all
	for {
		v, err := p.expr(fields)
		if err != nil {
			return false, err
		}
		if all {
			result = result && v
		} else {
			result = result || v
		}
		p.skipSpace()
		if p.i >= len(p.s) {
			return false, fmt.Errorf("formula %q: unclosed call", p.s)
		}
		switch p.s[p.i] {
		case ',':
			p.i++
		case ')':
			p.i++
			return result, nil
		default:
			return false, fmt.Errorf("formula %q: unexpected %q at %d", p.s, p.s[p.i], p.i)
		}
	}
}

func (p *formulaParser) cond(fields map[string]any) (bool, error) {
	if p.i >= len(p.s) || p.s[p.i] != '{' {
		return false, fmt.Errorf("formula %q: expected '{' at %d", p.s, p.i)
	}
	end := strings.IndexByte(p.s[p.i:], '}')
	if end < 0 {
		return false, fmt.Errorf("formula %q: unclosed field name", p.s)
	}
	name := p.s[p.i+1 : p.i+end]
	p.i += end + 1
	if !strings.HasPrefix(p.s[p.i:], "='") {
		return false, fmt.Errorf("formula %q: expected =' at %d", p.s, p.i)
	}
	p.i += 2

	var b strings.Builder
	for {
		if p.i >= len(p.s) {
			return false, fmt.Errorf("formula %q: unterminated string", p.s)
		}
		c := p.s[p.i]
		if c == '\\' && p.i+1 < len(p.s) {
			b.WriteByte(p.s[p.i+1])
			p.i += 2
			continue
		}
		p.i++
		if c == '\'' {
			break
		}
		b.WriteByte(c)
	}

	got := ""
	if v, ok := fields[name]; ok && v != nil {
		got = fmt.Sprint(v)
	}
	return got == b.String(), nil
}
