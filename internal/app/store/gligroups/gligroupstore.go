// internal/app/store/gligroups/gligroupstore.go
package gligroupstore

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/dalemusser/gliweb/internal/domain/models"
	"go.uber.org/zap"
)

// ErrStoreUnavailable wraps every failure of a list-style read.
var ErrStoreUnavailable = errors.New("gli group store unavailable")

// Filter narrows List. Empty fields are not applied.
type Filter struct {
	Type     models.GLIType
	Status   models.GroupStatus
	Provider string
}

// Formula renders the filter as a conjunction of equality conditions.
func (f Filter) Formula() string {
	var conds []string
	if f.Type != "" {
		conds = append(conds, Eq(FieldType, string(f.Type)))
	}
	if f.Status != "" {
		conds = append(conds, Eq(FieldStatus, string(f.Status)))
	}
	if f.Provider != "" {
		conds = append(conds, Eq(FieldProvider, f.Provider))
	}
	return And(conds...)
}

var activeFormula = Or(
	Eq(FieldStatus, string(models.StatusOpen)),
	Eq(FieldStatus, string(models.StatusGestart)),
)

// Store reads and writes GLI groups in the scheduling table.
//
// Get, Update and Delete report "not found" and "store failed" the same
// way (false); the failure is logged. List-style reads return errors
// wrapping ErrStoreUnavailable.
type Store struct {
	table Table
	log   *zap.Logger
}

func New(table Table, logger *zap.Logger) *Store {
	return &Store{table: table, log: logger}
}

// List returns the groups matching f, ordered by start date.
func (s *Store) List(ctx context.Context, f Filter) ([]models.GLIGroup, error) {
	return s.list(ctx, f.Formula())
}

// ListByType returns the groups of one programme type.
func (s *Store) ListByType(ctx context.Context, t models.GLIType) ([]models.GLIGroup, error) {
	return s.list(ctx, Filter{Type: t}.Formula())
}

// ListActive returns groups open for enrollment or already started.
func (s *Store) ListActive(ctx context.Context) ([]models.GLIGroup, error) {
	return s.list(ctx, activeFormula)
}

func (s *Store) list(ctx context.Context, formula string) ([]models.GLIGroup, error) {
	groups := []models.GLIGroup{}
	offset := ""
	for {
		page, err := s.table.List(ctx, formula, offset)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
		}
		for _, rec := range page.Records {
			g, err := toGroup(rec)
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
			}
			groups = append(groups, g)
		}
		if page.Offset == "" || page.Offset == offset {
			break
		}
		offset = page.Offset
	}

	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].StartDate.Before(groups[j].StartDate)
	})
	return groups, nil
}

// Get returns the group with the given record id.
func (s *Store) Get(ctx context.Context, id string) (models.GLIGroup, bool) {
	rec, err := s.table.Get(ctx, id)
	if err != nil {
		s.log.Warn("gli group lookup failed", zap.String("id", id), zap.Error(err))
		return models.GLIGroup{}, false
	}
	g, err := toGroup(rec)
	if err != nil {
		s.log.Error("gli group record unreadable", zap.String("id", id), zap.Error(err))
		return models.GLIGroup{}, false
	}
	return g, true
}

// Create inserts a group and returns it as stored, with id and created time.
func (s *Store) Create(ctx context.Context, in models.GLIGroupCreate) (models.GLIGroup, error) {
	rec, err := s.table.Create(ctx, createFields(in))
	if err != nil {
		return models.GLIGroup{}, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	g, err := toGroup(rec)
	if err != nil {
		return models.GLIGroup{}, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	s.log.Info("gli group created", zap.String("id", g.ID), zap.String("groepnummer", g.GroupNumber))
	return g, nil
}

// Update writes only the fields set on u. An empty update returns the
// current record untouched.
func (s *Store) Update(ctx context.Context, id string, u models.GLIGroupUpdate) (models.GLIGroup, bool) {
	if u.IsEmpty() {
		return s.Get(ctx, id)
	}
	rec, err := s.table.Update(ctx, id, updateFields(u))
	if err != nil {
		s.log.Warn("gli group update failed", zap.String("id", id), zap.Error(err))
		return models.GLIGroup{}, false
	}
	g, err := toGroup(rec)
	if err != nil {
		s.log.Error("gli group record unreadable", zap.String("id", id), zap.Error(err))
		return models.GLIGroup{}, false
	}
	return g, true
}

// Delete removes the group and reports whether that succeeded.
func (s *Store) Delete(ctx context.Context, id string) bool {
	if err := s.table.Delete(ctx, id); err != nil {
		s.log.Warn("gli group delete failed", zap.String("id", id), zap.Error(err))
		return false
	}
	return true
}

// Statistics summarizes the whole table from a single unfiltered read.
func (s *Store) Statistics(ctx context.Context) (models.GLIStatistics, error) {
	groups, err := s.List(ctx, Filter{})
	if err != nil {
		return models.GLIStatistics{}, err
	}

	st := models.GLIStatistics{
		Total:       len(groups),
		PerType:     make(map[string]int, len(models.GLITypes)),
		PerProvider: map[string]int{},
	}
	for _, t := range models.GLITypes {
		st.PerType[string(t)] = 0
	}
	for _, g := range groups {
		switch {
		case g.Status.Active():
			st.Active++
		case g.Status == models.StatusPlanning:
			st.Planned++
		case g.Status == models.StatusVol:
			st.Full++
		}
		st.PerType[string(g.Type)]++
		st.PerProvider[g.Provider]++
	}
	return st, nil
}
