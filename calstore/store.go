// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package calstore provides a SQLite backed store of named calendar values.
// Values are stored in TEXT columns using their caltext encodings alongside
// their kind, so that they can be read, queried and exported by any tool
// that understands SQLite, and parsed back into typed values.
package calstore

import (
	"context"
	"fmt"
	"io"
	"time"

	"cloudeng.io/caltext"
	"cloudeng.io/caltext/column"
	"cloudeng.io/caltext/rowjson"
	"cloudeng.io/errors"
	"cloudeng.io/logging/ctxlog"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// entry is the row stored in the entries table.
type entry struct {
	ID      uuid.UUID        `gorm:"type:text;primaryKey"`
	Name    string           `gorm:"type:text;uniqueIndex;not null"`
	Kind    string           `gorm:"type:text;index;not null"`
	Value   string           `gorm:"type:text;not null"`
	Created column.TimePoint `gorm:"column:created_at;type:text;not null"`
}

func (entry) TableName() string {
	return "entries"
}

func (e entry) record() (Record, error) {
	v, err := caltext.Parse(caltext.Kind(e.Kind), e.Value)
	if err != nil {
		return Record{}, fmt.Errorf("%v: %w", e.Name, err)
	}
	return Record{ID: e.ID, Name: e.Name, Value: v, Created: e.Created.V}, nil
}

// Record is a named calendar value.
type Record struct {
	ID      uuid.UUID
	Name    string
	Value   caltext.Value
	Created caltext.TimePoint
}

// Seed is a named value in its text form, as found in configuration files.
type Seed struct {
	Name  string       `yaml:"name"`
	Kind  caltext.Kind `yaml:"kind"`
	Value string       `yaml:"value"`
}

// Store is a store of named calendar values. It is safe for concurrent use.
type Store struct {
	db   *gorm.DB
	opts options
}

type Option func(o *options)

type options struct {
	now func() time.Time
}

// WithClock sets the function used to obtain the creation time of new
// entries.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

// Open opens, creating if necessary, the SQLite database at path.
func Open(ctx context.Context, path string, opts ...Option) (*Store, error) {
	s := &Store{}
	s.opts.now = time.Now
	for _, fn := range opts {
		fn(&s.opts)
	}
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{Logger: logger.Discard})
	if err != nil {
		return nil, fmt.Errorf("failed to open %v: %w", path, err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	// SQLite allows a single writer.
	sqlDB.SetMaxOpenConns(1)
	if err := db.WithContext(ctx).AutoMigrate(&entry{}); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to migrate %v: %w", path, err)
	}
	s.db = db
	ctxlog.Logger(ctx).Info("calstore: opened", "path", path)
	return s, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Put stores v under name, replacing any existing value but retaining its
// identifier and creation time.
func (s *Store) Put(ctx context.Context, name string, v caltext.Value) (Record, error) {
	if len(name) == 0 {
		return Record{}, ErrEmptyName
	}
	kind, text := v.Kind(), v.String()
	// Values such as Month(13) have a text form that does not parse back
	// to the same value.
	if parsed, err := caltext.Parse(kind, text); err != nil || parsed.String() != text {
		return Record{}, fmt.Errorf("%v %q: %w", kind, text, ErrInvalidValue)
	}
	var e entry
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("name = ?", name).Limit(1).Find(&e)
		if err := queryError(res); err != nil {
			return err
		}
		if res.RowsAffected == 0 {
			e = entry{
				ID:      uuid.New(),
				Name:    name,
				Kind:    string(kind),
				Value:   text,
				Created: column.TimePoint{V: caltext.NewTimePoint(s.opts.now(), caltext.ResolutionMillisecond)},
			}
			return queryError(tx.Create(&e))
		}
		e.Kind, e.Value = string(kind), text
		return queryError(tx.Save(&e))
	})
	if err != nil {
		return Record{}, err
	}
	ctxlog.Logger(ctx).Debug("calstore: put", "name", name, "kind", kind, "value", text)
	return e.record()
}

// PutAll parses and stores all of the supplied seeds. Seeds that fail to
// parse or to be stored are reported in the returned errors.M; all others
// are stored.
func (s *Store) PutAll(ctx context.Context, seeds ...Seed) error {
	errs := &errors.M{}
	for _, seed := range seeds {
		v, err := caltext.Parse(seed.Kind, seed.Value)
		if err != nil {
			errs.Append(fmt.Errorf("%v: %w", seed.Name, err))
			continue
		}
		if _, err := s.Put(ctx, seed.Name, v); err != nil {
			errs.Append(fmt.Errorf("%v: %w", seed.Name, err))
		}
	}
	return errs.Err()
}

// Get returns the value stored under name.
func (s *Store) Get(ctx context.Context, name string) (Record, error) {
	var e entry
	res := s.db.WithContext(ctx).Where("name = ?", name).Limit(1).Find(&e)
	if err := queryError(res); err != nil {
		return Record{}, err
	}
	if res.RowsAffected == 0 {
		return Record{}, fmt.Errorf("%q: %w", name, ErrNotFound)
	}
	return e.record()
}

// List returns all values, or only those of the specified kinds, ordered
// by name.
func (s *Store) List(ctx context.Context, kinds ...caltext.Kind) ([]Record, error) {
	var entries []entry
	tx := s.db.WithContext(ctx).Order("name")
	if len(kinds) > 0 {
		names := make([]string, len(kinds))
		for i, k := range kinds {
			names[i] = string(k)
		}
		tx = tx.Where("kind IN ?", names)
	}
	if err := queryError(tx.Find(&entries)); err != nil {
		return nil, err
	}
	records := make([]Record, 0, len(entries))
	for _, e := range entries {
		r, err := e.record()
		if err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, nil
}

// Delete removes the value stored under name.
func (s *Store) Delete(ctx context.Context, name string) error {
	res := s.db.WithContext(ctx).Where("name = ?", name).Delete(&entry{})
	if err := queryError(res); err != nil {
		return err
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%q: %w", name, ErrNotFound)
	}
	ctxlog.Logger(ctx).Debug("calstore: deleted", "name", name)
	return nil
}

const exportQuery = `SELECT id, name, kind, value, created_at FROM entries ORDER BY name`

// Export writes all of the stored values to w as a JSON array of objects,
// one per entry, using the column names as keys.
func (s *Store) Export(ctx context.Context, w io.Writer) error {
	rows, err := s.db.WithContext(ctx).Raw(exportQuery).Rows()
	if err != nil {
		return &QueryError{Query: exportQuery, Err: err}
	}
	defer rows.Close()
	if err := rowjson.Write(w, rows); err != nil {
		return &QueryError{Query: exportQuery, Err: err}
	}
	return nil
}
