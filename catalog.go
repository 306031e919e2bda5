// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// Package lexrank ranks a catalog of labeled keyword records against
// free-text queries by lexical tf-idf similarity.
package lexrank

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"

	"github.com/poiesic/lexrank/core"
	"github.com/poiesic/lexrank/index"
	"github.com/poiesic/lexrank/rank"
)

// Catalog owns the record list and the term-weight model derived from it.
// The two always agree: every mutation rebuilds the model under the same
// write lock before the next query can observe either.
type Catalog struct {
	mu      sync.RWMutex
	records []*core.Record
	model   *index.Model
	logger  *slog.Logger
}

var _ rank.CatalogView = (*Catalog)(nil)

// Option configures a Catalog.
type Option func(*Catalog) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(c *Catalog) error {
		if logger == nil {
			logger = slog.Default()
		}
		c.logger = logger
		return nil
	}
}

// New constructs a Catalog from seed records and fits the initial model.
// Every seed record must pass validation; a blank field anywhere is a
// construction-time error, not silently dropped data. Ids are reassigned
// from insertion order.
func New(seed []*core.Record, opts ...Option) (*Catalog, error) {
	records := make([]*core.Record, 0, len(seed))
	for i, r := range seed {
		if err := core.ValidateRecord(r); err != nil {
			return nil, fmt.Errorf("seed record %d: %w", i, err)
		}
		records = append(records, &core.Record{
			Id:          i,
			Label:       strings.TrimSpace(r.Label),
			KeywordText: strings.TrimSpace(r.KeywordText),
			Note:        strings.TrimSpace(r.Note),
		})
	}

	c := &Catalog{
		records: records,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	c.model = index.Fit(keywordTexts(records))
	c.logger.Debug("catalog initialized",
		"records", len(records), "terms", c.model.Terms(), "revision", c.model.Revision())

	return c, nil
}

// AddRecord validates, trims, and appends a record with the next ordinal
// id, then rebuilds the term-weight model before releasing the write lock.
// A validation failure leaves both catalog and model untouched.
func (c *Catalog) AddRecord(label, keywordText, note string) (*core.Record, error) {
	if err := core.ValidateFields(label, keywordText, note); err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	record := &core.Record{
		Id:          len(c.records),
		Label:       strings.TrimSpace(label),
		KeywordText: strings.TrimSpace(keywordText),
		Note:        strings.TrimSpace(note),
	}

	// Copy-on-write: snapshots handed to rankers stay immutable.
	records := append(slices.Clone(c.records), record)
	model := index.Fit(keywordTexts(records))

	c.records = records
	c.model = model
	c.logger.Info("record added",
		"id", record.Id, "label", record.Label, "records", len(records), "revision", model.Revision())

	return record, nil
}

// Records returns a copy of the current record list in catalog order.
func (c *Catalog) Records() []*core.Record {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.records)
}

// Len returns the current number of records.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.records)
}

// Snapshot returns the live (records, model) pair under the read lock.
// Both sides were produced together, so row counts always agree. Callers
// must not mutate the returned slice.
func (c *Catalog) Snapshot() ([]*core.Record, *index.Model) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.records, c.model
}

// NewRanker wires a ranker to this catalog.
func (c *Catalog) NewRanker(opts ...rank.Option) (*rank.Ranker, error) {
	return rank.NewRanker(c, opts...)
}

func keywordTexts(records []*core.Record) []string {
	texts := make([]string, len(records))
	for i, r := range records {
		texts[i] = r.KeywordText
	}
	return texts
}
