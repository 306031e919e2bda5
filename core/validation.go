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


package core

import (
	"fmt"
	"strings"
)

// Field names reported by ValidationError.
const (
	FieldLabel       = "label"
	FieldKeywordText = "keyword_text"
	FieldNote        = "note"
)

// ValidateFields checks the three user-supplied record fields.
//
// Validation rules:
//   - Label must not be blank after trimming whitespace
//   - KeywordText must not be blank after trimming whitespace
//   - Note must not be blank after trimming whitespace
//
// The Id field is not validated here; ids are assigned by the catalog.
func ValidateFields(label, keywordText, note string) error {
	if strings.TrimSpace(label) == "" {
		return fmt.Errorf("%w: %w", ErrInvalidRecord, &ValidationError{Field: FieldLabel})
	}
	if strings.TrimSpace(keywordText) == "" {
		return fmt.Errorf("%w: %w", ErrInvalidRecord, &ValidationError{Field: FieldKeywordText})
	}
	if strings.TrimSpace(note) == "" {
		return fmt.Errorf("%w: %w", ErrInvalidRecord, &ValidationError{Field: FieldNote})
	}
	return nil
}

// ValidateRecord validates a Record according to domain rules.
func ValidateRecord(record *Record) error {
	if record == nil {
		return fmt.Errorf("%w: record is nil", ErrInvalidRecord)
	}
	return ValidateFields(record.Label, record.KeywordText, record.Note)
}
