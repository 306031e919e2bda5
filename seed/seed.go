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


// Package seed ships the built-in condition catalog as embedded YAML.
package seed

import (
	"fmt"

	_ "embed"

	"github.com/poiesic/lexrank/core"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var catalogYAML []byte

type entry struct {
	Label    string `yaml:"label"`
	Keywords string `yaml:"keywords"`
	Note     string `yaml:"note"`
}

// Records decodes the embedded catalog into seed records. Ids follow file
// order; the catalog constructor validates and reassigns them anyway.
func Records() ([]*core.Record, error) {
	var entries []entry
	if err := yaml.Unmarshal(catalogYAML, &entries); err != nil {
		return nil, fmt.Errorf("decoding seed catalog: %w", err)
	}

	records := make([]*core.Record, len(entries))
	for i, e := range entries {
		records[i] = &core.Record{
			Id:          i,
			Label:       e.Label,
			KeywordText: e.Keywords,
			Note:        e.Note,
		}
	}
	return records, nil
}
