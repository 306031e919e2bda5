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


// Package rank answers "which catalog records are most similar to this
// query" over a term-weighted corpus model.
//
// The Ranker projects the query into the catalog's term space, scores
// every record by cosine similarity, and returns the top results sorted by
// score with insertion order breaking exact ties. Each result carries
// evidence: the literal token overlap between query and record keywords,
// computed independently of the weighted score and shown for human
// interpretability only.
//
// Ranking is total over any query string. Unrecognized vocabulary scores
// zero rather than failing; an empty or whitespace-only query returns no
// results.
package rank
