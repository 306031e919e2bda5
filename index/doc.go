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


// Package index builds term-weighted vector models over a corpus of
// keyword texts.
//
// The weighting is tf-idf with additive idf smoothing:
//
//	idf(t) = ln(N / df(t)) + 1
//
// where N is the number of documents and df(t) the number of documents
// containing term t. Term frequency is the raw in-document count, and each
// document's weight vector is L2-normalized, so cosine similarity between
// unit vectors reduces to a dot product. The +1 keeps terms that appear in
// every document from vanishing, and df is never zero for a corpus term.
//
// A Model is immutable once fitted. Corpus changes require a full refit:
// new vocabulary shifts the inverse-frequency term for every document, not
// just the one that introduced it.
package index
