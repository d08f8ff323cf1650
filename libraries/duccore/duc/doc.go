// Copyright 2025 Ducflair
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

// Package duc contains the in-memory model of a duc document: the closed set
// of element variants, the stack-like containers (groups, regions, layers,
// frames and plots), reusable blocks, document and session state, the
// annotation dictionary and the renderer's soft-delete bookkeeping.
//
// The model carries no wire concerns. Package encoding turns a Document into
// a flatbuffers buffer and back.
package duc
