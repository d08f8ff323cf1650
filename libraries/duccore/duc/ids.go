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

package duc

import (
	"crypto/rand"
	"encoding/binary"
	mrand "math/rand"
	"sync"

	"github.com/google/uuid"
)

// IDGenerator mints element ids and render seeds. Implementations are safe for
// concurrent use.
type IDGenerator interface {
	NewID() string
	NewSeed() int32
}

type randomIDGenerator struct{}

// NewRandomIDGenerator returns an IDGenerator backed by the system's secure
// random source.
func NewRandomIDGenerator() IDGenerator {
	return randomIDGenerator{}
}

func (randomIDGenerator) NewID() string {
	return uuid.NewString()
}

func (randomIDGenerator) NewSeed() int32 {
	var b [4]byte
	if _, err := rand.Read(b[:]); err != nil {
		panic(err)
	}
	return int32(binary.LittleEndian.Uint32(b[:]) & 0x7fffffff)
}

type seededIDGenerator struct {
	mu  *sync.Mutex
	rnd *mrand.Rand
}

// NewSeededIDGenerator returns an IDGenerator whose sequence of ids and seeds
// is fully determined by |seed|.
func NewSeededIDGenerator(seed int64) IDGenerator {
	return &seededIDGenerator{
		mu:  &sync.Mutex{},
		rnd: mrand.New(mrand.NewSource(seed)),
	}
}

func (g *seededIDGenerator) NewID() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	id, err := uuid.NewRandomFromReader(g.rnd)
	if err != nil {
		// *rand.Rand never fails a read
		panic(err)
	}
	return id.String()
}

func (g *seededIDGenerator) NewSeed() int32 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rnd.Int31()
}
