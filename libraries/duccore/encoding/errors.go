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

package encoding

import (
	stderrors "errors"
	"runtime"

	"gopkg.in/src-d/go-errors.v1"
)

// ErrMalformedEntity is returned when an entity is missing a required field,
// either when serializing it or when reading it back.
var ErrMalformedEntity = errors.NewKind("malformed %s: %s")

// ErrTruncatedBuffer is returned when a buffer is shorter than the offsets it
// contains claim.
var ErrTruncatedBuffer = errors.NewKind("buffer truncated or corrupt: %v")

// ErrUnknownVariant is returned when an element's discriminant does not name
// a known element variant.
var ErrUnknownVariant = errors.NewKind("unknown element variant %d")

// ErrInvalidSubstructure is returned when a container's mandatory stack base
// is missing or incomplete.
var ErrInvalidSubstructure = errors.NewKind("invalid %s %q: %s")

// ErrNotDucDocument is returned when a buffer carries an unexpected file
// identifier.
var ErrNotDucDocument = errors.NewKind("expected a %q buffer, found file identifier %q")

// IsKind reports whether |err| or any error it wraps is of |kind|. Use it
// instead of Kind.Is on errors that have been wrapped with context.
func IsKind(err error, kind *errors.Kind) bool {
	var e *errors.Error
	return stderrors.As(err, &e) && kind.Is(e)
}

// recoverTruncation converts a runtime panic raised while reading past the
// end of a buffer into ErrTruncatedBuffer. It must be deferred directly.
func recoverTruncation(err *error) {
	r := recover()
	if r == nil {
		return
	}
	if re, ok := r.(runtime.Error); ok {
		*err = ErrTruncatedBuffer.New(re.Error())
		return
	}
	panic(r)
}
