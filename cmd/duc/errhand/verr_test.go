// Copyright 2019 Dolthub, Inc.
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


package errhand

import (
	"errors"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noColor(t *testing.T) {
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })
}

func TestDErrorBuilder(t *testing.T) {
	noColor(t)

	cause := errors.New("disk on fire")
	verr := BuildDError("could not save %s", "a.duc").
		AddDetails("tried %d times", 3).
		AddDetails("gave up").
		AddCause(cause).
		Build()

	require.NotNil(t, verr)
	assert.Equal(t, "could not save a.duc", verr.Error())
	assert.Equal(t, "could not save a.duc\ntried 3 times\ngave up\ncause:\n\t\tdisk on fire", verr.Verbose())
	assert.False(t, verr.ShouldPrintUsage())
	assert.Equal(t, cause, verr.(*DError).Cause())

	nested := BuildDError("outer").AddCause(BuildDError("inner").AddDetails("line1\nline2").Build()).Build()
	assert.Equal(t, "outer\ncause:\n\t\tinner\n\t\tline1\n\t\tline2", nested.Verbose())
}

func TestBuildIf(t *testing.T) {
	noColor(t)

	assert.Nil(t, BuildIf(nil, "unused").AddDetails("x").SetPrintUsage().Build())

	verr := BuildIf(errors.New("boom"), "failed").SetPrintUsage().Build()
	require.NotNil(t, verr)
	assert.Equal(t, "failed", verr.Error())
	assert.True(t, verr.ShouldPrintUsage())
}

func TestVerboseErrorFromError(t *testing.T) {
	noColor(t)

	assert.Nil(t, VerboseErrorFromError(nil))

	verr := VerboseErrorFromError(errors.New("bad flag"))
	assert.Equal(t, "bad flag", verr.Verbose())
	assert.True(t, verr.ShouldPrintUsage())

	built := BuildDError("already verbose").Build()
	assert.Equal(t, built, VerboseErrorFromError(built))
}

func TestPanicToVError(t *testing.T) {
	noColor(t)

	assert.Nil(t, PanicToVError("unused", func() VerboseError { return nil }))

	verr := PanicToVError("command panicked", func() VerboseError {
		panic("unexpected state")
	})
	require.NotNil(t, verr)
	assert.Equal(t, "command panicked\nunexpected state", verr.Verbose())

	verr = PanicToVError("command panicked", func() VerboseError {
		panic(errors.New("nil map"))
	})
	assert.Equal(t, "command panicked\ncause:\n\t\tnil map", verr.Verbose())

	verr = PanicToVError("error: duc 100% failed", func() VerboseError {
		panic("at 50%s")
	})
	assert.Equal(t, "error: duc 100% failed\nat 50%s", verr.Verbose())
}
