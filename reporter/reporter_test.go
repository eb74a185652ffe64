// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package reporter_test

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bufbuild/exprcompile/reporter"
	"github.com/bufbuild/exprcompile/token"
)

func TestErrorWithPos(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	base := errors.New("boom")
	pos := token.Position{Line: 3, Column: 7, Offset: 20}
	err := reporter.Error(pos, base)

	assert.Equal("3:7: boom", err.Error())
	assert.Equal(pos, err.GetPosition())
	assert.ErrorIs(err, base)

	wrapped := fmt.Errorf("compiling: %w", reporter.Errorf(pos, "bad %s", "thing"))
	got, ok := reporter.PositionOf(wrapped)
	assert.True(ok)
	assert.Equal(pos, got)

	_, ok = reporter.PositionOf(base)
	assert.False(ok)
}

func TestHandlerDefaultFailsFast(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	h := reporter.NewHandler(nil)
	first := reporter.Errorf(token.Start, "first")
	second := reporter.Errorf(token.Start, "second")

	assert.Equal(first, h.HandleError(first))
	assert.Equal(first, h.HandleError(second))
	assert.Equal(first, h.Error())
}

func TestHandlerCollects(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	var (
		mu       sync.Mutex
		errs     []reporter.ErrorWithPos
		warnings int
	)
	rep := reporter.NewReporter(
		func(err reporter.ErrorWithPos) error {
			mu.Lock()
			defer mu.Unlock()
			errs = append(errs, err)
			return nil
		},
		func(reporter.ErrorWithPos) { warnings++ },
	)
	h := reporter.NewHandler(rep)

	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(h.HandleError(reporter.Errorf(token.Start, "error %d", i)))
		}()
	}
	wg.Wait()
	h.HandleWarning(reporter.Errorf(token.Start, "careful"))

	assert.Len(errs, 8)
	assert.Equal(1, warnings)
	assert.ErrorIs(h.Error(), reporter.ErrInvalidSource)
}

func TestHandlerPositionlessError(t *testing.T) {
	t.Parallel()

	called := false
	h := reporter.NewHandler(reporter.NewReporter(func(reporter.ErrorWithPos) error {
		called = true
		return nil
	}, nil))

	plain := errors.New("disk on fire")
	assert.Equal(t, plain, h.HandleError(plain))
	assert.False(t, called)
	assert.Equal(t, plain, h.Error())
}
