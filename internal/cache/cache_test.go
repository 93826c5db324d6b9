/*
 * Copyright 2024 The Papys Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package cache

import (
	"testing"

	"github.com/asderix/papys/internal/actions"
	"github.com/asderix/papys/internal/routing"
	"github.com/asderix/papys/internal/util/metrics"
)

func init() {
	metrics.Init()
}

func testResolution(name string) *routing.Resolution {
	return &routing.Resolution{
		Action:    actions.NewDummyAction(name),
		Variables: map[string]string{"id": name},
	}
}

func TestCheckAndAdd(t *testing.T) {
	c := New(10)

	if _, ok := c.Check(routing.MethodGet, "/user/1"); ok {
		t.Error("expected a miss on the empty cache")
	}

	r := testResolution("one")
	c.Add(routing.MethodGet, "/user/1", r)

	got, ok := c.Check(routing.MethodGet, "/user/1")
	if !ok {
		t.Fatal("expected a hit")
	}
	if got != r {
		t.Error("expected the stored resolution")
	}

	// the same path under another method is a separate bucket
	if _, ok := c.Check(routing.MethodPost, "/user/1"); ok {
		t.Error("expected a miss under POST")
	}
}

func TestClearOnOverflow(t *testing.T) {
	c := New(2)
	c.Add(routing.MethodGet, "/a", testResolution("a"))
	c.Add(routing.MethodGet, "/b", testResolution("b"))
	if c.Len(routing.MethodGet) != 2 {
		t.Fatalf("wanted 2 entries got %d", c.Len(routing.MethodGet))
	}

	// the bucket is at capacity; the next insert clears it in full
	c.Add(routing.MethodGet, "/c", testResolution("c"))
	if c.Len(routing.MethodGet) != 1 {
		t.Errorf("wanted 1 entry after the clear, got %d", c.Len(routing.MethodGet))
	}
	if _, ok := c.Check(routing.MethodGet, "/a"); ok {
		t.Error("expected the pre-clear entry to be gone")
	}
	if _, ok := c.Check(routing.MethodGet, "/c"); !ok {
		t.Error("expected the triggering entry to be present")
	}
}

func TestBucketsAreIndependent(t *testing.T) {
	c := New(2)
	c.Add(routing.MethodGet, "/a", testResolution("a"))
	c.Add(routing.MethodGet, "/b", testResolution("b"))

	// an overflow under POST must not clear the GET bucket
	c.Add(routing.MethodPost, "/a", testResolution("a"))
	c.Add(routing.MethodPost, "/b", testResolution("b"))
	c.Add(routing.MethodPost, "/c", testResolution("c"))

	if c.Len(routing.MethodGet) != 2 {
		t.Errorf("wanted the GET bucket untouched, got %d entries", c.Len(routing.MethodGet))
	}
	if c.Len(routing.MethodPost) != 1 {
		t.Errorf("wanted 1 POST entry after the clear, got %d", c.Len(routing.MethodPost))
	}
}

func TestUnsupportedMethodBucket(t *testing.T) {
	c := New(2)
	c.Add("PATCH", "/a", testResolution("a"))
	if _, ok := c.Check("PATCH", "/a"); ok {
		t.Error("expected no bucket for an undispatched method")
	}
}

func TestOverwrite(t *testing.T) {
	c := New(10)
	c.Add(routing.MethodGet, "/a", testResolution("old"))
	repl := testResolution("new")
	c.Add(routing.MethodGet, "/a", repl)

	got, ok := c.Check(routing.MethodGet, "/a")
	if !ok || got != repl {
		t.Error("expected the replacement resolution")
	}
	if c.Len(routing.MethodGet) != 1 {
		t.Errorf("wanted 1 entry got %d", c.Len(routing.MethodGet))
	}
}
