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

// Package hooks provides the guard units that run ahead of a route's action
// graph, and the chain semantics that bind them together
package hooks

import (
	"github.com/asderix/papys/internal/model"
)

// Hook is a pre-processing guard unit. ProcessHook returns false in its
// first value to abort the dispatch with the returned status code; the
// returned request and response thread into the next hook in the chain.
type Hook interface {
	ProcessHook(req *model.Request, resp *model.Response) (bool, int, *model.Request, *model.Response)
	Next() Hook
}

// Base provides the singly linked successor reference shared by all hook
// implementations. Embed it and the chain plumbing comes for free.
type Base struct {
	next Hook
}

// Next returns the hook's successor in the chain, if any
func (b *Base) Next() Hook {
	return b.next
}

// SetNext links the provided hook as this hook's only successor
func (b *Base) SetNext(h Hook) {
	b.next = h
}

// Run walks the chain starting at h. The first hook returning false ends the
// walk and its result is final; otherwise each hook's (possibly mutated)
// request and response feed its successor, and the tail's result is final.
func Run(h Hook, req *model.Request, resp *model.Response) (bool, int, *model.Request, *model.Response) {
	ok, code, rq, rs := h.ProcessHook(req, resp)
	if !ok {
		return false, code, rq, rs
	}
	if next := h.Next(); next != nil {
		return Run(next, rq, rs)
	}
	return true, code, rq, rs
}

// Append composes two chains so that all of a runs before any of b, without
// mutating either chain. Route composition uses this to prefix a parent's
// hook onto each sub-route, so a parent hook guarding several sub-routes is
// never relinked in place.
func Append(a, b Hook) Hook {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	return &link{h: a, next: b}
}

// Chain links the provided hooks in order and returns the head of the
// resulting chain
func Chain(hs ...Hook) Hook {
	var out Hook
	for i := len(hs) - 1; i >= 0; i-- {
		out = Append(hs[i], out)
	}
	return out
}

// link is a non-mutating view of one chain followed by another
type link struct {
	h    Hook
	next Hook
}

func (l *link) ProcessHook(req *model.Request, resp *model.Response) (bool, int, *model.Request, *model.Response) {
	return l.h.ProcessHook(req, resp)
}

func (l *link) Next() Hook {
	if n := l.h.Next(); n != nil {
		return &link{h: n, next: l.next}
	}
	return l.next
}
