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

package routing

import (
	"github.com/asderix/papys/internal/actions"
	"github.com/asderix/papys/internal/hooks"
)

// MethodAction binds an entry action to one HTTP method of a route
type MethodAction struct {
	Method string
	Action actions.Action
}

// Route declares a path template, the entry actions bound to it per HTTP
// method, an optional guard hook, and any nested sub-routes. Build routes
// with the With* methods and hand the root to Table.AddRoute; a sub-route's
// effective path is the concatenation of its ancestors' paths and its own.
//
// Start a path with a slash and end it without one, so concatenated
// sub-route paths stay unambiguous.
type Route struct {
	path      string
	hook      hooks.Hook
	actions   []MethodAction
	subRoutes []*Route
}

// NewRoute returns a Route for the provided path template
func NewRoute(path string) *Route {
	return &Route{path: path}
}

// Path returns the route's own (un-prefixed) path template
func (r *Route) Path() string {
	return r.path
}

// WithHook guards the route with the provided hook chain. The hook runs
// before the route's entry actions and before any sub-route's own hook.
func (r *Route) WithHook(h hooks.Hook) *Route {
	r.hook = h
	return r
}

// WithAction binds an entry action to the provided HTTP method
func (r *Route) WithAction(method string, a actions.Action) *Route {
	r.actions = append(r.actions, MethodAction{Method: method, Action: a})
	return r
}

// WithSubroute nests a child route under this route
func (r *Route) WithSubroute(child *Route) *Route {
	r.subRoutes = append(r.subRoutes, child)
	return r
}

// AddRoute registers the route and, recursively, its sub-routes. A
// sub-route's path is prefixed with its ancestors' paths, and its hook is
// chained after its ancestors' hooks, so a rejecting parent hook prevents a
// child's hook from ever running.
func (t *Table) AddRoute(r *Route) error {
	return t.addRoute("", nil, r)
}

func (t *Table) addRoute(prefix string, parentHook hooks.Hook, r *Route) error {
	effectiveHook := hooks.Append(parentHook, r.hook)
	path := prefix + r.path
	for _, ma := range r.actions {
		if err := t.Register(ma.Method, path, ma.Action, effectiveHook); err != nil {
			return err
		}
	}
	for _, child := range r.subRoutes {
		if err := t.addRoute(path, effectiveHook, child); err != nil {
			return err
		}
	}
	return nil
}
