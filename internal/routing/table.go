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
	"fmt"

	"github.com/asderix/papys/internal/actions"
	"github.com/asderix/papys/internal/hooks"
)

// Resolution is the outcome of a successful route lookup: the entry action,
// the bound hook chain head (may be nil), and the path variables captured
// from the matched template
type Resolution struct {
	Action    actions.Action
	Hook      hooks.Hook
	Variables map[string]string
}

// entry binds one compiled template to its entry action and hook chain
type entry struct {
	matcher Matcher
	action  actions.Action
	hook    hooks.Hook
}

// Table holds one ordered entry list per dispatched HTTP method. Within a
// method's list the first template that fully matches a request path wins;
// there is no specificity-based disambiguation. The Table is expected to be
// fully populated before request serving begins; registering routes while
// lookups are being served is unsupported.
type Table struct {
	entries map[string][]entry
}

// NewTable returns an empty route Table
func NewTable() *Table {
	t := &Table{entries: make(map[string][]entry)}
	for _, m := range Methods() {
		t.entries[m] = []entry{}
	}
	return t
}

// Register compiles the template and appends an entry to the method's
// ordered list. Re-registering the identical (method, template) pair
// overwrites the prior entry in place; the last registration wins.
func (t *Table) Register(method, template string, action actions.Action, hook hooks.Hook) error {
	if !IsSupportedMethod(method) {
		return fmt.Errorf("%w: %s", ErrUnsupportedMethod, method)
	}
	if action == nil {
		return fmt.Errorf("%w: %s %s", ErrNilAction, method, template)
	}
	m, err := Compile(template)
	if err != nil {
		return err
	}

	list := t.entries[method]
	for i := range list {
		if list[i].matcher.Template() == template {
			list[i] = entry{matcher: m, action: action, hook: hook}
			return nil
		}
	}
	t.entries[method] = append(list, entry{matcher: m, action: action, hook: hook})
	return nil
}

// Lookup scans the method's ordered entries and returns the first full
// match along with the captured path variables and bound hook
func (t *Table) Lookup(method, path string) (*Resolution, bool) {
	for _, e := range t.entries[method] {
		if variables, ok := e.matcher.Match(path); ok {
			return &Resolution{Action: e.action, Hook: e.hook, Variables: variables}, true
		}
	}
	return nil, false
}

// MatchesOther returns true if the path matches a template registered under
// any method other than the provided one. The dispatcher uses this to
// distinguish Method Not Allowed from Not Found.
func (t *Table) MatchesOther(method, path string) bool {
	for _, m := range Methods() {
		if m == method {
			continue
		}
		for _, e := range t.entries[m] {
			if _, ok := e.matcher.Match(path); ok {
				return true
			}
		}
	}
	return false
}

// Len returns the number of entries registered under the provided method
func (t *Table) Len(method string) int {
	return len(t.entries[method])
}
