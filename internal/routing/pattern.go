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

// Package routing provides path template compilation and the per-method
// route table for the Papys dispatch engine
package routing

import (
	"fmt"
	"regexp"
)

// placeholder matches a {name} segment variable in a path template
var placeholder = regexp.MustCompile(`\{(\w+)\}`)

// Matcher matches concrete request paths against one compiled path
// template, capturing named path variables. It is an interface so that the
// regex-backed implementation can be swapped without touching the
// dispatcher.
type Matcher interface {
	// Match performs a full-string match of path against the template and
	// returns the captured variables. No percent-decoding, type coercion or
	// trailing-slash normalization is applied; captured values are always
	// raw strings.
	Match(path string) (map[string]string, bool)
	// Template returns the template string the Matcher was compiled from
	Template() string
}

// Compile turns a path template into a Matcher. Each {name} placeholder
// becomes a named capture of one path segment; everything else passes
// through untouched, so a template may embed raw regular expression syntax
// directly. Variable names must be unique within one template.
func Compile(template string) (Matcher, error) {
	seen := make(map[string]bool)
	for _, m := range placeholder.FindAllStringSubmatch(template, -1) {
		if seen[m[1]] {
			return nil, fmt.Errorf("%w: %s in template %s", ErrDuplicateVariable, m[1], template)
		}
		seen[m[1]] = true
	}

	expr := placeholder.ReplaceAllString(template, `(?P<$1>[^/]+)`)
	re, err := regexp.Compile("^(?:" + expr + ")$")
	if err != nil {
		return nil, fmt.Errorf("invalid path template %s: %w", template, err)
	}

	return &regexMatcher{template: template, re: re}, nil
}

// regexMatcher is the regex-backed Matcher implementation
type regexMatcher struct {
	template string
	re       *regexp.Regexp
}

func (m *regexMatcher) Match(path string) (map[string]string, bool) {
	groups := m.re.FindStringSubmatch(path)
	if groups == nil {
		return nil, false
	}
	variables := make(map[string]string)
	for i, name := range m.re.SubexpNames() {
		if name != "" && i < len(groups) {
			variables[name] = groups[i]
		}
	}
	return variables, true
}

func (m *regexMatcher) Template() string {
	return m.template
}
