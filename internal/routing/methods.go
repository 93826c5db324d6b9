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

// HTTP methods dispatched by the engine
const (
	MethodGet    = "GET"
	MethodPost   = "POST"
	MethodPut    = "PUT"
	MethodDelete = "DELETE"
)

// Methods returns the HTTP methods dispatched by the engine
func Methods() []string {
	return []string{MethodGet, MethodPost, MethodPut, MethodDelete}
}

// IsSupportedMethod returns true if the provided HTTP method is dispatched
// by the engine
func IsSupportedMethod(method string) bool {
	switch method {
	case MethodGet, MethodPost, MethodPut, MethodDelete:
		return true
	}
	return false
}
