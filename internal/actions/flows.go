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

package actions

import (
	"net/http"

	"github.com/asderix/papys/internal/model"
)

// RedirectAction sets the Location header to the configured URL and
// produces the configured redirect status code
type RedirectAction struct {
	Base
	url          string
	redirectCode int
}

// NewRedirectAction returns a RedirectAction targeting the provided URL
// with a 302 status
func NewRedirectAction(name, url string) *RedirectAction {
	return &RedirectAction{Base: Base{Name: name}, url: url, redirectCode: http.StatusFound}
}

// WithRedirectCode overrides the redirect status code; the default is 302
func (a *RedirectAction) WithRedirectCode(code int) *RedirectAction {
	a.redirectCode = code
	return a
}

// Process implements the Action interface
func (a *RedirectAction) Process(req *model.Request, resp *model.Response) (int, *model.Request, *model.Response) {
	resp.SetHeader("Location", a.url)
	resp.StatusCode = a.redirectCode
	return a.redirectCode, req, resp
}
