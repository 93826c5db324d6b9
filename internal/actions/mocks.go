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

// DummyAction does nothing and produces 200. It exists for test purposes.
type DummyAction struct {
	Base
}

// NewDummyAction returns a DummyAction
func NewDummyAction(name string) *DummyAction {
	return &DummyAction{Base: Base{Name: name}}
}

// Process implements the Action interface
func (a *DummyAction) Process(req *model.Request, resp *model.Response) (int, *model.Request, *model.Response) {
	return http.StatusOK, req, resp
}

// PostBounceAction writes the request's decoded JSON body back to the
// response unchanged. It exists for test purposes.
type PostBounceAction struct {
	Base
	successCode int
}

// NewPostBounceAction returns a PostBounceAction
func NewPostBounceAction(name string) *PostBounceAction {
	return &PostBounceAction{Base: Base{Name: name}, successCode: http.StatusOK}
}

// Process implements the Action interface
func (a *PostBounceAction) Process(req *model.Request, resp *model.Response) (int, *model.Request, *model.Response) {
	resp.ToConvert = req.BodyJSON
	return a.successCode, req, resp
}
