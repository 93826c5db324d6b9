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
	"encoding/json"
	"net/http"

	"github.com/asderix/papys/internal/model"

	tl "github.com/asderix/papys/internal/util/log"
)

// StaticJSONAction writes a fixed JSON document to the response. Useful for
// tests, and for production endpoints that deliver short static content.
type StaticJSONAction struct {
	Base
	payload     interface{}
	successCode int
	errorCode   int
}

// NewStaticJSONAction returns a StaticJSONAction delivering the provided value
func NewStaticJSONAction(name string, payload interface{}) *StaticJSONAction {
	return &StaticJSONAction{
		Base:        Base{Name: name},
		payload:     payload,
		successCode: http.StatusOK,
		errorCode:   http.StatusInternalServerError,
	}
}

// WithStatusCodes overrides the status codes produced on success and fault
func (a *StaticJSONAction) WithStatusCodes(success, onError int) *StaticJSONAction {
	a.successCode = success
	a.errorCode = onError
	return a
}

// Process implements the Action interface
func (a *StaticJSONAction) Process(req *model.Request, resp *model.Response) (int, *model.Request, *model.Response) {
	b, err := json.Marshal(a.payload)
	if err != nil {
		if req.Logger != nil {
			req.Logger.Error("static json action could not be processed",
				tl.Pairs{"action": a.Name, "detail": err.Error(), "processId": req.ProcessID})
		}
		resp.SetError(err)
		return a.errorCode, req, resp
	}
	resp.ToConvert = a.payload
	resp.JSON = string(b)
	resp.StatusCode = a.successCode
	return a.successCode, req, resp
}
