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
)

// errorBody is the JSON document produced by ErrorAction
type errorBody struct {
	ErrorCode    int    `json:"errorCode"`
	ErrorMessage string `json:"errorMessage"`
}

// ErrorAction turns a fault recorded on the response into an error document.
// Attach it to the status codes of the dispatch graph where faults surface;
// if it runs without a recorded fault it says so in the produced document,
// which usually means the graph wiring needs another look.
type ErrorAction struct {
	Base
	successCode int
	errorCode   int
}

// NewErrorAction returns an ErrorAction
func NewErrorAction(name string) *ErrorAction {
	return &ErrorAction{
		Base:        Base{Name: name},
		successCode: http.StatusOK,
		errorCode:   http.StatusInternalServerError,
	}
}

// WithStatusCodes overrides the status codes produced with and without a
// recorded fault
func (a *ErrorAction) WithStatusCodes(success, onError int) *ErrorAction {
	a.successCode = success
	a.errorCode = onError
	return a
}

// Process implements the Action interface
func (a *ErrorAction) Process(req *model.Request, resp *model.Response) (int, *model.Request, *model.Response) {
	if resp.IsError {
		msg := ""
		if resp.Err != nil {
			msg = resp.Err.Error()
		}
		b, _ := json.Marshal(errorBody{ErrorCode: resp.StatusCode, ErrorMessage: msg})
		resp.JSON = string(b)
		resp.StatusCode = a.errorCode
		return a.errorCode, req, resp
	}
	b, _ := json.Marshal(errorBody{
		ErrorCode:    -1,
		ErrorMessage: "error action called but no error found, validate your dispatch graph",
	})
	resp.JSON = string(b)
	resp.StatusCode = a.successCode
	return a.successCode, req, resp
}
