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

package hooks

import (
	"net/http"
	"strings"

	"github.com/asderix/papys/internal/model"
)

// missingVariable is inserted when a mapping references a path variable the
// route match did not capture
const missingVariable = "not_found"

// ParamMapHook inserts new entries into the request's path variables based
// on a mapping. A mapping value wrapped in braces refers to an existing path
// variable; any other value is taken literally. Example:
//
//	{"documentId": "{doc_id}", "source": "papys"}
//
// adds documentId with the captured value of doc_id, and source with the
// literal value "papys".
type ParamMapHook struct {
	Base
	mapping     map[string]string
	successCode int
	errorCode   int
}

// NewParamMapHook returns a ParamMapHook for the provided mapping
func NewParamMapHook(mapping map[string]string) *ParamMapHook {
	return &ParamMapHook{
		mapping:     mapping,
		successCode: http.StatusOK,
		errorCode:   http.StatusInternalServerError,
	}
}

// WithStatusCodes overrides the status codes returned on success and fault
func (h *ParamMapHook) WithStatusCodes(success, onError int) *ParamMapHook {
	h.successCode = success
	h.errorCode = onError
	return h
}

// ProcessHook implements the Hook interface
func (h *ParamMapHook) ProcessHook(req *model.Request, resp *model.Response) (bool, int, *model.Request, *model.Response) {
	if h.mapping == nil {
		return false, h.errorCode, req, resp
	}
	for key, value := range h.mapping {
		if strings.HasPrefix(value, "{") && strings.HasSuffix(value, "}") {
			name := value[1 : len(value)-1]
			if captured, ok := req.PathVariables[name]; ok {
				req.PathVariables[key] = captured
			} else {
				req.PathVariables[key] = missingVariable
			}
			continue
		}
		req.PathVariables[key] = value
	}
	return true, h.successCode, req, resp
}
