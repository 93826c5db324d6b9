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
	"fmt"
	"net/http"

	"github.com/asderix/papys/internal/model"

	tl "github.com/asderix/papys/internal/util/log"
)

// HookFunc is the signature of a user-provided guard function
type HookFunc func(req *model.Request, resp *model.Response) (bool, int, *model.Request, *model.Response)

// FunctionHook runs a user-provided guard function. A panic inside the
// function is recovered at the hook boundary and converted to a rejection
// with the hook's configured error code.
type FunctionHook struct {
	Base
	fn        HookFunc
	errorCode int
}

// NewFunctionHook returns a FunctionHook for the provided guard function
func NewFunctionHook(fn HookFunc) *FunctionHook {
	return &FunctionHook{fn: fn, errorCode: http.StatusInternalServerError}
}

// WithErrorCode overrides the status code returned when the guard function
// faults; the default is 500
func (h *FunctionHook) WithErrorCode(code int) *FunctionHook {
	h.errorCode = code
	return h
}

// ProcessHook implements the Hook interface
func (h *FunctionHook) ProcessHook(req *model.Request, resp *model.Response) (ok bool, code int,
	rq *model.Request, rs *model.Response) {
	ok, code, rq, rs = false, h.errorCode, req, resp
	if h.fn == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			err := fmt.Errorf("function hook fault: %v", r)
			if req.Logger != nil {
				req.Logger.Error("function hook could not be processed",
					tl.Pairs{"detail": err.Error(), "processId": req.ProcessID})
			}
			resp.SetError(err)
			ok, code, rq, rs = false, h.errorCode, req, resp
		}
	}()
	ok, code, rq, rs = h.fn(req, resp)
	return
}
