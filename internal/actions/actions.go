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

// Package actions provides the request-handling units of the dispatch
// graph. Each action produces a status code, and its children are keyed by
// the status code that triggers them.
package actions

import (
	"fmt"
	"net/http"

	"github.com/asderix/papys/internal/model"

	tl "github.com/asderix/papys/internal/util/log"
)

// Action is one handling unit in the dispatch graph
type Action interface {
	// Process runs the unit's logic. The returned request and response
	// thread into whichever node executes next.
	Process(req *model.Request, resp *model.Response) (int, *model.Request, *model.Response)
	// Children returns the node's declared children in declaration order
	Children() []Child
}

// Child binds a follow-up action to the status code that triggers it.
// Multiple children may share the same trigger code; they execute in
// declaration order.
type Child struct {
	Trigger int
	Action  Action
}

// Base provides the child list shared by all action implementations
type Base struct {
	// Name describes the action in log events; it carries no behavior
	Name string

	children []Child
}

// Children returns the declared children in declaration order
func (b *Base) Children() []Child {
	return b.children
}

// WithChild declares a child action triggered by the provided status code.
// The returned Base allows further WithChild calls to be chained.
func (b *Base) WithChild(trigger int, child Action) *Base {
	b.children = append(b.children, Child{Trigger: trigger, Action: child})
	return b
}

// ProcessFunc is the signature of a user-provided handling function
type ProcessFunc func(req *model.Request, resp *model.Response) (int, *model.Request, *model.Response)

// FuncAction runs a user-provided handling function. For most handling
// logic no dedicated Action implementation is needed; write a function and
// wrap it in a FuncAction. A panic inside the function is recovered at the
// action boundary, attached to the response as the fault cause, and
// converted to the action's configured error code.
type FuncAction struct {
	Base
	fn        ProcessFunc
	errorCode int
}

// NewFuncAction returns a FuncAction running the provided function
func NewFuncAction(name string, fn ProcessFunc) *FuncAction {
	return &FuncAction{Base: Base{Name: name}, fn: fn, errorCode: http.StatusInternalServerError}
}

// WithErrorCode overrides the status code produced when the function
// faults; the default is 500
func (a *FuncAction) WithErrorCode(code int) *FuncAction {
	a.errorCode = code
	return a
}

// Process implements the Action interface
func (a *FuncAction) Process(req *model.Request, resp *model.Response) (code int,
	rq *model.Request, rs *model.Response) {
	code, rq, rs = a.errorCode, req, resp
	if a.fn == nil {
		resp.SetError(fmt.Errorf("action %q has no process function", a.Name))
		return
	}
	defer func() {
		if r := recover(); r != nil {
			err := fmt.Errorf("action fault: %v", r)
			if req.Logger != nil {
				req.Logger.Error("action could not be processed",
					tl.Pairs{"action": a.Name, "detail": err.Error(), "processId": req.ProcessID})
			}
			resp.SetError(err)
			code, rq, rs = a.errorCode, req, resp
		}
	}()
	code, rq, rs = a.fn(req, resp)
	return
}
