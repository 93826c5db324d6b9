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

package engine

import (
	"github.com/asderix/papys/internal/actions"
	"github.com/asderix/papys/internal/model"
)

// runGraph executes an entry action and its status-keyed subtree and
// returns the subtree's final result
func runGraph(req *model.Request, resp *model.Response, a actions.Action) (int, *model.Request, *model.Response) {
	code, rq, rs := a.Process(req, resp)
	return runChildren(code, rq, rs, a.Children())
}

// runChildren selects every child whose trigger equals the parent's status
// code, in declaration order, and executes each child's subtree depth-first
// before moving to the next sibling. The request and response thread
// through the executions: each selected child receives whatever the
// immediately preceding execution emitted, so siblings observe each other's
// mutations. The result of the last executed subtree is the subtree's final
// result; if no child matches, the parent's own result stands.
func runChildren(parentCode int, req *model.Request, resp *model.Response,
	children []actions.Child) (int, *model.Request, *model.Response) {
	code, rq, rs := parentCode, req, resp
	for _, child := range children {
		if child.Trigger != parentCode {
			continue
		}
		code, rq, rs = child.Action.Process(rq, rs)
		code, rq, rs = runChildren(code, rq, rs, child.Action.Children())
	}
	return code, rq, rs
}
