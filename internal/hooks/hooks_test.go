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
	"testing"

	"github.com/asderix/papys/internal/model"
)

func testPair() (*model.Request, *model.Response) {
	return model.NewRequest("GET", "/test"), model.NewResponse()
}

func continueHook(name string, order *[]string, code int) *FunctionHook {
	return NewFunctionHook(
		func(req *model.Request, resp *model.Response) (bool, int, *model.Request, *model.Response) {
			*order = append(*order, name)
			return true, code, req, resp
		})
}

func rejectHook(name string, order *[]string, code int) *FunctionHook {
	return NewFunctionHook(
		func(req *model.Request, resp *model.Response) (bool, int, *model.Request, *model.Response) {
			*order = append(*order, name)
			return false, code, req, resp
		})
}

func TestRunShortCircuit(t *testing.T) {
	var order []string
	h1 := continueHook("h1", &order, 200)
	h2 := rejectHook("h2", &order, 401)
	h3 := continueHook("h3", &order, 200)
	h1.SetNext(h2)
	h2.SetNext(h3)

	req, resp := testPair()
	ok, code, _, _ := Run(h1, req, resp)
	if ok {
		t.Error("expected the chain to reject")
	}
	if code != 401 {
		t.Errorf("wanted 401 got %d", code)
	}
	if len(order) != 2 || order[0] != "h1" || order[1] != "h2" {
		t.Errorf("wanted [h1 h2] got %v", order)
	}
}

func TestRunTailResultIsFinal(t *testing.T) {
	var order []string
	h1 := continueHook("h1", &order, 200)
	h2 := continueHook("h2", &order, 204)
	h1.SetNext(h2)

	req, resp := testPair()
	ok, code, _, _ := Run(h1, req, resp)
	if !ok {
		t.Error("expected the chain to continue")
	}
	if code != 204 {
		t.Errorf("wanted the tail's 204 got %d", code)
	}
}

func TestRunThreadsMutations(t *testing.T) {
	h1 := NewFunctionHook(
		func(req *model.Request, resp *model.Response) (bool, int, *model.Request, *model.Response) {
			req.ProcessData["who"] = "h1"
			return true, 200, req, resp
		})
	var seen interface{}
	h2 := NewFunctionHook(
		func(req *model.Request, resp *model.Response) (bool, int, *model.Request, *model.Response) {
			seen = req.ProcessData["who"]
			return true, 200, req, resp
		})
	h1.SetNext(h2)

	req, resp := testPair()
	Run(h1, req, resp)
	if seen != "h1" {
		t.Errorf("wanted the successor to observe h1's mutation, got %v", seen)
	}
}

func TestFunctionHookFault(t *testing.T) {
	h := NewFunctionHook(
		func(req *model.Request, resp *model.Response) (bool, int, *model.Request, *model.Response) {
			panic("boom")
		})

	req, resp := testPair()
	ok, code, _, rs := h.ProcessHook(req, resp)
	if ok {
		t.Error("expected a faulting hook to reject")
	}
	if code != 500 {
		t.Errorf("wanted 500 got %d", code)
	}
	if !rs.IsError || rs.Err == nil {
		t.Error("expected the fault cause on the response")
	}
}

func TestFunctionHookErrorCode(t *testing.T) {
	h := NewFunctionHook(
		func(req *model.Request, resp *model.Response) (bool, int, *model.Request, *model.Response) {
			panic("boom")
		}).WithErrorCode(503)

	req, resp := testPair()
	_, code, _, _ := h.ProcessHook(req, resp)
	if code != 503 {
		t.Errorf("wanted 503 got %d", code)
	}
}

func TestFunctionHookNilFunction(t *testing.T) {
	req, resp := testPair()
	ok, code, _, _ := NewFunctionHook(nil).ProcessHook(req, resp)
	if ok || code != 500 {
		t.Errorf("wanted rejection with 500 got ok=%t code=%d", ok, code)
	}
}

func TestAppendDoesNotMutate(t *testing.T) {
	var order []string
	parent := continueHook("parent", &order, 200)
	childA := continueHook("childA", &order, 200)
	childB := continueHook("childB", &order, 200)

	// the same parent chain guards two different sub-chains
	chainA := Append(parent, childA)
	chainB := Append(parent, childB)

	req, resp := testPair()
	Run(chainA, req, resp)
	if len(order) != 2 || order[1] != "childA" {
		t.Fatalf("wanted [parent childA] got %v", order)
	}

	order = nil
	Run(chainB, req, resp)
	if len(order) != 2 || order[1] != "childB" {
		t.Errorf("wanted [parent childB] got %v", order)
	}
}

func TestAppendWalksParentTail(t *testing.T) {
	var order []string
	p1 := continueHook("p1", &order, 200)
	p2 := continueHook("p2", &order, 200)
	p1.SetNext(p2)
	child := continueHook("child", &order, 200)

	req, resp := testPair()
	Run(Append(p1, child), req, resp)
	if len(order) != 3 || order[0] != "p1" || order[1] != "p2" || order[2] != "child" {
		t.Errorf("wanted [p1 p2 child] got %v", order)
	}
}

func TestAppendNilOperands(t *testing.T) {
	var order []string
	h := continueHook("h", &order, 200)
	if Append(nil, h) != Hook(h) {
		t.Error("wanted Append(nil, h) to be h")
	}
	if Append(h, nil) != Hook(h) {
		t.Error("wanted Append(h, nil) to be h")
	}
	if Append(nil, nil) != nil {
		t.Error("wanted Append(nil, nil) to be nil")
	}
}

func TestChain(t *testing.T) {
	var order []string
	req, resp := testPair()
	Run(Chain(
		continueHook("a", &order, 200),
		continueHook("b", &order, 200),
		continueHook("c", &order, 200),
	), req, resp)
	if len(order) != 3 || order[0] != "a" || order[1] != "b" || order[2] != "c" {
		t.Errorf("wanted [a b c] got %v", order)
	}
}

func TestParamMapHook(t *testing.T) {
	h := NewParamMapHook(map[string]string{
		"documentId": "{doc_id}",
		"source":     "papys",
		"missing":    "{nope}",
	})

	req, resp := testPair()
	req.PathVariables["doc_id"] = "9"
	ok, code, rq, _ := h.ProcessHook(req, resp)
	if !ok || code != 200 {
		t.Errorf("wanted continue with 200 got ok=%t code=%d", ok, code)
	}
	if rq.PathVariables["documentId"] != "9" {
		t.Errorf("wanted documentId=9 got %s", rq.PathVariables["documentId"])
	}
	if rq.PathVariables["source"] != "papys" {
		t.Errorf("wanted source=papys got %s", rq.PathVariables["source"])
	}
	if rq.PathVariables["missing"] != "not_found" {
		t.Errorf("wanted missing=not_found got %s", rq.PathVariables["missing"])
	}
}

func TestParamMapHookNilMapping(t *testing.T) {
	req, resp := testPair()
	ok, code, _, _ := NewParamMapHook(nil).ProcessHook(req, resp)
	if ok || code != 500 {
		t.Errorf("wanted rejection with 500 got ok=%t code=%d", ok, code)
	}
}
