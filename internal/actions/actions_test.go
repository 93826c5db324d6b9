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
	"strings"
	"testing"

	"github.com/asderix/papys/internal/model"
)

func testPair() (*model.Request, *model.Response) {
	return model.NewRequest("GET", "/test"), model.NewResponse()
}

func TestFuncAction(t *testing.T) {
	a := NewFuncAction("ok",
		func(req *model.Request, resp *model.Response) (int, *model.Request, *model.Response) {
			resp.JSON = `{"ok":true}`
			return 200, req, resp
		})

	req, resp := testPair()
	code, _, rs := a.Process(req, resp)
	if code != 200 {
		t.Errorf("wanted 200 got %d", code)
	}
	if rs.JSON != `{"ok":true}` {
		t.Errorf("unexpected body %s", rs.JSON)
	}
}

func TestFuncActionFault(t *testing.T) {
	a := NewFuncAction("panics",
		func(req *model.Request, resp *model.Response) (int, *model.Request, *model.Response) {
			panic("boom")
		})

	req, resp := testPair()
	code, _, rs := a.Process(req, resp)
	if code != 500 {
		t.Errorf("wanted 500 got %d", code)
	}
	if !rs.IsError || rs.Err == nil {
		t.Error("expected the fault cause on the response")
	}
}

func TestFuncActionErrorCode(t *testing.T) {
	a := NewFuncAction("panics",
		func(req *model.Request, resp *model.Response) (int, *model.Request, *model.Response) {
			panic("boom")
		}).WithErrorCode(502)

	req, resp := testPair()
	code, _, _ := a.Process(req, resp)
	if code != 502 {
		t.Errorf("wanted 502 got %d", code)
	}
}

func TestFuncActionNilFunction(t *testing.T) {
	req, resp := testPair()
	code, _, rs := NewFuncAction("empty", nil).Process(req, resp)
	if code != 500 || !rs.IsError {
		t.Errorf("wanted errored 500 got code=%d isError=%t", code, rs.IsError)
	}
}

func TestWithChildOrder(t *testing.T) {
	a := NewDummyAction("parent")
	b := NewDummyAction("b")
	c := NewDummyAction("c")
	a.WithChild(200, b).WithChild(500, c)

	children := a.Children()
	if len(children) != 2 {
		t.Fatalf("wanted 2 children got %d", len(children))
	}
	if children[0].Trigger != 200 || children[0].Action != Action(b) {
		t.Error("first child out of order")
	}
	if children[1].Trigger != 500 || children[1].Action != Action(c) {
		t.Error("second child out of order")
	}
}

func TestStaticJSONAction(t *testing.T) {
	a := NewStaticJSONAction("static", map[string]string{"hello": "world"})

	req, resp := testPair()
	code, _, rs := a.Process(req, resp)
	if code != 200 {
		t.Errorf("wanted 200 got %d", code)
	}
	if rs.StatusCode != 200 {
		t.Errorf("wanted response status 200 got %d", rs.StatusCode)
	}
	if rs.JSON != `{"hello":"world"}` {
		t.Errorf("unexpected body %s", rs.JSON)
	}
	if rs.ToConvert == nil {
		t.Error("expected the structured payload to be set")
	}
}

func TestStaticJSONActionStatusCodes(t *testing.T) {
	a := NewStaticJSONAction("static", "teapot").WithStatusCodes(418, 500)
	req, resp := testPair()
	code, _, _ := a.Process(req, resp)
	if code != 418 {
		t.Errorf("wanted 418 got %d", code)
	}
}

func TestDummyAction(t *testing.T) {
	req, resp := testPair()
	code, rq, rs := NewDummyAction("dummy").Process(req, resp)
	if code != 200 || rq != req || rs != resp {
		t.Error("expected 200 and the untouched request/response pair")
	}
}

func TestPostBounceAction(t *testing.T) {
	req, resp := testPair()
	req.BodyJSON = map[string]interface{}{"echo": "me"}
	code, _, rs := NewPostBounceAction("bounce").Process(req, resp)
	if code != 200 {
		t.Errorf("wanted 200 got %d", code)
	}
	body, ok := rs.ToConvert.(map[string]interface{})
	if !ok || body["echo"] != "me" {
		t.Errorf("wanted the request body bounced back, got %v", rs.ToConvert)
	}
}

func TestErrorActionWithFault(t *testing.T) {
	req, resp := testPair()
	resp.StatusCode = 500
	resp.SetError(errTest("database gone"))

	code, _, rs := NewErrorAction("handler").Process(req, resp)
	if code != 500 {
		t.Errorf("wanted 500 got %d", code)
	}
	if !strings.Contains(rs.JSON, "database gone") {
		t.Errorf("wanted the cause in the body, got %s", rs.JSON)
	}
	if !strings.Contains(rs.JSON, `"errorCode":500`) {
		t.Errorf("wanted the status in the body, got %s", rs.JSON)
	}
}

func TestErrorActionWithoutFault(t *testing.T) {
	req, resp := testPair()
	code, _, rs := NewErrorAction("handler").Process(req, resp)
	if code != 200 {
		t.Errorf("wanted 200 got %d", code)
	}
	if !strings.Contains(rs.JSON, `"errorCode":-1`) {
		t.Errorf("wanted the no-error marker, got %s", rs.JSON)
	}
}

func TestRedirectAction(t *testing.T) {
	req, resp := testPair()
	code, _, rs := NewRedirectAction("redir", "https://example.com/login").Process(req, resp)
	if code != 302 {
		t.Errorf("wanted 302 got %d", code)
	}
	if rs.Header("Location") != "https://example.com/login" {
		t.Errorf("wanted the Location header set, got %s", rs.Header("Location"))
	}
}

func TestRedirectActionCode(t *testing.T) {
	req, resp := testPair()
	code, _, _ := NewRedirectAction("redir", "/").WithRedirectCode(308).Process(req, resp)
	if code != 308 {
		t.Errorf("wanted 308 got %d", code)
	}
}

type errTest string

func (e errTest) Error() string { return string(e) }
