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

package model

import (
	"errors"
	"net/http"
	"testing"
)

func TestNewResponseDefaults(t *testing.T) {
	r := NewResponse()
	if r.StatusCode != 500 {
		t.Errorf("wanted the pessimistic 500 default, got %d", r.StatusCode)
	}
	if r.ContentType != "application/json" {
		t.Errorf("wanted application/json got %s", r.ContentType)
	}
	if r.IsError {
		t.Error("wanted a clean response")
	}
}

func TestContentPrecedence(t *testing.T) {
	r := NewResponse()
	if len(r.Content()) != 0 {
		t.Errorf("wanted an empty body, got %s", string(r.Content()))
	}

	r.Bytes = []byte("raw")
	if string(r.Content()) != "raw" {
		t.Errorf("wanted the byte payload, got %s", string(r.Content()))
	}

	r.ToConvert = map[string]int{"n": 1}
	if string(r.Content()) != `{"n":1}` {
		t.Errorf("wanted the serialized payload to win over bytes, got %s", string(r.Content()))
	}

	r.JSON = `{"pre":true}`
	if string(r.Content()) != `{"pre":true}` {
		t.Errorf("wanted the pre-serialized payload to win, got %s", string(r.Content()))
	}
}

func TestContentUnmarshalableToConvert(t *testing.T) {
	r := NewResponse()
	r.ToConvert = func() {}
	if len(r.Content()) != 0 {
		t.Errorf("wanted an empty body for an unserializable payload, got %s", string(r.Content()))
	}
}

func TestResetContent(t *testing.T) {
	r := NewResponse()
	r.JSON = "{}"
	r.ToConvert = 1
	r.Bytes = []byte("b")
	r.ResetContent()
	if len(r.Content()) != 0 {
		t.Errorf("wanted an empty body after reset, got %s", string(r.Content()))
	}
}

func TestHeadersStableOrder(t *testing.T) {
	r := NewResponse()
	r.SetHeader("X-Beta", "2")
	r.SetHeader("X-Alpha", "1")
	r.SetHeader("X-Alpha", "3") // replaces

	hs := r.Headers()
	if len(hs) != 2 {
		t.Fatalf("wanted 2 headers got %d", len(hs))
	}
	if hs[0][0] != "X-Alpha" || hs[0][1] != "3" {
		t.Errorf("unexpected first header %v", hs[0])
	}
	if hs[1][0] != "X-Beta" || hs[1][1] != "2" {
		t.Errorf("unexpected second header %v", hs[1])
	}
	if r.Header("X-Alpha") != "3" {
		t.Errorf("wanted the replacement value, got %s", r.Header("X-Alpha"))
	}
}

func TestCookiesInsertionOrder(t *testing.T) {
	r := NewResponse()
	r.SetCookie(&http.Cookie{Name: "a"})
	r.SetCookie(&http.Cookie{Name: "b"})
	cs := r.Cookies()
	if len(cs) != 2 || cs[0].Name != "a" || cs[1].Name != "b" {
		t.Errorf("unexpected cookie order %v", cs)
	}
}

func TestSetError(t *testing.T) {
	r := NewResponse()
	cause := errors.New("backend gone")
	r.SetError(cause)
	if !r.IsError || r.Err != cause {
		t.Error("wanted the response flagged with the cause attached")
	}
}

func TestNewRequestInitialization(t *testing.T) {
	r := NewRequest("POST", "/v1/echo")
	if r.Method != "POST" || r.Path != "/v1/echo" {
		t.Errorf("unexpected method/path %s %s", r.Method, r.Path)
	}
	if r.ProcessID == "" {
		t.Error("wanted a process id")
	}
	if r.PathVariables == nil || r.ProcessData == nil || r.Headers == nil || r.Cookies == nil {
		t.Error("wanted all per-request maps initialized")
	}
	if r.StartTime.IsZero() {
		t.Error("wanted the start time recorded")
	}
	if r2 := NewRequest("GET", "/"); r2.ProcessID == r.ProcessID {
		t.Error("wanted a distinct process id per request")
	}
}
