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
	"encoding/json"
	"net/http"
	"sort"
)

// Response collects all information for a response while a request travels
// through the dispatch graph. Exactly one of the three body payloads is
// serialized, in the order JSON, ToConvert, Bytes.
type Response struct {
	// StatusCode is the working status of the response; the dispatch result
	// overrides it at the end of the graph
	StatusCode int
	// ContentType is the media type of the response body
	ContentType string
	// JSON is a pre-serialized response body
	JSON string
	// ToConvert is a structured value to be serialized as the response body
	// when no pre-serialized payload is present
	ToConvert interface{}
	// Bytes is a raw byte payload used when neither JSON nor ToConvert is present
	Bytes []byte
	// IsError indicates that a node in the dispatch graph faulted
	IsError bool
	// Err carries the cause of the fault indicated by IsError
	Err error

	headers map[string]string
	cookies []*http.Cookie
}

// NewResponse returns a Response with the engine defaults applied
func NewResponse() *Response {
	return &Response{
		StatusCode:  http.StatusInternalServerError,
		ContentType: "application/json",
		headers:     make(map[string]string),
	}
}

// SetHeader sets a response header, replacing any prior value for the name
func (r *Response) SetHeader(name, value string) {
	r.headers[name] = value
}

// Header returns the value of the named response header
func (r *Response) Header(name string) string {
	return r.headers[name]
}

// Headers returns the accumulated response headers in a stable order
func (r *Response) Headers() [][2]string {
	names := make([]string, 0, len(r.headers))
	for name := range r.headers {
		names = append(names, name)
	}
	sort.Strings(names)
	out := make([][2]string, len(names))
	for i, name := range names {
		out[i] = [2]string{name, r.headers[name]}
	}
	return out
}

// SetCookie appends a cookie to be emitted with the response
func (r *Response) SetCookie(c *http.Cookie) {
	r.cookies = append(r.cookies, c)
}

// Cookies returns the accumulated response cookies in insertion order
func (r *Response) Cookies() []*http.Cookie {
	return r.cookies
}

// SetError marks the response as errored and attaches the cause
func (r *Response) SetError(err error) {
	r.IsError = true
	r.Err = err
}

// ResetContent clears any accumulated body payloads
func (r *Response) ResetContent() {
	r.JSON = ""
	r.ToConvert = nil
	r.Bytes = nil
}

// Content returns the response body, selecting the first present payload of
// JSON, ToConvert and Bytes. An empty slice is returned when no payload is set.
func (r *Response) Content() []byte {
	if r.JSON != "" {
		return []byte(r.JSON)
	}
	if r.ToConvert != nil {
		b, err := json.Marshal(r.ToConvert)
		if err != nil {
			return []byte{}
		}
		return b
	}
	if r.Bytes != nil {
		return r.Bytes
	}
	return []byte{}
}
