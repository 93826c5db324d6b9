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

// Package model provides the abstract request and response value objects
// exchanged between the hosting transport and the dispatch engine
package model

import (
	"net/url"
	"time"

	tl "github.com/asderix/papys/internal/util/log"

	"github.com/google/uuid"
)

// Request holds all information about a request as handed over by the
// hosting transport. It is created at request start and never shared
// across requests.
type Request struct {
	// Method is the HTTP method of the request (GET, POST, PUT, DELETE)
	Method string
	// Path is the URL path the request was made against
	Path string
	// QueryParams holds the parsed query string values
	QueryParams url.Values
	// Headers holds the request headers as provided by the transport
	Headers map[string]string
	// Cookies holds the parsed request cookie values by name
	Cookies map[string]string
	// PathVariables holds the values captured from the path template match
	PathVariables map[string]string
	// ProcessData is a scratch map that hooks and actions can use to pass
	// values along the dispatch graph for the life of the request
	ProcessData map[string]interface{}
	// BodyRaw is the unmodified request body
	BodyRaw []byte
	// BodyString is the request body as a string, when it is valid text
	BodyString string
	// BodyJSON is the decoded request body, when it is valid JSON
	BodyJSON interface{}
	// ProcessID uniquely identifies this request for log correlation
	ProcessID string
	// StartTime is the time the request entered the engine
	StartTime time.Time
	// ContentType is the media type of the request body
	ContentType string
	// ContentLength is the declared length of the request body
	ContentLength int64
	// Host is the requested host header value
	Host string
	// RemoteAddr is the network address of the requesting client
	RemoteAddr string
	// UserAgent is the client's User-Agent header value
	UserAgent string
	// Accept is the client's Accept header value
	Accept string
	// AcceptLanguage is the client's Accept-Language value, or the
	// configured default when the client omitted it
	AcceptLanguage string
	// AcceptEncoding is the client's Accept-Encoding header value
	AcceptEncoding string
	// Authorization is the raw Authorization header value, if any
	Authorization string

	// Logger is the engine's logger, provided so hooks and actions can emit
	// request-correlated log events
	Logger *tl.Logger
}

// NewRequest returns a Request for the provided method and path, with a
// fresh process id and all per-request maps initialized
func NewRequest(method, path string) *Request {
	return &Request{
		Method:        method,
		Path:          path,
		QueryParams:   url.Values{},
		Headers:       make(map[string]string),
		Cookies:       make(map[string]string),
		PathVariables: make(map[string]string),
		ProcessData:   make(map[string]interface{}),
		ProcessID:     uuid.NewString(),
		StartTime:     time.Now().UTC(),
	}
}
