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
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"time"
	"unicode/utf8"

	"github.com/asderix/papys/internal/model"
	"github.com/asderix/papys/internal/util/metrics"

	tl "github.com/asderix/papys/internal/util/log"

	"go.opentelemetry.io/otel/attribute"
)

// maxBodyBytes caps how much request body the gateway reads into the
// abstract request
const maxBodyBytes = 8 << 20

// ServeHTTP adapts the hosting transport to the dispatch engine: it builds
// the abstract request, dispatches it, and writes the resulting status,
// headers, cookies and body. Any fault escaping the dispatch core is
// recovered here and answered with an empty 500.
func (e *Engine) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	defer func() {
		if rec := recover(); rec != nil {
			e.log.Error("error during handling a request",
				tl.Pairs{"detail": rec, "path": r.URL.Path})
			w.WriteHeader(http.StatusInternalServerError)
		}
	}()

	req := e.newRequest(r)
	resp := model.NewResponse()

	var finish func(int)
	if e.tracer != nil {
		_, span := e.tracer.Start(r.Context(), "dispatch")
		span.SetAttributes(
			attribute.String("http.method", req.Method),
			attribute.String("http.target", req.Path),
		)
		finish = func(status int) {
			span.SetAttributes(attribute.Int("http.status_code", status))
			span.End()
		}
	}

	e.Dispatch(req, resp)
	external := e.ExternalStatus(req.Method, resp.StatusCode)
	body := e.responseBody(resp)

	h := w.Header()
	for _, kv := range resp.Headers() {
		h.Set(kv[0], kv[1])
	}
	for _, c := range resp.Cookies() {
		http.SetCookie(w, c)
	}
	w.WriteHeader(external)
	if len(body) > 0 {
		w.Write(body)
	}

	if finish != nil {
		finish(external)
	}

	status := strconv.Itoa(external)
	metrics.FrontendRequestStatus.WithLabelValues(req.Method, req.Path, status).Inc()
	metrics.FrontendRequestDuration.WithLabelValues(req.Method, req.Path, status).
		Observe(time.Since(start).Seconds())
}

// newRequest builds the abstract request handed to the dispatch core from
// the transport's request. The body is read once here; a body that is not
// valid JSON simply leaves BodyJSON unset.
func (e *Engine) newRequest(r *http.Request) *model.Request {
	req := model.NewRequest(r.Method, r.URL.Path)
	req.Logger = e.log
	req.QueryParams = r.URL.Query()
	req.Host = r.Host
	req.RemoteAddr = r.RemoteAddr
	req.ContentLength = r.ContentLength
	req.ContentType = r.Header.Get("Content-Type")
	req.UserAgent = r.Header.Get("User-Agent")
	req.Accept = r.Header.Get("Accept")
	req.AcceptEncoding = r.Header.Get("Accept-Encoding")
	req.Authorization = r.Header.Get("Authorization")

	req.AcceptLanguage = r.Header.Get("Accept-Language")
	if req.AcceptLanguage == "" {
		req.AcceptLanguage = e.conf.Dispatch.AcceptDefaultLang
	}

	for name := range r.Header {
		req.Headers[name] = r.Header.Get(name)
	}
	for _, c := range r.Cookies() {
		req.Cookies[c.Name] = c.Value
	}

	if r.Body != nil {
		b, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
		if err != nil {
			e.log.Error("error reading request body",
				tl.Pairs{"detail": err.Error(), "processId": req.ProcessID})
			return req
		}
		if len(b) > 0 {
			req.BodyRaw = b
			if utf8.Valid(b) {
				req.BodyString = string(b)
			}
			var decoded interface{}
			if err := json.Unmarshal(b, &decoded); err == nil {
				req.BodyJSON = decoded
			}
		}
	}

	return req
}
