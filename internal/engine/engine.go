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

// Package engine provides the Papys dispatcher: route resolution with a
// memoizing path cache, the hook short-circuit chain, and the
// status-code-driven action graph executor
package engine

import (
	"encoding/json"
	"net/http"

	"github.com/asderix/papys/internal/cache"
	"github.com/asderix/papys/internal/config"
	"github.com/asderix/papys/internal/hooks"
	"github.com/asderix/papys/internal/model"
	"github.com/asderix/papys/internal/routing"

	"github.com/asderix/papys/internal/actions"
	tl "github.com/asderix/papys/internal/util/log"

	"go.opentelemetry.io/otel/trace"
)

// Engine owns the route table, the path cache, the global hooks and the
// logger, and dispatches abstract requests through the configured graph.
// Construct it once at startup, register all routes before serving, and
// hand it to the hosting transport.
type Engine struct {
	conf         *config.Config
	log          *tl.Logger
	routes       *routing.Table
	pathCache    *cache.PathCache
	initHook     hooks.Hook
	finalizeHook hooks.Hook
	tracer       trace.Tracer
}

// New returns an Engine for the provided configuration and logger
func New(conf *config.Config, logger *tl.Logger) *Engine {
	return &Engine{
		conf:      conf,
		log:       logger,
		routes:    routing.NewTable(),
		pathCache: cache.New(conf.Dispatch.PathCacheMaxSize),
	}
}

// AddRoute registers a route and its sub-routes with the engine's route
// table. All routes must be added before the engine starts serving
// requests; adding routes during live traffic is unsupported.
func (e *Engine) AddRoute(r *routing.Route) error {
	if err := e.routes.AddRoute(r); err != nil {
		e.log.Error("unable to add route", tl.Pairs{"path": r.Path(), "detail": err.Error()})
		return err
	}
	e.log.Debug("route added", tl.Pairs{"path": r.Path()})
	return nil
}

// Register binds a single entry action and optional hook to the method and
// path template, without route nesting
func (e *Engine) Register(method, template string, action actions.Action, hook hooks.Hook) error {
	return e.routes.Register(method, template, action, hook)
}

// SetInitializeHook configures a hook chain that runs before any routing.
// Its rejection bypasses routing and finalization entirely.
func (e *Engine) SetInitializeHook(h hooks.Hook) {
	e.initHook = h
	e.log.Info("initialize hook set", tl.Pairs{})
}

// SetFinalizeHook configures a hook chain that runs after the action graph;
// its status overrides the graph's outcome
func (e *Engine) SetFinalizeHook(h hooks.Hook) {
	e.finalizeHook = h
	e.log.Info("finalize hook set", tl.Pairs{})
}

// SetTracer configures a tracer used to record one span per dispatch
func (e *Engine) SetTracer(t trace.Tracer) {
	e.tracer = t
}

// Dispatch resolves and executes the dispatch graph for one request:
// initialize hook, route lookup (cache first), route hook chain, action
// graph, finalize hook. It returns the final internal status code, with the
// response carrying the accumulated headers, cookies and body payloads.
// Content is unconditionally cleared for any 4xx outcome.
func (e *Engine) Dispatch(req *model.Request, resp *model.Response) int {
	if req.Logger == nil {
		req.Logger = e.log
	}

	// INIT
	if e.initHook != nil {
		ok, code, rq, rs := hooks.Run(e.initHook, req, resp)
		if !ok {
			rs.StatusCode = code
			return e.respond(rs)
		}
		req, resp = rq, rs
	}

	// ROUTE_LOOKUP
	resolved, cached := e.pathCache.Check(req.Method, req.Path)
	if !cached {
		if fresh, ok := e.routes.Lookup(req.Method, req.Path); ok {
			resolved = fresh
			e.pathCache.Add(req.Method, req.Path, fresh)
		}
	}

	if resolved == nil {
		resp.StatusCode = http.StatusNotFound
		if e.routes.MatchesOther(req.Method, req.Path) {
			resp.StatusCode = http.StatusMethodNotAllowed
		}
		return e.finalize(req, resp)
	}

	// hooks may add entries to the variable map, so the cached resolution
	// keeps its own copy
	req.PathVariables = make(map[string]string, len(resolved.Variables))
	for k, v := range resolved.Variables {
		req.PathVariables[k] = v
	}

	// HOOK_CHAIN
	if resolved.Hook != nil {
		ok, code, rq, rs := hooks.Run(resolved.Hook, req, resp)
		if !ok {
			rs.StatusCode = code
			return e.finalize(rq, rs)
		}
		req, resp = rq, rs
	}

	// ACTION_GRAPH
	code, req, resp := runGraph(req, resp, resolved.Action)
	resp.StatusCode = code

	return e.finalize(req, resp)
}

// finalize runs the configured finalize hook, whose status overrides the
// graph's outcome, then prepares the response for the transport
func (e *Engine) finalize(req *model.Request, resp *model.Response) int {
	if e.finalizeHook != nil {
		_, code, _, rs := hooks.Run(e.finalizeHook, req, resp)
		rs.StatusCode = code
		resp = rs
	}
	return e.respond(resp)
}

// respond applies the terminal response policies: the content type header
// and the unconditional content strip for client-error statuses
func (e *Engine) respond(resp *model.Response) int {
	resp.SetHeader("Content-Type", resp.ContentType)
	if resp.StatusCode >= 400 && resp.StatusCode < 500 {
		resp.ResetContent()
	}
	return resp.StatusCode
}

// ExternalStatus maps a dispatch outcome to the status reported to the
// client: a 200 produced by a POST is remapped to 201 when so configured,
// and codes outside the recognized status space collapse to 500
func (e *Engine) ExternalStatus(method string, status int) int {
	if status == http.StatusOK && method == routing.MethodPost && e.conf.Dispatch.PostConvert201 {
		return http.StatusCreated
	}
	return wireStatus(status)
}

// errorBody is the error detail document emitted for 500 outcomes when so
// configured
type errorBody struct {
	ErrorCode    int    `json:"errorCode"`
	ErrorMessage string `json:"errorMessage"`
}

// responseBody serializes the response payload for the transport. A 500
// outcome only reveals error detail when the deployment explicitly opts in.
func (e *Engine) responseBody(resp *model.Response) []byte {
	if resp.StatusCode == http.StatusInternalServerError && e.conf.Dispatch.ReturnError500Body {
		msg := ""
		if resp.Err != nil {
			msg = resp.Err.Error()
		}
		b, _ := json.Marshal(errorBody{ErrorCode: resp.StatusCode, ErrorMessage: msg})
		return b
	}
	return resp.Content()
}
