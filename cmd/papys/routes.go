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

package main

import (
	"net/http"

	"github.com/asderix/papys/internal/actions"
	"github.com/asderix/papys/internal/config"
	"github.com/asderix/papys/internal/engine"
	"github.com/asderix/papys/internal/model"
	"github.com/asderix/papys/internal/routing"
)

// registerRoutes wires the built-in endpoints: a ping handler for health
// checking, an echo endpoint, and a demonstration user endpoint showing
// path variables and a status-keyed error handler
func registerRoutes(e *engine.Engine, conf *config.Config) error {
	ping := actions.NewStaticJSONAction("ping", map[string]string{"status": "ok"})
	if err := e.Register(routing.MethodGet, conf.Main.PingHandlerPath, ping, nil); err != nil {
		return err
	}

	user := actions.NewFuncAction("user",
		func(req *model.Request, resp *model.Response) (int, *model.Request, *model.Response) {
			resp.ToConvert = map[string]string{"userId": req.PathVariables["user_id"]}
			resp.StatusCode = http.StatusOK
			return http.StatusOK, req, resp
		})
	user.WithChild(http.StatusInternalServerError, actions.NewErrorAction("user error"))

	v1 := routing.NewRoute("/v1").
		WithSubroute(routing.NewRoute("/echo").
			WithAction(routing.MethodPost, actions.NewPostBounceAction("echo"))).
		WithSubroute(routing.NewRoute("/user/{user_id}").
			WithAction(routing.MethodGet, user))

	return e.AddRoute(v1)
}
