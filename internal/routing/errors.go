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

package routing

import "errors"

// ErrDuplicateVariable is an error for a path template that uses the same
// variable name in more than one placeholder
var ErrDuplicateVariable = errors.New("duplicate path variable name")

// ErrUnsupportedMethod is an error for a registration under an HTTP method
// the engine does not dispatch
var ErrUnsupportedMethod = errors.New("unsupported http method")

// ErrNilAction is an error for a registration without an entry action
var ErrNilAction = errors.New("nil entry action")
