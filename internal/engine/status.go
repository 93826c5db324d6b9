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
	"fmt"
	"net/http"
	"sort"
)

// fallbackStatusLine is emitted for any status code the engine does not
// recognize
const fallbackStatusLine = "500 Internal Server Error"

var reasonPhrases = map[int]string{
	200: "OK",
	201: "Created",
	202: "Accepted",
	203: "Non-Authoritative",
	204: "No Content",
	205: "Reset Content",
	206: "Partial Content",
	300: "Multiple Choices",
	301: "Moved Permanently",
	302: "Found (Moved Temporarily)",
	303: "See Other",
	304: "Not Modified",
	305: "Use Proxy",
	307: "Temporary Redirect",
	308: "Permanent Redirect",
	400: "Bad Request",
	401: "Unauthorized",
	402: "Payment Required",
	403: "Forbidden",
	404: "Not Found",
	405: "Method Not Allowed",
	406: "Not Acceptable",
	407: "Proxy Authentication Required",
	408: "Request Timeout",
	409: "Conflict",
	410: "Gone",
	411: "Length Required",
	412: "Precondition Failed",
	413: "Payload Too Large",
	414: "URI Too Long",
	415: "Unsupported Media Type",
	416: "Range Not Satisfiable",
	417: "Expectation Failed",
	421: "Misdirected Request",
	422: "Unprocessable Entity",
	423: "Locked",
	424: "Failed Dependency",
	425: "Too Early",
	426: "Upgrade Required",
	428: "Precondition Required",
	429: "Too Many Requests",
	431: "Request Header Fields Too Large",
	451: "Unavailable For Legal Reasons",
	500: "Internal Server Error",
	501: "Not Implemented",
	502: "Bad Gateway",
	503: "Service Unavailable",
	504: "Gateway Timeout",
	505: "HTTP Version not supported",
	506: "Variant Also Negotiates",
	507: "Insufficient Storage",
	508: "Loop Detected",
	509: "Bandwidth Limit Exceeded",
	510: "Not Extended",
	511: "Network Authentication Required",
}

// StatusLine returns the protocol status line for the provided code, e.g.
// "200 OK". An unrecognized code yields the generic server error line.
func StatusLine(code int) string {
	if p, ok := reasonPhrases[code]; ok {
		return fmt.Sprintf("%d %s", code, p)
	}
	return fallbackStatusLine
}

// wireStatus returns the status code actually written to the transport for
// the provided dispatch outcome; unrecognized codes collapse to 500
func wireStatus(code int) int {
	if _, ok := reasonPhrases[code]; ok {
		return code
	}
	return http.StatusInternalServerError
}

// SupportedStatusCodes returns the status codes the engine maps to a
// protocol status line, in ascending order
func SupportedStatusCodes() []int {
	codes := make([]int, 0, len(reasonPhrases))
	for code := range reasonPhrases {
		codes = append(codes, code)
	}
	sort.Ints(codes)
	return codes
}
