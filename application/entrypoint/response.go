/*
 * © 2026 Snyk Limited
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

package entrypoint

import (
	"encoding/json"
)

// Response is the API Gateway proxy envelope returned by wrapped handlers.
type Response struct {
	StatusCode string            `json:"statusCode"`
	Body       string            `json:"body"`
	Headers    map[string]string `json:"headers"`
}

// Respond formats err or res so that API Gateway understands it. On error the body is the raw
// error text, otherwise the JSON encoding of res.
func Respond(err error, res any) Response {
	headers := map[string]string{"Content-Type": "application/json"}
	if err != nil {
		return Response{StatusCode: "400", Body: err.Error(), Headers: headers}
	}
	body, marshalErr := json.Marshal(res)
	if marshalErr != nil {
		return Response{StatusCode: "400", Body: marshalErr.Error(), Headers: headers}
	}
	return Response{StatusCode: "200", Body: string(body), Headers: headers}
}
