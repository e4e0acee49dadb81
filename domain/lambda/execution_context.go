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

package lambda

// ExecutionContext describes one invocation of the hosting Lambda function.
type ExecutionContext struct {
	FunctionName       string
	FunctionVersion    string
	InvokedFunctionArn string
	AwsRequestID       string
	LogGroupName       string
	LogStreamName      string
}

// ContextKey is the request context key the execution context is reported under.
const ContextKey = "lambda_context"

func (e ExecutionContext) ToMap() map[string]any {
	return map[string]any{
		"log_group_name":       e.LogGroupName,
		"log_stream_name":      e.LogStreamName,
		"function_name":        e.FunctionName,
		"function_version":     e.FunctionVersion,
		"invoked_function_arn": e.InvokedFunctionArn,
		"aws_request_id":       e.AwsRequestID,
	}
}
