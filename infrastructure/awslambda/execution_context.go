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

package awslambda

import (
	"context"

	"github.com/aws/aws-lambda-go/lambdacontext"

	"github.com/snyk/honeybadger-lambda-go/domain/lambda"
)

// ExecutionContextFromContext collects the invocation metadata the Lambda runtime put into ctx and
// into the process environment. Outside of Lambda all fields are empty.
func ExecutionContextFromContext(ctx context.Context) lambda.ExecutionContext {
	e := lambda.ExecutionContext{
		FunctionName:    lambdacontext.FunctionName,
		FunctionVersion: lambdacontext.FunctionVersion,
		LogGroupName:    lambdacontext.LogGroupName,
		LogStreamName:   lambdacontext.LogStreamName,
	}
	if lc, ok := lambdacontext.FromContext(ctx); ok {
		e.AwsRequestID = lc.AwsRequestID
		e.InvokedFunctionArn = lc.InvokedFunctionArn
	}
	return e
}
