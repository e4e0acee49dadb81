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

package main

import (
	"context"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/pkg/errors"

	"github.com/snyk/honeybadger-lambda-go/application/config"
	"github.com/snyk/honeybadger-lambda-go/application/entrypoint"
)

func main() {
	c := config.New()
	if err := c.Load(); err != nil {
		c.Logger().Err(err).Str("method", "main").Msg("couldn't load configuration")
	}
	lambda.Start(newHandler(c, entrypoint.NewReporterFactory(c)))
}

func newHandler(c *config.Config, newReporter entrypoint.ReporterFactory) func(context.Context, map[string]any) (entrypoint.Response, error) {
	errContext := map[string]any{"a_key": "a_value"}
	handler := func(ctx context.Context, event map[string]any) error {
		// manual notification, independent of the handler's outcome
		err := newReporter(ctx).NotifyLabel(ctx, "ErrorClass", "the message", errContext)
		if err != nil {
			c.Logger().Err(err).Str("method", "handler").Msg("couldn't send manual notification")
		}
		return doSomething(ctx, event)
	}
	return entrypoint.Wrap(c, newReporter, handler, errContext)
}

func doSomething(_ context.Context, _ map[string]any) error {
	return errors.New("something went wrong")
}
