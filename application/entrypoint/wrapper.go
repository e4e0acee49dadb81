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
	"context"

	"github.com/snyk/honeybadger-lambda-go/application/config"
	"github.com/snyk/honeybadger-lambda-go/domain/notice"
	"github.com/snyk/honeybadger-lambda-go/domain/observability/error_reporting"
	"github.com/snyk/honeybadger-lambda-go/infrastructure/awslambda"
	"github.com/snyk/honeybadger-lambda-go/infrastructure/honeybadger"
)

// ReporterFactory creates the reporter for one invocation.
type ReporterFactory func(ctx context.Context) error_reporting.ErrorReporter

// Handler is the function doing the actual work of an invocation.
type Handler[E any] func(ctx context.Context, event E) error

// NewReporterFactory returns a factory creating a Honeybadger notifier per invocation, or a
// log-only reporter if no API key is configured.
func NewReporterFactory(c *config.Config) ReporterFactory {
	return func(ctx context.Context) error_reporting.ErrorReporter {
		if c.ApiKey() == "" {
			return error_reporting.NewLogOnlyErrorReporter(c.Logger())
		}
		return honeybadger.New(c, awslambda.ExecutionContextFromContext(ctx))
	}
}

// Wrap runs handler and reports its failures. A returned error is notified and then returned
// unchanged; a panic is notified and then re-raised with the same value. If notifying fails, the
// notifier's error is returned instead of the handler's.
func Wrap[E any](c *config.Config, newReporter ReporterFactory, handler Handler[E], errContext map[string]any) func(context.Context, E) (Response, error) {
	return func(ctx context.Context, event E) (Response, error) {
		reporter := newReporter(ctx)
		defer func() {
			r := recover()
			if r == nil {
				return
			}
			if notifyErr := reporter.Notify(ctx, notice.Panic(r), errContext); notifyErr != nil {
				c.Logger().Err(notifyErr).Str("method", "Wrap").Msg("couldn't notify panic")
			}
			panic(r)
		}()

		if err := handler(ctx, event); err != nil {
			if notifyErr := reporter.NotifyError(ctx, err, errContext); notifyErr != nil {
				c.Logger().Err(notifyErr).Str("method", "Wrap").Msg("couldn't notify handler error")
				return Response{}, notifyErr
			}
			return Response{}, err
		}
		return Respond(nil, map[string]string{"status": "OK"}), nil
	}
}
