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

package error_reporting

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/snyk/honeybadger-lambda-go/domain/notice"
)

type logOnlyErrorReporter struct {
	logger *zerolog.Logger
}

// NewLogOnlyErrorReporter returns a reporter that only logs what it would send. It is used when no
// API key is configured.
func NewLogOnlyErrorReporter(logger *zerolog.Logger) ErrorReporter {
	return &logOnlyErrorReporter{logger: logger}
}

func (r *logOnlyErrorReporter) Notify(_ context.Context, source notice.ErrorSource, errContext map[string]any) error {
	event := r.logger.Log().Str("method", "Notify").Interface("context", errContext)
	switch s := source.(type) {
	case notice.FromException:
		event = event.Str("class", s.TypeName).Str("message", s.Message)
	case notice.FromLabel:
		if s.Class != nil {
			event = event.Str("class", *s.Class)
		}
		if s.Message != nil {
			event = event.Str("message", *s.Message)
		}
	}
	event.Msg("An error has been captured by the log-only error reporter")
	return nil
}

func (r *logOnlyErrorReporter) NotifyError(ctx context.Context, err error, errContext map[string]any) error {
	return r.Notify(ctx, notice.Error(err), errContext)
}

func (r *logOnlyErrorReporter) NotifyLabel(ctx context.Context, errorClass string, errorMessage string, errContext map[string]any) error {
	return r.Notify(ctx, notice.Label(errorClass, errorMessage), errContext)
}
