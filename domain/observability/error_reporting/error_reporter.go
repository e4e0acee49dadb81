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

	"github.com/snyk/honeybadger-lambda-go/domain/notice"
)

//go:generate mockgen -destination=mock_error_reporting/error_reporter_mock.go -package=mock_error_reporting github.com/snyk/honeybadger-lambda-go/domain/observability/error_reporting ErrorReporter

// ErrorReporter sends error notices to an error tracking service.
type ErrorReporter interface {
	// Notify reports source with the given context. A nil source reports an absent class and message.
	Notify(ctx context.Context, source notice.ErrorSource, errContext map[string]any) error
	NotifyError(ctx context.Context, err error, errContext map[string]any) error
	NotifyLabel(ctx context.Context, errorClass string, errorMessage string, errContext map[string]any) error
}
