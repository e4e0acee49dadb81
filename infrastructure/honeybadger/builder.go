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

package honeybadger

import (
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/exp/maps"

	"github.com/snyk/honeybadger-lambda-go/application/config"
	"github.com/snyk/honeybadger-lambda-go/domain/lambda"
	"github.com/snyk/honeybadger-lambda-go/domain/notice"
	"github.com/snyk/honeybadger-lambda-go/infrastructure/sentry"
)

// Builder assembles notices for one invocation.
type Builder struct {
	c        *config.Config
	execCtx  lambda.ExecutionContext
	now      func() time.Time
	newToken func() string
}

func NewBuilder(c *config.Config, execCtx lambda.ExecutionContext) *Builder {
	return &Builder{
		c:        c,
		execCtx:  execCtx,
		now:      time.Now,
		newToken: uuid.NewString,
	}
}

// Build creates the notice for source. errContext is copied, never modified.
// An error is returned if the source file of the innermost frame can't be read.
func (b *Builder) Build(source notice.ErrorSource, errContext map[string]any) (notice.Notice, error) {
	errorInfo, err := b.errorPayload(source)
	if err != nil {
		return notice.Notice{}, err
	}
	return notice.Notice{
		Notifier: notice.NotifierInfo{
			Name:    config.NotifierName,
			Url:     config.NotifierUrl,
			Version: config.Version,
		},
		Error:   errorInfo,
		Server:  b.serverPayload(),
		Request: notice.Request{Context: b.mergeContext(errContext)},
	}, nil
}

func (b *Builder) errorPayload(source notice.ErrorSource) (notice.ErrorInfo, error) {
	info := notice.ErrorInfo{Token: b.newToken(), Source: map[int]string{}}

	var attached error
	switch s := source.(type) {
	case notice.FromException:
		info.Class = &s.TypeName
		info.Message = &s.Message
		attached = s.Err
	case notice.FromLabel:
		info.Class = s.Class
		info.Message = s.Message
	case nil:
	default:
		return notice.ErrorInfo{}, errors.Errorf("unsupported error source %T", source)
	}

	frames := sentry.Frames(attached)
	info.Backtrace = make([]notice.Frame, 0, len(frames))
	for i := len(frames) - 1; i >= 0; i-- {
		info.Backtrace = append(info.Backtrace, frames[i])
	}

	if len(frames) > 0 && b.c.IsSourceContextEnabled() {
		innermost := frames[len(frames)-1]
		window, err := readSourceWindow(innermost.File, innermost.Number, b.c.SourceRadius())
		if err != nil {
			return notice.ErrorInfo{}, err
		}
		info.Source = window
	}
	return info, nil
}

func (b *Builder) mergeContext(errContext map[string]any) map[string]any {
	merged := make(map[string]any, len(errContext)+1)
	maps.Copy(merged, errContext)
	merged[lambda.ContextKey] = b.execCtx.ToMap()
	return merged
}
