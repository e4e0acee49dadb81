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

package sentry

import (
	"reflect"
	"strings"

	"github.com/getsentry/sentry-go"
	"github.com/pkg/errors"

	"github.com/snyk/honeybadger-lambda-go/domain/notice"
)

type marker struct{}

const sentryModule = "github.com/getsentry/sentry-go"

// libraryModule is the root of this module. Its frames are the notifier's own and never reported.
var libraryModule = strings.TrimSuffix(reflect.TypeOf(marker{}).PkgPath(), "/infrastructure/sentry")

// runtime frames are dropped so that a recovered panic ends at the panicking call, not in gopanic.
var ignoredModules = []string{libraryModule, sentryModule, "runtime"}

// Frames returns the stack trace attached to err or to any error it wraps. If there is none, or
// err is nil, the current call stack is captured instead. Frames are ordered outermost first.
// Frames of this module are dropped unless they belong to a _test package.
func Frames(err error) []notice.Frame {
	stacktrace := attachedStacktrace(err)
	if stacktrace == nil {
		stacktrace = sentry.NewStacktrace()
	}
	if stacktrace == nil {
		return []notice.Frame{}
	}

	frames := make([]notice.Frame, 0, len(stacktrace.Frames))
	for _, f := range stacktrace.Frames {
		if isIgnored(f.Module) {
			continue
		}
		frames = append(frames, toFrame(f))
	}
	return frames
}

func attachedStacktrace(err error) *sentry.Stacktrace {
	for e := err; e != nil; e = errors.Unwrap(e) {
		if stacktrace := sentry.ExtractStacktrace(e); stacktrace != nil && len(stacktrace.Frames) > 0 {
			return stacktrace
		}
	}
	return nil
}

func isIgnored(module string) bool {
	if strings.HasSuffix(module, "_test") {
		return false
	}
	for _, ignored := range ignoredModules {
		if module == ignored || strings.HasPrefix(module, ignored+"/") {
			return true
		}
	}
	return false
}

func toFrame(f sentry.Frame) notice.Frame {
	file := f.AbsPath
	if file == "" {
		file = f.Filename
	}
	method := f.Function
	if f.Module != "" {
		method = f.Module + "." + f.Function
	}
	return notice.Frame{Number: f.Lineno, File: file, Method: method}
}
