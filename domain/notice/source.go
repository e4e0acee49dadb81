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

package notice

import (
	"fmt"
	"reflect"

	"github.com/pkg/errors"
)

// ErrorSource is the origin of a notice's class and message. It is either FromException
// or FromLabel.
type ErrorSource interface {
	isErrorSource()
}

// FromException is an error value caught by the caller.
type FromException struct {
	TypeName string
	Message  string
	// Err is kept so that a stack trace attached to it can be extracted.
	Err error
}

// FromLabel is a manual notification without an underlying error. A nil field is absent.
type FromLabel struct {
	Class   *string
	Message *string
}

func (FromException) isErrorSource() {}
func (FromLabel) isErrorSource()     {}

// Error resolves err for notification. A nil err carries nothing to report and becomes an
// absent class/message pair, the same as a nil ErrorSource.
func Error(err error) ErrorSource {
	if err == nil {
		return FromLabel{}
	}
	return Exception(err)
}

// Exception resolves err into an ErrorSource. The type name is taken from the root cause so that
// wrapping an error does not change its class.
func Exception(err error) FromException {
	if err == nil {
		return FromException{TypeName: "<nil>", Message: ""}
	}
	return FromException{
		TypeName: TypeName(errors.Cause(err)),
		Message:  err.Error(),
		Err:      err,
	}
}

// Label builds a manual ErrorSource with the given class and message.
func Label(class string, message string) FromLabel {
	return FromLabel{Class: &class, Message: &message}
}

// Panic resolves a recovered panic value.
func Panic(v any) FromException {
	if err, ok := v.(error); ok {
		return Exception(err)
	}
	return FromException{TypeName: TypeName(v), Message: fmt.Sprint(v)}
}

// TypeName returns the runtime type name of v, e.g. "*errors.errorString".
func TypeName(v any) string {
	t := reflect.TypeOf(v)
	if t == nil {
		return "<nil>"
	}
	return t.String()
}
