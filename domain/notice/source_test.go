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
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type customError struct{ code int }

func (e *customError) Error() string { return fmt.Sprintf("custom failure %d", e.code) }

func Test_Exception_UsesRuntimeTypeAndMessage(t *testing.T) {
	err := errors.New("boom")

	source := Exception(err)

	assert.Equal(t, "*errors.errorString", source.TypeName)
	assert.Equal(t, "boom", source.Message)
	assert.Same(t, err, source.Err)
}

func Test_Exception_CustomErrorType(t *testing.T) {
	source := Exception(&customError{code: 42})

	assert.Equal(t, "*notice.customError", source.TypeName)
	assert.Equal(t, "custom failure 42", source.Message)
}

func Test_Exception_WrappedErrorKeepsRootCauseType(t *testing.T) {
	err := pkgerrors.Wrap(&customError{code: 1}, "while handling")

	source := Exception(err)

	assert.Equal(t, "*notice.customError", source.TypeName)
	assert.Equal(t, "while handling: custom failure 1", source.Message)
}

func Test_Error(t *testing.T) {
	t.Run("nil error is an absent label", func(t *testing.T) {
		assert.Equal(t, FromLabel{}, Error(nil))
	})

	t.Run("error resolves to its exception", func(t *testing.T) {
		err := errors.New("boom")
		assert.Equal(t, Exception(err), Error(err))
	})
}

func Test_Label_KeepsValuesVerbatim(t *testing.T) {
	source := Label("ErrorClass", "the message")

	require.NotNil(t, source.Class)
	require.NotNil(t, source.Message)
	assert.Equal(t, "ErrorClass", *source.Class)
	assert.Equal(t, "the message", *source.Message)
}

func Test_Panic(t *testing.T) {
	t.Run("error value", func(t *testing.T) {
		source := Panic(&customError{code: 7})
		assert.Equal(t, "*notice.customError", source.TypeName)
		assert.Equal(t, "custom failure 7", source.Message)
	})

	t.Run("non-error value", func(t *testing.T) {
		source := Panic("index out of range")
		assert.Equal(t, "string", source.TypeName)
		assert.Equal(t, "index out of range", source.Message)
		assert.Nil(t, source.Err)
	})
}

func Test_ErrorInfo_AbsentLabelSerializesAsNull(t *testing.T) {
	info := ErrorInfo{Source: map[int]string{}}

	bytes, err := json.Marshal(info)

	require.NoError(t, err)
	assert.JSONEq(t, `{"class":null,"message":null,"backtrace":null,"source":{}}`, string(bytes))
	assert.Equal(t, "", info.ClassString())
	assert.Equal(t, "", info.MessageString())
}
