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

package honeybadger_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snyk/honeybadger-lambda-go/domain/lambda"
	"github.com/snyk/honeybadger-lambda-go/infrastructure/honeybadger"
	"github.com/snyk/honeybadger-lambda-go/internal/testutil"
)

func TestNotify_Success(t *testing.T) {
	c, logs := testutil.UnitTest(t)
	fake := testutil.NewFakeHoneybadger(t, http.StatusCreated)
	fake.Configure(c)
	notifier := honeybadger.New(c, testExecCtx)

	err := notifier.NotifyError(context.Background(), errors.New("boom"), map[string]any{"a_key": "a_value"})

	require.NoError(t, err)
	assert.Contains(t, logs.String(), "Error successfully sent to Honeybadger.")
	received := fake.Received()
	require.Len(t, received, 1)
	assert.Equal(t, testutil.TestApiKey, received[0].Header.Get("X-Api-Key"))
	assert.Equal(t, "application/json", received[0].Header.Get("Content-Type"))
	assert.Equal(t, "application/json", received[0].Header.Get("Accept"))

	body := received[0].Decode(t)
	assert.Equal(t, "Honeybadger for Go in AWS Lambda", body["notifier"].(map[string]any)["name"])
	errorSection := body["error"].(map[string]any)
	assert.Equal(t, "*errors.errorString", errorSection["class"])
	assert.Equal(t, "boom", errorSection["message"])
	assert.NotEmpty(t, errorSection["backtrace"])
	assert.NotEmpty(t, errorSection["source"])
	requestContext := body["request"].(map[string]any)["context"].(map[string]any)
	assert.Equal(t, "a_value", requestContext["a_key"])
	lambdaContext := requestContext[lambda.ContextKey].(map[string]any)
	assert.Equal(t, testExecCtx.AwsRequestID, lambdaContext["aws_request_id"])
	assert.Equal(t, "AWS Lambda.checkout", body["server"].(map[string]any)["project_root"])
}

func TestNotify_ManualLabel(t *testing.T) {
	c, _ := testutil.UnitTest(t)
	fake := testutil.NewFakeHoneybadger(t, http.StatusCreated)
	fake.Configure(c)

	err := honeybadger.New(c, testExecCtx).NotifyLabel(context.Background(), "ErrorClass", "the message", nil)

	require.NoError(t, err)
	received := fake.Received()
	require.Len(t, received, 1)
	errorSection := received[0].Decode(t)["error"].(map[string]any)
	assert.Equal(t, "ErrorClass", errorSection["class"])
	assert.Equal(t, "the message", errorSection["message"])
	backtrace := errorSection["backtrace"].([]any)
	require.NotEmpty(t, backtrace)
	assert.Contains(t, backtrace[0].(map[string]any)["method"], "TestNotify_ManualLabel")
}

func TestNotify_NothingGivenSendsNulls(t *testing.T) {
	c, _ := testutil.UnitTest(t)
	fake := testutil.NewFakeHoneybadger(t, http.StatusCreated)
	fake.Configure(c)

	err := honeybadger.New(c, testExecCtx).Notify(context.Background(), nil, nil)

	require.NoError(t, err)
	body := fake.Received()[0].Decode(t)
	errorSection := body["error"].(map[string]any)
	assert.Contains(t, errorSection, "class")
	assert.Nil(t, errorSection["class"])
	assert.Nil(t, errorSection["message"])
	requestContext := body["request"].(map[string]any)["context"].(map[string]any)
	assert.Len(t, requestContext, 1)
	assert.Contains(t, requestContext, lambda.ContextKey)
}

func TestNotifyError_NilErrorSendsNulls(t *testing.T) {
	c, _ := testutil.UnitTest(t)
	fake := testutil.NewFakeHoneybadger(t, http.StatusCreated)
	fake.Configure(c)

	err := honeybadger.New(c, testExecCtx).NotifyError(context.Background(), nil, nil)

	require.NoError(t, err)
	require.Len(t, fake.Received(), 1)
	errorSection := fake.Received()[0].Decode(t)["error"].(map[string]any)
	assert.Contains(t, errorSection, "class")
	assert.Nil(t, errorSection["class"])
	assert.Nil(t, errorSection["message"])
}

func TestNotify_ErrorStatusIsLoggedNotReturned(t *testing.T) {
	c, logs := testutil.UnitTest(t)
	fake := testutil.NewFakeHoneybadger(t, http.StatusInternalServerError)
	fake.Configure(c)

	err := honeybadger.New(c, testExecCtx).NotifyError(context.Background(), errors.New("boom"), nil)

	require.NoError(t, err)
	assert.Len(t, fake.Received(), 1)
	assert.Contains(t, logs.String(), "Received error response [500] from Honeybadger API.")
	assert.NotContains(t, logs.String(), "Error successfully sent")
}

func TestNotify_OtherSuccessCodesAreFailures(t *testing.T) {
	c, logs := testutil.UnitTest(t)
	fake := testutil.NewFakeHoneybadger(t, http.StatusOK)
	fake.Configure(c)

	err := honeybadger.New(c, testExecCtx).NotifyError(context.Background(), errors.New("boom"), nil)

	require.NoError(t, err)
	assert.Contains(t, logs.String(), "Received error response [200] from Honeybadger API.")
}

func TestNotify_UnserializableContextIsStillSent(t *testing.T) {
	c, _ := testutil.UnitTest(t)
	fake := testutil.NewFakeHoneybadger(t, http.StatusCreated)
	fake.Configure(c)

	err := honeybadger.New(c, testExecCtx).NotifyError(context.Background(), errors.New("boom"),
		map[string]any{"channel": make(chan int), "callback": func() {}})

	require.NoError(t, err)
	requestContext := fake.Received()[0].Decode(t)["request"].(map[string]any)["context"].(map[string]any)
	assert.Contains(t, requestContext["channel"], "chan int")
	assert.Contains(t, requestContext["callback"], "func()")
}

func TestNotify_ConnectionFailureIsReturned(t *testing.T) {
	c, _ := testutil.UnitTest(t)
	fake := testutil.NewFakeHoneybadger(t, http.StatusCreated)
	fake.Configure(c)
	fake.Server.Close()

	err := honeybadger.New(c, testExecCtx).NotifyError(context.Background(), errors.New("boom"), nil)

	assert.Error(t, err)
}

func TestNotify_CanceledContextIsReturned(t *testing.T) {
	c, _ := testutil.UnitTest(t)
	fake := testutil.NewFakeHoneybadger(t, http.StatusCreated)
	fake.Configure(c)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := honeybadger.New(c, testExecCtx).NotifyError(ctx, errors.New("boom"), nil)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, fake.Received())
}

func TestNotify_BuildFailureIsReturnedAndNothingIsSent(t *testing.T) {
	c, _ := testutil.UnitTest(t)
	fake := testutil.NewFakeHoneybadger(t, http.StatusCreated)
	fake.Configure(c)

	err := honeybadger.New(c, testExecCtx).NotifyError(context.Background(), strippedHandler(), nil)

	assert.Error(t, err)
	assert.Empty(t, fake.Received())
}
