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
	"bytes"
	"context"
	"io"
	"net/http"

	"github.com/pkg/errors"

	"github.com/snyk/honeybadger-lambda-go/application/config"
	"github.com/snyk/honeybadger-lambda-go/domain/lambda"
	"github.com/snyk/honeybadger-lambda-go/domain/notice"
	"github.com/snyk/honeybadger-lambda-go/domain/observability/error_reporting"
)

const NoticesPath = "/v1/notices/"

// Notifier sends notices to the Honeybadger API. Create one per invocation.
type Notifier struct {
	c       *config.Config
	builder *Builder
}

var _ error_reporting.ErrorReporter = (*Notifier)(nil)

func New(c *config.Config, execCtx lambda.ExecutionContext) *Notifier {
	return &Notifier{c: c, builder: NewBuilder(c, execCtx)}
}

// Notify builds a notice for source and sends it. A non-201 response is logged and not returned
// as an error; failures to build the notice or to reach the API are.
func (n *Notifier) Notify(ctx context.Context, source notice.ErrorSource, errContext map[string]any) error {
	if source == nil {
		source = notice.FromLabel{}
	}
	if errContext == nil {
		errContext = map[string]any{}
	}

	payload, err := n.builder.Build(source, errContext)
	if err != nil {
		return errors.Wrap(err, "couldn't build notice")
	}
	body, err := Encode(payload)
	if err != nil {
		return errors.Wrap(err, "couldn't encode notice")
	}
	return n.send(ctx, payload.Error.Token, body)
}

func (n *Notifier) NotifyError(ctx context.Context, err error, errContext map[string]any) error {
	return n.Notify(ctx, notice.Error(err), errContext)
}

func (n *Notifier) NotifyLabel(ctx context.Context, errorClass string, errorMessage string, errContext map[string]any) error {
	return n.Notify(ctx, notice.Label(errorClass, errorMessage), errContext)
}

func (n *Notifier) send(ctx context.Context, token string, body []byte) error {
	method := "honeybadger.send"
	logger := n.c.Logger().With().Str("method", method).Logger()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.c.Endpoint()+NoticesPath, bytes.NewReader(body))
	if err != nil {
		return errors.Wrap(err, "couldn't create notice request")
	}
	req.Header.Set("X-Api-Key", n.c.ApiKey())
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	logger.Trace().Str("requestBody", string(body)).Msg("SEND TO REMOTE")
	response, err := n.c.HttpClient().Do(req)
	if err != nil {
		return errors.Wrap(err, "couldn't send notice to Honeybadger")
	}
	defer func() {
		closeErr := response.Body.Close()
		if closeErr != nil {
			logger.Err(closeErr).Msg("Couldn't close response body in call to Honeybadger API")
		}
	}()
	_, _ = io.Copy(io.Discard, response.Body)

	if response.StatusCode != http.StatusCreated {
		logger.Error().Int("status", response.StatusCode).
			Msgf("Received error response [%d] from Honeybadger API.", response.StatusCode)
		return nil
	}
	logger.Info().Str("token", token).Msg("Error successfully sent to Honeybadger.")
	return nil
}
