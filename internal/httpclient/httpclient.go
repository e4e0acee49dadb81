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

package httpclient

import (
	"net/http"
	"strings"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// NewHTTPClient returns a client without a timeout. Requests are bounded by their context only.
func NewHTTPClient(logger *zerolog.Logger) *http.Client {
	method := "NewHTTPClient"
	tr := http.DefaultTransport.(*http.Transport).Clone()
	client := &http.Client{Transport: otelhttp.NewTransport(tr)}

	req, err := http.NewRequest(http.MethodPost, "https://api.honeybadger.io", nil)
	if err != nil {
		logger.Err(err).Str("method", method).Send()
		return client
	}
	proxy, err := tr.Proxy(req)
	if err != nil {
		logger.Err(err).Str("method", method).Send()
	}
	if proxy != nil {
		proxySplit := strings.Split(proxy.String(), "@")
		proxyLogString := proxySplit[0]
		if len(proxySplit) > 1 {
			proxyLogString = "xxx@" + proxySplit[1]
		}
		logger.Debug().Str("method", method).Str("proxy", proxyLogString).Msg("created http client with proxy support")
	}
	return client
}
