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

package testutil

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/snyk/honeybadger-lambda-go/application/config"
)

// ReceivedNotice is one request received by FakeHoneybadger.
type ReceivedNotice struct {
	Header http.Header
	Body   []byte
}

// Decode unmarshals the notice body into a generic map.
func (r ReceivedNotice) Decode(t *testing.T) map[string]any {
	t.Helper()
	var decoded map[string]any
	if err := json.Unmarshal(r.Body, &decoded); err != nil {
		t.Fatalf("notice body is not valid JSON: %v", err)
	}
	return decoded
}

// FakeHoneybadger is an in-process stand-in for the notices endpoint.
type FakeHoneybadger struct {
	Server   *httptest.Server
	status   int
	mutex    sync.Mutex
	received []ReceivedNotice
}

func NewFakeHoneybadger(t *testing.T, status int) *FakeHoneybadger {
	t.Helper()
	f := &FakeHoneybadger{status: status}
	r := chi.NewRouter()
	r.Post("/v1/notices/", f.handleNotice)
	f.Server = httptest.NewServer(r)
	t.Cleanup(f.Server.Close)
	return f
}

// Configure points c at the fake server.
func (f *FakeHoneybadger) Configure(c *config.Config) {
	c.SetEndpoint(f.Server.URL)
	c.SetHttpClientFunc(f.Server.Client)
}

func (f *FakeHoneybadger) Received() []ReceivedNotice {
	f.mutex.Lock()
	defer f.mutex.Unlock()
	return append([]ReceivedNotice(nil), f.received...)
}

func (f *FakeHoneybadger) handleNotice(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	f.mutex.Lock()
	f.received = append(f.received, ReceivedNotice{Header: r.Header.Clone(), Body: body})
	f.mutex.Unlock()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(f.status)
	_, _ = w.Write([]byte(`{"id":"` + uuid.NewString() + `"}`))
}
