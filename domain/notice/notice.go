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

// Package notice contains the payload sent to Honeybadger for a single error occurrence.
package notice

// TimeFormat is the layout of ServerInfo.Time, always rendered in UTC.
const TimeFormat = "2006-01-02T15:04:05Z"

type Notice struct {
	Notifier NotifierInfo `json:"notifier"`
	Error    ErrorInfo    `json:"error"`
	Server   ServerInfo   `json:"server"`
	Request  Request      `json:"request"`
}

type NotifierInfo struct {
	Name    string `json:"name"`
	Url     string `json:"url"`
	Version string `json:"version"`
}

// ErrorInfo describes the error itself. Class and Message are nil only when a manual
// notification was sent without a label, and then serialize as null.
type ErrorInfo struct {
	Class     *string        `json:"class"`
	Message   *string        `json:"message"`
	Token     string         `json:"token,omitempty"`
	Backtrace []Frame        `json:"backtrace"`
	Source    map[int]string `json:"source"`
}

// Frame is one backtrace entry.
type Frame struct {
	Number int    `json:"number"`
	File   string `json:"file"`
	Method string `json:"method"`
}

type ServerInfo struct {
	ProjectRoot     string         `json:"project_root"`
	EnvironmentName string         `json:"environment_name"`
	Hostname        string         `json:"hostname"`
	Time            string         `json:"time"`
	Pid             int            `json:"pid"`
	Stats           map[string]any `json:"stats"`
}

type Request struct {
	Context map[string]any `json:"context"`
}

// ClassString returns the error class, or an empty string if none is set.
func (e ErrorInfo) ClassString() string {
	if e.Class == nil {
		return ""
	}
	return *e.Class
}

// MessageString returns the error message, or an empty string if none is set.
func (e ErrorInfo) MessageString() string {
	if e.Message == nil {
		return ""
	}
	return *e.Message
}
