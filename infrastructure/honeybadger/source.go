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
	"os"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// readSourceWindow reads fileName as UTF-8 and returns the lines around lineNumber.
func readSourceWindow(fileName string, lineNumber int, radius int) (map[int]string, error) {
	content, err := os.ReadFile(fileName)
	if err != nil {
		return nil, errors.Wrap(err, "couldn't read source file")
	}
	if !utf8.Valid(content) {
		return nil, errors.Errorf("source file %s is not valid UTF-8", fileName)
	}
	return sourceWindow(splitLines(string(content)), lineNumber, radius), nil
}

// splitLines splits s into lines, each keeping its trailing newline.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	lines := strings.SplitAfter(s, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// sourceWindow maps 1-based line numbers to the lines around lineNumber. The center is clamped to
// [radius+1, len(lines)-radius] so the window keeps its full width near either end of the file.
func sourceWindow(lines []string, lineNumber int, radius int) map[int]string {
	source := make(map[int]string)
	n := len(lines)
	if n == 0 {
		return source
	}

	center := min(max(lineNumber, radius+1), n-radius)
	first := max(center-radius, 1)
	last := min(center+radius, n)
	for i := first; i <= last; i++ {
		source[i] = lines[i-1]
	}
	return source
}
