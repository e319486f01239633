//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//

// Package clipboard abstracts the system clipboard so buffers can be
// tested without one.
package clipboard

import "github.com/atotto/clipboard"

// A Clipboard stores and recalls one string.
type Clipboard interface {
	Set(text string) error
	Get() (string, error)
}

// System is the desktop clipboard.
type System struct{}

func (System) Set(text string) error {
	return clipboard.WriteAll(text)
}

func (System) Get() (string, error) {
	return clipboard.ReadAll()
}

// Memory is an in-process clipboard used in tests and as a fallback
// when no system clipboard is reachable.
type Memory struct {
	text string
}

func (m *Memory) Set(text string) error {
	m.text = text
	return nil
}

func (m *Memory) Get() (string, error) {
	return m.text, nil
}
