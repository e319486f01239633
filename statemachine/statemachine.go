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

// Package statemachine classifies timed key sequences into actions.
// A machine is configured with a command map binding initial keys to
// simple actions, operator chains (no time limit between keys), or
// prefix chains (abandoned after a timeout).
package statemachine

import (
	"time"

	"github.com/mini-editor/mini/types"
)

// Timeout is how long a prefix sequence waits for its next key.
const Timeout = time.Second

// A Handler consumes the next key of a multi-key sequence and returns
// a continuation, or ok=false when the key does not extend it.
type Handler[A any] func(key types.Key) (Command[A], bool)

// Command kinds.
const (
	cmdSimple = iota
	cmdOperator
	cmdPrefix
)

// A Command is a binding table entry: a finished action, or a handler
// for the following key.
type Command[A any] struct {
	kind    int
	action  A
	handler Handler[A]
}

// Simple binds a fully determined single-key action.
func Simple[A any](action A) Command[A] {
	return Command[A]{kind: cmdSimple, action: action}
}

// Operator binds a handler for the next key with no time limit; the
// user may pause arbitrarily mid-sequence.
func Operator[A any](handler Handler[A]) Command[A] {
	return Command[A]{kind: cmdOperator, handler: handler}
}

// Prefix binds a handler for the next key which must arrive within
// Timeout, after which the sequence is abandoned.
func Prefix[A any](handler Handler[A]) Command[A] {
	return Command[A]{kind: cmdPrefix, handler: handler}
}

// A CommandMap binds initial keys to commands.
type CommandMap[A any] map[types.Key]Command[A]

// Result kinds.
const (
	ResultIncomplete = iota
	ResultInvalid
	ResultAction
)

// A Result is the outcome of feeding one input to the machine.
type Result[A any] struct {
	Kind   int
	Action A
}

func incomplete[A any]() Result[A] { return Result[A]{Kind: ResultIncomplete} }
func invalid[A any]() Result[A]    { return Result[A]{Kind: ResultInvalid} }
func action[A any](a A) Result[A]  { return Result[A]{Kind: ResultAction, Action: a} }

// Machine states.
const (
	stateNormal = iota
	stateOperatorPending
	stateWaiting
)

// A StateMachine tracks one in-flight key sequence.
type StateMachine[A any] struct {
	commands CommandMap[A]
	state    int
	handler  Handler[A]
	started  time.Time
	now      func() time.Time
}

// New creates a machine over a command map.
func New[A any](commands CommandMap[A]) *StateMachine[A] {
	return &StateMachine[A]{commands: commands, now: time.Now}
}

// Reset abandons any in-flight sequence.
func (m *StateMachine[A]) Reset() {
	m.state = stateNormal
	m.handler = nil
}

// Pending reports whether a multi-key sequence is in flight.
func (m *StateMachine[A]) Pending() bool {
	return m.state != stateNormal
}

// Tick feeds one input to the machine.
func (m *StateMachine[A]) Tick(input types.Input) Result[A] {
	if input.Timeout {
		if m.state == stateWaiting && m.now().Sub(m.started) > Timeout {
			m.Reset()
			return invalid[A]()
		}
		return incomplete[A]()
	}

	switch m.state {
	case stateOperatorPending:
		return m.feed(input.Key)
	case stateWaiting:
		if m.now().Sub(m.started) > Timeout {
			// The sequence died waiting; the key starts a fresh one
			// rather than being swallowed.
			m.Reset()
			return m.start(input.Key)
		}
		return m.feed(input.Key)
	default:
		return m.start(input.Key)
	}
}

func (m *StateMachine[A]) start(key types.Key) Result[A] {
	cmd, ok := m.commands[key]
	if !ok {
		return invalid[A]()
	}
	return m.enter(cmd)
}

func (m *StateMachine[A]) feed(key types.Key) Result[A] {
	handler := m.handler
	m.Reset()
	cmd, ok := handler(key)
	if !ok {
		return invalid[A]()
	}
	return m.enter(cmd)
}

func (m *StateMachine[A]) enter(cmd Command[A]) Result[A] {
	switch cmd.kind {
	case cmdSimple:
		m.Reset()
		return action(cmd.action)
	case cmdOperator:
		m.state = stateOperatorPending
		m.handler = cmd.handler
		return incomplete[A]()
	default:
		m.state = stateWaiting
		m.handler = cmd.handler
		m.started = m.now()
		return incomplete[A]()
	}
}
