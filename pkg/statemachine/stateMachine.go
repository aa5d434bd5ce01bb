// Copyright (C) 2022, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package statemachine

import (
	"errors"
)

// StateDirection only moves forward or stops: a stage never goes back to a
// prior one.
type StateDirection int64

const (
	Forward StateDirection = iota
	Stop
)

const notRunningState = ""

var ErrNoStates = errors.New("state machine needs at least one state")

type StateMachine struct {
	index   int
	states  []string
	stopped bool
}

func NewStateMachine(states []string) (*StateMachine, error) {
	if len(states) == 0 {
		return nil, ErrNoStates
	}
	return &StateMachine{
		states: states,
	}, nil
}

// CurrentState returns the empty state once the machine went past the last
// state or was stopped.
func (sm *StateMachine) CurrentState() string {
	if !sm.Running() {
		return notRunningState
	}
	return sm.states[sm.index]
}

func (sm *StateMachine) Running() bool {
	return !sm.stopped && sm.index < len(sm.states)
}

// Completed is true when every state was visited without a stop
func (sm *StateMachine) Completed() bool {
	return !sm.stopped && sm.index >= len(sm.states)
}

func (sm *StateMachine) NextState(direction StateDirection) {
	switch direction {
	case Forward:
		if sm.Running() {
			sm.index++
		}
	case Stop:
		sm.Stop()
	}
}

func (sm *StateMachine) Stop() {
	sm.stopped = true
}
