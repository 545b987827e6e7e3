// Observers
//
// Copyright (c) 2021  Philip Kaludercic
//
// This file is part of go-kgp.
//
// go-kgp is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License,
// version 3, as published by the Free Software Foundation.
//
// go-kgp is distributed in the hope that it will be useful, but
// WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the GNU
// Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public
// License, version 3, along with go-kgp. If not, see
// <http://www.gnu.org/licenses/>

package referee

import "maze"

// Observer receives a state snapshot after every successful
// mutation, in the same total order the referee applies them.
type Observer interface {
	Broadcast(state maze.PublicState)
}

// LogObserver writes a terse line per snapshot to a *log.Logger. It
// is the zero-dependency fallback always registered alongside any
// richer observer (the websocket broadcaster, say).
type LogObserver struct {
	Log interface{ Printf(string, ...interface{}) }
}

func (o *LogObserver) Broadcast(state maze.PublicState) {
	if o.Log == nil || len(state.Players) == 0 {
		return
	}
	active := state.Players[0]
	o.Log.Printf("active player at %s, colour %s", active.Position, active.Colour)
}

// multiObserver fans a broadcast out to every registered observer.
type multiObserver []Observer

func (m multiObserver) Broadcast(state maze.PublicState) {
	for _, o := range m {
		o.Broadcast(state)
	}
}
