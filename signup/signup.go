// TCP signup window
//
// Copyright (c) 2021, 2022  Philip Kaludercic
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

// Package signup accepts player connections on a TCP port for a
// fixed window and hands off every accepted connection, wrapped as a
// proxy.Remote, to the referee package for a single game.
package signup

import (
	"fmt"
	"log"
	"net"
	"time"

	"maze/player"
	"maze/proxy"
)

// Window listens on port for the given duration, accepting up to max
// connections (stopping early once max is reached), and returns one
// player.Player proxy per accepted connection, each named seat-N in
// acceptance order; no name is read from the connection itself.
type Window struct {
	Port     uint
	Duration time.Duration
	Max      uint
	Log      *log.Logger
}

// Accept runs one signup window to completion, closing the listener
// before returning.
func (w *Window) Accept() ([]player.Player, error) {
	addr := fmt.Sprintf(":%d", w.Port)
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("signup: %w", err)
	}
	defer ln.Close()

	if w.Log != nil {
		w.Log.Printf("signup: accepting connections on %s for %s", addr, w.Duration)
	}

	type accepted struct {
		conn net.Conn
		err  error
	}
	conns := make(chan accepted)
	go func() {
		for {
			conn, err := ln.Accept()
			conns <- accepted{conn, err}
			if err != nil {
				return
			}
		}
	}()

	deadline := time.After(w.Duration)
	var players []player.Player
	for uint(len(players)) < w.Max {
		select {
		case a := <-conns:
			if a.err != nil {
				continue
			}
			name := fmt.Sprintf("seat-%d", len(players)+1)
			players = append(players, proxy.NewRemote(name, a.conn))
			if w.Log != nil {
				w.Log.Printf("signup: accepted %s from %s", name, a.conn.RemoteAddr())
			}
		case <-deadline:
			return players, nil
		}
	}
	return players, nil
}
