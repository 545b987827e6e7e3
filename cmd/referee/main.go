// Referee observer harness
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

// Command referee reads a player-specs array followed by a
// referee-state document (two consecutive JSON values) from standard
// input, plays a single local game against them, and writes
// the result to standard output as a JSON array: [winners] normally,
// or [winners, kicked] when any seat was kicked.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/urfave/cli/v3"

	"maze/player"
	"maze/proto"
	"maze/referee"
	"maze/strategy"
)

func run(ctx context.Context, cmd *cli.Command) error {
	dec := json.NewDecoder(os.Stdin)
	var specs []proto.PlayerSpec
	if err := dec.Decode(&specs); err != nil {
		return fmt.Errorf("referee: reading player specs: %w", err)
	}
	var refState proto.RefereeState
	if err := dec.Decode(&refState); err != nil {
		return fmt.Errorf("referee: reading referee state: %w", err)
	}

	state, remainingGoals, err := refState.ToState()
	if err != nil {
		return fmt.Errorf("referee: invalid state: %w", err)
	}

	names := make([]string, len(specs))
	players := make([]player.Player, len(specs))
	for i, spec := range specs {
		names[i] = spec.Name

		var strat strategy.Strategy
		switch spec.Strategy {
		case "Riemann":
			strat = strategy.Riemann{}
		case "Euclid":
			strat = strategy.Euclid{}
		default:
			return fmt.Errorf("referee: unrecognised strategy %q", spec.Strategy)
		}

		var p player.Player = player.NewLocal(spec.Name, strat)
		if spec.Misbehaves() {
			if spec.Counted() {
				p = &player.Looper{Player: p, Method: spec.BadMethod, N: spec.N}
			} else {
				p = &player.Thrower{Player: p, Method: spec.BadMethod}
			}
		}
		players[i] = p
	}

	conf := referee.Load("")
	conf.MultipleGoals = len(remainingGoals) > 0
	ref := referee.New(conf, 1, &referee.LogObserver{Log: conf.Debug})

	result := ref.PlayFrom(state, remainingGoals, names, players)

	sort.Strings(result.Winners)
	sort.Strings(result.Kicked)

	out := [][]string{result.Winners}
	if len(result.Kicked) > 0 {
		out = append(out, result.Kicked)
	}
	return json.NewEncoder(os.Stdout).Encode(out)
}

func main() {
	cmd := &cli.Command{
		Name:   "referee",
		Usage:  "play a single local game from a player-specs/referee-state document on standard input",
		Action: run,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
