// Signup and referee server
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

// Command signup runs a long-lived server: it repeatedly opens a
// signup window on a TCP port, plays one game against whoever
// connects, broadcasts it to any websocket spectators, and logs the
// result before opening the next window.
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/urfave/cli/v3"

	"maze"
	"maze/observer"
	"maze/referee"
	"maze/signup"
)

func run(ctx context.Context, cmd *cli.Command) error {
	confPath := cmd.String("config")
	conf := referee.Load(confPath)

	hub := observer.NewHub()
	go hub.Run()

	if addr := cmd.String("spectate"); addr != "" {
		go func() {
			conf.Log.Printf("spectator endpoint on %s", addr)
			if err := http.ListenAndServe(addr, hub); err != nil {
				conf.Log.Print(err)
			}
		}()
	}

	seed := int64(1)
	for {
		if conf.MinPlayers < 2 {
			return fmt.Errorf("signup: min_players must be at least 2")
		}

		window := &signup.Window{
			Port:     conf.SignupPort,
			Duration: conf.SignupWindow,
			Max:      conf.MaxPlayers,
			Log:      conf.Log,
		}
		players, err := window.Accept()
		if err != nil {
			conf.Log.Print(err)
			continue
		}
		if uint(len(players)) < conf.MinPlayers {
			conf.Log.Printf("signup: only %d of %d required players joined, skipping round", len(players), conf.MinPlayers)
			continue
		}

		names := make([]string, len(players))
		for i, p := range players {
			names[i] = p.Name()
		}

		ref := referee.New(conf, seed, &referee.LogObserver{Log: conf.Log}, hub)
		seed++

		result := ref.Play(maze.DefaultBoard(), names, players)
		conf.Log.Printf("game finished: winners=%v losers=%v kicked=%v", result.Winners, result.Losers, result.Kicked)
	}
}

func main() {
	cmd := &cli.Command{
		Name:  "signup",
		Usage: "accept players over TCP and referee games against them indefinitely",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Usage: "path to a TOML configuration file"},
			&cli.StringFlag{Name: "spectate", Usage: "address to serve the websocket spectator endpoint on, e.g. :8080"},
		},
		Action: run,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
