// Referee configuration
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

package referee

import (
	"io"
	"log"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

// tomlConf mirrors the on-disk configuration file; Conf is the resolved
// runtime configuration.
type tomlConf struct {
	Game struct {
		MultipleGoals bool `toml:"multiple_goals"`
		MaxRounds     uint `toml:"max_rounds"`
		TurnTimeout   uint `toml:"turn_timeout_ms"`
	} `toml:"game"`
	Signup struct {
		Port       uint `toml:"port"`
		Window     uint `toml:"window_seconds"`
		MinPlayers uint `toml:"min_players"`
		MaxPlayers uint `toml:"max_players"`
	} `toml:"signup"`
}

// Conf is the referee's resolved runtime configuration.
type Conf struct {
	Log   *log.Logger
	Debug *log.Logger

	MultipleGoals bool
	MaxRounds     int
	TurnTimeout   time.Duration
	SetupTimeout  time.Duration
	WinTimeout    time.Duration

	SignupPort   uint
	SignupWindow time.Duration
	MinPlayers   uint
	MaxPlayers   uint
}

var defaultConfig = Conf{
	Log:   log.Default(),
	Debug: log.New(io.Discard, "[debug] ", log.Ltime|log.Lshortfile|log.Lmicroseconds),

	MultipleGoals: false,
	MaxRounds:     1000,
	TurnTimeout:   4 * time.Second,
	SetupTimeout:  4 * time.Second,
	WinTimeout:    4 * time.Second,

	SignupPort:   2671,
	SignupWindow: 20 * time.Second,
	MinPlayers:   2,
	MaxPlayers:   6,
}

// load parses a TOML document into a copy of the default
// configuration.
func load(r io.Reader) (*Conf, error) {
	var data tomlConf
	if _, err := toml.NewDecoder(r).Decode(&data); err != nil {
		return nil, err
	}

	c := defaultConfig
	c.MultipleGoals = data.Game.MultipleGoals
	if data.Game.MaxRounds > 0 {
		c.MaxRounds = int(data.Game.MaxRounds)
	}
	if data.Game.TurnTimeout > 0 {
		c.TurnTimeout = time.Duration(data.Game.TurnTimeout) * time.Millisecond
	}
	if data.Signup.Port > 0 {
		c.SignupPort = data.Signup.Port
	}
	if data.Signup.Window > 0 {
		c.SignupWindow = time.Duration(data.Signup.Window) * time.Second
	}
	if data.Signup.MinPlayers > 0 {
		c.MinPlayers = data.Signup.MinPlayers
	}
	if data.Signup.MaxPlayers > 0 {
		c.MaxPlayers = data.Signup.MaxPlayers
	}
	return &c, nil
}

// Load opens path and parses it as a referee configuration file,
// falling back to the built-in defaults if path does not exist.
func Load(path string) *Conf {
	file, err := os.Open(path)
	if err != nil {
		c := defaultConfig
		return &c
	}
	defer file.Close()

	c, err := load(file)
	if err != nil {
		log.Print(err)
		fallback := defaultConfig
		return &fallback
	}
	return c
}

// Dump serialises c back out as TOML.
func (c *Conf) Dump(w io.Writer) error {
	var data tomlConf
	data.Game.MultipleGoals = c.MultipleGoals
	data.Game.MaxRounds = uint(c.MaxRounds)
	data.Game.TurnTimeout = uint(c.TurnTimeout / time.Millisecond)
	data.Signup.Port = c.SignupPort
	data.Signup.Window = uint(c.SignupWindow / time.Second)
	data.Signup.MinPlayers = c.MinPlayers
	data.Signup.MaxPlayers = c.MaxPlayers
	return toml.NewEncoder(w).Encode(data)
}
