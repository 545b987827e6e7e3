// Wire encoding of PlayerSpec documents
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

package proto

import (
	"encoding/json"
	"fmt"
	"regexp"

	"maze/player"
)

var namePattern = regexp.MustCompile(`^[A-Za-z0-9]{1,20}$`)

// ValidName reports whether name satisfies the protocol's 1..20
// character [A-Za-z0-9]+ constraint.
func ValidName(name string) bool {
	return namePattern.MatchString(name)
}

// PlayerSpec describes one seat the observer harness should
// construct: a name, a strategy, and optionally a misbehaviour mode
// targeting one method, optionally only on its Nth invocation.
type PlayerSpec struct {
	Name       string
	Strategy   string
	BadMethod  player.Method
	N          int
	misbehaves bool
	counted    bool
}

func (p *PlayerSpec) UnmarshalJSON(data []byte) error {
	var tuple []json.RawMessage
	if err := json.Unmarshal(data, &tuple); err != nil {
		return fmt.Errorf("proto: malformed player spec: %w", err)
	}
	if len(tuple) < 2 || len(tuple) > 4 {
		return fmt.Errorf("proto: player spec must have 2 to 4 elements, got %d", len(tuple))
	}
	if err := json.Unmarshal(tuple[0], &p.Name); err != nil {
		return fmt.Errorf("proto: malformed player spec name: %w", err)
	}
	if !ValidName(p.Name) {
		return fmt.Errorf("proto: invalid player name %q", p.Name)
	}
	if err := json.Unmarshal(tuple[1], &p.Strategy); err != nil {
		return fmt.Errorf("proto: malformed player spec strategy: %w", err)
	}
	if p.Strategy != "Riemann" && p.Strategy != "Euclid" {
		return fmt.Errorf("proto: unrecognised strategy %q", p.Strategy)
	}
	if len(tuple) >= 3 {
		var method string
		if err := json.Unmarshal(tuple[2], &method); err != nil {
			return fmt.Errorf("proto: malformed player spec bad method: %w", err)
		}
		bm := player.Method(method)
		if bm != player.SetUp && bm != player.TakeTurn && bm != player.Win {
			return fmt.Errorf("proto: unrecognised bad method %q", method)
		}
		p.BadMethod = bm
		p.misbehaves = true
	}
	if len(tuple) == 4 {
		if err := json.Unmarshal(tuple[3], &p.N); err != nil {
			return fmt.Errorf("proto: malformed player spec invocation count: %w", err)
		}
		p.counted = true
	}
	return nil
}

// Misbehaves reports whether this spec names a bad method at all.
func (p PlayerSpec) Misbehaves() bool { return p.misbehaves }

// Counted reports whether this spec's misbehaviour is gated on the
// Nth invocation (a Looper) rather than every invocation (a Thrower).
func (p PlayerSpec) Counted() bool { return p.counted }
