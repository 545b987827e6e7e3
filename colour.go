// Player colours
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

package maze

import (
	"encoding/json"
	"fmt"
	"regexp"
)

// namedColours is the closed set of lowercase colour symbols the
// protocol recognises in addition to six-upper-hex literals.
var namedColours = map[string]bool{
	"purple": true,
	"orange": true,
	"pink":   true,
	"red":    true,
	"green":  true,
	"blue":   true,
	"yellow": true,
	"white":  true,
	"black":  true,
}

var hexColourPattern = regexp.MustCompile(`^[0-9A-F]{6}$`)

// Colour is either one of the nine named symbols or a six-upper-hex
// RGB literal. The two spaces share this one wire type.
type Colour string

// NewColour validates s against the named-colour set or the
// six-upper-hex pattern.
func NewColour(s string) (Colour, error) {
	if namedColours[s] || hexColourPattern.MatchString(s) {
		return Colour(s), nil
	}
	return "", fmt.Errorf("not a valid colour: %q", s)
}

// String returns the underlying wire representation.
func (c Colour) String() string { return string(c) }

// UnmarshalJSON rejects any string outside the named-colour set or
// the six-upper-hex pattern.
func (c *Colour) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	v, err := NewColour(s)
	if err != nil {
		return err
	}
	*c = v
	return nil
}
