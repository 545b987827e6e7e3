// Referee game loop
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

// Package referee runs a single game: it assigns homes and goals,
// drives the round loop against a sequence of player.Player seats
// under hard timeouts, evolves goals, computes winners, and notifies
// every surviving seat of the outcome. Cheating, timing out, and
// protocol errors all collapse into one "kick" outcome; the referee
// never retries a call and never aborts the game over one offender.
package referee

import (
	"fmt"
	"math/rand"

	"maze"
	"maze/player"
	"maze/timeout"
)

// Termination names how the round loop stopped.
type Termination int

const (
	TerminationWinner Termination = iota
	TerminationTie
	TerminationNoMoreRounds
)

func (t Termination) String() string {
	switch t {
	case TerminationWinner:
		return "Winner"
	case TerminationTie:
		return "Tie"
	case TerminationNoMoreRounds:
		return "NoMoreRounds"
	default:
		return "Unknown"
	}
}

// Result is the outcome of a finished game: the three buckets
// partition the seats the referee started with exactly once each.
type Result struct {
	Winners []string
	Losers  []string
	Kicked  []string
}

// seat pairs a live player handle with its name. The seats slice is
// kept index-aligned with state.Players: every kick, pass and move
// removes or rotates both together.
type seat struct {
	player player.Player
	name   string
}

// Referee drives one game to completion.
type Referee struct {
	Conf          *Conf
	Rand          *rand.Rand
	MultipleGoals bool
	Observers     []Observer
}

// New builds a referee seeded from seed, with the given config and
// observer set.
func New(conf *Conf, seed int64, observers ...Observer) *Referee {
	return &Referee{
		Conf:          conf,
		Rand:          rand.New(rand.NewSource(seed)),
		MultipleGoals: conf.MultipleGoals,
		Observers:     observers,
	}
}

func (r *Referee) broadcast(state maze.PublicState) {
	multiObserver(r.Observers).Broadcast(state)
}

func randomColour(rng *rand.Rand) maze.Colour {
	return maze.Colour(fmt.Sprintf("%06X", rng.Intn(1<<24)))
}

// setupSeats assigns distinct homes (random order), distinct initial
// goals (board order), a random colour, and starting position = home
// to each player, then builds the initial state. remainingGoals is
// the unassigned tail of PossibleGoals when MultipleGoals is set.
func (r *Referee) setupSeats(board *maze.Board, names []string) (*maze.State, []maze.Coordinate) {
	homes := append([]maze.Coordinate(nil), board.PossibleHomes()...)
	r.Rand.Shuffle(len(homes), func(i, j int) { homes[i], homes[j] = homes[j], homes[i] })
	goals := board.PossibleGoals()

	infos := make([]maze.PlayerInfoFull, len(names))
	for i := range names {
		home := homes[i]
		infos[i] = maze.PlayerInfoFull{
			PlayerInfoPublic: maze.PlayerInfoPublic{
				Position: home,
				Home:     home,
				Colour:   randomColour(r.Rand),
			},
			Goal: goals[i%len(goals)],
		}
	}

	var remaining []maze.Coordinate
	if r.MultipleGoals {
		remaining = append(remaining, goals[len(names):]...)
	}

	return maze.NewState(board, infos), remaining
}

// Play runs a complete game on a freshly randomised board state:
// setup, round loop, winner computation, and notification. names and
// players must be the same length and in the seating order to use.
func (r *Referee) Play(board *maze.Board, names []string, players []player.Player) Result {
	state, remainingGoals := r.setupSeats(board, names)
	return r.PlayFrom(state, remainingGoals, names, players)
}

// PlayFrom runs a complete game starting from an already-built state
// (as read from a RefereeState document, say), skipping home/goal
// randomisation. names must list state.Players in order.
func (r *Referee) PlayFrom(state *maze.State, remainingGoals []maze.Coordinate, names []string, players []player.Player) Result {
	seats := make([]seat, len(names))
	for i := range names {
		seats[i] = seat{player: players[i], name: names[i]}
	}

	var kicked []string

	// Setup phase: call setup(public_state, goal) on every seat in
	// order. A failure kicks the seat before the round loop starts.
	for i := 0; i < len(seats); {
		view := state.PublicView()
		goal := state.Players[i].Goal
		_, err := timeout.Call(r.Conf.SetupTimeout, func() (struct{}, error) {
			return struct{}{}, seats[i].player.Setup(&view, goal)
		})
		if err != nil {
			kicked = append(kicked, seats[i].name)
			seats = append(seats[:i], seats[i+1:]...)
			state.Players = append(state.Players[:i], state.Players[i+1:]...)
			continue
		}
		i++
	}

	termination := TerminationNoMoreRounds
	if len(seats) == 0 {
		return Result{Kicked: kicked}
	}

roundLoop:
	for round := 0; round < r.Conf.MaxRounds; round++ {
		seatCount := len(seats)
		passes := 0

		for s := 0; s < seatCount; s++ {
			if len(seats) == 0 {
				termination = TerminationTie
				break roundLoop
			}

			view := state.PublicView()
			action, err := timeout.Call(r.Conf.TurnTimeout, func() (maze.Action, error) {
				return seats[0].player.TakeTurn(view), nil
			})
			if err != nil {
				kicked = append(kicked, seats[0].name)
				seats = seats[1:]
				state.RemovePlayer()
				r.broadcast(state.PublicView())
				continue
			}

			if action.IsPass() {
				passes++
				state.NextPlayer()
				seats = append(seats[1:], seats[0])
				r.broadcast(state.PublicView())
				continue
			}

			won, offender := r.processMove(state, seats[0].player, *action.Move, &remainingGoals)
			if offender {
				kicked = append(kicked, seats[0].name)
				seats = seats[1:]
				state.RemovePlayer()
				r.broadcast(state.PublicView())
				continue
			}
			r.broadcast(state.PublicView())

			if won {
				termination = TerminationWinner
				break roundLoop
			}

			state.NextPlayer()
			seats = append(seats[1:], seats[0])
		}

		if len(seats) == 0 {
			termination = TerminationTie
			break roundLoop
		}
		if passes == seatCount {
			termination = TerminationTie
			break roundLoop
		}
	}

	winnerIdx, loserIdx := calculateWinners(state, termination)
	result := Result{Kicked: kicked}
	for _, i := range winnerIdx {
		result.Winners = append(result.Winners, seats[i].name)
	}
	for _, i := range loserIdx {
		result.Losers = append(result.Losers, seats[i].name)
	}

	r.notify(seats, &result)
	return result
}

// processMove applies the active player's proposed move. The bool
// results are (won, offender): offender means try_move rejected the
// move, or the re-setup after a goal was consumed failed, and the
// seat must be kicked; won means the active player has just returned
// home after collecting every goal. On goal consumption the player is
// re-setup with its new goal under timeout, matching the requirement
// that a player always knows the goal it is currently chasing.
func (r *Referee) processMove(state *maze.State, p player.Player, m maze.Move, remainingGoals *[]maze.Coordinate) (won, offender bool) {
	if err := state.TryMove(m.Slide, m.Rotations, m.Destination); err != nil {
		return false, true
	}

	active := state.ActivePlayer()
	finalLeg := active.ReachedGoal() && active.Goal == active.Home

	if state.UpdateCurrentPlayerGoal(remainingGoals) {
		newGoal := active.Goal
		if _, err := timeout.Call(r.Conf.SetupTimeout, func() (struct{}, error) {
			return struct{}{}, p.Setup(nil, newGoal)
		}); err != nil {
			return false, true
		}
	}

	return finalLeg && active.GoalsReached > 0, false
}

// notify calls won(bool) on every surviving seat. A seat that fails
// to answer is moved from its winner/loser bucket into Kicked.
func (r *Referee) notify(seats []seat, result *Result) {
	won := map[string]bool{}
	for _, name := range result.Winners {
		won[name] = true
	}
	for _, s := range seats {
		p := s.player
		answer := won[s.name]
		if _, err := timeout.Call(r.Conf.WinTimeout, func() (struct{}, error) {
			return struct{}{}, p.Won(answer)
		}); err != nil {
			result.Winners = removeName(result.Winners, s.name)
			result.Losers = removeName(result.Losers, s.name)
			result.Kicked = append(result.Kicked, s.name)
		}
	}
}

func removeName(list []string, name string) []string {
	out := list[:0]
	for _, n := range list {
		if n != name {
			out = append(out, n)
		}
	}
	return out
}

// calculateWinners picks the winning seats by index into state.Players
// (which tracks the caller's seats slice one-for-one throughout Play).
// An outright TerminationWinner names the active seat (index 0, the
// one who just returned home) the sole winner only if it is also
// among the seats tied for the most goals reached; a multi-goal game
// can end with the ender short of the lead, in which case the normal
// goals-reached/distance-to-goal tiebreak among the contenders decides
// it instead. Otherwise the seats with the most goals reached win,
// ties broken by whichever is closest to its current goal.
func calculateWinners(state *maze.State, termination Termination) (winners, losers []int) {
	n := len(state.Players)
	if n == 0 {
		return nil, nil
	}

	maxGoals := -1
	for _, p := range state.Players {
		if p.GoalsReached > maxGoals {
			maxGoals = p.GoalsReached
		}
	}

	var contenders []int
	for i, p := range state.Players {
		if p.GoalsReached == maxGoals {
			contenders = append(contenders, i)
		}
	}

	if termination == TerminationWinner && state.Players[0].GoalsReached == maxGoals {
		winners = []int{0}
		for i := 1; i < n; i++ {
			losers = append(losers, i)
		}
		return winners, losers
	}

	minDist := -1
	for _, i := range contenders {
		d := squaredDistance(state.Players[i].Position, state.Players[i].Goal)
		if minDist == -1 || d < minDist {
			minDist = d
		}
	}

	winnerSet := map[int]bool{}
	for _, i := range contenders {
		if squaredDistance(state.Players[i].Position, state.Players[i].Goal) == minDist {
			winners = append(winners, i)
			winnerSet[i] = true
		}
	}
	for i := range state.Players {
		if !winnerSet[i] {
			losers = append(losers, i)
		}
	}
	return winners, losers
}

func squaredDistance(a, b maze.Coordinate) int {
	dr := a.Row - b.Row
	dc := a.Column - b.Column
	return dr*dr + dc*dc
}
