// Package topology resolves which players occupy each side of a round.
//
// Resolution is a pure function of (playerCount, sequence): replaying
// the same inputs always yields the same sides, so it serves both live
// rounds and historical re-rendering. Every "who is on which side"
// question in the system goes through this package.
package topology

import "github.com/mverv/manyscore/internal/model"

// Sides holds the player indexes occupying each side of a round.
// SideA and SideB are disjoint and together cover every player index.
type Sides struct {
	SideA []int
	SideB []int
}

// Resolve maps a player count and 1-based round sequence number to the
// side membership for that round:
//
//   - 2 players: head-to-head, side A = player 0, side B = player 1.
//   - 3 players: rotating solo. The solo player ((sequence-1) mod 3)
//     is side A; the other two play as a pair on side B.
//   - 4 players: fixed teams, players 0 and 2 vs players 1 and 3.
func Resolve(playerCount, sequence int) (Sides, error) {
	switch playerCount {
	case 2:
		return Sides{SideA: []int{0}, SideB: []int{1}}, nil
	case 3:
		solo := (sequence - 1) % 3
		return Sides{
			SideA: []int{solo},
			SideB: []int{(solo + 1) % 3, (solo + 2) % 3},
		}, nil
	case 4:
		return Sides{SideA: []int{0, 2}, SideB: []int{1, 3}}, nil
	default:
		return Sides{}, model.ErrInvalidPlayerCount
	}
}

// Members returns the player indexes on the given side
func (s Sides) Members(side model.Side) []int {
	switch side {
	case model.SideA:
		return s.SideA
	case model.SideB:
		return s.SideB
	}
	return nil
}

// CurrentTurn returns the player indexes whose input is expected for
// the given round. This coincides with side A of Resolve today, but is
// a separate contract: turn indication answers "who acts", topology
// answers "how points are attributed". A future rule variant could
// decouple them.
func CurrentTurn(playerCount, sequence int) ([]int, error) {
	sides, err := Resolve(playerCount, sequence)
	if err != nil {
		return nil, err
	}
	return sides.SideA, nil
}
