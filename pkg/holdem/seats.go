package holdem

import "fmt"

// NumSeats is the fixed seat capacity of a table
const NumSeats = 9

// SeatArray maps seat indices to players; a nil entry is an empty seat
type SeatArray [NumSeats]*Player

func assertValidSeat(seat int) {
	if seat < 0 || seat >= NumSeats {
		panic(fmt.Sprintf("seat index out of range: %d", seat))
	}
}

// Occupancy returns which seats are occupied
func (s SeatArray) Occupancy() [NumSeats]bool {
	var occupancy [NumSeats]bool
	for i, p := range s {
		occupancy[i] = p != nil
	}

	return occupancy
}

// Player returns the player in the given seat, which must be occupied
func (s SeatArray) Player(seat int) *Player {
	assertValidSeat(seat)
	if s[seat] == nil {
		panic(fmt.Sprintf("seat %d is not occupied", seat))
	}

	return s[seat]
}

// AddPlayer seats a player at the given empty seat
func (s *SeatArray) AddPlayer(seat int, p *Player) {
	assertValidSeat(seat)
	if s[seat] != nil {
		panic(fmt.Sprintf("seat %d is already occupied", seat))
	}

	s[seat] = p
}

// RemovePlayer empties the given occupied seat
func (s *SeatArray) RemovePlayer(seat int) {
	assertValidSeat(seat)
	if s[seat] == nil {
		panic(fmt.Sprintf("seat %d is not occupied", seat))
	}

	s[seat] = nil
}

// Count returns the number of occupied seats
func (s SeatArray) Count() int {
	count := 0
	for _, p := range s {
		if p != nil {
			count++
		}
	}

	return count
}

// FirstOccupied returns the lowest occupied seat index
func (s SeatArray) FirstOccupied() int {
	for i, p := range s {
		if p != nil {
			return i
		}
	}

	panic("no occupied seats")
}

// SeatView is a borrowed look into a seat array restricted by a filter.
// The filter is independent of the array's occupancy, but every filtered-in
// seat must be occupied.
type SeatView struct {
	seats  *SeatArray
	filter [NumSeats]bool
}

// NewSeatView returns a view of every occupied seat
func NewSeatView(seats *SeatArray) *SeatView {
	return &SeatView{
		seats:  seats,
		filter: seats.Occupancy(),
	}
}

// NewFilteredSeatView returns a view restricted to the given filter, whose
// true positions must be a subset of the array's occupancy
func NewFilteredSeatView(seats *SeatArray, filter [NumSeats]bool) *SeatView {
	occupancy := seats.Occupancy()
	for i, in := range filter {
		if in && !occupancy[i] {
			panic(fmt.Sprintf("filter includes empty seat %d", i))
		}
	}

	return &SeatView{
		seats:  seats,
		filter: filter,
	}
}

// Filter returns the view's filter bitmap
func (v *SeatView) Filter() [NumSeats]bool {
	return v.filter
}

// Contains returns true if the given seat is in the view
func (v *SeatView) Contains(seat int) bool {
	assertValidSeat(seat)
	return v.filter[seat]
}

// Player returns the player in the given seat, which must be in the view
func (v *SeatView) Player(seat int) *Player {
	if !v.Contains(seat) {
		panic(fmt.Sprintf("seat %d is not in the view", seat))
	}

	return v.seats.Player(seat)
}

// Exclude removes the given seat from the view
func (v *SeatView) Exclude(seat int) {
	if !v.Contains(seat) {
		panic(fmt.Sprintf("seat %d is not in the view", seat))
	}

	v.filter[seat] = false
}

// Count returns the number of seats in the view
func (v *SeatView) Count() int {
	count := 0
	for _, in := range v.filter {
		if in {
			count++
		}
	}

	return count
}
