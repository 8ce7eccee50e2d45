package enums

import "fmt"

// Direction is a plain enumeration without payload.
type Direction int

const (
	North Direction = iota
	South
	East
	West
)

func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case South:
		return "South"
	case East:
		return "East"
	case West:
		return "West"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// Heading is the exhaustive switch over every direction.
func Heading(d Direction) string {
	switch d {
	case North:
		return "Heading North"
	case South:
		return "Heading South"
	case East:
		return "Heading East"
	case West:
		return "Heading West"
	}
	panic(fmt.Sprintf("enums: unknown %v", d))
}

// Axis groups directions with multi-value cases.
func Axis(d Direction) string {
	switch d {
	case North, South:
		return "Moving vertically"
	case East, West:
		return "Moving horizontally"
	}
	panic(fmt.Sprintf("enums: unknown %v", d))
}

// Status carries behavior through methods.
type Status int

const (
	Active Status = iota
	Inactive
	Pending
)

func (s Status) IsActive() bool {
	return s == Active
}

func (s Status) Description() string {
	switch s {
	case Active:
		return "User is active"
	case Inactive:
		return "User is inactive"
	case Pending:
		return "User status is pending"
	}
	panic(fmt.Sprintf("enums: unknown status %d", int(s)))
}

// TrafficLight is a cyclic state machine: each light knows the next one.
type TrafficLight int

const (
	Red TrafficLight = iota
	Yellow
	Green
)

func (l TrafficLight) Next() TrafficLight {
	switch l {
	case Red:
		return Green
	case Yellow:
		return Red
	case Green:
		return Yellow
	}
	panic(fmt.Sprintf("enums: unknown traffic light %d", int(l)))
}

func (l TrafficLight) String() string {
	switch l {
	case Red:
		return "Red"
	case Yellow:
		return "Yellow"
	case Green:
		return "Green"
	}
	return fmt.Sprintf("TrafficLight(%d)", int(l))
}
