package enums

import "fmt"

// Message is a closed union: only the variants below implement it.
type Message interface {
	isMessage()
}

type Quit struct{}

type Move struct {
	X, Y int32
}

type Write string

type ChangeColor struct {
	R, G, B int32
}

func (Quit) isMessage()        {}
func (Move) isMessage()        {}
func (Write) isMessage()       {}
func (ChangeColor) isMessage() {}

// Describe switches over every Message variant.
func Describe(m Message) string {
	switch m := m.(type) {
	case Quit:
		return "Quit"
	case Move:
		return fmt.Sprintf("Move to (%d, %d)", m.X, m.Y)
	case Write:
		return fmt.Sprintf("Write: %s", string(m))
	case ChangeColor:
		return fmt.Sprintf("Change color to RGB(%d, %d, %d)", m.R, m.G, m.B)
	}
	panic(fmt.Sprintf("enums: unknown message %T", m))
}

// Explain is a second exhaustive switch, binding each payload differently.
func Explain(m Message) string {
	switch m := m.(type) {
	case Quit:
		return "The Quit variant has no data"
	case Move:
		return fmt.Sprintf("Move to (%d, %d)", m.X, m.Y)
	case Write:
		return fmt.Sprintf("Text message: %s", string(m))
	case ChangeColor:
		return fmt.Sprintf("Color: RGB(%d, %d, %d)", m.R, m.G, m.B)
	}
	panic(fmt.Sprintf("enums: unknown message %T", m))
}

// Steer applies guards to a Move's fields. Other messages yield "".
func Steer(m Message) string {
	mv, ok := m.(Move)
	switch {
	case !ok:
		return ""
	case mv.X > 0 && mv.Y > 0:
		return fmt.Sprintf("Moving to positive quadrant: (%d, %d)", mv.X, mv.Y)
	case mv.X < 0 || mv.Y < 0:
		return fmt.Sprintf("Moving to negative area: (%d, %d)", mv.X, mv.Y)
	default:
		return fmt.Sprintf("Moving to: (%d, %d)", mv.X, mv.Y)
	}
}

// IPAddr keeps each address as text.
type IPAddr interface {
	isIPAddr()
}

type IPv4 string
type IPv6 string

func (IPv4) isIPAddr() {}
func (IPv6) isIPAddr() {}

// IPAddrDetailed gives the two variants payloads of different shapes.
type IPAddrDetailed interface {
	isIPAddrDetailed()
}

type IPv4Octets [4]uint8
type IPv6Text string

func (IPv4Octets) isIPAddrDetailed() {}
func (IPv6Text) isIPAddrDetailed()   {}

func FormatIP(addr IPAddr) string {
	switch addr := addr.(type) {
	case IPv4:
		return "IPv4: " + string(addr)
	case IPv6:
		return "IPv6: " + string(addr)
	}
	panic(fmt.Sprintf("enums: unknown address %T", addr))
}

func FormatIPDetailed(addr IPAddrDetailed) string {
	switch addr := addr.(type) {
	case IPv4Octets:
		return fmt.Sprintf("IPv4: %d.%d.%d.%d", addr[0], addr[1], addr[2], addr[3])
	case IPv6Text:
		return "IPv6: " + string(addr)
	}
	panic(fmt.Sprintf("enums: unknown address %T", addr))
}
