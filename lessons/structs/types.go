package structs

import (
	"strings"

	"github.com/comalice/langtour"
)

type User struct {
	Username string
	Email    string
	Age      uint32
	Active   bool
}

// Point and Color are built with positional literals, e.g. Point{3, 4, 5}.
type Point struct {
	X, Y, Z int32
}

type Color struct {
	R, G, B uint8
}

// Marker has no fields and occupies no memory.
type Marker struct{}

type Address struct {
	Street  string
	City    string
	ZipCode string
}

type Person struct {
	Name    string
	Age     uint32
	Address Address
}

// UserWithOptionalEmail uses a nil Email for "no email provided".
type UserWithOptionalEmail struct {
	Username string
	Email    *string
	Age      uint32
}

type ShoppingCart struct {
	Items []string
	Total float64
}

// AddItem appends an item at a flat price of 1.
func (c *ShoppingCart) AddItem(item string) {
	c.Items = append(c.Items, item)
	c.Total += 1.0
}

// TextHolder holds a view into a string owned by someone else. The view
// shares the source's bytes, so holding it keeps the whole source reachable;
// use Detach when the holder outlives the text it was cut from.
type TextHolder struct {
	Text string
}

// Detach returns a holder with its own copy of the text.
func (h TextHolder) Detach() TextHolder {
	return TextHolder{Text: strings.Clone(h.Text)}
}

// DisplayUser only reads through user.
func DisplayUser(p *langtour.Printer, user *User) {
	p.Printf("   User: %s (%s)\n", user.Username, user.Email)
	p.Printf("   Age: %d, Active: %t\n", user.Age, user.Active)
}

// CreateUser returns a new active user.
func CreateUser(username, email string, age uint32) User {
	return User{
		Username: username,
		Email:    email,
		Age:      age,
		Active:   true,
	}
}
