// Package structs is the structs lesson: named and positional literals,
// copying with overrides, methods, constructors, nesting, optional and slice
// fields, and a struct holding a view into another string.
package structs

import (
	"unsafe"

	"github.com/comalice/langtour"
)

// Lesson returns the structs lesson.
func Lesson() *langtour.Lesson {
	return langtour.NewLessonBuilder("structs").
		Banner("=== Go Structs Learning ===").
		Footer("=== End of Structs Examples ===").
		Spaced().
		Section("Creating a struct instance", create).
		Section("Accessing struct fields", access).
		Section("Mutable struct", mutate).
		Section("Copy with overrides", copyOverride).
		Section("Positional struct literal", positional).
		Section("Positional struct literal - Color", positionalColor).
		Section("Empty struct", empty).
		Section("Struct with methods", methods).
		Section("Pointer-receiver methods", pointerMethods).
		Section("Constructor functions", constructors).
		Section("Methods across files", methodsAcrossFiles).
		Section("Nested structs", nestedStructs).
		Section("Struct with optional field", optionalField).
		Section("Struct as function parameter", asParameter).
		Section("Returning struct from function", asResult).
		Section("Struct with slice field", sliceField).
		Section("Struct with string view", stringView).
		MustBuild()
}

func alice() User {
	return User{
		Username: "alice",
		Email:    "alice@example.com",
		Age:      30,
		Active:   true,
	}
}

func create(p *langtour.Printer) {
	p.Header("Creating a struct instance:")
	user1 := alice()
	p.Printf("   User: %s (%s)\n", user1.Username, user1.Email)
}

func access(p *langtour.Printer) {
	p.Header("Accessing struct fields:")
	user1 := alice()
	p.Printf("   Username: %s\n", user1.Username)
	p.Printf("   Email: %s\n", user1.Email)
	p.Printf("   Age: %d\n", user1.Age)
	p.Printf("   Active: %t\n", user1.Active)
}

func mutate(p *langtour.Printer) {
	p.Header("Mutable struct:")
	user2 := User{
		Username: "bob",
		Email:    "bob@example.com",
		Age:      25,
		Active:   false,
	}
	p.Printf("   Before: active = %t\n", user2.Active)
	user2.Active = true
	p.Printf("   After: active = %t\n", user2.Active)
}

func copyOverride(p *langtour.Printer) {
	p.Header("Copy with overrides:")
	user3 := WithIdentity(alice(), "charlie", "charlie@example.com")
	p.Printf("   User3 age: %d (copied from user1)\n", user3.Age)
	p.Printf("   User3 active: %t (copied from user1)\n", user3.Active)
}

// WithIdentity copies base and overrides its username and email.
func WithIdentity(base User, username, email string) User {
	u := base
	u.Username = username
	u.Email = email
	return u
}

func positional(p *langtour.Printer) {
	p.Header("Positional struct literal:")
	origin := Point{0, 0, 0}
	p.Printf("   Origin: (%d, %d, %d)\n", origin.X, origin.Y, origin.Z)

	point := Point{3, 4, 5}
	p.Printf("   Point: (%d, %d, %d)\n", point.X, point.Y, point.Z)
}

func positionalColor(p *langtour.Printer) {
	p.Header("Positional struct literal - Color:")
	red := Color{255, 0, 0}
	p.Printf("   Red: RGB(%d, %d, %d)\n", red.R, red.G, red.B)
}

func empty(p *langtour.Printer) {
	p.Header("Empty struct:")
	var marker Marker
	p.Printf("   Marker created: %d bytes\n", unsafe.Sizeof(marker))
}

func methods(p *langtour.Printer) {
	p.Header("Struct with methods:")
	rect := Rectangle{
		Width:  10.0,
		Height: 5.0,
	}
	p.Printf("   Rectangle area: %v\n", rect.Area())
	p.Printf("   Rectangle perimeter: %v\n", rect.Perimeter())
	p.Printf("   Is square? %t\n", rect.IsSquare())
}

func pointerMethods(p *langtour.Printer) {
	p.Header("Pointer-receiver methods:")
	rect2 := Rectangle{
		Width:  5.0,
		Height: 5.0,
	}
	p.Printf("   Before resize: width = %v\n", rect2.Width)
	rect2.Resize(10.0, 8.0)
	p.Printf("   After resize: width = %v, height = %v\n", rect2.Width, rect2.Height)
}

func constructors(p *langtour.Printer) {
	p.Header("Constructor functions:")
	rect3 := NewRectangle(15.0, 10.0)
	p.Printf("   Created rectangle: %vx%v\n", rect3.Width, rect3.Height)

	square := Square(7.0)
	p.Printf("   Created square: %vx%v\n", square.Width, square.Height)
}

func methodsAcrossFiles(p *langtour.Printer) {
	p.Header("Methods across files:")
	rect4 := Rectangle{
		Width:  12.0,
		Height: 8.0,
	}
	p.Printf("   Area: %v\n", rect4.Area())
	p.Printf("   Can fit 3x3? %t\n", rect4.CanFit(3.0, 3.0))
}

func nestedStructs(p *langtour.Printer) {
	p.Header("Nested structs:")
	address := Address{
		Street:  "123 Main St",
		City:    "New York",
		ZipCode: "10001",
	}
	person := Person{
		Name:    "David",
		Age:     35,
		Address: address,
	}
	p.Printf("   Person: %s\n", person.Name)
	p.Printf("   Address: %s, %s, %s\n", person.Address.Street, person.Address.City, person.Address.ZipCode)
}

func optionalField(p *langtour.Printer) {
	p.Header("Struct with optional field:")
	email := "eve@example.com"
	user4 := UserWithOptionalEmail{
		Username: "eve",
		Email:    &email,
		Age:      28,
	}
	p.Printf("   %s\n", DescribeEmail(user4))
}

// DescribeEmail reports the email or its absence.
func DescribeEmail(u UserWithOptionalEmail) string {
	if u.Email == nil {
		return "No email provided"
	}
	return "Email: " + *u.Email
}

func asParameter(p *langtour.Printer) {
	p.Header("Struct as function parameter:")
	user5 := User{
		Username: "frank",
		Email:    "frank@example.com",
		Age:      40,
		Active:   true,
	}
	DisplayUser(p, &user5)
}

func asResult(p *langtour.Printer) {
	p.Header("Returning struct from function:")
	user6 := CreateUser("grace", "grace@example.com", 22)
	p.Printf("   Created user: %s\n", user6.Username)
}

func sliceField(p *langtour.Printer) {
	p.Header("Struct with slice field:")
	shoppingCart := ShoppingCart{
		Items: []string{
			"Apple",
			"Banana",
		},
		Total: 0.0,
	}
	shoppingCart.AddItem("Cherry")
	p.Printf("   Items: %s\n", langtour.List(shoppingCart.Items))
	p.Printf("   Total: $%.2f\n", shoppingCart.Total)
}

func stringView(p *langtour.Printer) {
	p.Header("Struct with string view:")
	text := "Hello, World!"
	holder := TextHolder{
		Text: text[0:5],
	}
	p.Printf("   Text: %s\n", holder.Text)
}
