// Package people is a small domain used to exercise generated assertion
// wrappers end to end.
package people

import "strings"

//go:generate go run github.com/abdul-hamid-achik/expect/apps/cli gen --pkg . --type Person

type Address struct {
	Street string
	City   string
}

type Person struct {
	name    string
	age     int
	active  bool
	address Address
}

func New(name string, age int) *Person {
	return &Person{name: name, age: age, active: true}
}

func (p Person) Name() string { return p.name }

func (p *Person) SetName(name string) { p.name = name }

func (p Person) Age() int { return p.age }

func (p Person) IsActive() bool { return p.active }

func (p *Person) SetActive(active bool) *Person {
	p.active = active
	return p
}

func (p Person) Address() Address { return p.address }

func (p *Person) SetAddress(a Address) { p.address = a }

// Greeting greets the person in lang, "en" or "es".
func (p Person) Greeting(lang string, formal bool) string {
	var hello string
	switch {
	case lang == "es" && formal:
		hello = "Buenos días"
	case lang == "es":
		hello = "Hola"
	case formal:
		hello = "Good day"
	default:
		hello = "Hi"
	}
	return hello + ", " + strings.Split(p.name, " ")[0]
}
