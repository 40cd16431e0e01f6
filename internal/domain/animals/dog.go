package animals

import (
	"fmt"
	"slices"
)

// Dog se construye con NewDog (o la fábrica). El valor cero no es un
// animal válido: no tiene nombre ni salud.
type Dog struct {
	base

	breed  string
	tricks []string
}

func NewDog(name string, age int, breed string) *Dog {
	return &Dog{
		base:   newBase(name, age),
		breed:  breed,
		tricks: []string{},
	}
}

func (d *Dog) Breed() string { return d.breed }

func (d *Dog) MakeSound() string {
	return fmt.Sprintf("%s barks: Woof-woof!", d.name)
}

// LearnTrick agrega trick si todavía no lo conoce. Repetirlo no duplica.
func (d *Dog) LearnTrick(trick string) string {
	if slices.Contains(d.tricks, trick) {
		return fmt.Sprintf("%s already knows the trick %s", d.name, trick)
	}
	d.tricks = append(d.tricks, trick)
	return fmt.Sprintf("%s learned a new trick: %s", d.name, trick)
}

func (d *Dog) PerformTrick(trick string) string {
	if slices.Contains(d.tricks, trick) {
		return fmt.Sprintf("%s performs the trick: %s", d.name, trick)
	}
	return fmt.Sprintf("%s doesn't know the trick %s", d.name, trick)
}

// Tricks devuelve una copia; modificarla no afecta al perro.
func (d *Dog) Tricks() []string {
	return slices.Clone(d.tricks)
}

func (d *Dog) Kind() Kind     { return KindDog }
func (d *Dog) String() string { return d.describe(KindDog) }

func (d *Dog) Accept(v Visitor) { v.VisitDog(d) }

func (d *Dog) snapshot() State {
	return State{
		Kind:   KindDog,
		Name:   d.name,
		Age:    d.age,
		Health: d.health,
		Breed:  d.breed,
		Tricks: d.Tricks(),
	}
}
