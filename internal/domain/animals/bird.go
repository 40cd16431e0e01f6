package animals

import "fmt"

// Bird se construye con NewBird (o la fábrica). El valor cero no es un
// animal válido: no tiene nombre ni salud.
type Bird struct {
	base

	wingspan float64
	canFly   bool
}

func NewBird(name string, age int, wingspan float64) *Bird {
	return &Bird{
		base:     newBase(name, age),
		wingspan: wingspan,
		canFly:   true,
	}
}

// Wingspan en metros.
func (b *Bird) Wingspan() float64 { return b.wingspan }
func (b *Bird) CanFly() bool      { return b.canFly }

func (b *Bird) MakeSound() string {
	return fmt.Sprintf("%s sings: Tweet-tweet!", b.name)
}

func (b *Bird) Fly() string {
	if b.canFly {
		return fmt.Sprintf("%s flies", b.name)
	}
	return fmt.Sprintf("%s cannot fly", b.name)
}

func (b *Bird) SetFlyAbility(canFly bool) {
	b.canFly = canFly
}

func (b *Bird) Kind() Kind     { return KindBird }
func (b *Bird) String() string { return b.describe(KindBird) }

func (b *Bird) Accept(v Visitor) { v.VisitBird(b) }

func (b *Bird) snapshot() State {
	return State{
		Kind:     KindBird,
		Name:     b.name,
		Age:      b.age,
		Health:   b.health,
		Wingspan: b.wingspan,
		CanFly:   b.canFly,
	}
}
