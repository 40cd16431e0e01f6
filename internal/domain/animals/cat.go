package animals

import "fmt"

// InitialLives es la cantidad de vidas de un gato recién creado.
const InitialLives = 9

// Cat se construye con NewCat (o la fábrica). El valor cero no es un
// animal válido: no tiene nombre ni salud.
type Cat struct {
	base

	color string
	lives int
}

func NewCat(name string, age int, color string) *Cat {
	return &Cat{
		base:  newBase(name, age),
		color: color,
		lives: InitialLives,
	}
}

func (c *Cat) Color() string { return c.color }
func (c *Cat) Lives() int    { return c.lives }

func (c *Cat) MakeSound() string {
	return fmt.Sprintf("%s meows: Meow-meow!", c.name)
}

func (c *Cat) Purr() string {
	return fmt.Sprintf("%s purrs: Purrrr...", c.name)
}

// LoseLife descuenta una vida. Con una sola vida restante no baja más.
func (c *Cat) LoseLife() string {
	if c.lives > 1 {
		c.lives--
		return fmt.Sprintf("%s lost a life. Lives remaining: %d", c.name, c.lives)
	}
	return fmt.Sprintf("%s has used all lives!", c.name)
}

func (c *Cat) Kind() Kind     { return KindCat }
func (c *Cat) String() string { return c.describe(KindCat) }

func (c *Cat) Accept(v Visitor) { v.VisitCat(c) }

func (c *Cat) snapshot() State {
	return State{
		Kind:   KindCat,
		Name:   c.name,
		Age:    c.age,
		Health: c.health,
		Color:  c.color,
		Lives:  c.lives,
	}
}
