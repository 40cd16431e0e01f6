package animals

import (
	"fmt"
	"strings"
)

// DefaultHealth es la salud con la que nace todo animal.
const DefaultHealth = 100

// Kind identifica la variante concreta de un animal.
// @Enum dog, cat, bird
type Kind string

const (
	KindDog  Kind = "dog"
	KindCat  Kind = "cat"
	KindBird Kind = "bird"
)

// Kinds devuelve las variantes conocidas en orden estable.
func Kinds() []Kind {
	return []Kind{KindDog, KindCat, KindBird}
}

// ParseKind normaliza s (case-insensitive) a una variante conocida.
// No recorta espacios: " dog " no es una variante.
func ParseKind(s string) (Kind, bool) {
	k := Kind(strings.ToLower(s))
	switch k {
	case KindDog, KindCat, KindBird:
		return k, true
	default:
		return "", false
	}
}

// Title es el nombre de la variante tal como aparece en String().
func (k Kind) Title() string {
	switch k {
	case KindDog:
		return "Dog"
	case KindCat:
		return "Cat"
	case KindBird:
		return "Bird"
	default:
		return "Animal"
	}
}

// Animal es el contrato común de todas las variantes.
// La interfaz está sellada: solo Dog, Cat y Bird la implementan.
type Animal interface {
	Name() string
	Age() int
	Health() int
	Kind() Kind

	MakeSound() string
	Move() string
	Eat(food string) string
	String() string

	Accept(v Visitor)

	snapshot() State
}

// base contiene los atributos compartidos. No se exporta: un "animal
// genérico" no puede construirse fuera de las variantes. La variante
// (Kind, String) la aporta cada tipo concreto.
type base struct {
	name   string
	age    int
	health int
}

func newBase(name string, age int) base {
	return base{
		name:   name,
		age:    age,
		health: DefaultHealth,
	}
}

func (b *base) Name() string { return b.name }
func (b *base) Age() int     { return b.age }
func (b *base) Health() int  { return b.health }

func (b *base) Move() string {
	return fmt.Sprintf("%s moves", b.name)
}

func (b *base) Eat(food string) string {
	return fmt.Sprintf("%s eats %s", b.name, food)
}

func (b *base) describe(k Kind) string {
	return fmt.Sprintf("%s %s, age: %d, health: %d", k.Title(), b.name, b.age, b.health)
}
