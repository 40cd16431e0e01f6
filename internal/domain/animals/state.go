package animals

import (
	"errors"
	"fmt"
	"slices"
)

var (
	ErrInvalidState = errors.New("invalid animal state")
)

// State es una foto plana de un animal, para persistirlo.
// Los campos que no aplican a la variante quedan en su zero value.
type State struct {
	Kind   Kind
	Name   string
	Age    int
	Health int

	// Dog
	Breed  string
	Tricks []string

	// Cat
	Color string
	Lives int

	// Bird
	Wingspan float64
	CanFly   bool
}

// Snapshot copia el estado de a. La foto no comparte memoria con el animal.
func Snapshot(a Animal) State {
	return a.snapshot()
}

// Restore reconstruye un animal a partir de su foto.
func Restore(s State) (Animal, error) {
	if s.Health < 0 {
		return nil, fmt.Errorf("%w: negative health %d", ErrInvalidState, s.Health)
	}

	switch s.Kind {
	case KindDog:
		d := NewDog(s.Name, s.Age, s.Breed)
		d.health = s.Health
		for _, t := range s.Tricks {
			if !slices.Contains(d.tricks, t) {
				d.tricks = append(d.tricks, t)
			}
		}
		return d, nil
	case KindCat:
		if s.Lives < 1 || s.Lives > InitialLives {
			return nil, fmt.Errorf("%w: cat lives out of range: %d", ErrInvalidState, s.Lives)
		}
		c := NewCat(s.Name, s.Age, s.Color)
		c.health = s.Health
		c.lives = s.Lives
		return c, nil
	case KindBird:
		b := NewBird(s.Name, s.Age, s.Wingspan)
		b.health = s.Health
		b.canFly = s.CanFly
		return b, nil
	default:
		return nil, fmt.Errorf("%w: unknown kind %q", ErrInvalidState, s.Kind)
	}
}
