package animals

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
)

var (
	ErrUnknownKind = errors.New("unknown animal type")
	ErrInvalidArgs = errors.New("invalid constructor arguments")
)

// UnknownKindError se devuelve cuando el discriminante no corresponde a
// ninguna variante. errors.Is(err, ErrUnknownKind) es true.
type UnknownKindError struct {
	Type string
}

func (e *UnknownKindError) Error() string {
	return "Unknown animal type: " + e.Type
}

func (e *UnknownKindError) Is(target error) bool {
	return target == ErrUnknownKind
}

type constructor func(args []any) (Animal, error)

var constructors = map[Kind]constructor{
	KindDog:  newDogFromArgs,
	KindCat:  newCatFromArgs,
	KindBird: newBirdFromArgs,
}

// Create construye la variante indicada por kind (case-insensitive) con
// los argumentos posicionales del constructor correspondiente:
//   - dog:  name, age, breed
//   - cat:  name, age, color
//   - bird: name, age, wingspan
//
// Errores de argumentos vienen del constructor (ErrInvalidArgs).
func Create(kind string, args ...any) (Animal, error) {
	k, ok := ParseKind(kind)
	if !ok {
		return nil, &UnknownKindError{Type: kind}
	}
	return constructors[k](args)
}

func newDogFromArgs(args []any) (Animal, error) {
	name, age, breed, err := nameAgeString(KindDog, "breed", args)
	if err != nil {
		return nil, err
	}
	return NewDog(name, age, breed), nil
}

func newCatFromArgs(args []any) (Animal, error) {
	name, age, color, err := nameAgeString(KindCat, "color", args)
	if err != nil {
		return nil, err
	}
	return NewCat(name, age, color), nil
}

func newBirdFromArgs(args []any) (Animal, error) {
	if len(args) != 3 {
		return nil, arityError(KindBird, "wingspan", len(args))
	}
	name, err := argString(args[0])
	if err != nil {
		return nil, argError(KindBird, "name", err)
	}
	age, err := argInt(args[1])
	if err != nil {
		return nil, argError(KindBird, "age", err)
	}
	wingspan, err := argFloat(args[2])
	if err != nil {
		return nil, argError(KindBird, "wingspan", err)
	}
	return NewBird(name, age, wingspan), nil
}

func nameAgeString(k Kind, third string, args []any) (string, int, string, error) {
	if len(args) != 3 {
		return "", 0, "", arityError(k, third, len(args))
	}
	name, err := argString(args[0])
	if err != nil {
		return "", 0, "", argError(k, "name", err)
	}
	age, err := argInt(args[1])
	if err != nil {
		return "", 0, "", argError(k, "age", err)
	}
	s, err := argString(args[2])
	if err != nil {
		return "", 0, "", argError(k, third, err)
	}
	return name, age, s, nil
}

func arityError(k Kind, third string, got int) error {
	return fmt.Errorf("%w: %s expects (name, age, %s), got %d args", ErrInvalidArgs, k, third, got)
}

func argError(k Kind, field string, err error) error {
	return fmt.Errorf("%w: %s %s: %v", ErrInvalidArgs, k, field, err)
}

func argString(v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("expected string, got %T", v)
	}
	return s, nil
}

// argInt acepta cualquier entero de Go, floats sin decimales (JSON, YAML),
// json.Number y strings numéricos (CLI). Lo que no entra en un int es error.
func argInt(v any) (int, error) {
	switch n := v.(type) {
	case json.Number:
		i, err := strconv.ParseInt(n.String(), 10, 0)
		if err != nil {
			return 0, fmt.Errorf("expected integer, got %q", n.String())
		}
		return int(i), nil
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil {
			return 0, fmt.Errorf("expected integer, got %q", n)
		}
		return i, nil
	}

	rv := reflect.ValueOf(v)
	switch {
	case rv.CanInt():
		i := rv.Int()
		if i < math.MinInt || i > math.MaxInt {
			return 0, fmt.Errorf("integer %d out of range", i)
		}
		return int(i), nil
	case rv.CanUint():
		u := rv.Uint()
		if u > math.MaxInt {
			return 0, fmt.Errorf("integer %d out of range", u)
		}
		return int(u), nil
	case rv.CanFloat():
		f := rv.Float()
		if f != math.Trunc(f) {
			return 0, fmt.Errorf("expected integer, got %v", f)
		}
		// -float64(math.MinInt) es 2^63: el primer valor que no entra.
		if f < float64(math.MinInt) || f >= -float64(math.MinInt) {
			return 0, fmt.Errorf("integer %v out of range", f)
		}
		return int(f), nil
	default:
		return 0, fmt.Errorf("expected integer, got %T", v)
	}
}

// argFloat acepta cualquier número de Go, json.Number y strings numéricos.
func argFloat(v any) (float64, error) {
	switch n := v.(type) {
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, fmt.Errorf("expected number, got %q", n.String())
		}
		return f, nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, fmt.Errorf("expected number, got %q", n)
		}
		return f, nil
	}

	rv := reflect.ValueOf(v)
	switch {
	case rv.CanFloat():
		return rv.Float(), nil
	case rv.CanInt():
		return float64(rv.Int()), nil
	case rv.CanUint():
		return float64(rv.Uint()), nil
	default:
		return 0, fmt.Errorf("expected number, got %T", v)
	}
}
