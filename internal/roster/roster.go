package roster

import (
	_ "embed"
	"fmt"
	"os"

	"animal-zoo/internal/domain/animals"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultRoster []byte

// Entry es un animal a construir con la fábrica.
type Entry struct {
	Type string `yaml:"type"`
	Args []any  `yaml:"args"`
}

type Roster struct {
	Residents []Entry `yaml:"residents"`
}

// Default devuelve el roster embebido (el zoo de la demo).
func Default() Roster {
	r, err := Parse(defaultRoster)
	if err != nil {
		panic(fmt.Sprintf("roster: embedded default is invalid: %v", err))
	}
	return r
}

func Parse(data []byte) (Roster, error) {
	var r Roster
	if err := yaml.Unmarshal(data, &r); err != nil {
		return Roster{}, fmt.Errorf("roster: parse yaml: %w", err)
	}
	return r, nil
}

func Load(path string) (Roster, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Roster{}, fmt.Errorf("roster: read %s: %w", path, err)
	}
	return Parse(data)
}

// Resolve interpreta el valor de SEED_ROSTER / --roster:
// "" => sin roster, "default" => el embebido, otro => path a YAML.
func Resolve(value string) (Roster, error) {
	switch value {
	case "":
		return Roster{}, nil
	case "default":
		return Default(), nil
	default:
		return Load(value)
	}
}

// Build construye los animales con la fábrica, en orden. Corta en el
// primer error e indica la posición.
func (r Roster) Build() ([]animals.Animal, error) {
	out := make([]animals.Animal, 0, len(r.Residents))
	for i, e := range r.Residents {
		a, err := animals.Create(e.Type, e.Args...)
		if err != nil {
			return nil, fmt.Errorf("roster entry %d: %w", i+1, err)
		}
		out = append(out, a)
	}
	return out, nil
}
