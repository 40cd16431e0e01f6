// Package demo recorre el modelo de animales y escribe el resultado en
// consola: herencia, polimorfismo, encapsulamiento y la fábrica.
package demo

import (
	"fmt"
	"io"
	"strings"

	"animal-zoo/internal/domain/animals"
)

const width = 60

// printer guarda el primer error de escritura; después no escribe más.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) println(a ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintln(p.w, a...)
}

func (p *printer) printf(format string, a ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, a...)
}

func (p *printer) banner(title string) {
	p.println(strings.Repeat("=", width))
	p.println(title)
	p.println(strings.Repeat("=", width))
}

func (p *printer) section(title string) {
	p.println()
	p.println(title)
	p.println(strings.Repeat("-", 40))
}

// Run ejecuta la demostración completa. zoo es la colección de la sección
// de colecciones (normalmente roster.Default()).
func Run(w io.Writer, zoo []animals.Animal) error {
	p := &printer{w: w}

	principles(p, zoo)
	additionalChecks(p)

	p.println()
	p.banner("ALL CHECKS COMPLETED SUCCESSFULLY!")
	return p.err
}

// principles son las seis secciones principales.
func principles(p *printer, zoo []animals.Animal) {
	p.banner("DEMONSTRATION OF BASE AND VARIANT BEHAVIOUR")

	list, err := createStarters()
	if err != nil {
		p.printf("Error creating animals: %v\n", err)
		return
	}

	p.section("1. INHERITANCE AND POLYMORPHISM:")
	for _, a := range list {
		p.printf("%s: %s\n", a.Name(), a.MakeSound())
		p.println(a.Move())
		p.println(a.Eat("food"))
		p.println()
	}

	p.section("2. UNIQUE METHODS:")
	for _, a := range list {
		a.Accept(animals.VisitorFuncs{
			Dog: func(d *animals.Dog) {
				p.println(d.LearnTrick("sit"))
				p.println(d.PerformTrick("sit"))
				p.printf("Breed: %s\n", d.Breed())
			},
			Cat: func(c *animals.Cat) {
				p.println(c.Purr())
				p.println(c.LoseLife())
				p.printf("Color: %s\n", c.Color())
			},
			Bird: func(b *animals.Bird) {
				p.println(b.Fly())
				p.printf("Wingspan: %gm\n", b.Wingspan())
			},
		})
		p.println()
	}

	p.section("3. ENCAPSULATION:")
	first := list[0]
	p.printf("Name via getter: %s\n", first.Name())
	p.printf("Age via getter: %d\n", first.Age())
	p.printf("Health via getter: %d\n", first.Health())

	p.section("4. WORKING WITH COLLECTIONS:")
	p.println("All zoo residents:")
	for i, a := range zoo {
		p.printf("%d. %s\n", i+1, a)
	}
	g := animals.GroupByKind(zoo)
	p.printf("\nDogs in the zoo: %d\n", len(g.Dogs))
	p.printf("Cats in the zoo: %d\n", len(g.Cats))
	p.printf("Birds in the zoo: %d\n", len(g.Birds))

	p.section("5. ERROR HANDLING:")
	if _, err := animals.Create("fish", "Nemo", 1); err != nil {
		p.printf("Caught error: %v\n", err)
	}

	p.section("6. POLYMORPHISM IN ACTION:")
	concert(p, zoo)
}

// concert hace sonar a cada animal sin saber su variante.
func concert(p *printer, list []animals.Animal) {
	for _, a := range list {
		p.println(a.MakeSound())
	}
}

// additionalChecks repite algunos contratos sobre un perro nuevo.
func additionalChecks(p *printer) {
	p.println()
	p.banner("ADDITIONAL CHECKS")

	d := animals.NewDog("Bobik", 4, "labrador")
	_, isAnimal := any(d).(animals.Animal)
	p.printf("Dog implements Animal: %t\n", isAnimal)
	var a animals.Animal = d
	p.println(d.LearnTrick("lie down"))
	p.println(d.PerformTrick("lie down"))
	p.printf("Name: %s\n", a.Name())
}

func createStarters() ([]animals.Animal, error) {
	specs := []struct {
		kind string
		args []any
	}{
		{"dog", []any{"Barsik", 3, "shepherd"}},
		{"cat", []any{"Murka", 2, "ginger"}},
		{"bird", []any{"Kesha", 1, 0.5}},
	}

	out := make([]animals.Animal, 0, len(specs))
	for _, s := range specs {
		a, err := animals.Create(s.kind, s.args...)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}
