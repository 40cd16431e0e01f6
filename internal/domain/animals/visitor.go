package animals

// Visitor recibe la variante concreta de un Animal sin inspección de
// tipos en tiempo de ejecución.
type Visitor interface {
	VisitDog(d *Dog)
	VisitCat(c *Cat)
	VisitBird(b *Bird)
}

// VisitorFuncs adapta funciones sueltas a Visitor. Los campos nil se ignoran.
type VisitorFuncs struct {
	Dog  func(*Dog)
	Cat  func(*Cat)
	Bird func(*Bird)
}

func (f VisitorFuncs) VisitDog(d *Dog) {
	if f.Dog != nil {
		f.Dog(d)
	}
}

func (f VisitorFuncs) VisitCat(c *Cat) {
	if f.Cat != nil {
		f.Cat(c)
	}
}

func (f VisitorFuncs) VisitBird(b *Bird) {
	if f.Bird != nil {
		f.Bird(b)
	}
}

// Group reparte una colección por variante, preservando el orden.
type Group struct {
	Dogs  []*Dog
	Cats  []*Cat
	Birds []*Bird
}

func GroupByKind(list []Animal) Group {
	var g Group
	v := VisitorFuncs{
		Dog:  func(d *Dog) { g.Dogs = append(g.Dogs, d) },
		Cat:  func(c *Cat) { g.Cats = append(g.Cats, c) },
		Bird: func(b *Bird) { g.Birds = append(g.Birds, b) },
	}
	for _, a := range list {
		a.Accept(v)
	}
	return g
}
