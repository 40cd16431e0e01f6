package animals

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBase_SharedBehaviour(t *testing.T) {
	list := []Animal{
		NewDog("Rex", 5, "shepherd"),
		NewCat("Vaska", 4, "black"),
		NewBird("Gosha", 2, 0.7),
	}

	for _, a := range list {
		assert.Equal(t, DefaultHealth, a.Health())
		assert.Equal(t, a.Name()+" moves", a.Move())
		assert.Equal(t, a.Name()+" eats seeds", a.Eat("seeds"))
	}

	assert.Equal(t, "Dog Rex, age: 5, health: 100", list[0].String())
	assert.Equal(t, "Cat Vaska, age: 4, health: 100", list[1].String())
	assert.Equal(t, "Bird Gosha, age: 2, health: 100", list[2].String())
}

func TestZeroValueVariants_KeepTheirKind(t *testing.T) {
	var (
		d Dog
		c Cat
		b Bird
	)
	cases := []struct {
		a     Animal
		kind  Kind
		title string
	}{
		{&d, KindDog, "Dog "},
		{&c, KindCat, "Cat "},
		{&b, KindBird, "Bird "},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.kind, tc.a.Kind())
		assert.True(t, strings.HasPrefix(tc.a.String(), tc.title), tc.a.String())
		assert.Equal(t, tc.kind, Snapshot(tc.a).Kind)
	}
}

func TestMakeSound_PerVariant(t *testing.T) {
	assert.Equal(t, "Rex barks: Woof-woof!", NewDog("Rex", 5, "shepherd").MakeSound())
	assert.Equal(t, "Murka meows: Meow-meow!", NewCat("Murka", 2, "ginger").MakeSound())
	assert.Equal(t, "Kesha sings: Tweet-tweet!", NewBird("Kesha", 1, 0.5).MakeSound())
}

func TestDog_LearnTrick_NoDuplicates(t *testing.T) {
	d := NewDog("Rex", 5, "shepherd")
	require.Empty(t, d.Tricks())

	first := d.LearnTrick("sit")
	second := d.LearnTrick("sit")

	assert.Equal(t, "Rex learned a new trick: sit", first)
	assert.Equal(t, "Rex already knows the trick sit", second)
	assert.NotEqual(t, first, second)
	assert.Equal(t, []string{"sit"}, d.Tricks())
}

func TestDog_LearnTrick_KeepsInsertionOrder(t *testing.T) {
	d := NewDog("Rex", 5, "shepherd")
	d.LearnTrick("sit")
	d.LearnTrick("lie down")
	d.LearnTrick("sit")
	d.LearnTrick("paw")

	assert.Equal(t, []string{"sit", "lie down", "paw"}, d.Tricks())
}

func TestDog_PerformTrick(t *testing.T) {
	d := NewDog("Rex", 5, "shepherd")

	assert.Equal(t, "Rex doesn't know the trick sit", d.PerformTrick("sit"))
	d.LearnTrick("sit")
	assert.Equal(t, "Rex performs the trick: sit", d.PerformTrick("sit"))
}

func TestDog_Tricks_ReturnsCopy(t *testing.T) {
	d := NewDog("Rex", 5, "shepherd")
	d.LearnTrick("sit")

	got := d.Tricks()
	got[0] = "roll over"
	_ = append(got, "beg")

	assert.Equal(t, []string{"sit"}, d.Tricks())
}

func TestCat_LoseLife_FloorsAtOne(t *testing.T) {
	c := NewCat("Murka", 2, "ginger")
	require.Equal(t, 9, c.Lives())

	var msg string
	for want := 8; want >= 1; want-- {
		msg = c.LoseLife()
		assert.Equal(t, want, c.Lives())
	}
	assert.Equal(t, "Murka lost a life. Lives remaining: 1", msg)

	msg = c.LoseLife()
	assert.Equal(t, "Murka has used all lives!", msg)
	assert.Equal(t, 1, c.Lives())

	c.LoseLife()
	assert.Equal(t, 1, c.Lives())
}

func TestCat_Purr(t *testing.T) {
	assert.Equal(t, "Murka purrs: Purrrr...", NewCat("Murka", 2, "ginger").Purr())
}

func TestBird_FlyAbility(t *testing.T) {
	b := NewBird("Kesha", 1, 0.5)
	require.True(t, b.CanFly())
	assert.Equal(t, "Kesha flies", b.Fly())

	b.SetFlyAbility(false)
	assert.False(t, b.CanFly())
	assert.Equal(t, "Kesha cannot fly", b.Fly())

	b.SetFlyAbility(true)
	assert.Equal(t, "Kesha flies", b.Fly())
}

func TestGroupByKind(t *testing.T) {
	zoo := []Animal{
		NewDog("Rex", 5, "doberman"),
		NewCat("Vaska", 4, "black"),
		NewBird("Gosha", 2, 0.7),
		NewDog("Sharik", 2, "mongrel"),
	}

	g := GroupByKind(zoo)
	require.Len(t, g.Dogs, 2)
	require.Len(t, g.Cats, 1)
	require.Len(t, g.Birds, 1)
	assert.Equal(t, "Rex", g.Dogs[0].Name())
	assert.Equal(t, "Sharik", g.Dogs[1].Name())
}

func TestSnapshotRestore_PreservesVariantState(t *testing.T) {
	d := NewDog("Rex", 5, "shepherd")
	d.LearnTrick("sit")
	c := NewCat("Murka", 2, "ginger")
	c.LoseLife()
	b := NewBird("Kesha", 1, 0.5)
	b.SetFlyAbility(false)

	for _, a := range []Animal{d, c, b} {
		restored, err := Restore(Snapshot(a))
		require.NoError(t, err)
		assert.Equal(t, Snapshot(a), Snapshot(restored))
		assert.Equal(t, a.String(), restored.String())
	}
}

func TestSnapshot_DoesNotShareTricks(t *testing.T) {
	d := NewDog("Rex", 5, "shepherd")
	d.LearnTrick("sit")

	s := Snapshot(d)
	s.Tricks[0] = "beg"

	assert.Equal(t, []string{"sit"}, d.Tricks())
}

func TestRestore_RejectsInvalidState(t *testing.T) {
	_, err := Restore(State{Kind: KindCat, Name: "Murka", Lives: 0})
	assert.ErrorIs(t, err, ErrInvalidState)

	_, err = Restore(State{Kind: "fish", Name: "Nemo"})
	assert.ErrorIs(t, err, ErrInvalidState)

	_, err = Restore(State{Kind: KindDog, Name: "Rex", Health: -1})
	assert.ErrorIs(t, err, ErrInvalidState)
}
