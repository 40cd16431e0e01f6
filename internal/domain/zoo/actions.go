package zoo

import (
	"fmt"
	"strings"

	"animal-zoo/internal/domain/animals"
)

// apply ejecuta cmd sobre a. mutated indica si el estado del animal cambió
// y hay que persistirlo.
func apply(a animals.Animal, cmd Command) (msg string, mutated bool, err error) {
	switch cmd.Action {
	case ActionSound:
		return a.MakeSound(), false, nil
	case ActionMove:
		return a.Move(), false, nil
	case ActionDescribe:
		return a.String(), false, nil
	case ActionEat:
		food := strings.TrimSpace(cmd.Food)
		if food == "" {
			return "", false, fmt.Errorf("%w: eat requires food", ErrInvalidInput)
		}
		return a.Eat(food), false, nil
	}

	v := &variantAction{cmd: cmd}
	a.Accept(v)
	if v.err == nil && !v.handled {
		v.err = fmt.Errorf("%w: %s cannot %s", ErrUnsupportedAction, a.Kind(), cmd.Action)
	}
	return v.msg, v.mutated, v.err
}

// variantAction resuelve las acciones propias de cada variante.
type variantAction struct {
	cmd Command

	msg     string
	mutated bool
	handled bool
	err     error
}

func (v *variantAction) VisitDog(d *animals.Dog) {
	switch v.cmd.Action {
	case ActionLearnTrick:
		trick, ok := v.trick()
		if !ok {
			return
		}
		before := len(d.Tricks())
		v.msg = d.LearnTrick(trick)
		v.mutated = len(d.Tricks()) != before
		v.handled = true
	case ActionPerformTrick:
		trick, ok := v.trick()
		if !ok {
			return
		}
		v.msg = d.PerformTrick(trick)
		v.handled = true
	case ActionTricks:
		if tricks := d.Tricks(); len(tricks) > 0 {
			v.msg = fmt.Sprintf("%s knows: %s", d.Name(), strings.Join(tricks, ", "))
		} else {
			v.msg = fmt.Sprintf("%s knows no tricks yet", d.Name())
		}
		v.handled = true
	}
}

func (v *variantAction) VisitCat(c *animals.Cat) {
	switch v.cmd.Action {
	case ActionPurr:
		v.msg = c.Purr()
		v.handled = true
	case ActionLoseLife:
		before := c.Lives()
		v.msg = c.LoseLife()
		v.mutated = c.Lives() != before
		v.handled = true
	}
}

func (v *variantAction) VisitBird(b *animals.Bird) {
	switch v.cmd.Action {
	case ActionFly:
		v.msg = b.Fly()
		v.handled = true
	case ActionSetFlyAbility:
		if v.cmd.CanFly == nil {
			v.err = fmt.Errorf("%w: set_fly_ability requires can_fly", ErrInvalidInput)
			return
		}
		b.SetFlyAbility(*v.cmd.CanFly)
		v.mutated = true
		v.handled = true
	}
}

func (v *variantAction) trick() (string, bool) {
	t := strings.TrimSpace(v.cmd.Trick)
	if t == "" {
		v.err = fmt.Errorf("%w: %s requires trick", ErrInvalidInput, v.cmd.Action)
		return "", false
	}
	return t, true
}
