package zoo

import (
	"time"

	"animal-zoo/internal/domain/animals"
)

// Resident es un animal admitido en el zoológico.
type Resident struct {
	ID string

	Animal animals.Animal

	AdmittedAt time.Time
	UpdatedAt  time.Time
}

// Action es lo que se le puede pedir a un residente.
// @Enum sound, move, eat, describe, learn_trick, perform_trick, tricks, purr, lose_life, fly, set_fly_ability
type Action string

const (
	// Comunes a todas las variantes
	ActionSound    Action = "sound"
	ActionMove     Action = "move"
	ActionEat      Action = "eat"
	ActionDescribe Action = "describe"

	// Dog
	ActionLearnTrick   Action = "learn_trick"
	ActionPerformTrick Action = "perform_trick"
	ActionTricks       Action = "tricks"

	// Cat
	ActionPurr     Action = "purr"
	ActionLoseLife Action = "lose_life"

	// Bird
	ActionFly           Action = "fly"
	ActionSetFlyAbility Action = "set_fly_ability"
)

// ActionAdmitted es la entrada de diario que deja Admit.
const ActionAdmitted = "admitted"

// Command es una acción con sus argumentos. Solo se usan los campos que
// la acción necesita.
type Command struct {
	Action Action

	Food   string
	Trick  string
	CanFly *bool
}

// Outcome es el resultado de Perform. Message puede venir vacío
// (set_fly_ability no devuelve texto).
type Outcome struct {
	Message  string
	Resident Resident
}
