package adaptive

import "time"

// Action is an in-lesson difficulty adjustment.
type Action string

const (
	ActionReduce           Action = "reduce"
	ActionIncrease         Action = "increase"
	ActionMaintain         Action = "maintain"
	ActionOfferAlternative Action = "offerAlternative"
)

const (
	slowAnswer = 30 * time.Second
	fastAnswer = 10 * time.Second
)

// Response is a single answer given during a lesson.
type Response struct {
	Correct      bool
	TimeToAnswer time.Duration
}

// Adaptation is the reaction to a Response.
type Adaptation struct {
	Action  Action
	Message string
}

// RealTime reacts to one answer given during a lesson.
func RealTime(r Response) Adaptation {
	switch {
	case !r.Correct && r.TimeToAnswer > slowAnswer:
		return Adaptation{Action: ActionOfferAlternative, Message: "¿Quieres ver una explicación visual alternativa?"}
	case r.Correct && r.TimeToAnswer < fastAnswer:
		return Adaptation{Action: ActionIncrease, Message: "🎯 ¡Excelente! Activando modo desafío."}
	case !r.Correct:
		return Adaptation{Action: ActionReduce, Message: "Simplifiquemos esto. Vamos paso a paso."}
	default:
		return Adaptation{Action: ActionMaintain, Message: "¡Bien! Continuemos."}
	}
}
