package commands

import "fmt"

type Result struct {
	Message string
}

type Handlers struct {
	Log     func(LogArgs) (Result, error)
	Goal    func(GoalArgs) (Result, error)
	Workout func(WorkoutArgs) (Result, error)
	Reset   func(ResetArgs) (Result, error)
}

func Execute(cmd Command, handlers Handlers) (Result, error) {
	switch cmd.Type {
	case TypeLog:
		if handlers.Log == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "log handler not configured"}
		}
		return handlers.Log(*cmd.Log)
	case TypeGoal:
		if handlers.Goal == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "goal handler not configured"}
		}
		return handlers.Goal(*cmd.Goal)
	case TypeWorkout:
		if handlers.Workout == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "workout handler not configured"}
		}
		return handlers.Workout(*cmd.Workout)
	case TypeReset:
		if handlers.Reset == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "reset handler not configured"}
		}
		return handlers.Reset(*cmd.Reset)
	default:
		return Result{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unknown command type: %s", cmd.Type)}
	}
}
