package commands

import (
	"fmt"
	"strconv"
	"strings"
)

type Type string

const (
	TypeLog     Type = "log"
	TypeGoal    Type = "goal"
	TypeWorkout Type = "workout"
	TypeReset   Type = "reset"
)

type ErrorCode string

const (
	ErrCodeEmptyInput      ErrorCode = "empty_input"
	ErrCodeUnknownCommand  ErrorCode = "unknown_command"
	ErrCodeInvalidArgument ErrorCode = "invalid_argument"
	ErrCodeHandlerMissing  ErrorCode = "handler_missing"
)

type CommandError struct {
	Code    ErrorCode
	Message string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

type LogArgs struct {
	ActivityID  string
	ContactName string
}

type GoalArgs struct {
	Delta int
}

type WorkoutArgs struct {
	Category string
}

type ResetArgs struct {
	Confirmed bool
}

type Command struct {
	Type    Type
	Raw     string
	Log     *LogArgs
	Goal    *GoalArgs
	Workout *WorkoutArgs
	Reset   *ResetArgs
}

func Parse(input string) (Command, error) {
	raw := strings.TrimSpace(input)
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}
	if strings.HasPrefix(raw, "/") {
		raw = strings.TrimSpace(strings.TrimPrefix(raw, "/"))
	}
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}

	parts := strings.Fields(raw)
	head := strings.ToLower(parts[0])
	args := parts[1:]

	switch Type(head) {
	case TypeLog:
		return parseLog(input, args)
	case TypeGoal:
		return parseGoal(input, args)
	case TypeWorkout:
		return parseWorkout(input, args)
	case TypeReset:
		return parseReset(input, args)
	default:
		return Command{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unsupported command: %s", head)}
	}
}

// parseLog accepts "log <activity> [with <contact name>]".
func parseLog(raw string, args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "log requires an activity id"}
	}
	activityID := strings.ToLower(args[0])
	contactName := ""
	for i, arg := range args[1:] {
		if strings.EqualFold(arg, "with") {
			contactName = strings.TrimSpace(strings.Join(args[i+2:], " "))
			break
		}
	}
	return Command{Type: TypeLog, Raw: raw, Log: &LogArgs{ActivityID: activityID, ContactName: contactName}}, nil
}

// parseGoal accepts "goal up", "goal down" or an explicit signed step.
func parseGoal(raw string, args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "goal requires up, down or a signed step"}
	}
	switch strings.ToLower(args[0]) {
	case "up":
		return Command{Type: TypeGoal, Raw: raw, Goal: &GoalArgs{Delta: 5}}, nil
	case "down":
		return Command{Type: TypeGoal, Raw: raw, Goal: &GoalArgs{Delta: -5}}, nil
	}
	delta, err := strconv.Atoi(args[0])
	if err != nil || delta == 0 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("bad goal step: %s", args[0])}
	}
	return Command{Type: TypeGoal, Raw: raw, Goal: &GoalArgs{Delta: delta}}, nil
}

func parseWorkout(raw string, args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "workout requires a category id"}
	}
	return Command{Type: TypeWorkout, Raw: raw, Workout: &WorkoutArgs{Category: strings.ToLower(args[0])}}, nil
}

// parseReset requires an explicit "confirm" so the destructive path is never
// one typo away.
func parseReset(raw string, args []string) (Command, error) {
	confirmed := len(args) > 0 && strings.EqualFold(args[0], "confirm")
	return Command{Type: TypeReset, Raw: raw, Reset: &ResetArgs{Confirmed: confirmed}}, nil
}
