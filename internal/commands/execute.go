package commands

import "fmt"

type Result struct {
	Message string
}

type Handlers struct {
	Water    func(WaterArgs) (Result, error)
	Progress func(ProgressArgs) (Result, error)
	Day      func(DayArgs) (Result, error)
	Show     func(ShowArgs) (Result, error)
}

func Execute(cmd Command, handlers Handlers) (Result, error) {
	switch cmd.Type {
	case TypeWater:
		if handlers.Water == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "water handler not configured"}
		}
		return handlers.Water(*cmd.Water)
	case TypeProgress:
		if handlers.Progress == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "progress handler not configured"}
		}
		return handlers.Progress(*cmd.Progress)
	case TypeDay:
		if handlers.Day == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "day handler not configured"}
		}
		return handlers.Day(*cmd.Day)
	case TypeShow:
		if handlers.Show == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "show handler not configured"}
		}
		return handlers.Show(*cmd.Show)
	default:
		return Result{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unknown command type: %s", cmd.Type)}
	}
}
