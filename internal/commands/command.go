package commands

import (
	"fmt"
	"strconv"
	"strings"
)

type Type string

const (
	TypeWater    Type = "water"
	TypeProgress Type = "progress"
	TypeDay      Type = "day"
	TypeShow     Type = "show"
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

type WaterArgs struct {
	Count int
}

type ProgressArgs struct {
	Field string
	Value string // numeric text, or "clear"
}

type DayArgs struct {
	Day int // 1-based challenge day number
}

type ShowArgs struct {
	Subject string
}

type Command struct {
	Type     Type
	Raw      string
	Water    *WaterArgs
	Progress *ProgressArgs
	Day      *DayArgs
	Show     *ShowArgs
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
	case TypeWater:
		return parseWater(input, args)
	case TypeProgress:
		return parseProgress(input, args)
	case TypeDay:
		return parseDay(input, args)
	case TypeShow:
		return parseShow(input, args)
	default:
		return Command{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unsupported command: %s", head)}
	}
}

func parseWater(raw string, args []string) (Command, error) {
	if len(args) != 1 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "water requires a glass count"}
	}
	count, err := strconv.Atoi(args[0])
	if err != nil {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("water count must be a number: %s", args[0])}
	}
	return Command{Type: TypeWater, Raw: raw, Water: &WaterArgs{Count: count}}, nil
}

func parseProgress(raw string, args []string) (Command, error) {
	if len(args) != 2 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "progress requires a field and a value"}
	}
	field := strings.ToLower(args[0])
	value := strings.ToLower(args[1])
	if value != "clear" {
		if _, err := strconv.ParseFloat(value, 64); err != nil {
			return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("progress value must be numeric or clear: %s", args[1])}
		}
	}
	return Command{Type: TypeProgress, Raw: raw, Progress: &ProgressArgs{Field: field, Value: value}}, nil
}

func parseDay(raw string, args []string) (Command, error) {
	if len(args) != 1 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "day requires a day number"}
	}
	day, err := strconv.Atoi(args[0])
	if err != nil {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("day must be a number: %s", args[0])}
	}
	return Command{Type: TypeDay, Raw: raw, Day: &DayArgs{Day: day}}, nil
}

func parseShow(raw string, args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "show requires a subject"}
	}
	return Command{Type: TypeShow, Raw: raw, Show: &ShowArgs{Subject: strings.ToLower(args[0])}}, nil
}
