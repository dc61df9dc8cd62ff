package service

import "errors"

type ErrorKind int

const (
	DuplicateUsername ErrorKind = iota + 1
	InvalidCredentials
	MessageNotFound
	UserNotFound
	MessageValidation
)

func (k ErrorKind) String() string {
	switch k {
	case DuplicateUsername:
		return "DuplicateUsername"
	case InvalidCredentials:
		return "InvalidCredentials"
	case MessageNotFound:
		return "MessageNotFound"
	case UserNotFound:
		return "UserNotFound"
	case MessageValidation:
		return "MessageValidation"
	default:
		return "Unknown"
	}
}

//Error is a business rule violation; its message is shown to API clients verbatim
type Error struct {
	Kind    ErrorKind
	message string
}

func (e *Error) Error() string {
	return e.message
}

func NewError(kind ErrorKind, msg string) *Error {
	return &Error{Kind: kind, message: msg}
}

//KindOf returns the kind of a service error anywhere in err's chain
func KindOf(err error) (ErrorKind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}
