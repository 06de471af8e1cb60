package amazonauth

// Info carries auxiliary data alongside an authentication outcome, such as a
// failure message or token scope, chosen by the verify function or the
// strategy itself.
type Info map[string]any

// Message returns the "message" entry, or "" when absent.
func (i Info) Message() string {
	s, _ := i["message"].(string)
	return s
}

// Status classifies the terminal result of an Authenticate call.
type Status int

const (
	// StatusError means authentication could not be performed: upstream or
	// application failure, carried in Outcome.Err.
	StatusError Status = iota

	// StatusFailure means the credentials were rejected.
	StatusFailure

	// StatusSuccess means the credentials resolved to an application user.
	StatusSuccess
)

func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusFailure:
		return "failure"
	default:
		return "error"
	}
}

// Outcome is the terminal result of a single Authenticate call. Exactly one
// of the three constructors below produces it.
type Outcome struct {
	Status Status
	User   any
	Info   Info
	Err    error
}

// Success reports that the credentials resolved to an application user.
func Success(user any, info Info) Outcome {
	return Outcome{Status: StatusSuccess, User: user, Info: info}
}

// Fail reports that the credentials were rejected.
func Fail(info Info) Outcome {
	return Outcome{Status: StatusFailure, Info: info}
}

// Error reports that authentication could not be performed.
func Error(err error) Outcome {
	return Outcome{Status: StatusError, Err: err}
}
