package domain

// Process exit statuses.
const (
	ExitSuccess     = 0
	ExitFailure     = 1
	ExitInterrupted = 130
)

// CommandOutcome is the terminal value of one orchestrated command.
type CommandOutcome struct {
	Success     bool
	Interrupted bool
	// Message is a short diagnostic, e.g. "nothing to clean" or the failure cause.
	Message string
	// Err is the failure cause; nil on success.
	Err error
}

// Succeeded returns a successful outcome with msg.
func Succeeded(msg string) CommandOutcome {
	return CommandOutcome{Success: true, Message: msg}
}

// Failed returns a failed outcome caused by err.
func Failed(err error) CommandOutcome {
	o := CommandOutcome{Err: err}
	if err != nil {
		o.Message = err.Error()
	}
	return o
}

// Interrupted returns the outcome of an operator cancellation.
func Interrupted() CommandOutcome {
	return CommandOutcome{Interrupted: true, Message: ErrInterrupted.Error(), Err: ErrInterrupted}
}

// ExitCode maps the outcome to the process exit status.
func (o CommandOutcome) ExitCode() int {
	switch {
	case o.Interrupted:
		return ExitInterrupted
	case o.Success:
		return ExitSuccess
	default:
		return ExitFailure
	}
}
