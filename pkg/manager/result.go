package manager

// Kind tags the outcome of an operation.
type Kind int

const (
	KindOK Kind = iota
	KindNotFound
	KindInsufficientBalance
	KindTaskNotAssigned
	KindAlreadyCompleted
)

func (k Kind) String() string {
	switch k {
	case KindOK:
		return "ok"
	case KindNotFound:
		return "not_found"
	case KindInsufficientBalance:
		return "insufficient_balance"
	case KindTaskNotAssigned:
		return "task_not_assigned"
	case KindAlreadyCompleted:
		return "already_completed"
	default:
		return "unknown"
	}
}

// Result is the outcome of an operation. Failures are ordinary results with
// a descriptive message; callers that cannot tell errors apart only need
// Message.
type Result struct {
	Kind    Kind
	Message string
}

// OK reports whether the operation succeeded.
func (r Result) OK() bool {
	return r.Kind == KindOK
}

func (r Result) String() string {
	return r.Message
}

const notFoundMessage = "Employee ID not found."

func success(message string) Result {
	return Result{Kind: KindOK, Message: message}
}

func failure(kind Kind, message string) Result {
	return Result{Kind: kind, Message: message}
}

