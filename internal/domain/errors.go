package domain

// errors.go defines domain-specific error types.
type domainErr struct {
	message string
}

// Error returns the error message.
func (e domainErr) Error() string {
	return e.message
}

// NotFoundErr represents an error when a requested entity is not found.
type NotFoundErr struct {
	domainErr
}

// NewNotFoundErr creates a new NotFoundErr with the given message.
func NewNotFoundErr(message string) *NotFoundErr {
	return &NotFoundErr{
		domainErr: domainErr{message: message},
	}
}

// ValidationErr represents an error when validation fails.
type ValidationErr struct {
	domainErr
}

// NewValidationErr creates a new ValidationErr with the given message.
func NewValidationErr(message string) *ValidationErr {
	return &ValidationErr{
		domainErr: domainErr{message: message},
	}
}

// AssistantRunErr represents a remote assistant run that ended without completing.
type AssistantRunErr struct {
	domainErr
	Status string
}

// NewAssistantRunErr creates a new AssistantRunErr for the given terminal run status.
func NewAssistantRunErr(status string, message string) *AssistantRunErr {
	return &AssistantRunErr{
		domainErr: domainErr{message: message},
		Status:    status,
	}
}

// TimeoutErr represents an operation that exceeded its attempt or time budget.
type TimeoutErr struct {
	domainErr
}

// NewTimeoutErr creates a new TimeoutErr with the given message.
func NewTimeoutErr(message string) *TimeoutErr {
	return &TimeoutErr{
		domainErr: domainErr{message: message},
	}
}

// ToolDispatchErr represents a tool call that could not be decoded or dispatched.
type ToolDispatchErr struct {
	domainErr
	ToolName string
}

// NewToolDispatchErr creates a new ToolDispatchErr for the given tool name.
func NewToolDispatchErr(toolName string, message string) *ToolDispatchErr {
	return &ToolDispatchErr{
		domainErr: domainErr{message: message},
		ToolName:  toolName,
	}
}
