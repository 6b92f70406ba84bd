package overtime

import "errors"

var (
	ErrOvertimeRequestNotFound = errors.New("overtime request not found")
	ErrAlreadyProcessed        = errors.New("overtime request has already been approved or rejected")
)
