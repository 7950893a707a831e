package interfaces

import "github.com/ochairo/saclient/internal/domain/entities"

// Progress receives status messages and raised errors from the client runner.
// Implementations must be safe for concurrent use: the output reader and the
// runner report from different goroutines.
type Progress interface {
	// SetStatus reports a leveled status message
	SetStatus(msg entities.Message)

	// SetError reports an error condition
	SetError(err error)
}
