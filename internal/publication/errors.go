package publication

import (
	"fmt"

	"github.com/google/uuid"
)

// NotAuthorisedError is returned when a caller may not retrieve a
// non-public artefact. It is raised before any bytes are read.
type NotAuthorisedError struct {
	ArtefactID uuid.UUID
}

func (e *NotAuthorisedError) Error() string {
	return fmt.Sprintf("user is not authorised to access artefact %s", e.ArtefactID)
}

// SizeLimitError is returned when a stored file exceeds the caller's
// maximum size. It is only raised at retrieval time; generation always
// stores whatever the two-pass fallback produced.
type SizeLimitError struct {
	Limit  int64
	Actual int64
}

func (e *SizeLimitError) Error() string {
	return fmt.Sprintf("stored file is %d bytes, exceeding the %d byte limit", e.Actual, e.Limit)
}
