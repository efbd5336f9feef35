package constant

import "github.com/pkg/errors"

var (
	// ValidationErr : a required input is missing or malformed.
	ValidationErr = errors.New("validation failed")
	// NotFoundErr : a referenced interpreter, job or contact record does not exist.
	NotFoundErr = errors.New("not found")
	// ConfigurationErr : the messaging provider is missing credentials.
	ConfigurationErr = errors.New("provider is not configured")
	// ProviderErr : a single send attempt failed; folded into the dispatch
	// report, never propagated out of a batch.
	ProviderErr = errors.New("provider send failed")
	// ConflictErr : a job state transition lost to another writer or the
	// interpreter does not satisfy the job's requirements.
	ConflictErr = errors.New("conflict")
)
