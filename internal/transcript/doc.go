// Package transcript holds the transcript domain model, the JSON result
// envelope emitted on stdout, and the fetch service implementing the
// language-restricted attempt with an unrestricted fallback.
package transcript
