// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pubmed

import "fmt"

// NotFoundError indicates that the E-utilities payload for an identifier
// lacks the expected document root, which is how the API signals an
// unknown PMID. Recoverable at the batch level.
type NotFoundError struct {
	PMID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no PubMed record found for ID %s", e.PMID)
}

// MalformedDocumentError indicates that a payload carried the expected
// root marker but could not be parsed as XML. Recoverable at the batch
// level.
type MalformedDocumentError struct {
	PMID string
	Err  error
}

func (e *MalformedDocumentError) Error() string {
	return fmt.Sprintf("malformed PubMed document for ID %s: %v", e.PMID, e.Err)
}

func (e *MalformedDocumentError) Unwrap() error { return e.Err }

// MissingFieldError indicates that a required field path in the document
// resolved to no value.
type MissingFieldError struct {
	Path string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("required field %s is missing", e.Path)
}

// InvalidIdentifierError wraps a not-found or missing-field failure with
// the offending identifier for user-facing reporting. The batch loop
// skips the identifier and continues with the rest.
type InvalidIdentifierError struct {
	PMID string
	Err  error
}

func (e *InvalidIdentifierError) Error() string {
	return fmt.Sprintf("invalid PubMed ID %s: %v", e.PMID, e.Err)
}

func (e *InvalidIdentifierError) Unwrap() error { return e.Err }
