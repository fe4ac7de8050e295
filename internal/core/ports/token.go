package ports

// TokenIssuer mints and verifies the signed bearer credential used by the
// authorization guard. Verify returns the subject user id embedded at issue
// time; expired or structurally invalid tokens map to the corresponding
// domain errors.
type TokenIssuer interface {
	Issue(subjectID string) (string, error)
	Verify(token string) (string, error)
}
