package entity

// PrincipalKind tells which store a credential was loaded from.
type PrincipalKind string

const (
	PrincipalUser  PrincipalKind = "user"
	PrincipalAdmin PrincipalKind = "admin"
)

// Credential is the login material of a principal. It only flows between
// the repositories and the password hasher.
type Credential struct {
	PrincipalID  int64
	Kind         PrincipalKind
	Email        string
	Username     string
	PasswordHash string `json:"-"`
}
