package model

import (
	"strings"

	"github.com/m-mizutani/goerr/v2"
)

// RepoRef identifies a GitHub repository by owner and name
type RepoRef struct {
	Owner string
	Name  string
}

// FullName returns the "owner/name" form of the reference
func (r RepoRef) FullName() string {
	return r.Owner + "/" + r.Name
}

// IsEmpty returns true when either part of the reference is missing
func (r RepoRef) IsEmpty() bool {
	return r.Owner == "" || r.Name == ""
}

// ParseRepoRef parses an "owner/name" string into a RepoRef
func ParseRepoRef(fullName string) (RepoRef, error) {
	owner, name, ok := strings.Cut(fullName, "/")
	if !ok || owner == "" || name == "" || strings.Contains(name, "/") {
		return RepoRef{}, goerr.New("invalid repository full name", goerr.V("full_name", fullName))
	}
	return RepoRef{Owner: owner, Name: name}, nil
}

// Repository is the resolved metadata of a GitHub repository
type Repository struct {
	Ref           RepoRef
	DefaultBranch string
	Private       bool
}
