// Package content holds the repository values and collaborators the search
// layer consumes: locations, user references and the permission resolver.
package content

import "errors"

// Location is a node in the content tree.
type Location struct {
	ID               int64  `json:"id" yaml:"id"`
	ContentID        int64  `json:"content_id" yaml:"content_id"`
	ParentLocationID int64  `json:"parent_location_id" yaml:"parent_location_id"`
	PathString       string `json:"path_string" yaml:"path_string"`
	Depth            int    `json:"depth" yaml:"depth"`
	Hidden           bool   `json:"hidden" yaml:"hidden"`
	RemoteID         string `json:"remote_id" yaml:"remote_id"`
}

// UserReference identifies a repository user.
type UserReference struct {
	UserID int64
}

// PermissionResolver exposes the identity of the user the current request
// runs as.
type PermissionResolver interface {
	CurrentUserReference() (UserReference, error)
}

// ErrNoCurrentUser is returned when no user is configured.
var ErrNoCurrentUser = errors.New("no current user")

// StaticPermissionResolver always resolves to a fixed user.
// A zero UserID resolves to ErrNoCurrentUser.
type StaticPermissionResolver struct {
	UserID int64
}

// CurrentUserReference returns the configured user.
func (r StaticPermissionResolver) CurrentUserReference() (UserReference, error) {
	if r.UserID == 0 {
		return UserReference{}, ErrNoCurrentUser
	}
	return UserReference{UserID: r.UserID}, nil
}
