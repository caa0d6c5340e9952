// Package model defines domain entities used by services and repositories.
package model

import "time"

// User represents an account. The password is never stored in plaintext;
// HashedPassword is derived with a per-password salt embedded in the hash.
type User struct {
	ID             string // opaque short id, immutable
	Email          string // unique, exact-match lookup
	FirstName      string
	LastName       string
	HashedPassword string
	Archived       bool // archived users may not log in
	CreatedAt      time.Time
}

// Note is a single note owned by exactly one user.
type Note struct {
	ID        string // opaque short id
	Owner     string // FK -> users.id, immutable after creation
	Title     string
	Details   string
	Tags      []string
	Created   time.Time
	Favorited bool
}

// NoteQuery filters and pages a note listing. Zero values disable a filter.
type NoteQuery struct {
	Limit int
	Skip  int
	Tag   string    // membership match against Note.Tags
	Date  time.Time // notes created within that calendar day
}

// NoteUpdate is a partial note change: blank Title/Details leave the stored
// value untouched, Tags always overwrite.
type NoteUpdate struct {
	Title   string
	Details string
	Tags    []string
}

// ProfileUpdate is a partial profile change; blank fields are ignored.
type ProfileUpdate struct {
	FirstName string
	LastName  string
}
