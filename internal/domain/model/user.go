package model

import "time"

// User represents the profile projection of a backend user.
//
// The backend keeps auth.users and public.profiles separate; this service
// only ever sees the merged profile view, so a single record covers both.
//
// @Description User profile
type User struct {
	// ID is the user UUID assigned by the backend.
	ID string `bson:"_id" json:"id" example:"a9b8c7d6-0000-4000-8000-000000000002"`
	// Username is the unique handle.
	Username string `bson:"username" json:"username" example:"grace"`
	// FullName is the display name, if set.
	FullName string `bson:"full_name,omitempty" json:"full_name,omitempty"`
	// AvatarURL points at the backend-hosted avatar, if set.
	AvatarURL string `bson:"avatar_url,omitempty" json:"avatar_url,omitempty"`
	// Status is the free-form presence text ("online", "away", custom).
	Status string `bson:"status,omitempty" json:"status,omitempty"`

	LastSeen  *time.Time `bson:"last_seen,omitempty" json:"last_seen,omitempty"`
	CreatedAt time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt *time.Time `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}
