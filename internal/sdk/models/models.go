// Package models defines data models for the popcorn-app service.
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Gender values accepted at signup. Profile pictures are derived from these.
const (
	GenderMale   = "male"
	GenderFemale = "female"
)

// MovieEntry is a single movie reference in a user's watch list or
// watched list.
type MovieEntry struct {
	MovieID    int64  `bson:"movieId" json:"movieId"`
	Title      string `bson:"title" json:"title"`
	CoverImage string `bson:"coverImage" json:"coverImage"`
}

// User represents an account in the system.
//
// EmailVerificationToken is present only while the account is unverified;
// it is cleared exactly once, when verification succeeds. Password holds the
// bcrypt digest and is never serialized to JSON.
type User struct {
	ID                     primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	FirstName              string             `bson:"firstName" json:"firstName"`
	LastName               string             `bson:"lastName" json:"lastName"`
	Username               string             `bson:"username" json:"username"`
	Email                  string             `bson:"email" json:"email"`
	Password               string             `bson:"password" json:"-"`
	Gender                 string             `bson:"gender" json:"gender"`
	ProfilePic             string             `bson:"profilePic" json:"profilePic"`
	IsEmailVerified        bool               `bson:"isEmailVerified" json:"isEmailVerified"`
	EmailVerificationToken string             `bson:"emailVerificationToken,omitempty" json:"-"`
	WatchList              []MovieEntry       `bson:"watchList" json:"watchList"`
	Watched                []MovieEntry       `bson:"watched" json:"watched"`
	CreatedAt              time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt              time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// NewUser carries the fields needed to create an account. Password is
// already hashed by the time it reaches the store.
type NewUser struct {
	FirstName              string
	LastName               string
	Username               string
	Email                  string
	Password               string
	Gender                 string
	ProfilePic             string
	EmailVerificationToken string
}
