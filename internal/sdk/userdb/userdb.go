// Package userdb provides account persistence for the popcorn-app service.
package userdb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/TonyTawil/popcorn-app/internal/sdk/models"
)

var (
	ErrDBNotFound        = errors.New("not found")
	ErrDBDuplicatedEntry = errors.New("duplicated entry")
)

// Service represents the durable account store. The handlers consume this
// interface; the mongo implementation below is the production backing.
type Service interface {
	// Health returns a map of health status information.
	Health(ctx context.Context) map[string]string

	// Close terminates the database connection.
	Close(ctx context.Context) error

	GetUserByID(ctx context.Context, userID string) (models.User, error)
	GetUserByUsername(ctx context.Context, username string) (models.User, error)
	GetUserByEmail(ctx context.Context, email string) (models.User, error)
	GetUserByVerificationToken(ctx context.Context, token string) (models.User, error)

	// CreateUser inserts a new account. A unique-index violation on
	// username, email, or verification token is reported as
	// ErrDBDuplicatedEntry so callers can treat a check-then-create race
	// the same way as a failed pre-check.
	CreateUser(ctx context.Context, nu models.NewUser) (models.User, error)

	// SaveUser persists a mutated account record.
	SaveUser(ctx context.Context, user models.User) error
}

const usersCollection = "users"

type service struct {
	client *mongo.Client
	users  *mongo.Collection
	dbName string
}

// New connects to MongoDB, verifies the connection, and ensures the unique
// indexes the account invariants rely on.
func New(ctx context.Context, uri, dbName string) (Service, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connecting to mongodb: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("pinging mongodb: %w", err)
	}

	s := &service{
		client: client,
		users:  client.Database(dbName).Collection(usersCollection),
		dbName: dbName,
	}

	if err := s.ensureIndexes(ctx); err != nil {
		return nil, fmt.Errorf("ensuring indexes: %w", err)
	}

	return s, nil
}

// ensureIndexes creates the unique indexes on username and email, and a
// partial unique index on the verification token so that only documents
// still carrying a token participate in the constraint.
func (s *service) ensureIndexes(ctx context.Context) error {
	_, err := s.users.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "username", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "emailVerificationToken", Value: 1}},
			Options: options.Index().SetUnique(true).SetPartialFilterExpression(
				bson.D{{Key: "emailVerificationToken", Value: bson.D{{Key: "$type", Value: "string"}}}},
			),
		},
	})
	return err
}

func (s *service) Health(ctx context.Context) map[string]string {
	ctx, cancel := context.WithTimeout(ctx, 1*time.Second)
	defer cancel()

	stats := make(map[string]string)

	if err := s.client.Ping(ctx, nil); err != nil {
		stats["status"] = "down"
		stats["error"] = fmt.Sprintf("db down: %v", err)
		return stats
	}

	stats["status"] = "up"
	stats["message"] = "It's healthy"
	stats["database"] = s.dbName
	return stats
}

func (s *service) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// ---------------------------------------------
// User operations
// ---------------------------------------------

func (s *service) GetUserByID(ctx context.Context, userID string) (models.User, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		// A malformed id can never match a document.
		return models.User{}, ErrDBNotFound
	}
	return s.findOne(ctx, bson.D{{Key: "_id", Value: oid}})
}

func (s *service) GetUserByUsername(ctx context.Context, username string) (models.User, error) {
	return s.findOne(ctx, bson.D{{Key: "username", Value: username}})
}

func (s *service) GetUserByEmail(ctx context.Context, email string) (models.User, error) {
	return s.findOne(ctx, bson.D{{Key: "email", Value: email}})
}

func (s *service) GetUserByVerificationToken(ctx context.Context, token string) (models.User, error) {
	return s.findOne(ctx, bson.D{{Key: "emailVerificationToken", Value: token}})
}

func (s *service) findOne(ctx context.Context, filter bson.D) (models.User, error) {
	var user models.User
	err := s.users.FindOne(ctx, filter).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.User{}, ErrDBNotFound
		}
		return models.User{}, fmt.Errorf("selecting user: %w", err)
	}
	return user, nil
}

func (s *service) CreateUser(ctx context.Context, nu models.NewUser) (models.User, error) {
	now := time.Now().UTC()
	user := models.User{
		ID:                     primitive.NewObjectID(),
		FirstName:              nu.FirstName,
		LastName:               nu.LastName,
		Username:               nu.Username,
		Email:                  nu.Email,
		Password:               nu.Password,
		Gender:                 nu.Gender,
		ProfilePic:             nu.ProfilePic,
		IsEmailVerified:        false,
		EmailVerificationToken: nu.EmailVerificationToken,
		WatchList:              []models.MovieEntry{},
		Watched:                []models.MovieEntry{},
		CreatedAt:              now,
		UpdatedAt:              now,
	}

	if _, err := s.users.InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return models.User{}, ErrDBDuplicatedEntry
		}
		return models.User{}, fmt.Errorf("creating user: %w", err)
	}

	return user, nil
}

func (s *service) SaveUser(ctx context.Context, user models.User) error {
	user.UpdatedAt = time.Now().UTC()

	result, err := s.users.ReplaceOne(ctx, bson.D{{Key: "_id", Value: user.ID}}, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDBDuplicatedEntry
		}
		return fmt.Errorf("saving user: %w", err)
	}

	if result.MatchedCount == 0 {
		return ErrDBNotFound
	}

	return nil
}

// IsNotFound checks if the error is a not found error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrDBNotFound)
}

// IsDuplicateEntry checks if the error is a duplicate entry error.
func IsDuplicateEntry(err error) bool {
	return errors.Is(err, ErrDBDuplicatedEntry)
}
