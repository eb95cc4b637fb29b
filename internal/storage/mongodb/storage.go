package mongodb

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	domainErrors "github.com/polkiloo/userauth/internal/domain/errors"
	"github.com/polkiloo/userauth/internal/domain/model"
	"github.com/polkiloo/userauth/internal/domain/repository"
)

const (
	usersCollection = "users"
	pingTimeout     = 2 * time.Second
)

// Storage acts as repository facade backed by MongoDB.
type Storage struct {
	client client
	users  userCollection
	logger *slog.Logger

	indexMu    sync.Mutex
	indexReady bool
}

type userRepository struct {
	storage *Storage
}

type userDocument struct {
	ID           bson.ObjectID `bson:"_id,omitempty"`
	Name         string        `bson:"name"`
	Email        string        `bson:"email"`
	PasswordHash string        `bson:"passwordHash"`
	CreatedAt    time.Time     `bson:"createdAt"`
}

func (d *userDocument) toModel() *model.User {
	return &model.User{
		ID:           d.ID.Hex(),
		Name:         d.Name,
		Email:        d.Email,
		PasswordHash: d.PasswordHash,
		CreatedAt:    d.CreatedAt,
	}
}

var connect = func(uri string) (*mongo.Client, error) {
	return mongo.Connect(options.Client().ApplyURI(uri))
}

// New creates storage for the given database. An unreachable server is
// logged and the storage is returned anyway; requests fail until it recovers.
func New(ctx context.Context, uri, database string, logger *slog.Logger) (*Storage, error) {
	c, err := connect(uri)
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}

	storage := newStorage(driverClient{c: c}, driverCollection{coll: c.Database(database).Collection(usersCollection)}, logger)
	storage.init(ctx)
	return storage, nil
}

func newStorage(c client, users userCollection, logger *slog.Logger) *Storage {
	return &Storage{client: c, users: users, logger: logger}
}

func (s *Storage) init(ctx context.Context) {
	if err := s.HealthCheck(ctx); err != nil {
		s.logger.Error("mongodb unavailable, continuing in degraded mode", slog.String("error", err.Error()))
		return
	}
	if err := s.ensureIndexes(ctx); err != nil {
		s.logger.Error("mongodb index creation failed", slog.String("error", err.Error()))
	}
}

// ensureIndexes creates the unique email index once per process.
func (s *Storage) ensureIndexes(ctx context.Context) error {
	s.indexMu.Lock()
	defer s.indexMu.Unlock()
	if s.indexReady {
		return nil
	}
	if err := s.users.EnsureEmailIndex(ctx); err != nil {
		return fmt.Errorf("ensure email index: %w", err)
	}
	s.indexReady = true
	return nil
}

// Users returns user repository backed by this storage.
func (s *Storage) Users() repository.UserRepository {
	return &userRepository{storage: s}
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	return s.client.Ping(ctx)
}

// Close releases database resources.
func (s *Storage) Close(ctx context.Context) error {
	if s.client == nil {
		return nil
	}
	return s.client.Disconnect(ctx)
}

func (r *userRepository) Create(ctx context.Context, name, email, passwordHash string) (*model.User, error) {
	if err := r.storage.ensureIndexes(ctx); err != nil {
		return nil, err
	}

	doc := userDocument{
		ID:           bson.NewObjectID(),
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC().Truncate(time.Millisecond),
	}
	if _, err := r.storage.users.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return doc.toModel(), nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	return r.findOne(ctx, bson.D{{Key: "email", Value: email}})
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*model.User, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, domainErrors.ErrNotFound
	}
	return r.findOne(ctx, bson.D{{Key: "_id", Value: oid}})
}

func (r *userRepository) findOne(ctx context.Context, filter bson.D) (*model.User, error) {
	var doc userDocument
	if err := r.storage.users.FindOne(ctx, filter, &doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return doc.toModel(), nil
}
