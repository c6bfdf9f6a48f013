package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/serroba/tinyurl/internal/user"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoUserStore is a MongoDB implementation of user.Store. Users live
// in the "users" collection, click events in "user_clicks". Counter
// updates go through $inc so concurrent clicks on the same user never
// lose updates.
type MongoUserStore struct {
	users  *mongo.Collection
	clicks *mongo.Collection
}

// NewMongoUserStore creates a MongoDB-backed user store on db.
func NewMongoUserStore(db *mongo.Database) *MongoUserStore {
	return &MongoUserStore{
		users:  db.Collection("users"),
		clicks: db.Collection("user_clicks"),
	}
}

func (s *MongoUserStore) Insert(ctx context.Context, u *user.User) error {
	err := s.users.FindOne(ctx, bson.M{"name": u.Name}).Err()
	if err == nil {
		return user.ErrAlreadyExists
	}

	if !errors.Is(err, mongo.ErrNoDocuments) {
		return err
	}

	_, err = s.users.InsertOne(ctx, u)
	if mongo.IsDuplicateKeyError(err) {
		return user.ErrAlreadyExists
	}

	return err
}

func (s *MongoUserStore) FindByName(ctx context.Context, name string) (*user.User, error) {
	var u user.User

	err := s.users.FindOne(ctx, bson.M{"name": name}).Decode(&u)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, user.ErrNotFound
		}

		return nil, err
	}

	return &u, nil
}

func (s *MongoUserStore) IncrementAllClicks(ctx context.Context, name string) error {
	return s.incrementField(ctx, name, "allUrlClicks")
}

func (s *MongoUserStore) IncrementCodeClicks(ctx context.Context, name, code, month string) error {
	// The store owns the dotted-path encoding of the (code, month) bucket.
	return s.incrementField(ctx, name, fmt.Sprintf("shorts.%s.clicks.%s", code, month))
}

func (s *MongoUserStore) incrementField(ctx context.Context, name, field string) error {
	_, err := s.users.UpdateOne(ctx,
		bson.M{"name": name},
		bson.M{"$inc": bson.M{field: 1}},
	)

	return err
}

func (s *MongoUserStore) AppendClick(ctx context.Context, click *user.Click) error {
	_, err := s.clicks.InsertOne(ctx, click)

	return err
}

func (s *MongoUserStore) Clicks(ctx context.Context, name string) (user.ClickCursor, error) {
	cur, err := s.clicks.Find(ctx, bson.M{"userName": name})
	if err != nil {
		return nil, err
	}

	return &mongoClickCursor{cur: cur}, nil
}

type mongoClickCursor struct {
	cur   *mongo.Cursor
	click user.Click
	err   error
}

func (c *mongoClickCursor) Next(ctx context.Context) bool {
	if !c.cur.Next(ctx) {
		return false
	}

	if err := c.cur.Decode(&c.click); err != nil {
		c.err = err

		return false
	}

	return true
}

func (c *mongoClickCursor) Click() *user.Click {
	return &c.click
}

func (c *mongoClickCursor) Err() error {
	if c.err != nil {
		return c.err
	}

	return c.cur.Err()
}

func (c *mongoClickCursor) Close(ctx context.Context) error {
	return c.cur.Close(ctx)
}

// Compile-time check.
var _ user.Store = (*MongoUserStore)(nil)
