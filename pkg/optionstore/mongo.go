package optionstore

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type mongoOption struct {
	Name      string    `bson:"_id"`
	Value     string    `bson:"value"`
	UpdatedAt time.Time `bson:"updated_at"`
}

// MongoStore keeps one document per option. The value is stored as its JSON
// text so it round-trips exactly like the other stores.
type MongoStore struct {
	coll *mongo.Collection
}

func NewMongoStore(coll *mongo.Collection) *MongoStore {
	return &MongoStore{coll: coll}
}

func (s *MongoStore) Get(ctx context.Context, name string) (any, error) {
	var doc mongoOption
	if err := s.coll.FindOne(ctx, bson.M{"_id": name}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, errors.Join(ErrBackend, err)
	}
	return decode([]byte(doc.Value))
}

func (s *MongoStore) Set(ctx context.Context, name string, value any) error {
	data, err := encode(value)
	if err != nil {
		return err
	}
	update := bson.M{"$set": bson.M{
		"value":      string(data),
		"updated_at": time.Now().UTC(),
	}}
	if _, err := s.coll.UpdateOne(ctx, bson.M{"_id": name}, update, options.UpdateOne().SetUpsert(true)); err != nil {
		return errors.Join(ErrBackend, err)
	}
	return nil
}

func (s *MongoStore) Delete(ctx context.Context, name string) error {
	if _, err := s.coll.DeleteOne(ctx, bson.M{"_id": name}); err != nil {
		return errors.Join(ErrBackend, err)
	}
	return nil
}
