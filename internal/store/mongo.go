package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/roomly-app/backend/internal/apperrors"
)

// MongoStore implements Store on a MongoDB database, one collection per
// logical table, _id as the item key. Every operation touches exactly one
// document, which is what gives the adapter its atomicity guarantee.
type MongoStore struct {
	db *mongo.Database
}

func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{db: db}
}

var _ Store = (*MongoStore)(nil)

func (s *MongoStore) Get(ctx context.Context, table, key string, out interface{}) error {
	err := s.db.Collection(table).FindOne(ctx, bson.M{"_id": key}).Decode(out)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return apperrors.NotFound("Item not found")
		}
		return apperrors.Unavailable("Store read failed", err)
	}
	return nil
}

func (s *MongoStore) Put(ctx context.Context, table, key string, item interface{}, failIfExists bool) error {
	coll := s.db.Collection(table)
	if failIfExists {
		_, err := coll.InsertOne(ctx, item)
		if err != nil {
			if mongo.IsDuplicateKeyError(err) {
				return apperrors.Conflict("Item already exists")
			}
			return apperrors.Unavailable("Store write failed", err)
		}
		return nil
	}
	opts := options.Replace().SetUpsert(true)
	if _, err := coll.ReplaceOne(ctx, bson.M{"_id": key}, item, opts); err != nil {
		return apperrors.Unavailable("Store write failed", err)
	}
	return nil
}

func (s *MongoStore) Update(ctx context.Context, table, key string, mut Mutation, failIfAbsent bool) error {
	if mut.empty() {
		return nil
	}

	filter := bson.M{"_id": key}
	if mut.Require != "" {
		filter[mut.Require] = bson.M{"$exists": true}
	}

	update := bson.M{}
	if len(mut.Set) > 0 {
		update["$set"] = bson.M(mut.Set)
	}
	if len(mut.Unset) > 0 {
		unset := bson.M{}
		for _, field := range mut.Unset {
			unset[field] = ""
		}
		update["$unset"] = unset
	}
	if len(mut.Add) > 0 {
		add := bson.M{}
		for field, member := range mut.Add {
			add[field] = member
		}
		update["$addToSet"] = add
	}
	if len(mut.Remove) > 0 {
		pull := bson.M{}
		for field, member := range mut.Remove {
			pull[field] = member
		}
		update["$pull"] = pull
	}
	if len(mut.Push) > 0 {
		push := bson.M{}
		for field, member := range mut.Push {
			push[field] = member
		}
		update["$push"] = push
	}

	guarded := failIfAbsent || mut.Require != ""
	opts := options.Update()
	if !guarded {
		// Unguarded updates create the item, matching the behavior of a
		// key-value update without a condition expression.
		opts = opts.SetUpsert(true)
	}

	res, err := s.db.Collection(table).UpdateOne(ctx, filter, update, opts)
	if err != nil {
		return apperrors.Unavailable("Store update failed", err)
	}
	if guarded && res.MatchedCount == 0 {
		return apperrors.NotFound("Item not found")
	}
	return nil
}

func (s *MongoStore) Delete(ctx context.Context, table, key string) error {
	if _, err := s.db.Collection(table).DeleteOne(ctx, bson.M{"_id": key}); err != nil {
		return apperrors.Unavailable("Store delete failed", err)
	}
	return nil
}
