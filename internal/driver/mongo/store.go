package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/charan-kumar-kamasani/authentik/internal/formconfig"
)

// globalID is the well-known document key for the singleton
// configuration. Using a fixed _id makes the one-active-global
// invariant structural instead of convention-enforced.
const globalID = "global"

const collectionName = "form_configs"

// Store persists the global form configuration in MongoDB.
type Store struct {
	coll *mongo.Collection
}

// NewStore returns a Store bound to the form_configs collection of db.
func NewStore(cli *mongo.Client, db string) *Store {
	return &Store{coll: cli.Database(db).Collection(collectionName)}
}

func (s *Store) ActiveGlobal(ctx context.Context) (formconfig.FormConfig, error) {
	filter := bson.M{"isGlobal": true, "isActive": true}
	n, err := s.coll.CountDocuments(ctx, filter)
	if err != nil {
		return formconfig.FormConfig{}, fmt.Errorf("count active configs: %w", err)
	}
	switch {
	case n == 0:
		return formconfig.DefaultConfig(), nil
	case n > 1:
		return formconfig.FormConfig{}, formconfig.ErrAmbiguousConfig
	}
	var cfg formconfig.FormConfig
	if err := s.coll.FindOne(ctx, filter).Decode(&cfg); err != nil {
		return formconfig.FormConfig{}, fmt.Errorf("find active config: %w", err)
	}
	return cfg, nil
}

func (s *Store) FindGlobal(ctx context.Context) (formconfig.FormConfig, error) {
	var cfg formconfig.FormConfig
	err := s.coll.FindOne(ctx, bson.M{"isGlobal": true}).Decode(&cfg)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return formconfig.FormConfig{}, formconfig.ErrNotFound
	}
	if err != nil {
		return formconfig.FormConfig{}, fmt.Errorf("find global config: %w", err)
	}
	return cfg, nil
}

func (s *Store) UpsertGlobal(ctx context.Context, patch formconfig.FormConfig, actor string) (formconfig.FormConfig, error) {
	now := time.Now().UTC()
	cur, err := s.FindGlobal(ctx)
	if errors.Is(err, formconfig.ErrNotFound) {
		doc := patch
		doc.ID = globalID
		doc.IsGlobal = true
		doc.IsActive = true
		doc.Version = 1
		doc.CreatedBy = actor
		doc.UpdatedBy = actor
		doc.CreatedAt = now
		doc.UpdatedAt = now
		if _, err := s.coll.InsertOne(ctx, doc); err != nil {
			return formconfig.FormConfig{}, fmt.Errorf("insert global config: %w", err)
		}
		return doc, nil
	}
	if err != nil {
		return formconfig.FormConfig{}, err
	}
	if patch.Version != 0 && patch.Version != cur.Version {
		return formconfig.FormConfig{}, formconfig.ErrVersionConflict
	}
	set := bson.M{
		"formName":     patch.FormName,
		"description":  patch.Description,
		"customFields": patch.CustomFields,
		"variants":     patch.Variants,
		"staticFields": patch.StaticFields,
		"updatedBy":    actor,
		"updatedAt":    now,
	}
	// Filtering on the observed version turns concurrent writers into
	// a conflict instead of last-write-wins.
	res, err := s.coll.UpdateOne(ctx,
		bson.M{"_id": cur.ID, "version": cur.Version},
		bson.M{"$set": set, "$inc": bson.M{"version": 1}})
	if err != nil {
		return formconfig.FormConfig{}, fmt.Errorf("update global config: %w", err)
	}
	if res.MatchedCount == 0 {
		return formconfig.FormConfig{}, formconfig.ErrVersionConflict
	}
	return s.FindGlobal(ctx)
}
