package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
)

// CollectionIndexes are the indexes one collection needs. Uniqueness
// constraints listed here are what the rest of the code relies on to detect
// duplicates, there are no transactions behind them.
type CollectionIndexes struct {
	Store      Store
	Collection string
	Models     []mongo.IndexModel
}

func EnsureIndexes(ctx context.Context, p Provider, specs ...CollectionIndexes) error {
	for _, spec := range specs {
		db, err := p.Handle(ctx, spec.Store)
		if err != nil {
			return err
		}
		if _, err := db.Collection(spec.Collection).Indexes().CreateMany(ctx, spec.Models); err != nil {
			return fmt.Errorf("ensure indexes on %s.%s: %w", spec.Store, spec.Collection, err)
		}
	}
	return nil
}
