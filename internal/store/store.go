package store

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"go-stationops/internal/shared/apperror"

	"go.mongodb.org/mongo-driver/bson/bsoncodec"
	"go.mongodb.org/mongo-driver/mongo"
)

// Store names one of the independently addressed document databases.
type Store string

const (
	Primary        Store = "primary"
	EmployeeDomain Store = "employee_domain"
	CustomerDomain Store = "customer_domain"
)

var All = []Store{Primary, EmployeeDomain, CustomerDomain}

// ErrUnreachable is the root of every "could not talk to the store" error.
// It is distinct from any not-found error.
var ErrUnreachable = apperror.New(
	apperror.CodeStoreUnreachable,
	"Data store is unavailable",
	http.StatusInternalServerError,
)

// Provider hands out the shared database handle of a store.
type Provider interface {
	Handle(ctx context.Context, s Store) (*mongo.Database, error)
}

func Unreachable(s Store, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrUnreachable) {
		return err
	}
	return fmt.Errorf("%w: %s: %w", ErrUnreachable, s, err)
}

// Wrap classifies a driver error returned by an operation against s.
// ErrNoDocuments and duplicate-key errors are returned untouched so callers
// can map them to not-found and conflict. Decode errors mean a malformed
// document, not an outage, and are also returned untouched. Anything else
// becomes unreachable.
func Wrap(s Store, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return err
	case IsDuplicateKey(err):
		return err
	case IsDecode(err):
		return err
	default:
		return Unreachable(s, err)
	}
}

func IsDuplicateKey(err error) bool {
	return err != nil && mongo.IsDuplicateKeyError(err)
}

func IsDecode(err error) bool {
	var (
		decodeErr   *bsoncodec.DecodeError
		valueErr    bsoncodec.ValueDecoderError
		noDecoder   bsoncodec.ErrNoDecoder
		noTypeEntry bsoncodec.ErrNoTypeMapEntry
	)
	return errors.As(err, &decodeErr) ||
		errors.As(err, &valueErr) ||
		errors.As(err, &noDecoder) ||
		errors.As(err, &noTypeEntry)
}

func IsUnreachable(err error) bool {
	return errors.Is(err, ErrUnreachable)
}
