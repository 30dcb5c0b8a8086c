package profile

import (
	"context"
	"errors"
	"time"

	profileerrors "go-stationops/internal/profile/errors"
	"go-stationops/internal/store"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

//go:generate mockgen -source=profile_repo.go -destination=mock/profile_repo_mock.go -package=mock
type Repository interface {
	FindEmployeeProfile(ctx context.Context, mainEmployeeID primitive.ObjectID) (*EmployeeProfile, error)
	InsertEmployeeProfile(ctx context.Context, p *EmployeeProfile) error
	SyncEmployeeCore(ctx context.Context, mainEmployeeID primitive.ObjectID, core EmployeeCore, at time.Time) (*EmployeeProfile, error)
	UpdateEmployeeFields(ctx context.Context, mainEmployeeID primitive.ObjectID, u FieldsUpdate, at time.Time) (*EmployeeProfile, error)

	FindCustomerProfile(ctx context.Context, customerID primitive.ObjectID) (*CustomerProfile, error)
	InsertCustomerProfile(ctx context.Context, p *CustomerProfile) error
	SyncCustomerCore(ctx context.Context, customerID primitive.ObjectID, core CustomerCore, at time.Time) (*CustomerProfile, error)
	UpdateCustomerFields(ctx context.Context, customerID primitive.ObjectID, u FieldsUpdate, at time.Time) (*CustomerProfile, error)
}

type repository struct {
	stores store.Provider
}

func NewRepository(stores store.Provider) Repository {
	return &repository{stores: stores}
}

func (r *repository) FindEmployeeProfile(ctx context.Context, mainEmployeeID primitive.ObjectID) (*EmployeeProfile, error) {
	var p EmployeeProfile
	if err := r.findOne(ctx, store.EmployeeDomain, EmployeeProfileCollection, bson.M{"mainEmployeeId": mainEmployeeID}, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) InsertEmployeeProfile(ctx context.Context, p *EmployeeProfile) error {
	id, err := r.insert(ctx, store.EmployeeDomain, EmployeeProfileCollection, p)
	if err != nil {
		return err
	}
	p.ID = id
	return nil
}

func (r *repository) SyncEmployeeCore(ctx context.Context, mainEmployeeID primitive.ObjectID, core EmployeeCore, at time.Time) (*EmployeeProfile, error) {
	set := core.setDoc()
	set["lastSyncedAt"] = at
	set["updatedAt"] = at

	var p EmployeeProfile
	if err := r.findOneAndSet(ctx, store.EmployeeDomain, EmployeeProfileCollection, bson.M{"mainEmployeeId": mainEmployeeID}, set, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) UpdateEmployeeFields(ctx context.Context, mainEmployeeID primitive.ObjectID, u FieldsUpdate, at time.Time) (*EmployeeProfile, error) {
	set := u.setDoc()
	set["updatedAt"] = at

	var p EmployeeProfile
	if err := r.findOneAndSet(ctx, store.EmployeeDomain, EmployeeProfileCollection, bson.M{"mainEmployeeId": mainEmployeeID}, set, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) FindCustomerProfile(ctx context.Context, customerID primitive.ObjectID) (*CustomerProfile, error) {
	var p CustomerProfile
	if err := r.findOne(ctx, store.CustomerDomain, CustomerProfileCollection, bson.M{"customerId": customerID}, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) InsertCustomerProfile(ctx context.Context, p *CustomerProfile) error {
	id, err := r.insert(ctx, store.CustomerDomain, CustomerProfileCollection, p)
	if err != nil {
		return err
	}
	p.ID = id
	return nil
}

func (r *repository) SyncCustomerCore(ctx context.Context, customerID primitive.ObjectID, core CustomerCore, at time.Time) (*CustomerProfile, error) {
	set := core.setDoc()
	set["lastSyncedAt"] = at
	set["updatedAt"] = at

	var p CustomerProfile
	if err := r.findOneAndSet(ctx, store.CustomerDomain, CustomerProfileCollection, bson.M{"customerId": customerID}, set, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) UpdateCustomerFields(ctx context.Context, customerID primitive.ObjectID, u FieldsUpdate, at time.Time) (*CustomerProfile, error) {
	set := u.setDoc()
	set["updatedAt"] = at

	var p CustomerProfile
	if err := r.findOneAndSet(ctx, store.CustomerDomain, CustomerProfileCollection, bson.M{"customerId": customerID}, set, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) findOne(ctx context.Context, s store.Store, collection string, filter bson.M, out any) error {
	db, err := r.stores.Handle(ctx, s)
	if err != nil {
		return err
	}
	return mapError(s, db.Collection(collection).FindOne(ctx, filter).Decode(out))
}

func (r *repository) insert(ctx context.Context, s store.Store, collection string, doc any) (primitive.ObjectID, error) {
	db, err := r.stores.Handle(ctx, s)
	if err != nil {
		return primitive.NilObjectID, err
	}
	res, err := db.Collection(collection).InsertOne(ctx, doc)
	if err != nil {
		return primitive.NilObjectID, mapError(s, err)
	}
	id, _ := res.InsertedID.(primitive.ObjectID)
	return id, nil
}

// findOneAndSet applies a $set to one document and decodes the document as
// it is after the update.
func (r *repository) findOneAndSet(ctx context.Context, s store.Store, collection string, filter bson.M, set bson.M, out any) error {
	db, err := r.stores.Handle(ctx, s)
	if err != nil {
		return err
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err = db.Collection(collection).FindOneAndUpdate(ctx, filter, bson.M{"$set": set}, opts).Decode(out)
	return mapError(s, err)
}

func mapError(s store.Store, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return profileerrors.ErrProfileNotFound
	case store.IsDuplicateKey(err):
		return profileerrors.ErrDuplicateProfile
	default:
		return store.Wrap(s, err)
	}
}
