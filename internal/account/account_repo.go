package account

import (
	"context"
	"errors"
	"strings"

	accounterrors "go-stationops/internal/account/errors"
	"go-stationops/internal/store"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

//go:generate mockgen -source=account_repo.go -destination=mock/account_repo_mock.go -package=mock
type Repository interface {
	FindAdminByEmail(ctx context.Context, email string) (*AdminAccount, error)
	FindAdminByID(ctx context.Context, id primitive.ObjectID) (*AdminAccount, error)
	FindEmployeeByEmail(ctx context.Context, email string) (*EmployeeAccount, error)
	FindEmployeeByID(ctx context.Context, id primitive.ObjectID) (*EmployeeAccount, error)
	FindCustomerByEmail(ctx context.Context, s store.Store, email string) (*CustomerAccount, error)
	FindCustomerByID(ctx context.Context, s store.Store, id primitive.ObjectID) (*CustomerAccount, error)
}

type repository struct {
	stores store.Provider
}

func NewRepository(stores store.Provider) Repository {
	return &repository{stores: stores}
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (r *repository) FindAdminByEmail(ctx context.Context, email string) (*AdminAccount, error) {
	var a AdminAccount
	err := r.findOne(ctx, store.Primary, AdminCollection, bson.M{"email": NormalizeEmail(email)}, &a, byEmail())
	return result(&a, err)
}

func (r *repository) FindAdminByID(ctx context.Context, id primitive.ObjectID) (*AdminAccount, error) {
	var a AdminAccount
	err := r.findOne(ctx, store.Primary, AdminCollection, bson.M{"_id": id}, &a)
	return result(&a, err)
}

func (r *repository) FindEmployeeByEmail(ctx context.Context, email string) (*EmployeeAccount, error) {
	var e EmployeeAccount
	err := r.findOne(ctx, store.Primary, EmployeeCollection, bson.M{"email": NormalizeEmail(email)}, &e, byEmail())
	return result(&e, err)
}

func (r *repository) FindEmployeeByID(ctx context.Context, id primitive.ObjectID) (*EmployeeAccount, error) {
	var e EmployeeAccount
	err := r.findOne(ctx, store.Primary, EmployeeCollection, bson.M{"_id": id}, &e)
	return result(&e, err)
}

func (r *repository) FindCustomerByEmail(ctx context.Context, s store.Store, email string) (*CustomerAccount, error) {
	var c CustomerAccount
	err := r.findOne(ctx, s, CustomerCollection, bson.M{"email": NormalizeEmail(email)}, &c, byEmail())
	return result(&c, err)
}

func (r *repository) FindCustomerByID(ctx context.Context, s store.Store, id primitive.ObjectID) (*CustomerAccount, error) {
	var c CustomerAccount
	err := r.findOne(ctx, s, CustomerCollection, bson.M{"_id": id}, &c)
	return result(&c, err)
}

// byEmail must use the collation of the email index for the index to serve
// the lookup.
func byEmail() *options.FindOneOptions {
	return options.FindOne().SetCollation(emailCollation)
}

func (r *repository) findOne(ctx context.Context, s store.Store, collection string, filter bson.M, out any, opts ...*options.FindOneOptions) error {
	db, err := r.stores.Handle(ctx, s)
	if err != nil {
		return err
	}

	err = db.Collection(collection).FindOne(ctx, filter, opts...).Decode(out)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return accounterrors.ErrAccountNotFound
	}
	return store.Wrap(s, err)
}

func result[T any](v *T, err error) (*T, error) {
	if err != nil {
		return nil, err
	}
	return v, nil
}
