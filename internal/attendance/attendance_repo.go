package attendance

import (
	"context"

	attendanceerrors "go-stationops/internal/attendance/errors"
	"go-stationops/internal/store"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

//go:generate mockgen -source=attendance_repo.go -destination=mock/attendance_repo_mock.go -package=mock
type Repository interface {
	Exists(ctx context.Context, employeeID primitive.ObjectID, date string) (bool, error)
	Insert(ctx context.Context, e *Event) error
	// ListRange returns the employee's events with from <= date <= to,
	// oldest first.
	ListRange(ctx context.Context, employeeID primitive.ObjectID, from, to string) ([]Event, error)
	SetMonthSummary(ctx context.Context, employeeID primitive.ObjectID, from, to string, sum MonthSummary) (int64, error)
}

// MirrorRepository writes the reduced copy of an event into Primary.
type MirrorRepository interface {
	UpsertMirror(ctx context.Context, m MirrorRecord) error
}

type repository struct {
	stores store.Provider
}

func NewRepository(stores store.Provider) Repository {
	return &repository{stores: stores}
}

func (r *repository) collection(ctx context.Context) (*mongo.Collection, error) {
	db, err := r.stores.Handle(ctx, store.EmployeeDomain)
	if err != nil {
		return nil, err
	}
	return db.Collection(Collection), nil
}

func (r *repository) Exists(ctx context.Context, employeeID primitive.ObjectID, date string) (bool, error) {
	coll, err := r.collection(ctx)
	if err != nil {
		return false, err
	}
	n, err := coll.CountDocuments(ctx,
		bson.M{"employeeId": employeeID, "date": date},
		options.Count().SetLimit(1),
	)
	if err != nil {
		return false, store.Wrap(store.EmployeeDomain, err)
	}
	return n > 0, nil
}

func (r *repository) Insert(ctx context.Context, e *Event) error {
	coll, err := r.collection(ctx)
	if err != nil {
		return err
	}
	res, err := coll.InsertOne(ctx, e)
	if err != nil {
		if store.IsDuplicateKey(err) {
			return attendanceerrors.ErrAlreadyReported
		}
		return store.Wrap(store.EmployeeDomain, err)
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		e.ID = id
	}
	return nil
}

func (r *repository) ListRange(ctx context.Context, employeeID primitive.ObjectID, from, to string) ([]Event, error) {
	coll, err := r.collection(ctx)
	if err != nil {
		return nil, err
	}
	cur, err := coll.Find(ctx,
		bson.M{
			"employeeId": employeeID,
			"date":       bson.M{"$gte": from, "$lte": to},
		},
		options.Find().SetSort(bson.D{{Key: "date", Value: 1}}),
	)
	if err != nil {
		return nil, store.Wrap(store.EmployeeDomain, err)
	}
	defer cur.Close(ctx)

	var events []Event
	if err := cur.All(ctx, &events); err != nil {
		return nil, store.Wrap(store.EmployeeDomain, err)
	}
	return events, nil
}

func (r *repository) SetMonthSummary(ctx context.Context, employeeID primitive.ObjectID, from, to string, sum MonthSummary) (int64, error) {
	coll, err := r.collection(ctx)
	if err != nil {
		return 0, err
	}
	res, err := coll.UpdateMany(ctx,
		bson.M{
			"employeeId": employeeID,
			"date":       bson.M{"$gte": from, "$lte": to},
		},
		bson.M{"$set": bson.M{"monthSummary": sum}},
	)
	if err != nil {
		return 0, store.Wrap(store.EmployeeDomain, err)
	}
	return res.ModifiedCount, nil
}

type mirrorRepository struct {
	stores store.Provider
}

func NewMirrorRepository(stores store.Provider) MirrorRepository {
	return &mirrorRepository{stores: stores}
}

// UpsertMirror is keyed by (employee, date) so replaying it is harmless.
func (r *mirrorRepository) UpsertMirror(ctx context.Context, m MirrorRecord) error {
	db, err := r.stores.Handle(ctx, store.Primary)
	if err != nil {
		return err
	}

	set := bson.M{
		"status":     m.Status,
		"totalHours": m.TotalHours,
		"updatedAt":  m.UpdatedAt,
	}
	if m.ClockInTime != "" {
		set["clockInTime"] = m.ClockInTime
	}
	if m.ClockOutTime != "" {
		set["clockOutTime"] = m.ClockOutTime
	}

	_, err = db.Collection(Collection).UpdateOne(ctx,
		bson.M{"employee": m.Employee, "date": m.Date},
		bson.M{
			"$set":         set,
			"$setOnInsert": bson.M{"createdAt": m.UpdatedAt},
		},
		options.Update().SetUpsert(true),
	)
	return store.Wrap(store.Primary, err)
}
