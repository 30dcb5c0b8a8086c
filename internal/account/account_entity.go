package account

import (
	"time"

	"go-stationops/internal/store"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	AdminCollection    = "admins"
	EmployeeCollection = "employees"
	CustomerCollection = "customers"
)

type AdminAccount struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Email     string             `bson:"email"`
	Password  string             `bson:"password"`
	FirstName string             `bson:"firstName"`
	LastName  string             `bson:"lastName"`
	CreatedAt time.Time          `bson:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt"`
}

// EmployeeAccount is the station employee as the Primary store knows it. It
// is the source of the core fields copied into the employee profile.
type EmployeeAccount struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	Email      string             `bson:"email"`
	Password   string             `bson:"password"`
	FirstName  string             `bson:"firstName"`
	LastName   string             `bson:"lastName"`
	Phone      string             `bson:"phone,omitempty"`
	Department string             `bson:"department,omitempty"`
	Position   string             `bson:"position,omitempty"`
	StationID  string             `bson:"stationId,omitempty"`
	CreatedAt  time.Time          `bson:"createdAt"`
	UpdatedAt  time.Time          `bson:"updatedAt"`
}

// CustomerAccount lives in the CustomerDomain store; older customers may
// still only exist in the Primary store under the same shape.
type CustomerAccount struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	Email         string             `bson:"email"`
	Password      string             `bson:"password"`
	FirstName     string             `bson:"firstName"`
	LastName      string             `bson:"lastName"`
	Phone         string             `bson:"phone,omitempty"`
	LoyaltyPoints int64              `bson:"loyaltyPoints"`
	CreatedAt     time.Time          `bson:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt"`
}

// emailCollation compares emails ignoring case, so seeded records keep
// whatever casing they were written with.
var emailCollation = &options.Collation{Locale: "en", Strength: 2}

func emailUnique() []mongo.IndexModel {
	return []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "email", Value: 1}},
			Options: options.Index().
				SetName("uniq_email_ci").
				SetUnique(true).
				SetCollation(emailCollation),
		},
	}
}

// Indexes enforces email uniqueness inside each credential collection. The
// same email in two collections is allowed; the resolver's order decides.
func Indexes() []store.CollectionIndexes {
	return []store.CollectionIndexes{
		{Store: store.Primary, Collection: AdminCollection, Models: emailUnique()},
		{Store: store.Primary, Collection: EmployeeCollection, Models: emailUnique()},
		{Store: store.Primary, Collection: CustomerCollection, Models: emailUnique()},
		{Store: store.CustomerDomain, Collection: CustomerCollection, Models: emailUnique()},
	}
}
