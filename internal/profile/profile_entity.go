package profile

import (
	"time"

	"go-stationops/internal/account"
	"go-stationops/internal/store"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	EmployeeProfileCollection = "employee_profiles"
	CustomerProfileCollection = "customer_profiles"
)

// EmployeeCore is the part of an employee profile owned by the Primary
// employee record. Every sync overwrites all of it.
type EmployeeCore struct {
	FirstName  string `bson:"firstName"`
	LastName   string `bson:"lastName"`
	Email      string `bson:"email"`
	Phone      string `bson:"phone"`
	Department string `bson:"department"`
	Position   string `bson:"position"`
}

func EmployeeCoreOf(e *account.EmployeeAccount) EmployeeCore {
	return EmployeeCore{
		FirstName:  e.FirstName,
		LastName:   e.LastName,
		Email:      e.Email,
		Phone:      e.Phone,
		Department: e.Department,
		Position:   e.Position,
	}
}

func (c EmployeeCore) setDoc() bson.M {
	return bson.M{
		"firstName":  c.FirstName,
		"lastName":   c.LastName,
		"email":      c.Email,
		"phone":      c.Phone,
		"department": c.Department,
		"position":   c.Position,
	}
}

type EmployeeProfile struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	MainEmployeeID primitive.ObjectID `bson:"mainEmployeeId"`
	EmployeeCore   `bson:",inline"`
	Bio            string            `bson:"bio"`
	Skills         []string          `bson:"skills"`
	Preferences    map[string]string `bson:"preferences"`
	LastSyncedAt   time.Time         `bson:"lastSyncedAt"`
	CreatedAt      time.Time         `bson:"createdAt"`
	UpdatedAt      time.Time         `bson:"updatedAt"`
}

func NewEmployeeProfile(e *account.EmployeeAccount, now time.Time) *EmployeeProfile {
	return &EmployeeProfile{
		MainEmployeeID: e.ID,
		EmployeeCore:   EmployeeCoreOf(e),
		Skills:         []string{},
		Preferences:    map[string]string{},
		LastSyncedAt:   now,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// CustomerCore is the part of a customer profile owned by the customer
// account.
type CustomerCore struct {
	FirstName string `bson:"firstName"`
	LastName  string `bson:"lastName"`
	Email     string `bson:"email"`
	Phone     string `bson:"phone"`
}

func CustomerCoreOf(c *account.CustomerAccount) CustomerCore {
	return CustomerCore{
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Email:     c.Email,
		Phone:     c.Phone,
	}
}

func (c CustomerCore) setDoc() bson.M {
	return bson.M{
		"firstName": c.FirstName,
		"lastName":  c.LastName,
		"email":     c.Email,
		"phone":     c.Phone,
	}
}

type CustomerProfile struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	CustomerID   primitive.ObjectID `bson:"customerId"`
	CustomerCore `bson:",inline"`
	Bio          string            `bson:"bio"`
	Preferences  map[string]string `bson:"preferences"`
	LastSyncedAt time.Time         `bson:"lastSyncedAt"`
	CreatedAt    time.Time         `bson:"createdAt"`
	UpdatedAt    time.Time         `bson:"updatedAt"`
}

func NewCustomerProfile(c *account.CustomerAccount, now time.Time) *CustomerProfile {
	return &CustomerProfile{
		CustomerID:   c.ID,
		CustomerCore: CustomerCoreOf(c),
		Preferences:  map[string]string{},
		LastSyncedAt: now,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// FieldsUpdate carries the profile-only fields. Nil means leave unchanged.
type FieldsUpdate struct {
	Bio         *string
	Skills      *[]string
	Preferences map[string]string
}

func (u FieldsUpdate) IsEmpty() bool {
	return u.Bio == nil && u.Skills == nil && u.Preferences == nil
}

func (u FieldsUpdate) setDoc() bson.M {
	set := bson.M{}
	if u.Bio != nil {
		set["bio"] = *u.Bio
	}
	if u.Skills != nil {
		set["skills"] = *u.Skills
	}
	if u.Preferences != nil {
		set["preferences"] = u.Preferences
	}
	return set
}

func Indexes() []store.CollectionIndexes {
	return []store.CollectionIndexes{
		{
			Store:      store.EmployeeDomain,
			Collection: EmployeeProfileCollection,
			Models: []mongo.IndexModel{
				{
					Keys:    bson.D{{Key: "mainEmployeeId", Value: 1}},
					Options: options.Index().SetName("uniq_main_employee").SetUnique(true),
				},
			},
		},
		{
			Store:      store.CustomerDomain,
			Collection: CustomerProfileCollection,
			Models: []mongo.IndexModel{
				{
					Keys:    bson.D{{Key: "customerId", Value: 1}},
					Options: options.Index().SetName("uniq_customer").SetUnique(true),
				},
			},
		},
	}
}
