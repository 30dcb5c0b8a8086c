package attendance

import (
	"time"

	"go-stationops/internal/store"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Both stores use a collection with this name.
const Collection = "attendances"

type Status string

const (
	StatusPresent Status = "present"
	StatusLate    Status = "late"
	StatusAbsent  Status = "absent"
	StatusLeave   Status = "leave"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPresent, StatusLate, StatusAbsent, StatusLeave:
		return true
	}
	return false
}

// Attended reports whether the day counts towards streaks and consistency.
func (s Status) Attended() bool {
	return s == StatusPresent || s == StatusLate
}

type Metrics struct {
	Punctuality     int `bson:"punctuality"`
	Consistency     int `bson:"consistency"`
	ConsecutiveDays int `bson:"consecutiveDays"`
}

type MonthSummary struct {
	Year        int     `bson:"year"`
	Month       int     `bson:"month"`
	PresentDays int     `bson:"presentDays"`
	AbsentDays  int     `bson:"absentDays"`
	LateDays    int     `bson:"lateDays"`
	LeaveDays   int     `bson:"leaveDays"`
	TotalHours  float64 `bson:"totalHours"`
}

// Event is the EmployeeDomain attendance record, the source of truth.
type Event struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	EmployeeID   primitive.ObjectID `bson:"employeeId"`
	Date         string             `bson:"date"`
	ClockInTime  string             `bson:"clockInTime,omitempty"`
	ClockOutTime string             `bson:"clockOutTime,omitempty"`
	Status       Status             `bson:"status"`
	TotalHours   float64            `bson:"totalHours"`
	Notes        string             `bson:"notes,omitempty"`
	Metrics      Metrics            `bson:"metrics"`
	MonthSummary *MonthSummary      `bson:"monthSummary,omitempty"`
	CreatedAt    time.Time          `bson:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt"`
}

// MirrorRecord is the reduced copy kept in the Primary store.
type MirrorRecord struct {
	Employee     primitive.ObjectID `bson:"employee"`
	Date         string             `bson:"date"`
	ClockInTime  string             `bson:"clockInTime,omitempty"`
	ClockOutTime string             `bson:"clockOutTime,omitempty"`
	Status       Status             `bson:"status"`
	TotalHours   float64            `bson:"totalHours"`
	UpdatedAt    time.Time          `bson:"updatedAt"`
}

func (e *Event) Mirror() MirrorRecord {
	return MirrorRecord{
		Employee:     e.EmployeeID,
		Date:         e.Date,
		ClockInTime:  e.ClockInTime,
		ClockOutTime: e.ClockOutTime,
		Status:       e.Status,
		TotalHours:   e.TotalHours,
		UpdatedAt:    e.UpdatedAt,
	}
}

func Indexes() []store.CollectionIndexes {
	return []store.CollectionIndexes{
		{
			Store:      store.EmployeeDomain,
			Collection: Collection,
			Models: []mongo.IndexModel{
				{
					Keys:    bson.D{{Key: "employeeId", Value: 1}, {Key: "date", Value: 1}},
					Options: options.Index().SetName("uniq_employee_date").SetUnique(true),
				},
			},
		},
		{
			Store:      store.Primary,
			Collection: Collection,
			Models: []mongo.IndexModel{
				{
					Keys:    bson.D{{Key: "employee", Value: 1}, {Key: "date", Value: 1}},
					Options: options.Index().SetName("uniq_employee_date").SetUnique(true),
				},
			},
		},
	}
}
