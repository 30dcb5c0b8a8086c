package events

import "time"

const AttendanceMirrorRequestedTopic = "stationops.attendance.mirror.v1"

const AttendanceMirrorRequestedType = "attendance_mirror_requested"

// AttendanceMirrorRequestedEvent carries an attendance record whose copy in
// the Primary store could not be written when it was reported.
type AttendanceMirrorRequestedEvent struct {
	EventType    string    `json:"event_type"`
	RequestID    string    `json:"request_id,omitempty"`
	EmployeeID   string    `json:"employee_id"`
	Date         string    `json:"date"`
	ClockInTime  string    `json:"clock_in_time,omitempty"`
	ClockOutTime string    `json:"clock_out_time,omitempty"`
	Status       string    `json:"status"`
	TotalHours   float64   `json:"total_hours"`
	OccurredAt   time.Time `json:"occurred_at"`
}
