package attendance

type ReportAttendanceRequest struct {
	// EmployeeID is honoured only for admins reporting on behalf of someone.
	EmployeeID   string `json:"employee_id"`
	Date         string `json:"date" binding:"required"`
	Status       string `json:"status" binding:"required,oneof=present late absent leave"`
	ClockInTime  string `json:"clock_in_time"`
	ClockOutTime string `json:"clock_out_time"`
	Notes        string `json:"notes" binding:"max=500"`
}

type MetricsResponse struct {
	Punctuality     int `json:"punctuality"`
	Consistency     int `json:"consistency"`
	ConsecutiveDays int `json:"consecutive_days"`
}

type MonthSummaryResponse struct {
	Year        int     `json:"year"`
	Month       int     `json:"month"`
	PresentDays int     `json:"present_days"`
	AbsentDays  int     `json:"absent_days"`
	LateDays    int     `json:"late_days"`
	LeaveDays   int     `json:"leave_days"`
	TotalHours  float64 `json:"total_hours"`
}

type AttendanceResponse struct {
	ID           string                `json:"id"`
	EmployeeID   string                `json:"employee_id"`
	Date         string                `json:"date"`
	ClockInTime  string                `json:"clock_in_time,omitempty"`
	ClockOutTime string                `json:"clock_out_time,omitempty"`
	Status       string                `json:"status"`
	TotalHours   float64               `json:"total_hours"`
	Notes        string                `json:"notes,omitempty"`
	Metrics      MetricsResponse       `json:"metrics"`
	MonthSummary *MonthSummaryResponse `json:"month_summary,omitempty"`
}

func mapToResponse(e Event) AttendanceResponse {
	resp := AttendanceResponse{
		ID:           e.ID.Hex(),
		EmployeeID:   e.EmployeeID.Hex(),
		Date:         e.Date,
		ClockInTime:  e.ClockInTime,
		ClockOutTime: e.ClockOutTime,
		Status:       string(e.Status),
		TotalHours:   e.TotalHours,
		Notes:        e.Notes,
		Metrics: MetricsResponse{
			Punctuality:     e.Metrics.Punctuality,
			Consistency:     e.Metrics.Consistency,
			ConsecutiveDays: e.Metrics.ConsecutiveDays,
		},
	}
	if s := e.MonthSummary; s != nil {
		resp.MonthSummary = &MonthSummaryResponse{
			Year:        s.Year,
			Month:       s.Month,
			PresentDays: s.PresentDays,
			AbsentDays:  s.AbsentDays,
			LateDays:    s.LateDays,
			LeaveDays:   s.LeaveDays,
			TotalHours:  s.TotalHours,
		}
	}
	return resp
}
