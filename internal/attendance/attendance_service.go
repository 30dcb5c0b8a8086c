package attendance

import (
	"context"
	"errors"
	"time"

	"go-stationops/internal/account"
	accounterrors "go-stationops/internal/account/errors"
	attendanceerrors "go-stationops/internal/attendance/errors"
	"go-stationops/internal/shared/contextutil"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type ReportAttendanceInput struct {
	EmployeeID primitive.ObjectID
	// OnBehalf marks a report made by someone other than the employee; the
	// employee is then checked against the Primary store first.
	OnBehalf     bool
	Date         string
	Status       Status
	ClockInTime  string
	ClockOutTime string
	Notes        string
}

type EmployeeFinder interface {
	FindEmployeeByID(ctx context.Context, id primitive.ObjectID) (*account.EmployeeAccount, error)
}

//go:generate mockgen -source=attendance_service.go -destination=mock/attendance_service_mock.go -package=mock
type Service interface {
	ReportAttendance(ctx context.Context, in ReportAttendanceInput) (AttendanceResponse, error)
	ListMonth(ctx context.Context, employeeID primitive.ObjectID, month string) ([]AttendanceResponse, error)
}

type Deps struct {
	Repo      Repository
	Mirror    MirrorRepository
	Outbox    MirrorOutbox
	Employees EmployeeFinder
	// Location decides what "today" is. Defaults to time.Local.
	Location *time.Location
	Now      func() time.Time
}

type service struct {
	repo      Repository
	mirror    MirrorRepository
	outbox    MirrorOutbox
	employees EmployeeFinder
	loc       *time.Location
	now       func() time.Time
	logger    *zap.Logger
}

func NewService(d Deps, logger ...*zap.Logger) Service {
	l := zap.L().Named("attendance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.service")
	}
	s := &service{
		repo:      d.Repo,
		mirror:    d.Mirror,
		outbox:    d.Outbox,
		employees: d.Employees,
		loc:       d.Location,
		now:       d.Now,
		logger:    l,
	}
	if s.loc == nil {
		s.loc = time.Local
	}
	if s.now == nil {
		s.now = time.Now
	}
	return s
}

// ReportAttendance records a self-reported day in the EmployeeDomain store,
// restamps the month summary on every event of that month and copies the
// event into Primary on a best-effort basis.
func (s *service) ReportAttendance(ctx context.Context, in ReportAttendanceInput) (AttendanceResponse, error) {
	log := s.log(ctx).With(
		zap.String("employee_id", in.EmployeeID.Hex()),
		zap.String("date", in.Date),
	)

	date, err := ParseDate(in.Date)
	if err != nil {
		return AttendanceResponse{}, err
	}
	if date.After(s.today()) {
		return AttendanceResponse{}, attendanceerrors.ErrFutureDate
	}
	if !in.Status.Valid() {
		return AttendanceResponse{}, attendanceerrors.ErrInvalidStatus
	}
	for _, clock := range []string{in.ClockInTime, in.ClockOutTime} {
		if clock == "" {
			continue
		}
		if _, err := ClockMinutes(clock); err != nil {
			return AttendanceResponse{}, err
		}
	}
	hours, err := TotalHours(in.ClockInTime, in.ClockOutTime)
	if err != nil {
		return AttendanceResponse{}, err
	}

	if in.OnBehalf && s.employees != nil {
		if _, err := s.employees.FindEmployeeByID(ctx, in.EmployeeID); err != nil {
			if errors.Is(err, accounterrors.ErrAccountNotFound) {
				return AttendanceResponse{}, attendanceerrors.ErrEmployeeNotFound
			}
			return AttendanceResponse{}, err
		}
	}

	// The unique index is what actually rejects duplicates; this only saves
	// the metric work for the common case.
	exists, err := s.repo.Exists(ctx, in.EmployeeID, in.Date)
	if err != nil {
		log.Error("attendance existence check failed", zap.Error(err))
		return AttendanceResponse{}, err
	}
	if exists {
		return AttendanceResponse{}, attendanceerrors.ErrAlreadyReported
	}

	status, err := ClassifyStatus(in.Status, in.ClockInTime)
	if err != nil {
		return AttendanceResponse{}, err
	}

	prior, err := s.repo.ListRange(ctx, in.EmployeeID,
		date.AddDate(0, 0, -ConsistencyWindowDays).Format(DateLayout),
		date.AddDate(0, 0, -1).Format(DateLayout),
	)
	if err != nil {
		log.Error("load prior attendance failed", zap.Error(err))
		return AttendanceResponse{}, err
	}

	now := s.now().UTC()
	ev := &Event{
		EmployeeID:   in.EmployeeID,
		Date:         in.Date,
		ClockInTime:  in.ClockInTime,
		ClockOutTime: in.ClockOutTime,
		Status:       status,
		TotalHours:   hours,
		Notes:        in.Notes,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	ev.Metrics.Punctuality = Punctuality(status, in.ClockInTime)
	ev.Metrics.Consistency = Consistency(append(inWindow(date, prior), *ev))
	if status.Attended() {
		if ev.Metrics.ConsecutiveDays, err = s.consecutiveDays(ctx, in.EmployeeID, date, prior); err != nil {
			log.Error("load attendance streak failed", zap.Error(err))
			return AttendanceResponse{}, err
		}
	}

	if err := s.repo.Insert(ctx, ev); err != nil {
		if errors.Is(err, attendanceerrors.ErrAlreadyReported) {
			log.Info("attendance reported concurrently")
		} else {
			log.Error("insert attendance failed", zap.Error(err))
		}
		return AttendanceResponse{}, err
	}

	s.stampMonthSummary(ctx, log, ev, date)
	s.writeMirror(ctx, log, ev)

	log.Info("attendance reported",
		zap.String("status", string(ev.Status)),
		zap.Float64("total_hours", ev.TotalHours),
	)
	return mapToResponse(*ev), nil
}

// inWindow keeps the prior events that fall inside the consistency window
// ending on date.
func inWindow(date time.Time, prior []Event) []Event {
	from := date.AddDate(0, 0, -(ConsistencyWindowDays - 1)).Format(DateLayout)
	out := make([]Event, 0, len(prior)+1)
	for _, e := range prior {
		if e.Date >= from {
			out = append(out, e)
		}
	}
	return out
}

// consecutiveDays widens the lookback while the run reaches its edge.
func (s *service) consecutiveDays(ctx context.Context, employeeID primitive.ObjectID, date time.Time, prior []Event) (int, error) {
	window := ConsistencyWindowDays
	n := ConsecutiveDays(date, prior)
	for n == window {
		window *= 2
		var err error
		prior, err = s.repo.ListRange(ctx, employeeID,
			date.AddDate(0, 0, -window).Format(DateLayout),
			date.AddDate(0, 0, -1).Format(DateLayout),
		)
		if err != nil {
			return 0, err
		}
		n = ConsecutiveDays(date, prior)
	}
	return n, nil
}

// stampMonthSummary recomputes the month from every stored event and
// writes the same summary to all of them. A failure leaves the previous
// summaries in place until the next report in that month.
func (s *service) stampMonthSummary(ctx context.Context, log *zap.Logger, ev *Event, date time.Time) {
	first, last := MonthBounds(date)
	from, to := first.Format(DateLayout), last.Format(DateLayout)

	month, err := s.repo.ListRange(ctx, ev.EmployeeID, from, to)
	if err != nil {
		log.Error("load month attendance failed", zap.Error(err))
		return
	}

	sum := Summarize(first.Year(), first.Month(), month)
	n, err := s.repo.SetMonthSummary(ctx, ev.EmployeeID, from, to, sum)
	if err != nil {
		log.Error("stamp month summary failed", zap.Error(err))
		return
	}
	ev.MonthSummary = &sum
	log.Debug("month summary stamped", zap.Int64("events", n))
}

// writeMirror copies the event into Primary. Failure never fails the
// report; the copy is queued for replay when an outbox is configured.
func (s *service) writeMirror(ctx context.Context, log *zap.Logger, ev *Event) {
	m := ev.Mirror()
	err := s.mirror.UpsertMirror(ctx, m)
	if err == nil {
		return
	}

	log.Warn("attendance mirror write failed", zap.Error(err))
	if s.outbox == nil {
		return
	}
	if err := s.outbox.EnqueueMirror(ctx, m); err != nil {
		log.Error("attendance mirror enqueue failed", zap.Error(err))
		return
	}
	log.Info("attendance mirror queued for replay")
}

func (s *service) ListMonth(ctx context.Context, employeeID primitive.ObjectID, month string) ([]AttendanceResponse, error) {
	m, err := ParseMonth(month)
	if err != nil {
		return nil, err
	}
	first, last := MonthBounds(m)

	rows, err := s.repo.ListRange(ctx, employeeID, first.Format(DateLayout), last.Format(DateLayout))
	if err != nil {
		s.log(ctx).Error("list month attendance failed",
			zap.String("employee_id", employeeID.Hex()),
			zap.String("month", month),
			zap.Error(err),
		)
		return nil, err
	}

	res := make([]AttendanceResponse, len(rows))
	for i, r := range rows {
		res[i] = mapToResponse(r)
	}
	return res, nil
}

// today is the current civil date in the attendance location, expressed
// the way ParseDate returns dates.
func (s *service) today() time.Time {
	n := s.now().In(s.loc)
	return time.Date(n.Year(), n.Month(), n.Day(), 0, 0, 0, 0, time.UTC)
}

func (s *service) log(ctx context.Context) *zap.Logger {
	return contextutil.GetLogger(ctx, s.logger)
}
