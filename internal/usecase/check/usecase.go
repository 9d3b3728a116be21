package check

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"gorm.io/gorm"

	domain "sils-backend/internal/domain/check"
	"sils-backend/internal/domain/notification"
	"sils-backend/internal/domain/policy"
	"sils-backend/internal/domain/tool"
	"sils-backend/internal/domain/uow"
	"sils-backend/internal/domain/user"
	"sils-backend/pkg/id"
)

const notificationTTL = 24 * time.Hour

// run holds the draft details of an in-progress check. Drafts live in memory
// only; Complete persists them in one transaction. A restart drops drafts,
// which a rehydrated run (empty details, EN_PROCESO row) recovers from.
type run struct {
	checkRef uint64
	zone     tool.Zone
	tools    []tool.Tool
	details  map[string]domain.Detail // keyed by tool public id
}

type Usecase struct {
	checks  domain.Repository
	details domain.DetailRepository
	tools   tool.Repository
	notifs  notification.Repository
	uow     uow.UnitOfWork
	pol     policy.Policy

	now func() time.Time
	loc *time.Location

	mu   sync.Mutex
	runs map[string]*run // keyed by check public id
}

func NewUsecase(checks domain.Repository, details domain.DetailRepository, tools tool.Repository,
	notifs notification.Repository, tx uow.UnitOfWork, pol policy.Policy, loc *time.Location) *Usecase {
	if loc == nil {
		loc = time.Local
	}
	return &Usecase{
		checks:  checks,
		details: details,
		tools:   tools,
		notifs:  notifs,
		uow:     tx,
		pol:     pol,
		now:     time.Now,
		loc:     loc,
		runs:    make(map[string]*run),
	}
}

// WithClock overrides the wall clock, for tests.
func (u *Usecase) WithClock(now func() time.Time) *Usecase {
	u.now = now
	return u
}

func (u *Usecase) localNow() time.Time { return u.now().In(u.loc) }

func (u *Usecase) today() string { return u.localNow().Format("2006-01-02") }

// Today's scheduling window.
func (u *Usecase) Window() Window { return NextEligibleWindow(u.localNow()) }

// EnsureToday materializes the PENDIENTE row for every configured zone for
// today's date, once per (zone, day). Non-working days get no rows: a check
// nobody could start must not show up overdue on Monday.
func (u *Usecase) EnsureToday(ctx context.Context) error {
	if !workday(u.localNow().Weekday()) {
		return nil
	}
	date := u.today()
	for _, z := range tool.Zones {
		existing, err := u.checks.ListForDay(ctx, z, date)
		if err != nil {
			return err
		}
		if len(existing) > 0 {
			continue
		}
		c := &domain.DailyCheck{
			CheckID: id.NewID32(),
			Zone:    z,
			Date:    date,
			Cycle:   1,
			Status:  domain.StatusPending,
		}
		if err := u.checks.Create(ctx, c); err != nil {
			return err
		}
	}
	return nil
}

// CanStartToday: no finished cycle exists for the zone today.
func (u *Usecase) CanStartToday(ctx context.Context, zone tool.Zone) (bool, error) {
	cycles, err := u.checks.ListForDay(ctx, zone, u.today())
	if err != nil {
		return false, err
	}
	for _, c := range cycles {
		if c.Status.Finished() {
			return false, nil
		}
	}
	return true, nil
}

// CanRepeatToday: a completed cycle exists for the zone today.
func (u *Usecase) CanRepeatToday(ctx context.Context, zone tool.Zone) (bool, error) {
	cycles, err := u.checks.ListForDay(ctx, zone, u.today())
	if err != nil {
		return false, err
	}
	for _, c := range cycles {
		if c.Status == domain.StatusCompleted {
			return true, nil
		}
	}
	return false, nil
}

// RunDTO is what a started check hands back: the check and the ordered tool
// list to verify.
type RunDTO struct {
	Check *domain.DailyCheck `json:"check"`
	Tools []tool.Tool        `json:"herramientas"`
}

func (u *Usecase) Start(ctx context.Context, actor *user.User, zone tool.Zone) (*RunDTO, error) {
	if !u.pol.CanRunChecks(actor) {
		return nil, policy.ErrPermissionDenied
	}
	if !tool.ValidZone(zone) {
		return nil, domain.ErrNotFound
	}
	if w := u.Window(); !w.Eligible {
		return nil, domain.ErrOutsideWindow
	}
	ok, err := u.CanStartToday(ctx, zone)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrAlreadyDoneToday
	}

	tools, err := u.tools.ListForCheck(ctx, zone)
	if err != nil {
		return nil, err
	}
	if len(tools) == 0 {
		return nil, domain.ErrEmptyZone
	}

	date := u.today()
	c, err := u.checks.GetActiveForDay(ctx, zone, date)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// not materialized yet for today
		c = &domain.DailyCheck{
			CheckID: id.NewID32(),
			Zone:    zone,
			Date:    date,
			Cycle:   1,
			Status:  domain.StatusPending,
		}
		if err := u.checks.Create(ctx, c); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, err
	}

	now := u.localNow()
	c.Status = domain.StatusInProgress
	c.StartedBy = &actor.UserID
	c.StartedAt = &now
	if err := u.checks.Save(ctx, c); err != nil {
		return nil, err
	}

	u.mu.Lock()
	u.runs[c.CheckID] = &run{checkRef: c.ID, zone: zone, tools: tools, details: map[string]domain.Detail{}}
	u.mu.Unlock()

	return &RunDTO{Check: c, Tools: tools}, nil
}

// getRun returns the draft run for a check, rebuilding it from the store when
// the in-memory draft was lost (for example after a restart).
func (u *Usecase) getRun(ctx context.Context, checkID string) (*run, *domain.DailyCheck, error) {
	c, err := u.checks.GetByCheckID(ctx, checkID)
	if err != nil {
		return nil, nil, domain.ErrNotFound
	}
	if c.Status != domain.StatusInProgress {
		return nil, c, domain.ErrNotInProgress
	}
	u.mu.Lock()
	defer u.mu.Unlock()
	if r, ok := u.runs[checkID]; ok {
		return r, c, nil
	}
	tools, err := u.tools.ListForCheck(ctx, c.Zone)
	if err != nil {
		return nil, c, err
	}
	r := &run{checkRef: c.ID, zone: c.Zone, tools: tools, details: map[string]domain.Detail{}}
	u.runs[checkID] = r
	return r, c, nil
}

// RecordDetail is idempotent: re-recording the same tool overwrites the
// previous draft entry.
func (u *Usecase) RecordDetail(ctx context.Context, actor *user.User, checkID, toolID string, found domain.FoundStatus, observations string) error {
	if !u.pol.CanRunChecks(actor) {
		return policy.ErrPermissionDenied
	}
	if !domain.ValidFoundStatus(found) {
		return domain.ErrInvalidFoundStatus
	}
	r, _, err := u.getRun(ctx, checkID)
	if err != nil {
		return err
	}
	u.mu.Lock()
	defer u.mu.Unlock()
	enumerated := false
	for _, t := range r.tools {
		if t.ToolID == toolID {
			enumerated = true
			break
		}
	}
	if !enumerated {
		return domain.ErrToolNotInCheck
	}
	r.details[toolID] = domain.Detail{
		CheckRef:     r.checkRef,
		ToolID:       toolID,
		FoundStatus:  found,
		Observations: observations,
		VerifiedBy:   actor.UserID,
	}
	return nil
}

// Complete requires a detail for every enumerated tool, then persists the
// detail rows and the COMPLETADO transition in one transaction.
func (u *Usecase) Complete(ctx context.Context, actor *user.User, checkID string) (*domain.DailyCheck, error) {
	if !u.pol.CanRunChecks(actor) {
		return nil, policy.ErrPermissionDenied
	}
	r, c, err := u.getRun(ctx, checkID)
	if err != nil {
		return nil, err
	}

	u.mu.Lock()
	missing := 0
	for _, t := range r.tools {
		if _, ok := r.details[t.ToolID]; !ok {
			missing++
		}
	}
	if missing > 0 {
		u.mu.Unlock()
		return nil, &domain.IncompleteChecklistError{Missing: missing}
	}
	// persist in enumeration order, latest recorded value per tool
	rows := make([]domain.Detail, 0, len(r.tools))
	for _, t := range r.tools {
		rows = append(rows, r.details[t.ToolID])
	}
	u.mu.Unlock()

	now := u.localNow()
	err = u.uow.WithinTx(ctx, func(repos uow.Repos) error {
		if err := repos.CheckDetails.CreateBatch(ctx, rows); err != nil {
			return err
		}
		c.Status = domain.StatusCompleted
		c.CompletedBy = &actor.UserID
		c.CompletedAt = &now
		return repos.Checks.Save(ctx, c)
	})
	if err != nil {
		return nil, err
	}

	u.mu.Lock()
	delete(u.runs, checkID)
	u.mu.Unlock()
	return c, nil
}

func (u *Usecase) Skip(ctx context.Context, actor *user.User, checkID, reason string) (*domain.DailyCheck, error) {
	if !u.pol.CanRunChecks(actor) {
		return nil, policy.ErrPermissionDenied
	}
	if strings.TrimSpace(reason) == "" {
		return nil, domain.ErrEmptyReason
	}
	c, err := u.checks.GetByCheckID(ctx, checkID)
	if err != nil {
		return nil, domain.ErrNotFound
	}
	if c.Status.Finished() {
		return nil, domain.ErrNotInProgress
	}
	now := u.localNow()
	c.Status = domain.StatusSkipped
	c.SkipReason = reason
	c.CompletedBy = &actor.UserID
	c.CompletedAt = &now
	if err := u.checks.Save(ctx, c); err != nil {
		return nil, err
	}
	u.mu.Lock()
	delete(u.runs, checkID)
	u.mu.Unlock()
	return c, nil
}

// Reset reverts today's in-progress check for a zone back to PENDIENTE,
// dropping any draft. Admin only.
func (u *Usecase) Reset(ctx context.Context, actor *user.User, zone tool.Zone) (*domain.DailyCheck, error) {
	if !u.pol.CanResetCheck(actor) {
		return nil, policy.ErrPermissionDenied
	}
	c, err := u.checks.GetActiveForDay(ctx, zone, u.today())
	if err != nil {
		return nil, domain.ErrNoInProgress
	}
	if c.Status != domain.StatusInProgress {
		return nil, domain.ErrNoInProgress
	}
	c.Status = domain.StatusPending
	c.StartedBy = nil
	c.StartedAt = nil
	if err := u.checks.Save(ctx, c); err != nil {
		return nil, err
	}
	u.mu.Lock()
	delete(u.runs, c.CheckID)
	u.mu.Unlock()
	return c, nil
}

// Repeat opens a fresh cycle for a zone that already completed today's
// check. The previous cycle and its details are kept.
func (u *Usecase) Repeat(ctx context.Context, actor *user.User, zone tool.Zone) (*RunDTO, error) {
	if !u.pol.CanRunChecks(actor) {
		return nil, policy.ErrPermissionDenied
	}
	ok, err := u.CanRepeatToday(ctx, zone)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrNoCompletedToday
	}
	tools, err := u.tools.ListForCheck(ctx, zone)
	if err != nil {
		return nil, err
	}
	if len(tools) == 0 {
		return nil, domain.ErrEmptyZone
	}

	date := u.today()
	prev, err := u.checks.GetActiveForDay(ctx, zone, date)
	if err != nil {
		return nil, domain.ErrNoCompletedToday
	}
	now := u.localNow()
	c := &domain.DailyCheck{
		CheckID:   id.NewID32(),
		Zone:      zone,
		Date:      date,
		Cycle:     prev.Cycle + 1,
		Status:    domain.StatusInProgress,
		StartedBy: &actor.UserID,
		StartedAt: &now,
	}
	if err := u.checks.Create(ctx, c); err != nil {
		return nil, err
	}

	u.mu.Lock()
	u.runs[c.CheckID] = &run{checkRef: c.ID, zone: zone, tools: tools, details: map[string]domain.Detail{}}
	u.mu.Unlock()

	return &RunDTO{Check: c, Tools: tools}, nil
}

func (u *Usecase) ListRecent(ctx context.Context, limit int) ([]domain.DailyCheck, error) {
	if limit <= 0 || limit > 100 {
		limit = 30
	}
	return u.checks.ListRecent(ctx, limit)
}

func (u *Usecase) Details(ctx context.Context, checkID string) ([]domain.Detail, error) {
	c, err := u.checks.GetByCheckID(ctx, checkID)
	if err != nil {
		return nil, domain.ErrNotFound
	}
	return u.details.ListByCheck(ctx, c.ID)
}

// SweepOverdue raises a notification for every check still pending past its
// day. Failures on individual checks are logged and do not stop the sweep.
func (u *Usecase) SweepOverdue(ctx context.Context) error {
	overdue, err := u.checks.ListPendingBefore(ctx, u.today())
	if err != nil {
		return err
	}
	for _, c := range overdue {
		if existing, err := u.notifs.GetActiveByCheck(ctx, c.CheckID); err == nil && existing != nil {
			continue
		}
		n := &notification.Notification{
			NotificationID: id.NewID32(),
			CheckID:        c.CheckID,
			Message:        fmt.Sprintf("Check de %s del %s sigue pendiente", c.Zone, c.Date),
			Active:         true,
			ExpiresAt:      u.now().Add(notificationTTL),
		}
		if err := u.notifs.Create(ctx, n); err != nil {
			log.Printf("sweep: notification for check %s: %v", c.CheckID, err)
		}
	}
	return nil
}

func (u *Usecase) ListNotifications(ctx context.Context) ([]notification.Notification, error) {
	return u.notifs.ListActive(ctx, u.now())
}

func (u *Usecase) MarkNotificationRead(ctx context.Context, notificationID string) error {
	return u.notifs.MarkRead(ctx, notificationID)
}
