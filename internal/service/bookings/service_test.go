package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uzairqr/SalonBook-Service/internal/domain"
	bookingsStorage "github.com/uzairqr/SalonBook-Service/internal/infra/storage/bookings"
	"github.com/uzairqr/SalonBook-Service/internal/service/bookings/models"
	"github.com/uzairqr/SalonBook-Service/pkg/ptr"
)

type fakeBookingRepo struct {
	bookings  []*domain.Booking
	version   int64
	conflicts int
}

func (f *fakeBookingRepo) GetAll(_ context.Context) ([]*domain.Booking, int64, error) {
	// Как и настоящий репозиторий, каждый вызов отдаёт свежие объекты
	snapshot := make([]*domain.Booking, len(f.bookings))
	for i, b := range f.bookings {
		clone := *b
		snapshot[i] = &clone
	}
	return snapshot, f.version, nil
}

func (f *fakeBookingRepo) GetByCode(_ context.Context, code string) (*domain.Booking, error) {
	for _, b := range f.bookings {
		if b.Code == code {
			clone := *b
			return &clone, nil
		}
	}
	return nil, bookingsStorage.ErrBookingNotFound
}

func (f *fakeBookingRepo) ReplaceAll(_ context.Context, bookings []*domain.Booking, expectedVersion int64) error {
	if f.conflicts > 0 {
		f.conflicts--
		f.version++
		return bookingsStorage.ErrVersionConflict
	}
	if expectedVersion != f.version {
		return bookingsStorage.ErrVersionConflict
	}
	f.bookings = bookings
	f.version++
	return nil
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestService(repo *fakeBookingRepo, now time.Time) *Service {
	svc := NewService(repo, nopLogger{})
	svc.timeProvider = &fixedTimeProvider{now: now}
	return svc
}

func booking(code, salonName, deviceID, timeLabel string, status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		SalonName:       salonName,
		OwnerName:       "owner-1",
		Location:        "Main Street 5",
		Service:         "Haircut",
		TimeLabel:       timeLabel,
		DurationMinutes: 30,
		Status:          status,
		Customer:        domain.Customer{DeviceID: deviceID, Name: "Ivan", Phone: "123"},
		Code:            code,
		Date:            "2026-03-14",
	}
}

func clock(hour, minute int) time.Time {
	return time.Date(2026, time.March, 14, hour, minute, 0, 0, time.UTC)
}

func TestCompleteCurrentCustomer_PicksEarliestStarted(t *testing.T) {
	repo := &fakeBookingRepo{
		version: 1,
		bookings: []*domain.Booking{
			booking("BOOK1", "Fade Factory", "d1", "11:00 AMs1", domain.StatusPending),
			booking("BOOK2", "Fade Factory", "d2", "10:00 AMs1", domain.StatusPending),
			booking("BOOK3", "Fade Factory", "d3", "12:00 PMs1", domain.StatusPending),
		},
	}
	svc := newTestService(repo, clock(11, 30))

	resp, err := svc.CompleteCurrentCustomer(context.Background(), "Fade Factory")
	require.NoError(t, err)

	// 12:00 ещё не началось; из 10:00 и 11:00 берётся раннее
	assert.Equal(t, "BOOK2", resp.Code)
	assert.Equal(t, string(domain.StatusCompleted), resp.Status)

	assert.Equal(t, domain.StatusCompleted, repo.bookings[1].Status)
	assert.Equal(t, domain.StatusPending, repo.bookings[0].Status)
	assert.Equal(t, domain.StatusPending, repo.bookings[2].Status)
}

func TestCancelCurrentCustomer_KeepsRecord(t *testing.T) {
	repo := &fakeBookingRepo{
		version: 1,
		bookings: []*domain.Booking{
			booking("BOOK1", "Fade Factory", "d1", "10:00 AMs1", domain.StatusPending),
		},
	}
	svc := newTestService(repo, clock(10, 30))

	resp, err := svc.CancelCurrentCustomer(context.Background(), "Fade Factory")
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCanceled), resp.Status)

	// Запись остаётся в коллекции
	require.Len(t, repo.bookings, 1)
	assert.Equal(t, domain.StatusCanceled, repo.bookings[0].Status)
}

func TestTransitionCurrentCustomer_NoCandidate(t *testing.T) {
	repo := &fakeBookingRepo{
		version: 1,
		bookings: []*domain.Booking{
			booking("BOOK1", "Fade Factory", "d1", "03:00 PMs1", domain.StatusPending),
			booking("BOOK2", "Other Salon", "d2", "09:00 AMs1", domain.StatusPending),
			booking("BOOK3", "Fade Factory", "d3", "09:00 AMs1", domain.StatusCompleted),
		},
	}
	svc := newTestService(repo, clock(10, 0))

	_, err := svc.CompleteCurrentCustomer(context.Background(), "Fade Factory")
	assert.ErrorIs(t, err, ErrNoCurrentCustomer)
}

func TestTransitionCurrentCustomer_SkipsTokenBookings(t *testing.T) {
	token := booking("BOOK1", "Fade Factory", "d1", domain.TokenTimeLabel, domain.StatusPending)
	token.Token = ptr.Ptr("Tabc123")
	repo := &fakeBookingRepo{version: 1, bookings: []*domain.Booking{token}}
	svc := newTestService(repo, clock(10, 0))

	_, err := svc.CompleteCurrentCustomer(context.Background(), "Fade Factory")
	assert.ErrorIs(t, err, ErrNoCurrentCustomer)
}

func TestCancelBooking_RemovesRecord(t *testing.T) {
	repo := &fakeBookingRepo{
		version: 1,
		bookings: []*domain.Booking{
			booking("BOOK1", "Fade Factory", "d1", "10:00 AMs1", domain.StatusPending),
			booking("BOOK2", "Fade Factory", "d2", "11:00 AMs1", domain.StatusPending),
		},
	}
	svc := newTestService(repo, clock(9, 0))

	err := svc.CancelBooking(context.Background(), &models.CancelBookingRequest{Code: "BOOK1", DeviceID: "d1"})
	require.NoError(t, err)

	require.Len(t, repo.bookings, 1)
	assert.Equal(t, "BOOK2", repo.bookings[0].Code)
}

func TestCancelBooking_SecondCancelReturnsNotFound(t *testing.T) {
	repo := &fakeBookingRepo{
		version: 1,
		bookings: []*domain.Booking{
			booking("BOOK1", "Fade Factory", "d1", "10:00 AMs1", domain.StatusPending),
		},
	}
	svc := newTestService(repo, clock(9, 0))

	req := &models.CancelBookingRequest{Code: "BOOK1", DeviceID: "d1"}
	require.NoError(t, svc.CancelBooking(context.Background(), req))

	err := svc.CancelBooking(context.Background(), req)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestCancelBooking_ForeignDeviceDenied(t *testing.T) {
	repo := &fakeBookingRepo{
		version: 1,
		bookings: []*domain.Booking{
			booking("BOOK1", "Fade Factory", "d1", "10:00 AMs1", domain.StatusPending),
		},
	}
	svc := newTestService(repo, clock(9, 0))

	err := svc.CancelBooking(context.Background(), &models.CancelBookingRequest{Code: "BOOK1", DeviceID: "d2"})
	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Len(t, repo.bookings, 1)
}

func TestCancelBooking_DashboardPathSkipsOwnershipCheck(t *testing.T) {
	repo := &fakeBookingRepo{
		version: 1,
		bookings: []*domain.Booking{
			booking("BOOK1", "Fade Factory", "d1", "10:00 AMs1", domain.StatusPending),
		},
	}
	svc := newTestService(repo, clock(9, 0))

	err := svc.CancelBooking(context.Background(), &models.CancelBookingRequest{Code: "BOOK1"})
	require.NoError(t, err)
	assert.Empty(t, repo.bookings)
}

func TestCancelAllBookings_KeepsCompletedAndOtherSalons(t *testing.T) {
	repo := &fakeBookingRepo{
		version: 1,
		bookings: []*domain.Booking{
			booking("BOOK1", "Fade Factory", "d1", "10:00 AMs1", domain.StatusPending),
			booking("BOOK2", "Fade Factory", "d2", "11:00 AMs1", domain.StatusCanceled),
			booking("BOOK3", "Fade Factory", "d3", "09:00 AMs1", domain.StatusCompleted),
			booking("BOOK4", "Other Salon", "d4", "10:00 AMs1", domain.StatusPending),
		},
	}
	svc := newTestService(repo, clock(12, 0))

	resp, err := svc.CancelAllBookings(context.Background(), "Fade Factory")
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Removed)

	codes := make([]string, 0, len(repo.bookings))
	for _, b := range repo.bookings {
		codes = append(codes, b.Code)
	}
	assert.ElementsMatch(t, []string{"BOOK3", "BOOK4"}, codes)
}

func TestGetUserBookings_FiltersByDeviceAndStatus(t *testing.T) {
	repo := &fakeBookingRepo{
		version: 1,
		bookings: []*domain.Booking{
			booking("BOOK1", "Fade Factory", "d1", "10:00 AMs1", domain.StatusPending),
			booking("BOOK2", "Fade Factory", "d1", "09:00 AMs1", domain.StatusCompleted),
			booking("BOOK3", "Fade Factory", "d2", "11:00 AMs1", domain.StatusPending),
		},
	}
	svc := newTestService(repo, clock(12, 0))

	resp, err := svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{DeviceID: "d1"})
	require.NoError(t, err)
	assert.Len(t, resp.Bookings, 2)

	resp, err = svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{
		DeviceID: "d1",
		Status:   ptr.Ptr("pending"),
	})
	require.NoError(t, err)
	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, "BOOK1", resp.Bookings[0].Code)
	assert.Equal(t, "10:00 AM", resp.Bookings[0].StartTime)
}

func TestGetSalonBookings_GroupsByStatus(t *testing.T) {
	repo := &fakeBookingRepo{
		version: 1,
		bookings: []*domain.Booking{
			booking("BOOK1", "Fade Factory", "d1", "10:00 AMs1", domain.StatusPending),
			booking("BOOK2", "Fade Factory", "d2", "11:00 AMs1", domain.StatusPending),
			booking("BOOK3", "Fade Factory", "d3", "09:00 AMs1", domain.StatusCompleted),
			booking("BOOK4", "Fade Factory", "d4", "12:00 PMs1", domain.StatusCanceled),
			booking("BOOK5", "Other Salon", "d5", "10:00 AMs1", domain.StatusPending),
		},
	}
	svc := newTestService(repo, clock(12, 0))

	resp, err := svc.GetSalonBookings(context.Background(), "Fade Factory")
	require.NoError(t, err)

	assert.Equal(t, 2, resp.PendingCount)
	assert.Equal(t, 1, resp.CompletedCount)
	assert.Equal(t, 1, resp.CanceledCount)
	assert.Len(t, resp.Pending, 2)
	assert.Len(t, resp.Completed, 1)
	assert.Len(t, resp.Canceled, 1)
}

func TestMutate_RetriesOnVersionConflict(t *testing.T) {
	repo := &fakeBookingRepo{
		version:   1,
		conflicts: 2,
		bookings: []*domain.Booking{
			booking("BOOK1", "Fade Factory", "d1", "10:00 AMs1", domain.StatusPending),
		},
	}
	svc := newTestService(repo, clock(10, 30))

	resp, err := svc.CompleteCurrentCustomer(context.Background(), "Fade Factory")
	require.NoError(t, err)
	assert.Equal(t, "BOOK1", resp.Code)
	assert.Equal(t, domain.StatusCompleted, repo.bookings[0].Status)
}

func TestMutate_RetriesExhausted(t *testing.T) {
	repo := &fakeBookingRepo{
		version:   1,
		conflicts: 10,
		bookings: []*domain.Booking{
			booking("BOOK1", "Fade Factory", "d1", "10:00 AMs1", domain.StatusPending),
		},
	}
	svc := newTestService(repo, clock(10, 30))

	_, err := svc.CompleteCurrentCustomer(context.Background(), "Fade Factory")
	assert.ErrorIs(t, err, ErrStoreUnavailable)
}

// Репозиторий, отдающий одни и те же объекты на каждый вызов GetAll.
// Сервис не должен полагаться на то, что снимок содержит свежие копии.
type aliasingBookingRepo struct {
	bookings  []*domain.Booking
	version   int64
	conflicts int
}

func (f *aliasingBookingRepo) GetAll(_ context.Context) ([]*domain.Booking, int64, error) {
	snapshot := make([]*domain.Booking, len(f.bookings))
	copy(snapshot, f.bookings)
	return snapshot, f.version, nil
}

func (f *aliasingBookingRepo) GetByCode(_ context.Context, code string) (*domain.Booking, error) {
	for _, b := range f.bookings {
		if b.Code == code {
			return b, nil
		}
	}
	return nil, bookingsStorage.ErrBookingNotFound
}

func (f *aliasingBookingRepo) ReplaceAll(_ context.Context, bookings []*domain.Booking, expectedVersion int64) error {
	if f.conflicts > 0 {
		f.conflicts--
		f.version++
		return bookingsStorage.ErrVersionConflict
	}
	if expectedVersion != f.version {
		return bookingsStorage.ErrVersionConflict
	}
	f.bookings = bookings
	f.version++
	return nil
}

func TestTransitionCurrentCustomer_RetryAfterConflictSeesPendingStatus(t *testing.T) {
	repo := &aliasingBookingRepo{
		version:   1,
		conflicts: 1,
		bookings: []*domain.Booking{
			booking("BOOK1", "Fade Factory", "d1", "10:00 AMs1", domain.StatusPending),
		},
	}
	svc := NewService(repo, nopLogger{})
	svc.timeProvider = &fixedTimeProvider{now: clock(10, 30)}

	resp, err := svc.CompleteCurrentCustomer(context.Background(), "Fade Factory")
	require.NoError(t, err)
	assert.Equal(t, "BOOK1", resp.Code)

	// Проигранная гонка не должна оставлять статус, изменённый по месту
	assert.Equal(t, domain.StatusCompleted, repo.bookings[0].Status)
}

func TestGetBooking_ReturnsByCode(t *testing.T) {
	repo := &fakeBookingRepo{
		version: 1,
		bookings: []*domain.Booking{
			booking("BOOK1", "Fade Factory", "d1", "10:00 AMs1", domain.StatusPending),
			booking("BOOK2", "Fade Factory", "d2", "11:00 AMs1", domain.StatusPending),
		},
	}
	svc := newTestService(repo, clock(9, 0))

	resp, err := svc.GetBooking(context.Background(), "BOOK2")
	require.NoError(t, err)
	assert.Equal(t, "BOOK2", resp.Code)
	assert.Equal(t, "Fade Factory", resp.SalonName)
	assert.Equal(t, "11:00 AM", resp.StartTime)
}

func TestGetBooking_UnknownCode(t *testing.T) {
	repo := &fakeBookingRepo{version: 1}
	svc := newTestService(repo, clock(9, 0))

	_, err := svc.GetBooking(context.Background(), "BOOK404")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestGetBooking_BlankCode(t *testing.T) {
	repo := &fakeBookingRepo{version: 1}
	svc := newTestService(repo, clock(9, 0))

	_, err := svc.GetBooking(context.Background(), "  ")
	assert.ErrorIs(t, err, ErrInvalidInput)
}
