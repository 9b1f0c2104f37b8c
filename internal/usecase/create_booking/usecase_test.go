package create_booking

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uzairqr/SalonBook-Service/internal/domain"
	bookingsStorage "github.com/uzairqr/SalonBook-Service/internal/infra/storage/bookings"
	salonsStorage "github.com/uzairqr/SalonBook-Service/internal/infra/storage/salons"
)

// fakeBookingRepo имитирует версионированную коллекцию бронирований.
// conflicts задаёт число записей, которые провалятся конфликтом версии
type fakeBookingRepo struct {
	bookings  []*domain.Booking
	version   int64
	conflicts int
}

func (f *fakeBookingRepo) GetAll(_ context.Context) ([]*domain.Booking, int64, error) {
	snapshot := make([]*domain.Booking, len(f.bookings))
	copy(snapshot, f.bookings)
	return snapshot, f.version, nil
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

type fakeSalonRepo struct {
	salons map[string]*domain.Salon
}

func (f *fakeSalonRepo) GetByName(_ context.Context, name string) (*domain.Salon, error) {
	salon, ok := f.salons[name]
	if !ok {
		return nil, salonsStorage.ErrSalonNotFound
	}
	return salon, nil
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type fixedCodeGenerator struct{}

func (fixedCodeGenerator) NewBookingCode() string { return "BOOKtest01" }
func (fixedCodeGenerator) NewToken() string       { return "Ttest01" }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testSalon(seatCount int) *domain.Salon {
	return &domain.Salon{
		Name:      "Fade Factory",
		OwnerName: "owner-1",
		Location:  "Main Street 5",
		OpenTime:  "09:00 AM",
		CloseTime: "06:00 PM",
		SeatCount: seatCount,
		Status:    domain.SalonActive,
		Services: []domain.SalonService{
			{Name: "Haircut", Price: 15, DurationMinutes: 20},
		},
	}
}

func newTestUseCase(repo *fakeBookingRepo, salon *domain.Salon, now time.Time) *UseCase {
	uc := NewUseCase(
		repo,
		&fakeSalonRepo{salons: map[string]*domain.Salon{salon.Name: salon}},
		DefaultParams(),
		nopLogger{},
	)
	uc.timeProvider = &fixedTimeProvider{now: now}
	uc.codes = fixedCodeGenerator{}
	return uc
}

func clock(hour, minute int) time.Time {
	return time.Date(2026, time.March, 14, hour, minute, 0, 0, time.UTC)
}

func slotRequest(label string) *Request {
	return &Request{
		SalonName:     "Fade Factory",
		ServiceName:   "Haircut",
		TimeLabel:     label,
		DeviceID:      "device-1",
		CustomerName:  "Ivan",
		CustomerPhone: "123",
	}
}

func TestExecute_CreatesBooking(t *testing.T) {
	repo := &fakeBookingRepo{version: 1}
	uc := newTestUseCase(repo, testSalon(2), clock(9, 30))

	resp, err := uc.Execute(context.Background(), slotRequest("10:00 AMs1"))
	require.NoError(t, err)

	assert.Equal(t, "BOOKtest01", resp.Code)
	assert.Equal(t, "10:00 AMs1", resp.TimeLabel)
	assert.Equal(t, domain.StatusPending, resp.Status)
	assert.Equal(t, "2026-03-14", resp.Date)
	assert.Nil(t, resp.Token)

	require.Len(t, repo.bookings, 1)
	stored := repo.bookings[0]
	assert.Equal(t, "Fade Factory", stored.SalonName)
	assert.Equal(t, "owner-1", stored.OwnerName)
	assert.Equal(t, 20, stored.DurationMinutes)
	assert.Equal(t, "device-1", stored.Customer.DeviceID)
}

func TestExecute_SeatOrdinalReassignedOnCommit(t *testing.T) {
	// Клиент выбрал место 1, но занятость изменилась: бронирование
	// сохраняется под местом, вычисленным на свежем снимке. Кандидат 09:30
	// ровно на нижней границе занятости соседа [10:00, 10:30): место занято,
	// но интервал услуги с буфером ещё не пересекается
	repo := &fakeBookingRepo{
		version: 1,
		bookings: []*domain.Booking{
			{
				SalonName:       "Fade Factory",
				TimeLabel:       "10:00 AMs1",
				DurationMinutes: 30,
				Status:          domain.StatusPending,
				Code:            "BOOKother1",
				Date:            "2026-03-14",
			},
		},
	}
	uc := newTestUseCase(repo, testSalon(2), clock(9, 0))

	resp, err := uc.Execute(context.Background(), slotRequest("09:30 AMs1"))
	require.NoError(t, err)
	assert.Equal(t, "09:30 AMs2", resp.TimeLabel)
}

func TestExecute_SlotNoLongerAvailable(t *testing.T) {
	repo := &fakeBookingRepo{
		version: 1,
		bookings: []*domain.Booking{
			{
				SalonName:       "Fade Factory",
				TimeLabel:       "10:00 AMs1",
				DurationMinutes: 20,
				Status:          domain.StatusPending,
				Code:            "BOOKother1",
				Date:            "2026-03-14",
			},
		},
	}
	uc := newTestUseCase(repo, testSalon(1), clock(9, 30))

	_, err := uc.Execute(context.Background(), slotRequest("10:00 AMs1"))
	assert.ErrorIs(t, err, ErrSlotNoLongerAvailable)
	assert.Len(t, repo.bookings, 1)
}

func TestExecute_PastSlotRejected(t *testing.T) {
	repo := &fakeBookingRepo{version: 1}
	uc := newTestUseCase(repo, testSalon(2), clock(11, 0))

	_, err := uc.Execute(context.Background(), slotRequest("10:00 AMs1"))
	assert.ErrorIs(t, err, ErrSlotNoLongerAvailable)
}

func TestExecute_RetriesOnVersionConflict(t *testing.T) {
	repo := &fakeBookingRepo{version: 1, conflicts: 2}
	uc := newTestUseCase(repo, testSalon(2), clock(9, 30))

	resp, err := uc.Execute(context.Background(), slotRequest("10:00 AMs1"))
	require.NoError(t, err)
	assert.Equal(t, "BOOKtest01", resp.Code)
	assert.Len(t, repo.bookings, 1)
}

func TestExecute_RetriesExhausted(t *testing.T) {
	repo := &fakeBookingRepo{version: 1, conflicts: 10}
	uc := newTestUseCase(repo, testSalon(2), clock(9, 30))

	_, err := uc.Execute(context.Background(), slotRequest("10:00 AMs1"))
	assert.ErrorIs(t, err, ErrStoreUnavailable)
}

func TestExecute_TokenBooking(t *testing.T) {
	repo := &fakeBookingRepo{version: 1}
	uc := newTestUseCase(repo, testSalon(1), clock(9, 30))

	resp, err := uc.Execute(context.Background(), slotRequest(domain.TokenTimeLabel))
	require.NoError(t, err)

	assert.Equal(t, domain.TokenTimeLabel, resp.TimeLabel)
	require.NotNil(t, resp.Token)
	assert.True(t, strings.HasPrefix(*resp.Token, "T"))

	require.Len(t, repo.bookings, 1)
	assert.True(t, repo.bookings[0].IsToken())
}

func TestExecute_TokenBookingDoesNotOccupySeat(t *testing.T) {
	// Токен не занимает место в сетке: слот рядом с токеном доступен
	repo := &fakeBookingRepo{version: 1}
	uc := newTestUseCase(repo, testSalon(1), clock(9, 30))

	_, err := uc.Execute(context.Background(), slotRequest(domain.TokenTimeLabel))
	require.NoError(t, err)

	resp, err := uc.Execute(context.Background(), slotRequest("10:00 AMs1"))
	require.NoError(t, err)
	assert.Equal(t, "10:00 AMs1", resp.TimeLabel)
}

func TestExecute_SalonClosed(t *testing.T) {
	repo := &fakeBookingRepo{version: 1}
	uc := newTestUseCase(repo, testSalon(2), clock(18, 30))

	_, err := uc.Execute(context.Background(), slotRequest("10:00 AMs1"))
	assert.ErrorIs(t, err, ErrSalonClosed)
}

func TestExecute_SalonNotFound(t *testing.T) {
	repo := &fakeBookingRepo{version: 1}
	uc := newTestUseCase(repo, testSalon(2), clock(9, 30))

	req := slotRequest("10:00 AMs1")
	req.SalonName = "No Such Salon"
	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSalonNotFound)
}

func TestExecute_ServiceNotFound(t *testing.T) {
	repo := &fakeBookingRepo{version: 1}
	uc := newTestUseCase(repo, testSalon(2), clock(9, 30))

	req := slotRequest("10:00 AMs1")
	req.ServiceName = "Massage"
	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_InvalidLabel(t *testing.T) {
	repo := &fakeBookingRepo{version: 1}
	uc := newTestUseCase(repo, testSalon(2), clock(9, 30))

	_, err := uc.Execute(context.Background(), slotRequest("not-a-slot"))
	assert.ErrorIs(t, err, ErrInvalidInput)
}
