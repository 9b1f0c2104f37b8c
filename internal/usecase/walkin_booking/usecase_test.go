package walkin_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uzairqr/SalonBook-Service/internal/domain"
	bookingsStorage "github.com/uzairqr/SalonBook-Service/internal/infra/storage/bookings"
	salonsStorage "github.com/uzairqr/SalonBook-Service/internal/infra/storage/salons"
)

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

func (fixedCodeGenerator) NewBookingCode() string { return "BOOKwalkin" }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testSalon(seatCount int, breaks []domain.Break) *domain.Salon {
	return &domain.Salon{
		Name:      "Fade Factory",
		OwnerName: "owner-1",
		Location:  "Main Street 5",
		OpenTime:  "09:00 AM",
		CloseTime: "06:00 PM",
		SeatCount: seatCount,
		Status:    domain.SalonActive,
		Breaks:    breaks,
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

func TestExecute_CreatesWalkinBooking(t *testing.T) {
	repo := &fakeBookingRepo{version: 1}
	uc := newTestUseCase(repo, testSalon(1, nil), clock(10, 3))

	resp, err := uc.Execute(context.Background(), &Request{
		SalonName:       "Fade Factory",
		DurationMinutes: 30,
	})
	require.NoError(t, err)

	// 10:03 округляется вверх до 10:10
	assert.Equal(t, "10:10 AMs1", resp.TimeLabel)
	assert.Equal(t, "10:10 AM", resp.StartTime)
	assert.Equal(t, "BOOKwalkin", resp.Code)
	assert.Equal(t, domain.StatusPending, resp.Status)

	require.Len(t, repo.bookings, 1)
	stored := repo.bookings[0]
	assert.Equal(t, WalkinDeviceID, stored.Customer.DeviceID)
	assert.Equal(t, WalkinCustomerName, stored.Customer.Name)
	assert.Equal(t, WalkinPhone, stored.Customer.Phone)
	assert.Empty(t, stored.Service)
}

func TestExecute_SalonClosed(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{version: 1}, testSalon(1, nil), clock(18, 0))

	_, err := uc.Execute(context.Background(), &Request{SalonName: "Fade Factory", DurationMinutes: 30})
	assert.ErrorIs(t, err, ErrSalonClosed)
}

func TestExecute_NotYetOpen(t *testing.T) {
	// Открытие 09:00 + отступ 20: в 09:10 салон ещё не принимает
	uc := newTestUseCase(&fakeBookingRepo{version: 1}, testSalon(1, nil), clock(9, 10))

	_, err := uc.Execute(context.Background(), &Request{SalonName: "Fade Factory", DurationMinutes: 30})
	assert.ErrorIs(t, err, ErrNotYetOpen)
}

func TestExecute_OnBreakReportsRange(t *testing.T) {
	breaks := []domain.Break{{From: "01:00 PM", To: "02:00 PM"}}
	uc := newTestUseCase(&fakeBookingRepo{version: 1}, testSalon(1, breaks), clock(13, 15))

	_, err := uc.Execute(context.Background(), &Request{SalonName: "Fade Factory", DurationMinutes: 30})
	require.ErrorIs(t, err, ErrOnBreak)
	assert.Contains(t, err.Error(), "01:00 PM")
	assert.Contains(t, err.Error(), "02:00 PM")
}

func TestExecute_SlotFull(t *testing.T) {
	repo := &fakeBookingRepo{
		version: 1,
		bookings: []*domain.Booking{
			{
				SalonName:       "Fade Factory",
				TimeLabel:       "10:10 AMs1",
				DurationMinutes: 60,
				Status:          domain.StatusPending,
				Code:            "BOOKother1",
				Date:            "2026-03-14",
			},
		},
	}
	uc := newTestUseCase(repo, testSalon(1, nil), clock(10, 3))

	_, err := uc.Execute(context.Background(), &Request{SalonName: "Fade Factory", DurationMinutes: 30})
	assert.ErrorIs(t, err, ErrSlotFull)
	assert.Len(t, repo.bookings, 1)
}

func TestExecute_DoesNotFitBeforeClosing(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{version: 1}, testSalon(1, nil), clock(17, 45))

	// 17:45 -> 17:50, услуга 30 минут уходит за 18:00
	_, err := uc.Execute(context.Background(), &Request{SalonName: "Fade Factory", DurationMinutes: 30})
	assert.ErrorIs(t, err, ErrDoesNotFit)
}

func TestExecute_DoesNotFitAcrossBreak(t *testing.T) {
	breaks := []domain.Break{{From: "01:00 PM", To: "02:00 PM"}}
	uc := newTestUseCase(&fakeBookingRepo{version: 1}, testSalon(1, breaks), clock(12, 40))

	// 12:40, услуга 30 минут пересекает перерыв с 13:00
	_, err := uc.Execute(context.Background(), &Request{SalonName: "Fade Factory", DurationMinutes: 30})
	assert.ErrorIs(t, err, ErrDoesNotFit)
}

func TestExecute_ShorterBufferThanCustomerPath(t *testing.T) {
	// Существующее бронирование [11:00, 11:30), кандидат 10:30 на 20 минут.
	// Нижняя граница занятости 11:00 - 20 - буфер: с walk-in буфером 5 это
	// 10:35 и кандидат свободен; клиентский буфер 10 дал бы 10:30 и отказ
	repo := &fakeBookingRepo{
		version: 1,
		bookings: []*domain.Booking{
			{
				SalonName:       "Fade Factory",
				TimeLabel:       "11:00 AMs1",
				DurationMinutes: 30,
				Status:          domain.StatusPending,
				Code:            "BOOKother1",
				Date:            "2026-03-14",
			},
		},
	}
	uc := newTestUseCase(repo, testSalon(1, nil), clock(10, 25))

	resp, err := uc.Execute(context.Background(), &Request{SalonName: "Fade Factory", DurationMinutes: 20})
	require.NoError(t, err)
	assert.Equal(t, "10:30 AMs1", resp.TimeLabel)
}

func TestExecute_RetriesOnVersionConflict(t *testing.T) {
	repo := &fakeBookingRepo{version: 1, conflicts: 1}
	uc := newTestUseCase(repo, testSalon(1, nil), clock(10, 3))

	resp, err := uc.Execute(context.Background(), &Request{SalonName: "Fade Factory", DurationMinutes: 30})
	require.NoError(t, err)
	assert.Equal(t, "BOOKwalkin", resp.Code)
	assert.Len(t, repo.bookings, 1)
}

func TestExecute_ValidationErrors(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{version: 1}, testSalon(1, nil), clock(10, 0))

	_, err := uc.Execute(context.Background(), &Request{SalonName: "", DurationMinutes: 30})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{SalonName: "Fade Factory", DurationMinutes: 0})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
