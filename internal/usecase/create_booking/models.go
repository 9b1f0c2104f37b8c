package create_booking

import "github.com/uzairqr/SalonBook-Service/internal/domain"

// Params настройки повторной валидации слота при записи
type Params struct {
	GridStepMinutes  int // шаг сетки слотов
	BufferMinutes    int // буфер вокруг существующих бронирований
	OpenGraceMinutes int // отступ от открытия до первого слота
	MaxCommitRetries int // число повторов при конфликте версий
}

// DefaultParams возвращает настройки по умолчанию
func DefaultParams() Params {
	return Params{
		GridStepMinutes:  domain.DefaultGridStepMinutes,
		BufferMinutes:    domain.DefaultBookingBufferMinutes,
		OpenGraceMinutes: domain.DefaultOpenGraceMinutes,
		MaxCommitRetries: 3,
	}
}

// Request модель запроса на создание бронирования.
// TimeLabel — либо выбранный слот в формате "HH:MM AM/PMs<место>",
// либо литерал "token" для записи в живую очередь без времени
type Request struct {
	SalonName     string
	ServiceName   string
	TimeLabel     string
	DeviceID      string
	CustomerName  string
	CustomerPhone string
}

// Response модель ответа на создание бронирования
type Response struct {
	Code            string  // уникальный код бронирования
	Token           *string // токен очереди, только для токен-бронирований
	SalonName       string
	ServiceName     string
	TimeLabel       string // метка, под которой бронирование сохранено
	DurationMinutes int
	Date            string
	Status          domain.BookingStatus
}
