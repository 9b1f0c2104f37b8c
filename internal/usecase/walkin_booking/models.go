package walkin_booking

import "github.com/uzairqr/SalonBook-Service/internal/domain"

// Фиксированные реквизиты, под которыми сохраняются walk-in бронирования:
// клиент пришёл без записи, его личность не собирается
const (
	WalkinDeviceID     = "manual"
	WalkinCustomerName = "Manual"
	WalkinPhone        = "0000"
)

// Params настройки walk-in пути
type Params struct {
	GridStepMinutes  int // округление момента начала
	BufferMinutes    int // буфер вокруг существующих бронирований
	OpenGraceMinutes int // отступ от открытия
	MaxCommitRetries int // число повторов при конфликте версий
}

// DefaultParams возвращает настройки по умолчанию.
// Буфер walk-in пути короче клиентского: клиент уже в салоне
func DefaultParams() Params {
	return Params{
		GridStepMinutes:  domain.DefaultWalkinGridStepMinutes,
		BufferMinutes:    domain.DefaultWalkinBufferMinutes,
		OpenGraceMinutes: domain.DefaultOpenGraceMinutes,
		MaxCommitRetries: 3,
	}
}

// Request модель запроса на walk-in бронирование. Длительность задаётся
// персоналом свободно, без привязки к услуге салона
type Request struct {
	SalonName       string
	DurationMinutes int
}

// Response модель ответа на walk-in бронирование
type Response struct {
	Code            string
	SalonName       string
	TimeLabel       string // метка, под которой бронирование сохранено
	StartTime       string // человекочитаемое время начала
	DurationMinutes int
	Date            string
	Status          domain.BookingStatus
}
