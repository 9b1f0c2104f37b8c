package get_bookable_slots

import "github.com/uzairqr/SalonBook-Service/internal/domain"

// Params настройки сканирования клиентского пути
type Params struct {
	GridStepMinutes  int // шаг сетки слотов
	BufferMinutes    int // буфер вокруг существующих бронирований
	OpenGraceMinutes int // отступ от открытия до первого слота
}

// DefaultParams возвращает настройки по умолчанию
func DefaultParams() Params {
	return Params{
		GridStepMinutes:  domain.DefaultGridStepMinutes,
		BufferMinutes:    domain.DefaultBookingBufferMinutes,
		OpenGraceMinutes: domain.DefaultOpenGraceMinutes,
	}
}

// Request модель запроса на получение доступных слотов
type Request struct {
	SalonName   string // имя салона
	ServiceName string // имя услуги (определяет длительность)
}

// Response модель ответа со списком доступных слотов.
// Список валиден только на момент расчёта: параллельные коммиты могут
// сделать любой слот недоступным, перед записью он перепроверяется
type Response struct {
	SalonName       string
	ServiceName     string
	DurationMinutes int
	SeatCount       int
	Slots           []domain.BookableSlot
}
