package salons

import "errors"

var (
	// ErrSalonNotFound возвращается, когда салон не найден
	ErrSalonNotFound = errors.New("salons.repository: salon not found")

	// ErrVersionConflict возвращается, когда коллекция была изменена
	// конкурентной записью между чтением и записью
	ErrVersionConflict = errors.New("salons.repository: collection version conflict")

	// ErrStore возвращается при ошибках хранилища
	ErrStore = errors.New("salons.repository: store error")

	// ErrDecode возвращается, когда записи коллекции не декодируются
	ErrDecode = errors.New("salons.repository: failed to decode records")
)
