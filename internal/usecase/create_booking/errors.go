package create_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInvalidRange возвращается, когда дата начала позже даты окончания
	ErrInvalidRange = errors.New("create_booking: start date is after end date")

	// ErrUserNotFound возвращается, когда пользователь не найден
	ErrUserNotFound = errors.New("create_booking: user not found")

	// ErrCarNotFound возвращается, когда автомобиль не найден
	ErrCarNotFound = errors.New("create_booking: car not found")

	// ErrCarUnavailable возвращается, когда свободных автомобилей нет
	ErrCarUnavailable = errors.New("create_booking: car is unavailable")

	// ErrDuplicateBooking возвращается, когда у пользователя уже есть бронирование на пересекающиеся даты
	ErrDuplicateBooking = errors.New("create_booking: user already has an overlapping booking")

	// ErrLicenseInvalid возвращается, когда права не действуют до конца периода
	ErrLicenseInvalid = errors.New("create_booking: driving license is not valid for the booking range")

	// ErrStockExhausted возвращается, когда остаток автомобиля уже нулевой
	ErrStockExhausted = errors.New("create_booking: car stock exhausted")

	// ErrBusy возвращается, когда автомобиль или пользователь заняты параллельным бронированием
	ErrBusy = errors.New("create_booking: car or user is locked by a concurrent request")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
