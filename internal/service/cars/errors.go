package cars

import "errors"

var (
	// ErrCarNotFound возвращается, когда автомобиль не найден
	ErrCarNotFound = errors.New("cars: car not found")

	// ErrInvalidInput возвращается при невалидных данных автомобиля
	ErrInvalidInput = errors.New("cars: invalid input")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("cars: internal error")
)
