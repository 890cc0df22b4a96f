package get_car_quotes

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_car_quotes: invalid input data")

	// ErrInvalidRange возвращается, когда дата начала позже даты окончания
	ErrInvalidRange = errors.New("get_car_quotes: start date is after end date")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_car_quotes: internal error")
)
