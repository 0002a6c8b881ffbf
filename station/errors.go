package station

import "errors"

var (
	ErrStationNotFound   = errors.New("station not found")
	ErrStationExists     = errors.New("station already exists")
	ErrSameStation       = errors.New("cannot merge a station into itself")
	ErrDishNotFound      = errors.New("dish not assigned to station")
	ErrUnknownDish       = errors.New("dish not in catalog")
	ErrDuplicateDish     = errors.New("dish already assigned to station")
	ErrInsufficientStock = errors.New("not enough stock to prepare dish")
)
