package repository

import "time"

type ListDueOptions struct {
	Now   time.Time
	Limit int
}

type UpdateNextScanAtOptions struct {
	ID         string
	NextScanAt time.Time
}
