package mongo

import (
	"saarthi/internal/repository/mongo/structs"
)

//go:generate mockery --case=snake --name=UserRepo

type UserRepo interface {
	Load(userID string) (*structs.UserLimits, error)
	UpdateLimits(limits *structs.UserLimits) error
	AddDailyLoss(userID string, loss float64, day string) error
	ResetDailyLoss(day string) error
}
