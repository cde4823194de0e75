package structs

import "go.mongodb.org/mongo-driver/bson/primitive"

// UserLimits holds per-user trading limits plus the running daily loss
// counter. Seeded with defaults on first load.
type UserLimits struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	UserID          string             `bson:"user_id"`
	MaxLeverage     int                `bson:"max_leverage"`
	MaxPositionSize float64            `bson:"max_position_size"`
	DailyLossLimit  float64            `bson:"daily_loss_limit"`
	RiskPercent     float64            `bson:"risk_percent"`
	DailyLoss       float64            `bson:"daily_loss"`
	DailyLossDay    string             `bson:"daily_loss_day"`
}
