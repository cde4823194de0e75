package mongo

import (
	"context"

	"saarthi/internal/repository/mongo/structs"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const (
	defaultMaxLeverage     = 20
	defaultMaxPositionSize = 100000.0
	defaultDailyLossLimit  = 10000.0
	defaultRiskPercent     = 2.0
)

type UserRepository struct {
	conn       *mongo.Client
	collection *mongo.Collection
}

func NewUserRepository(conn *mongo.Client) UserRepo {
	collection := conn.Database("saarthi").Collection("user_limits")

	return &UserRepository{conn: conn, collection: collection}
}

// Load returns the user's limits, inserting defaults on first contact.
func (r *UserRepository) Load(userID string) (*structs.UserLimits, error) {
	var result structs.UserLimits

	err := r.collection.FindOne(context.TODO(), bson.D{{Key: "user_id", Value: userID}}).Decode(&result)
	if err == mongo.ErrNoDocuments {
		result = structs.UserLimits{
			UserID:          userID,
			MaxLeverage:     defaultMaxLeverage,
			MaxPositionSize: defaultMaxPositionSize,
			DailyLossLimit:  defaultDailyLossLimit,
			RiskPercent:     defaultRiskPercent,
		}

		if _, err := r.collection.InsertOne(context.TODO(), &result); err != nil {
			return nil, err
		}

		return &result, nil
	}
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *UserRepository) UpdateLimits(limits *structs.UserLimits) error {
	_, err := r.collection.UpdateOne(
		context.TODO(),
		bson.D{{Key: "user_id", Value: limits.UserID}},
		bson.D{{Key: "$set", Value: bson.D{
			{Key: "max_leverage", Value: limits.MaxLeverage},
			{Key: "max_position_size", Value: limits.MaxPositionSize},
			{Key: "daily_loss_limit", Value: limits.DailyLossLimit},
			{Key: "risk_percent", Value: limits.RiskPercent},
		}}},
	)
	if err != nil {
		return err
	}

	return nil
}

// AddDailyLoss accumulates realized loss for the given day. The
// increment only applies to a document already on that day; on a day
// change the counter restarts from the new loss instead of piling on
// top of yesterday's total.
func (r *UserRepository) AddDailyLoss(userID string, loss float64, day string) error {
	result, err := r.collection.UpdateOne(
		context.TODO(),
		bson.D{
			{Key: "user_id", Value: userID},
			{Key: "daily_loss_day", Value: day},
		},
		bson.D{{Key: "$inc", Value: bson.D{{Key: "daily_loss", Value: loss}}}},
	)
	if err != nil {
		return err
	}

	if result.MatchedCount > 0 {
		return nil
	}

	_, err = r.collection.UpdateOne(
		context.TODO(),
		bson.D{{Key: "user_id", Value: userID}},
		bson.D{{Key: "$set", Value: bson.D{
			{Key: "daily_loss", Value: loss},
			{Key: "daily_loss_day", Value: day},
		}}},
	)
	if err != nil {
		return err
	}

	return nil
}

// ResetDailyLoss zeroes every user's counter at the start of a new day.
func (r *UserRepository) ResetDailyLoss(day string) error {
	_, err := r.collection.UpdateMany(
		context.TODO(),
		bson.D{},
		bson.D{{Key: "$set", Value: bson.D{
			{Key: "daily_loss", Value: 0.0},
			{Key: "daily_loss_day", Value: day},
		}}},
	)
	if err != nil {
		return err
	}

	return nil
}
