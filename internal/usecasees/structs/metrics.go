package structs

type MetricConst int

const (
	MetricOrderEnqueued MetricConst = iota
	MetricOrderRejected
	MetricOrderFilled
	MetricOrderFailed
	MetricOrderCanceled
	MetricPriceFanout
)

func (m MetricConst) ToString() string {
	switch m {
	case MetricOrderEnqueued:
		return "orders_enqueued_total"
	case MetricOrderRejected:
		return "orders_rejected_total"
	case MetricOrderFilled:
		return "orders_filled_total"
	case MetricOrderFailed:
		return "orders_failed_total"
	case MetricOrderCanceled:
		return "orders_canceled_total"
	case MetricPriceFanout:
		return "price_ticks_fanout_total"
	}

	return "unknown"
}
