package ordering

// OrderStatus is a closed enum; transitions go through CanTransition so an
// order can never move backwards or resurrect after cancellation.
type OrderStatus string

const (
	StatusPending    OrderStatus = "PENDING"
	StatusInProgress OrderStatus = "IN_PROGRESS"
	StatusReady      OrderStatus = "READY"
	StatusDelivered  OrderStatus = "DELIVERED"
	StatusCancelled  OrderStatus = "CANCELLED"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusReady, StatusDelivered, StatusCancelled:
		return true
	default:
		return false
	}
}

// CanTransition reports whether the order may move from s to next.
// CANCELLED is reachable from any state before DELIVERED.
func (s OrderStatus) CanTransition(next OrderStatus) bool {
	if next == StatusCancelled {
		return s != StatusDelivered && s != StatusCancelled
	}
	switch s {
	case StatusPending:
		return next == StatusInProgress
	case StatusInProgress:
		return next == StatusReady
	case StatusReady:
		return next == StatusDelivered
	case StatusDelivered, StatusCancelled:
		return false
	default:
		return false
	}
}

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "PENDING"
	PaymentPaid    PaymentStatus = "PAID"
	PaymentVoided  PaymentStatus = "VOIDED"
)

type PaymentMethod string

const (
	PaymentCash     PaymentMethod = "CASH"
	PaymentCard     PaymentMethod = "CARD"
	PaymentTransfer PaymentMethod = "TRANSFER"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentCash, PaymentCard, PaymentTransfer:
		return true
	default:
		return false
	}
}
