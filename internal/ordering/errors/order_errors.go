package orderingerrors

import (
	"net/http"

	"go-rms/internal/shared/apperror"
)

var (
	ErrOrderNotFound = apperror.New(
		apperror.CodeNotFound,
		"order not found",
		http.StatusNotFound,
	)
	ErrInvalidOrderID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid order id",
		http.StatusBadRequest,
	)
	ErrMenuItemUnavailable = apperror.New(
		apperror.CodeInvalidInput,
		"menu item is not available",
		http.StatusBadRequest,
	)
	ErrNegativeQuantity = apperror.New(
		apperror.CodeInvalidInput,
		"quantity cannot be negative",
		http.StatusBadRequest,
	)
	ErrLineItemNotFound = apperror.New(
		apperror.CodeNotFound,
		"line item not found on this order",
		http.StatusNotFound,
	)
	ErrInvalidStatusTransition = apperror.New(
		apperror.CodeInvalidState,
		"invalid order status transition",
		http.StatusBadRequest,
	)
	ErrOrderNotEditable = apperror.New(
		apperror.CodeInvalidState,
		"order items can only change while the order is pending",
		http.StatusBadRequest,
	)
	ErrAlreadyPaid = apperror.New(
		apperror.CodeInvalidState,
		"order is already paid",
		http.StatusConflict,
	)
	ErrCancelledOrder = apperror.New(
		apperror.CodeInvalidState,
		"order is cancelled",
		http.StatusBadRequest,
	)
)
