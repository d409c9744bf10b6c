package catalogerrors

import (
	"net/http"

	"go-rms/internal/shared/apperror"
)

var (
	ErrMenuItemNotFound = apperror.New(
		apperror.CodeNotFound,
		"menu item not found",
		http.StatusNotFound,
	)
	ErrTableNotFound = apperror.New(
		apperror.CodeNotFound,
		"table not found",
		http.StatusNotFound,
	)
	ErrInvalidMenuItemID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid menu item id",
		http.StatusBadRequest,
	)
)
