package payrollerrors

import (
	"net/http"

	"go-rms/internal/shared/apperror"
)

var (
	ErrPayrollNotFound = apperror.New(apperror.CodeNotFound, "payroll not found", http.StatusNotFound)

	ErrDuplicatePeriod = apperror.New(apperror.CodeConflict, "a payroll already exists for this employee and period", http.StatusConflict)

	ErrValidationFailed = apperror.New(apperror.CodeValidationFailed, "payroll validation failed", http.StatusUnprocessableEntity)

	ErrNotEditable = apperror.New(apperror.CodeInvalidState, "only a draft payroll can be modified", http.StatusConflict)

	ErrCannotApprove = apperror.New(apperror.CodeForbidden, "payroll cannot be approved in its current state", http.StatusForbidden)

	ErrCannotPay = apperror.New(apperror.CodeInvalidState, "payroll must be approved before it can be paid", http.StatusConflict)

	ErrCannotCancel = apperror.New(apperror.CodeInvalidState, "a paid payroll cannot be cancelled", http.StatusConflict)
)
