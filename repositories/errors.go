package repositories

import (
	"context"
	"errors"
	"strings"

	"gin-catalog/apperrors"

	"gorm.io/gorm"
)

// translateError maps storage-level failures into the typed taxonomy so raw
// driver errors never reach a caller verbatim.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	if apperrors.KindOf(err) != "" {
		return err
	}
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return apperrors.New(apperrors.NotFound, "record not found")
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return apperrors.New(apperrors.Unavailable, "storage timed out")
	case isDuplicate(err):
		return apperrors.New(apperrors.Conflict, "record already exists")
	default:
		return err
	}
}

func isDuplicate(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate") || strings.Contains(msg, "UNIQUE constraint")
}
