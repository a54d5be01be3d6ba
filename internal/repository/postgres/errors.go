package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/nasafacts/community-service/internal/model"
)

// mapError converts driver errors into the model taxonomy.
// Context cancellation passes through untouched.
func mapError(err error, op string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s: %w", op, err)
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case "23503": // foreign_key_violation
			return fmt.Errorf("%s: %w: %s", op, model.ErrNotFound, pqErr.Constraint)
		case "23514", "22P02": // check_violation, invalid_text_representation
			return fmt.Errorf("%s: %w: %s", op, model.ErrValidation, pqErr.Message)
		}
	}

	return fmt.Errorf("%s: %w: %w", op, model.ErrStore, err)
}
