// Package signin consumes identity-provider sign-in events and creates the user's
// profile on first sign-in.
package signin

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/nasafacts/community-service/internal/config"
	"github.com/nasafacts/community-service/internal/model"
)

type Handler struct {
	profiles ProfileService
}

func New(profiles ProfileService) *Handler {
	return &Handler{profiles: profiles}
}

// Handler processes one event. Events that can never succeed are logged and
// acknowledged; store failures are returned so the consumer retries them.
func (h *Handler) Handler(ctx context.Context, in []byte) error {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)
	logger.AddFuncName("SignInHandler")

	var identity model.Identity
	if err := json.Unmarshal(in, &identity); err != nil {
		logger.Error(fmt.Sprintf("failed to unmarshal sign-in event: %v", err))
		return nil
	}

	p, err := h.profiles.SignIn(ctx, identity)
	switch {
	case errors.Is(err, model.ErrAuth), errors.Is(err, model.ErrValidation):
		logger.Warn(fmt.Sprintf("skipping sign-in of user %s: %v", identity.UserID, err))
		return nil
	case err != nil:
		logger.Error(fmt.Sprintf("failed to sign in user %s: %v", identity.UserID, err))
		return err
	}

	logger.Info(fmt.Sprintf("profile of user %s is up to date (%s)", p.ID, p.DisplayName))
	return nil
}
