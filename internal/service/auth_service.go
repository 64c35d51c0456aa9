// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package service

import (
	"context"
	"log/slog"

	"github.com/linuxfoundation/lfx-v2-webinar-service/internal/domain"
	"github.com/linuxfoundation/lfx-v2-webinar-service/pkg/utils"
)

// AuthService checks the shared admin password.
type AuthService struct {
	password string
}

func NewAuthService(password string) *AuthService {
	return &AuthService{
		password: password,
	}
}

// ServiceReady checks if the service is ready for use.
func (s *AuthService) ServiceReady() bool {
	return s.password != ""
}

// Login compares password with the configured one in constant time.
func (s *AuthService) Login(ctx context.Context, password string) error {
	if !s.ServiceReady() {
		slog.ErrorContext(ctx, "admin password is not configured")
		return domain.NewConfigurationError("admin password is not configured")
	}

	if !utils.SecretsEqual(password, s.password) {
		slog.WarnContext(ctx, "admin login rejected")
		return domain.NewUnauthorizedError("invalid password")
	}

	slog.InfoContext(ctx, "admin login accepted")
	return nil
}
