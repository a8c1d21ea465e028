package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/corebanc/bankledger_app/internal/apperrors"
	"github.com/corebanc/bankledger_app/internal/core/domain"
	portsrepo "github.com/corebanc/bankledger_app/internal/core/ports/repositories"
	portssvc "github.com/corebanc/bankledger_app/internal/core/ports/services"
	"github.com/corebanc/bankledger_app/internal/dto"
	"github.com/corebanc/bankledger_app/internal/middleware"
	"github.com/corebanc/bankledger_app/internal/platform/config"
	"github.com/corebanc/bankledger_app/internal/utils"
)

// authService handles registration and credential verification. It needs the
// configuration for the JWT signing parameters.
type authService struct {
	cfg        *config.Config
	clientRepo portsrepo.ClientRepository
}

// NewAuthService creates the authentication service.
func NewAuthService(cfg *config.Config, clientRepo portsrepo.ClientRepository) portssvc.AuthSvcFacade {
	return &authService{
		cfg:        cfg,
		clientRepo: clientRepo,
	}
}

func (s *authService) RegisterClient(ctx context.Context, req dto.RegisterClientRequest) (*domain.Client, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.ensureClientIsNew(ctx, req.Email, req.DocumentNumber); err != nil {
		return nil, err
	}

	if err := utils.ValidatePassword(req.Password, req.ConfirmPassword); err != nil {
		return nil, err
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		logger.Error("Failed to hash password", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	client := domain.NewClient(req.Name, req.DocumentNumber, req.BirthDate, req.Email, passwordHash)
	if err := s.clientRepo.SaveClient(ctx, client); err != nil {
		if !errors.Is(err, apperrors.ErrConflict) {
			logger.Error("Failed to save client", slog.String("error", err.Error()))
		}
		return nil, err
	}

	logger.Info("Client registered", slog.String("client_id", client.ClientID))
	return &client, nil
}

// ensureClientIsNew rejects registration when the email or document number is
// already taken. The unique indexes remain the last line of defense against
// concurrent registrations.
func (s *authService) ensureClientIsNew(ctx context.Context, email, documentNumber string) error {
	if _, err := s.clientRepo.FindClientByEmail(ctx, email); err == nil {
		return fmt.Errorf("%w: email already registered", apperrors.ErrConflict)
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return err
	}

	if _, err := s.clientRepo.FindClientByDocument(ctx, documentNumber); err == nil {
		return fmt.Errorf("%w: document number already registered", apperrors.ErrConflict)
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return err
	}
	return nil
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	client, err := s.clientRepo.FindClientByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			// Indistinguishable from a wrong password on purpose.
			return nil, fmt.Errorf("%w: invalid credentials", apperrors.ErrAuthentication)
		}
		logger.Error("Failed to load client for login", slog.String("error", err.Error()))
		return nil, err
	}

	if !utils.CheckPasswordHash(req.Password, client.PasswordHash) {
		return nil, fmt.Errorf("%w: invalid credentials", apperrors.ErrAuthentication)
	}

	token, err := utils.GenerateJWT(client.ClientID, client.Email, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer, s.cfg.JWTAudience)
	if err != nil {
		logger.Error("Failed to generate token", slog.String("error", err.Error()), slog.String("client_id", client.ClientID))
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	logger.Info("Client logged in", slog.String("client_id", client.ClientID))
	return &dto.LoginResponse{
		Token:  token,
		Client: dto.ToClientResponse(client),
	}, nil
}
