package auth

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Ginebra-api/internal/application/dto"
	"github.com/jhoicas/Ginebra-api/internal/application/ports"
	"github.com/jhoicas/Ginebra-api/internal/application/usecase"
	"github.com/jhoicas/Ginebra-api/internal/domain"
	"github.com/jhoicas/Ginebra-api/internal/domain/repository"
	"github.com/jhoicas/Ginebra-api/pkg/jwt"
	"github.com/jhoicas/Ginebra-api/pkg/logger"
)

// resetMessage respuesta neutra a una solicitud de recuperación.
const resetMessage = "Si el correo está registrado, recibirás un enlace para restablecer tu contraseña."

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret          string
	ExpMinutes      int
	Issuer          string
	ResetExpMinutes int
}

// AuthUseCase casos de uso de autenticación: login, perfil y recuperación de contraseña.
type AuthUseCase struct {
	agents repository.AgentRepository
	mailer ports.Mailer
	jwtCfg JWTConfig
	log    *logger.Logger
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(agents repository.AgentRepository, mailer ports.Mailer, jwtCfg JWTConfig, log *logger.Logger) *AuthUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &AuthUseCase{agents: agents, mailer: mailer, jwtCfg: jwtCfg, log: log}
}

// Login verifica username/password, genera JWT y retorna token + agente.
// Un agente Inactivo no puede iniciar sesión.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	agent, err := uc.agents.GetByUsername(ctx, strings.TrimSpace(in.Username))
	if err != nil {
		return nil, err
	}
	if agent == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(agent.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if !agent.IsActive() {
		return nil, domain.ErrForbidden
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, agent.ID, agent.CompanyID, string(agent.Role), uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		Agent: *usecase.AgentResponseFrom(agent),
	}, nil
}

// Me devuelve el agente autenticado.
func (uc *AuthUseCase) Me(ctx context.Context, userID string) (*dto.AgentResponse, error) {
	agent, err := uc.agents.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if agent == nil {
		return nil, domain.ErrUserNotFound
	}
	return usecase.AgentResponseFrom(agent), nil
}

// RequestPasswordReset emite un token de recuperación y lo entrega por el Mailer.
// La respuesta es la misma exista o no el correo.
func (uc *AuthUseCase) RequestPasswordReset(ctx context.Context, in dto.PasswordResetRequest) (*dto.PasswordResetResponse, error) {
	out := &dto.PasswordResetResponse{Message: resetMessage}
	agent, err := uc.agents.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(in.Email)))
	if err != nil {
		return nil, err
	}
	if agent == nil || !agent.IsActive() {
		return out, nil
	}
	token, err := jwt.GenerateReset(uc.jwtCfg.Secret, agent.ID, fingerprint(agent.PasswordHash), uc.jwtCfg.Issuer, uc.jwtCfg.ResetExpMinutes)
	if err != nil {
		return nil, err
	}
	if err := uc.mailer.SendPasswordReset(ctx, agent.Email, agent.FullName(), token); err != nil {
		uc.log.Error().Err(err).Str("agent_id", agent.ID).Msg("no se pudo enviar el correo de recuperación")
		return nil, err
	}
	return out, nil
}

// ConfirmPasswordReset fija la nueva contraseña si el token es válido y no se usó antes.
func (uc *AuthUseCase) ConfirmPasswordReset(ctx context.Context, in dto.PasswordResetConfirm) error {
	userID, fp, err := jwt.ParseReset(uc.jwtCfg.Secret, in.Token)
	if err != nil {
		return domain.ErrUnauthorized
	}
	agent, err := uc.agents.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if agent == nil || fp != fingerprint(agent.PasswordHash) {
		return domain.ErrUnauthorized
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	agent.PasswordHash = string(hash)
	agent.UpdatedAt = time.Now()
	if err := uc.agents.Update(ctx, agent); err != nil {
		return err
	}
	uc.log.Info().Str("agent_id", agent.ID).Msg("contraseña restablecida")
	return nil
}

// fingerprint resumen corto del hash vigente.
func fingerprint(hash string) string {
	sum := sha256.Sum256([]byte(hash))
	return hex.EncodeToString(sum[:8])
}
