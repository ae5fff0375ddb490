// Package authsvc issues tokens for team members and manages their credentials and devices.
package authsvc

import (
	"context"

	"edu_crm/internal/api/access"
	authdto "edu_crm/internal/api/auth/dto"
	teammodels "edu_crm/internal/api/team/models"
	teamsvc "edu_crm/internal/api/team/service"
	"edu_crm/internal/auth"
	"edu_crm/internal/logger"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LoginResult is returned by a successful login.
type LoginResult struct {
	Token     string          `json:"token"`
	ExpiresAt int64           `json:"expiresAt"`
	User      teammodels.Team `json:"user"`
}

// AuthService handles login and the caller's own account.
type AuthService struct {
	team   *teamsvc.TeamService
	tokens *auth.TokenManager
}

func NewAuthService(team *teamsvc.TeamService, tokens *auth.TokenManager) *AuthService {
	return &AuthService{team: team, tokens: tokens}
}

// Login checks the credentials and signs a token carrying the member's id, email, name and role.
func (s *AuthService) Login(ctx context.Context, input *authdto.LoginInput) (*LoginResult, error) {
	member, err := s.team.Authenticate(ctx, input.Email, input.Password)
	if err != nil {
		logger.Audit("auth.login.failed", "anonymous").WithField("email", input.Email).Warn("login rejected")
		return nil, err
	}
	token, expires, err := s.tokens.GenerateToken(teamsvc.IdentityOf(member))
	if err != nil {
		return nil, err
	}
	logger.Audit("auth.login", member.ID.Hex()).WithField("role", member.Role).Info("login")
	return &LoginResult{Token: token, ExpiresAt: expires.UnixMilli(), User: member}, nil
}

// Me returns the caller's profile with their assigned leads.
func (s *AuthService) Me(ctx context.Context, actor *access.Identity) (teammodels.Team, error) {
	return s.team.Get(ctx, actor, actor.ID)
}

func (s *AuthService) ChangePassword(ctx context.Context, actor *access.Identity, input *authdto.ChangePasswordInput) error {
	if err := s.team.ChangePassword(ctx, actor.ID, input.CurrentPassword, input.NewPassword); err != nil {
		return err
	}
	logger.Audit("auth.password", actor.ID.Hex()).Info("password changed")
	return nil
}

func (s *AuthService) AddPushToken(ctx context.Context, id primitive.ObjectID, token string) error {
	return s.team.AddPushToken(ctx, id, token)
}

func (s *AuthService) RemovePushToken(ctx context.Context, id primitive.ObjectID, token string) error {
	return s.team.RemovePushToken(ctx, id, token)
}
