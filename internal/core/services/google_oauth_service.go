package services

import (
	"context"
	"fmt"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	googleoauth "google.golang.org/api/oauth2/v2"
	"google.golang.org/api/option"

	"github.com/CellkomStore/cellkom_store_app/internal/apperrors"
	"github.com/CellkomStore/cellkom_store_app/internal/core/domain"
	portssvc "github.com/CellkomStore/cellkom_store_app/internal/core/ports/services"
	"github.com/CellkomStore/cellkom_store_app/internal/platform/config"
)

const googleProviderName = "google"

type googleOAuthService struct {
	oauthConfig *oauth2.Config
	userSvc     portssvc.UserSvcFacade
}

// NewGoogleOAuthService creates the Google sign-in service used by
// storefront members.
func NewGoogleOAuthService(cfg *config.Config, userSvc portssvc.UserSvcFacade) portssvc.GoogleOAuthSvcFacade {
	return &googleOAuthService{
		oauthConfig: &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.GoogleRedirectURL,
			Scopes:       []string{googleoauth.UserinfoEmailScope, googleoauth.UserinfoProfileScope},
			Endpoint:     google.Endpoint,
		},
		userSvc: userSvc,
	}
}

var _ portssvc.GoogleOAuthSvcFacade = (*googleOAuthService)(nil)

func (s *googleOAuthService) AuthCodeURL(state string) string {
	return s.oauthConfig.AuthCodeURL(state, oauth2.AccessTypeOnline)
}

func (s *googleOAuthService) ExchangeCode(ctx context.Context, code string) (*domain.User, error) {
	token, err := s.oauthConfig.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to exchange authorization code", apperrors.ErrUnauthorized)
	}

	oauthService, err := googleoauth.NewService(ctx, option.WithTokenSource(s.oauthConfig.TokenSource(ctx, token)))
	if err != nil {
		return nil, fmt.Errorf("failed to create google userinfo client: %w", err)
	}

	userinfo, err := oauthService.Userinfo.Get().Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch google userinfo: %w", err)
	}
	if userinfo.Id == "" || userinfo.Email == "" {
		return nil, fmt.Errorf("%w: incomplete google identity", apperrors.ErrUnauthorized)
	}

	return s.userSvc.FindOrCreateOAuthUser(ctx, googleProviderName, userinfo.Id, userinfo.Email, userinfo.Name)
}
