package member

import (
	"context"
	"errors"

	"topdog/internal/auth"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// AuthGateway is the repository-backed auth.Gateway implementation used
// when real provider credentials are configured.
type AuthGateway struct {
	repo     Repository
	secret   string
	notifier *auth.Notifier
}

func NewAuthGateway(repo Repository, secret string, notifier *auth.Notifier) *AuthGateway {
	return &AuthGateway{repo: repo, secret: secret, notifier: notifier}
}

func (g *AuthGateway) SignUp(ctx context.Context, email, password string, profile auth.ProfileData) (*auth.Session, error) {
	exists, err := g.repo.EmailExists(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailTaken
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	plan := Plan(profile.Plan)
	if plan == "" {
		plan = PlanBasic
	}

	created, err := g.repo.Create(ctx, &Member{
		Email:          email,
		FullName:       profile.FullName,
		PasswordHash:   hash,
		Role:           "member",
		Age:            profile.Age,
		Gender:         profile.Gender,
		Occupation:     profile.Occupation,
		Phone:          profile.Phone,
		MembershipPlan: plan,
	})
	if err != nil {
		return nil, err
	}

	return g.newSession(created)
}

func (g *AuthGateway) SignIn(ctx context.Context, email, password string) (*auth.Session, error) {
	m, err := g.repo.FindByEmail(ctx, email)
	if errors.Is(err, ErrMemberNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if !auth.CheckPassword(m.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}

	return g.newSession(m)
}

func (g *AuthGateway) SignOut(_ context.Context, _ string) error {
	g.notifier.Notify(nil)
	return nil
}

func (g *AuthGateway) Session(ctx context.Context, accessToken string) (*auth.Session, error) {
	claims, err := auth.ValidateToken(accessToken, g.secret)
	if err != nil {
		return nil, err
	}

	m, err := g.repo.FindByID(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}

	return &auth.Session{
		MemberID:    m.ID,
		Email:       m.Email,
		Role:        m.Role,
		AccessToken: accessToken,
		ExpiresAt:   claims.ExpiresAt.Time,
	}, nil
}

func (g *AuthGateway) newSession(m *Member) (*auth.Session, error) {
	access, refresh, err := auth.GenerateTokens(m.ID, m.Email, m.Role, g.secret, g.secret)
	if err != nil {
		return nil, err
	}

	session := &auth.Session{
		MemberID:     m.ID,
		Email:        m.Email,
		Role:         m.Role,
		AccessToken:  access,
		RefreshToken: refresh,
	}
	g.notifier.Notify(session)
	return session, nil
}
