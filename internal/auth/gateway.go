package auth

import (
	"context"
	"time"
)

// Session is the internal session shape every gateway implementation maps
// its result onto. Handlers never see provider-specific payloads.
type Session struct {
	MemberID     string    `json:"member_id"`
	Email        string    `json:"email"`
	Role         string    `json:"role"`
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	ExpiresAt    time.Time `json:"expires_at"`
}

// ProfileData carries the signup profile through the gateway without
// depending on the member package.
type ProfileData struct {
	FullName   string
	Age        int
	Gender     string
	Occupation string
	Phone      string
	Plan       string
}

// Gateway is the authentication boundary. The real implementation is
// backed by the member repository; the demo implementation always
// succeeds and is selected when no provider credentials are configured.
type Gateway interface {
	SignUp(ctx context.Context, email, password string, profile ProfileData) (*Session, error)
	SignIn(ctx context.Context, email, password string) (*Session, error)
	SignOut(ctx context.Context, memberID string) error
	Session(ctx context.Context, accessToken string) (*Session, error)
}

const DemoMemberID = "demo-member"

// DemoGateway simulates a successful authentication flow for local
// development without backend credentials.
type DemoGateway struct {
	secret   string
	notifier *Notifier
}

func NewDemoGateway(secret string, notifier *Notifier) *DemoGateway {
	return &DemoGateway{secret: secret, notifier: notifier}
}

func (g *DemoGateway) SignUp(ctx context.Context, email, password string, profile ProfileData) (*Session, error) {
	return g.SignIn(ctx, email, password)
}

func (g *DemoGateway) SignIn(_ context.Context, email, _ string) (*Session, error) {
	access, refresh, err := GenerateTokens(DemoMemberID, email, "member", g.secret, g.secret)
	if err != nil {
		return nil, err
	}

	session := &Session{
		MemberID:     DemoMemberID,
		Email:        email,
		Role:         "member",
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresAt:    time.Now().Add(AccessTokenTTL),
	}
	g.notifier.Notify(session)
	return session, nil
}

func (g *DemoGateway) SignOut(_ context.Context, _ string) error {
	g.notifier.Notify(nil)
	return nil
}

func (g *DemoGateway) Session(_ context.Context, accessToken string) (*Session, error) {
	claims, err := ValidateToken(accessToken, g.secret)
	if err != nil {
		return nil, err
	}

	return &Session{
		MemberID:    claims.UserID,
		Email:       claims.Email,
		Role:        claims.Role,
		AccessToken: accessToken,
		ExpiresAt:   claims.ExpiresAt.Time,
	}, nil
}
