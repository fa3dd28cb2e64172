package identity

import (
	"context"
	"fmt"

	"github.com/Nerzal/gocloak/v13"
)

// adminAPI is the subset of *gocloak.GoCloak used here.
type adminAPI interface {
	LoginClient(ctx context.Context, clientID, clientSecret, realm string, scopes ...string) (*gocloak.JWT, error)
	CreateUser(ctx context.Context, token, realm string, user gocloak.User) (string, error)
	GetRealmRole(ctx context.Context, token, realm, roleName string) (*gocloak.Role, error)
	AddRealmRoleToUser(ctx context.Context, token, realm, userID string, roles []gocloak.Role) error
	GetUsers(ctx context.Context, token, realm string, params gocloak.GetUsersParams) ([]*gocloak.User, error)
	DeleteUser(ctx context.Context, token, realm, userID string) error
}

type KeycloakConfig struct {
	ServerURL    string
	AuthRealm    string
	TargetRealm  string
	ClientID     string
	ClientSecret string
}

// KeycloakProvider authenticates against AuthRealm with client credentials and manages users
// in TargetRealm.
type KeycloakProvider struct {
	client adminAPI
	cfg    KeycloakConfig
}

func NewKeycloakProvider(cfg KeycloakConfig) *KeycloakProvider {
	return &KeycloakProvider{client: gocloak.NewClient(cfg.ServerURL), cfg: cfg}
}

func (p *KeycloakProvider) token(ctx context.Context) (string, error) {
	jwt, err := p.client.LoginClient(ctx, p.cfg.ClientID, p.cfg.ClientSecret, p.cfg.AuthRealm)
	if err != nil {
		return "", fmt.Errorf("keycloak login: %w", err)
	}
	return jwt.AccessToken, nil
}

func (p *KeycloakProvider) CreateAccount(ctx context.Context, account Account) (string, error) {
	token, err := p.token(ctx)
	if err != nil {
		return "", err
	}

	attributes := make(map[string][]string, len(account.Attributes))
	for k, v := range account.Attributes {
		attributes[k] = []string{v}
	}
	user := gocloak.User{
		Username:   gocloak.StringP(account.Username),
		FirstName:  gocloak.StringP(account.FirstName),
		LastName:   gocloak.StringP(account.LastName),
		Enabled:    gocloak.BoolP(true),
		Attributes: &attributes,
		Credentials: &[]gocloak.CredentialRepresentation{{
			Type:      gocloak.StringP("password"),
			Value:     gocloak.StringP(account.Password),
			Temporary: gocloak.BoolP(true),
		}},
	}
	if account.Email != "" {
		user.Email = gocloak.StringP(account.Email)
		user.EmailVerified = gocloak.BoolP(false)
	}

	id, err := p.client.CreateUser(ctx, token, p.cfg.TargetRealm, user)
	if err != nil {
		return "", fmt.Errorf("create user %q: %w", account.Username, err)
	}
	return id, nil
}

func (p *KeycloakProvider) AssignRole(ctx context.Context, userID, role string) error {
	token, err := p.token(ctx)
	if err != nil {
		return err
	}
	realmRole, err := p.client.GetRealmRole(ctx, token, p.cfg.TargetRealm, role)
	if err != nil {
		return fmt.Errorf("get realm role %q: %w", role, err)
	}
	if err := p.client.AddRealmRoleToUser(ctx, token, p.cfg.TargetRealm, userID, []gocloak.Role{*realmRole}); err != nil {
		return fmt.Errorf("assign role %q: %w", role, err)
	}
	return nil
}

func (p *KeycloakProvider) FindByAttribute(ctx context.Context, name, value string) ([]string, error) {
	return p.findUsers(ctx, gocloak.GetUsersParams{Q: gocloak.StringP(name + ":" + value)})
}

func (p *KeycloakProvider) FindByUsername(ctx context.Context, username string) ([]string, error) {
	return p.findUsers(ctx, gocloak.GetUsersParams{
		Username: gocloak.StringP(username),
		Exact:    gocloak.BoolP(true),
	})
}

func (p *KeycloakProvider) findUsers(ctx context.Context, params gocloak.GetUsersParams) ([]string, error) {
	token, err := p.token(ctx)
	if err != nil {
		return nil, err
	}
	users, err := p.client.GetUsers(ctx, token, p.cfg.TargetRealm, params)
	if err != nil {
		return nil, fmt.Errorf("search users: %w", err)
	}
	ids := make([]string, 0, len(users))
	for _, u := range users {
		if u != nil && u.ID != nil {
			ids = append(ids, *u.ID)
		}
	}
	return ids, nil
}

func (p *KeycloakProvider) DeleteAccount(ctx context.Context, userID string) error {
	token, err := p.token(ctx)
	if err != nil {
		return err
	}
	if err := p.client.DeleteUser(ctx, token, p.cfg.TargetRealm, userID); err != nil {
		return fmt.Errorf("delete user %s: %w", userID, err)
	}
	return nil
}
