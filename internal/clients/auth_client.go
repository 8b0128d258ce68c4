package clients

import (
	"context"
	"net/http"

	"github.com/quietfield/habitloop/internal/apperr"
)

// AuthClient talks to the credential store.
type AuthClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewAuthClient(baseURL string) *AuthClient {
	return &AuthClient{baseURL: baseURL, httpClient: newHTTPClient(DefaultTimeout)}
}

type verifyTokenResponse struct {
	UserID uint `json:"userId"`
}

// VerifyToken resolves a raw bearer token to a user id. An unknown token is
// an authorization failure; an unreachable or failing store is an upstream
// failure.
func (client *AuthClient) VerifyToken(ctx context.Context, token string) (uint, error) {
	header := http.Header{}
	header.Set("Authorization", "Bearer "+token)

	var decoded verifyTokenResponse
	status, err := doJSON(ctx, client.httpClient, http.MethodGet, client.baseURL+"/verify-token", header, nil, &decoded)
	if err != nil {
		return 0, apperr.Upstream("auth service unavailable", err)
	}

	switch {
	case status >= 200 && status <= 299:
		return decoded.UserID, nil
	case status == http.StatusUnauthorized || status == http.StatusBadRequest:
		return 0, apperr.Unauthorized("invalid token")
	default:
		return 0, apperr.Upstream("auth service unavailable", statusError("auth", status))
	}
}
