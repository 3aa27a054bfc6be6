package auth

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"time"
)

// googleVerifier valida id_tokens contra o endpoint tokeninfo do Google.
type googleVerifier struct {
	endpoint string
	clientID string
	client   *http.Client
}

type googleProfile struct {
	Sub           string `json:"sub"`
	Email         string `json:"email"`
	EmailVerified string `json:"email_verified"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
	Audience      string `json:"aud"`
}

func newGoogleVerifier() *googleVerifier {
	endpoint := os.Getenv("google_tokeninfo_url")
	if endpoint == "" {
		endpoint = "https://oauth2.googleapis.com/tokeninfo"
	}
	return &googleVerifier{
		endpoint: endpoint,
		clientID: os.Getenv("google_client_id"),
		client:   &http.Client{Timeout: 10 * time.Second},
	}
}

func (v *googleVerifier) verify(idToken string) (*googleProfile, error) {
	resp, err := v.client.Get(v.endpoint + "?id_token=" + url.QueryEscape(idToken))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("tokeninfo retornou status %d", resp.StatusCode)
	}

	var profile googleProfile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, err
	}
	if profile.Sub == "" || profile.Email == "" {
		return nil, fmt.Errorf("resposta do tokeninfo sem sub ou email")
	}
	if profile.EmailVerified != "true" {
		return nil, fmt.Errorf("email do Google não verificado")
	}
	if v.clientID != "" && profile.Audience != v.clientID {
		return nil, fmt.Errorf("audience do token não corresponde ao client id")
	}
	return &profile, nil
}
