package sheets

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/sheets/v4"
)

// ErrNoAuthCode is returned when the OAuth callback arrives without a code.
var ErrNoAuthCode = errors.New("no authorization code received")

const (
	callbackPath = "/callback"
	authTimeout  = 5 * time.Minute
)

const callbackPage = `<html><body>
<h1>%s</h1>
<p>%s</p>
<script>window.setTimeout(function(){window.close();}, 3000);</script>
</body></html>`

func oauthConfig(clientID, clientSecret, redirectURL string) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		Endpoint:     google.Endpoint,
		RedirectURL:  redirectURL,
		Scopes:       []string{sheets.SpreadsheetsScope},
	}
}

// callbackHandler forwards the authorization code, or the failure, from the
// browser redirect to the waiting flow.
func callbackHandler(codes chan<- string, errs chan<- error) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if msg := r.URL.Query().Get("error"); msg != "" {
			errs <- fmt.Errorf("authorization denied: %s", msg)
			_, _ = fmt.Fprintf(w, callbackPage, "Authentication Failed", "Access was denied. Please try again.")
			return
		}

		code := r.URL.Query().Get("code")
		if code == "" {
			errs <- ErrNoAuthCode
			_, _ = fmt.Fprintf(w, callbackPage, "Authentication Failed", "No authorization code received. Please try again.")
			return
		}

		codes <- code
		_, _ = fmt.Fprintf(w, callbackPage, "Authentication Successful!", "You can close this window and return to the terminal.")
	})
}

// Authorize runs the installed-app OAuth2 flow against a loopback listener on
// addr and returns the token. The caller is shown the consent URL through
// prompt. The returned token carries the refresh token that Config expects.
func Authorize(ctx context.Context, clientID, clientSecret, addr string, prompt func(url string)) (*oauth2.Token, error) {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("failed to start callback server: %w", err)
	}

	cfg := oauthConfig(clientID, clientSecret, "http://"+listener.Addr().String()+callbackPath)

	codes := make(chan string, 1)
	errs := make(chan error, 1)

	mux := http.NewServeMux()
	mux.Handle(callbackPath, callbackHandler(codes, errs))
	server := &http.Server{Handler: mux, ReadHeaderTimeout: 10 * time.Second}

	go func() {
		if serveErr := server.Serve(listener); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			errs <- fmt.Errorf("callback server failed: %w", serveErr)
		}
	}()
	defer func() {
		if shutdownErr := server.Shutdown(context.WithoutCancel(ctx)); shutdownErr != nil {
			slog.Warn("error shutting down callback server", "error", shutdownErr)
		}
	}()

	prompt(cfg.AuthCodeURL("kesi-ledger", oauth2.AccessTypeOffline, oauth2.ApprovalForce))

	var code string
	select {
	case code = <-codes:
		slog.Debug("received authorization code")
	case err := <-errs:
		return nil, err
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(authTimeout):
		return nil, fmt.Errorf("authentication timeout: no response received within %s", authTimeout)
	}

	token, err := cfg.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange authorization code: %w", err)
	}

	return token, nil
}
