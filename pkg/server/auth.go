package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/suryakart/suryakart/pkg/log"
	"github.com/suryakart/suryakart/pkg/types"
)

// authMiddleware limits request bodies and resolves the caller from a bearer
// token or the auth cookie. Anonymous requests pass through without a user;
// adminOnly rejects them where a login is required.
func (s *Server) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		ctx = log.With(ctx, log.Ctx(ctx).With(slog.String("reqPath", r.URL.Path)))

		if r.Body != nil {
			// Limit body size to 1MB to prevent DoS
			r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
		}

		if s.bypassAuth {
			ctx = context.WithValue(ctx, userContextKey, types.User{Admin: true})
			next.ServeHTTP(w, r.WithContext(ctx))
			return
		}

		var token string
		if authHeader := r.Header.Get("Authorization"); authHeader != "" {
			if !strings.HasPrefix(authHeader, "Bearer ") {
				log.Ctx(ctx).WarnContext(ctx, "invalid auth header")
				writeJSONError(w, "invalid auth header", http.StatusBadRequest)
				return
			}
			token = strings.TrimPrefix(authHeader, "Bearer ")
		} else if authCookie, err := r.Cookie(authTokenCookie); err == nil {
			token = authCookie.Value
		} else if !errors.Is(err, http.ErrNoCookie) {
			log.Ctx(ctx).ErrorContext(ctx, "failed to get auth cookie", slog.Any("error", err))
			writeJSONError(w, "invalid auth cookie", http.StatusBadRequest)
			return
		}

		// logout must work even with an expired token
		if token != "" && r.URL.Path != "/api/auth/logout" && r.URL.Path != "/api/auth/login" {
			email, subject, _, err := s.authenticateToken(ctx, token, "")
			if err != nil {
				log.Ctx(ctx).WarnContext(ctx, "auth token validation failed", slog.Any("error", err))
				s.clearCookie(w)
				writeJSONError(w, "invalid auth token", http.StatusUnauthorized)
				return
			}
			user := types.User{
				ID:    subject,
				Email: email,
			}
			user.Admin = s.isAdmin(user)
			ctx = context.WithValue(ctx, userContextKey, user)
			ctx = log.With(ctx, log.Ctx(ctx).With(slog.String("authUserID", subject)))
			log.Ctx(ctx).DebugContext(ctx, "authenticated request", slog.String("email", email), slog.Bool("admin", user.Admin))
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// adminOnly wraps h so only users on the admin email list can reach it.
func (s *Server) adminOnly(h http.HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		user, ok := s.getUser(r)
		if !ok {
			log.Ctx(ctx).WarnContext(ctx, "unauthenticated admin request")
			writeJSONError(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		if !user.Admin {
			log.Ctx(ctx).WarnContext(ctx, "non-admin access to admin endpoint", slog.String("email", user.Email))
			writeStatusError(w, http.StatusForbidden)
			return
		}
		h(w, r)
	})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Token  string `json:"token"`
		Client string `json:"client"`
	}
	if err := decodeJSON(r, &req); err != nil {
		// since we failed to read, don't return JSON error
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	email, subject, expires, err := s.authenticateToken(r.Context(), req.Token, req.Client)
	if err != nil {
		log.Ctx(r.Context()).WarnContext(r.Context(), "failed to validate id token", slog.Any("error", err))
		writeJSONError(w, "invalid id token", http.StatusUnauthorized)
		return
	}

	if email == "" {
		log.Ctx(r.Context()).WarnContext(r.Context(), "invalid email in id token")
		writeJSONError(w, "invalid oidc claims", http.StatusUnauthorized)
		return
	}

	log.Ctx(r.Context()).InfoContext(r.Context(), "login token validated successfully", slog.String("email", email), slog.String("subject", subject))

	http.SetCookie(w, &http.Cookie{
		Name:     authTokenCookie,
		Value:    req.Token,
		Expires:  expires,
		HttpOnly: true,
		Secure:   true,
		Path:     "/",
		SameSite: http.SameSiteStrictMode,
	})

	w.WriteHeader(http.StatusOK)
}

func (s *Server) clearCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     authTokenCookie,
		Value:    "",
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   true,
		Path:     "/",
		SameSite: http.SameSiteStrictMode,
		MaxAge:   -1,
	})
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	s.clearCookie(w)
	w.WriteHeader(http.StatusOK)
}

type authStatusResponse struct {
	LoggedIn     bool              `json:"loggedIn"`
	Email        string            `json:"email"`
	Admin        bool              `json:"admin"`
	AuthRequired bool              `json:"authRequired"`
	ClientIDs    map[string]string `json:"clientIDs"`
}

func (s *Server) handleAuthStatus(w http.ResponseWriter, r *http.Request) {
	user, loggedIn := s.getUser(r)
	writeJSON(w, http.StatusOK, authStatusResponse{
		LoggedIn:     loggedIn,
		Email:        user.Email,
		Admin:        user.Admin,
		AuthRequired: len(s.oidcAudiences) > 0,
		ClientIDs:    s.oidcAudiences,
	})
}

func (s *Server) authenticateToken(ctx context.Context, token string, specificClient string) (string, string, time.Time, error) {
	var errs []error

	for providerName, verifier := range s.oidcVerifiers {
		if specificClient != "" && providerName != specificClient {
			continue
		}
		idToken, err := verifier(ctx, token)
		if err == nil {
			var claims struct {
				Email string `json:"email"`
			}
			err = idToken.Claims(&claims)
			if err == nil {
				return claims.Email, idToken.Subject, idToken.Expiry, nil
			}
		}
		errs = append(errs, fmt.Errorf("%s verifier failed: %v", providerName, err))
	}

	if len(errs) > 1 {
		return "", "", time.Time{}, errors.Join(errs...)
	}
	if len(errs) == 1 {
		return "", "", time.Time{}, errs[0]
	}
	return "", "", time.Time{}, errors.New("no valid audiences configured or token invalid")
}

