package middleware

import (
	"net/http"
	"time"

	"silva_storefront/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"
)

const (
	CookieName   = "silva_session"
	sessionIDKey = "sid"
	issuedAtKey  = "iat"
	ctxSession   = "session"
)

// NewCookieStore construit le store signé qui transporte l'identifiant de session.
// Le cookie ne contient que l'id ; token et panier restent côté serveur.
func NewCookieStore(secret string, ttl time.Duration, secure bool) *sessions.CookieStore {
	store := sessions.NewCookieStore([]byte(secret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
	return store
}

var now = time.Now

// LoadSession rattache la session active au contexte gin quand le cookie est valide.
// Passée la moitié de sa durée de vie, le cookie est réémis : comme la session côté serveur,
// il n'expire qu'après SESSION_TTL d'inactivité.
func LoadSession(store sessions.Store, mgr *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		cookie, err := store.Get(c.Request, CookieName)
		if err == nil {
			if sid, ok := cookie.Values[sessionIDKey].(string); ok && sid != "" {
				if s, ok := mgr.Get(sid); ok {
					c.Set(ctxSession, s)
					if needsRefresh(cookie) {
						cookie.Values[issuedAtKey] = now().Unix()
						_ = cookie.Save(c.Request, c.Writer)
					}
				}
			}
		}
		c.Next()
	}
}

func needsRefresh(cookie *sessions.Session) bool {
	if cookie.Options == nil || cookie.Options.MaxAge <= 0 {
		return false
	}
	issued, ok := cookie.Values[issuedAtKey].(int64)
	if !ok {
		return true
	}
	age := now().Sub(time.Unix(issued, 0))
	return age > time.Duration(cookie.Options.MaxAge)*time.Second/2
}

// RequireSession refuse les requêtes sans session active
func RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if CurrentSession(c) == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Non authentifié"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentSession renvoie la session chargée par LoadSession, ou nil
func CurrentSession(c *gin.Context) *session.Session {
	v, ok := c.Get(ctxSession)
	if !ok {
		return nil
	}
	s, _ := v.(*session.Session)
	return s
}

// StartSession écrit le cookie pour s et l'attache à la requête courante
func StartSession(c *gin.Context, store sessions.Store, s *session.Session) error {
	cookie, _ := store.Get(c.Request, CookieName)
	cookie.Values[sessionIDKey] = s.ID
	cookie.Values[issuedAtKey] = now().Unix()
	if err := cookie.Save(c.Request, c.Writer); err != nil {
		return err
	}
	c.Set(ctxSession, s)
	return nil
}

// EndSession expire le cookie ; la session elle-même est détruite par le Manager
func EndSession(c *gin.Context, store sessions.Store) error {
	cookie, _ := store.Get(c.Request, CookieName)
	delete(cookie.Values, sessionIDKey)
	delete(cookie.Values, issuedAtKey)
	if cookie.Options == nil {
		cookie.Options = &sessions.Options{Path: "/"}
	}
	cookie.Options.MaxAge = -1
	c.Set(ctxSession, nil)
	return cookie.Save(c.Request, c.Writer)
}
