package handlers

import (
	"silva_storefront/internal/api"
	"silva_storefront/internal/catalog"
	"silva_storefront/internal/session"

	"github.com/gorilla/sessions"
	"go.uber.org/zap"
)

// Handler porte les dépendances partagées par toutes les routes du storefront
type Handler struct {
	api       *api.Client
	catalog   *catalog.Service
	sessions  *session.Manager
	cookies   sessions.Store
	jwtSecret []byte
	origins   []string
	log       *zap.Logger
}

type Deps struct {
	API      *api.Client
	Catalog  *catalog.Service
	Sessions *session.Manager
	Cookies  sessions.Store
	// JWTSecret vide : le token du backend est lu sans vérification de signature
	JWTSecret string
	// AllowedOrigins sert au contrôle d'origine du websocket panier
	AllowedOrigins []string
	Logger         *zap.Logger
}

func New(d Deps) *Handler {
	logger := d.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		api:       d.API,
		catalog:   d.Catalog,
		sessions:  d.Sessions,
		cookies:   d.Cookies,
		jwtSecret: []byte(d.JWTSecret),
		origins:   d.AllowedOrigins,
		log:       logger,
	}
}
