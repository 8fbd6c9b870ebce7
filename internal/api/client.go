package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"silva_storefront/internal/middleware"

	"go.uber.org/zap"
)

// Client parle à l'API REST distante (auth, catalogue, commandes, admin)
type Client struct {
	baseURL *url.URL
	http    *http.Client
	log     *zap.Logger
}

func NewClient(baseURL string, httpClient *http.Client, logger *zap.Logger) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("API_URL invalide %q: %w", baseURL, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("API_URL invalide %q: schéma ou hôte manquant", baseURL)
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{baseURL: u, http: httpClient, log: logger}, nil
}

type call struct {
	op     string
	method string
	path   string
	query  url.Values
	token  string
	in     any
	out    any
}

// do envoie la requête JSON et décode la réponse dans out.
// Un non-2xx devient une RemoteError portant le champ "error" du corps.
func (c *Client) do(ctx context.Context, r call) error {
	rel := &url.URL{Path: strings.TrimRight(c.baseURL.Path, "/") + r.path}
	if len(r.query) > 0 {
		rel.RawQuery = r.query.Encode()
	}
	u := c.baseURL.ResolveReference(rel)

	var body io.Reader
	if r.in != nil {
		buf, err := json.Marshal(r.in)
		if err != nil {
			return fmt.Errorf("%s: encodage requête: %w", r.op, err)
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, r.method, u.String(), body)
	if err != nil {
		return fmt.Errorf("%s: %w", r.op, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if r.token != "" {
		req.Header.Set("Authorization", "Bearer "+r.token)
	}
	if cid := middleware.GetCorrelationID(ctx); cid != "" {
		req.Header.Set(middleware.HeaderCorrelationID, cid)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn("❌ Backend injoignable", zap.String("op", r.op), zap.Error(err))
		return &RemoteError{Op: r.op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		rerr := &RemoteError{Op: r.op, StatusCode: resp.StatusCode, Message: readErrorMessage(resp.Body)}
		c.log.Info("⚠️ Réponse backend en erreur",
			zap.String("op", r.op),
			zap.Int("status", resp.StatusCode),
			zap.String("message", rerr.Message))
		return rerr
	}

	if r.out == nil || resp.StatusCode == http.StatusNoContent {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(r.out); err != nil && err != io.EOF {
		return &RemoteError{Op: r.op, StatusCode: resp.StatusCode, Message: "réponse illisible", Err: err}
	}
	return nil
}

func readErrorMessage(body io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(body, 64<<10))
	if err != nil || len(raw) == 0 {
		return ""
	}
	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if json.Unmarshal(raw, &payload) == nil {
		if payload.Error != "" {
			return payload.Error
		}
		return payload.Message
	}
	return ""
}
