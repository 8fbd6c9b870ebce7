package models

import "github.com/shopspring/decimal"

// User est l'enregistrement renvoyé par /api/auth/login, /register et /me
type User struct {
	ID            int64            `json:"id"`
	Email         string           `json:"email"`
	Role          string           `json:"role"`
	Earnings      *decimal.Decimal `json:"earnings,omitempty"`
	BinanceWallet string           `json:"binance_wallet,omitempty"`
	IsActive      *bool            `json:"is_active,omitempty"`
}

// EarningsOrZero renvoie les gains du vendeur, 0 si absents
func (u User) EarningsOrZero() decimal.Decimal {
	if u.Earnings == nil {
		return decimal.Zero
	}
	return *u.Earnings
}

type Credentials struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type Registration struct {
	Email         string `json:"email" binding:"required"`
	Password      string `json:"password" binding:"required"`
	BinanceWallet string `json:"binance_wallet"`
}

// AuthResponse est la réponse de login/register
type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// Seller vu depuis le panneau admin
type Seller struct {
	ID            int64            `json:"id"`
	Email         string           `json:"email"`
	BinanceWallet string           `json:"binance_wallet,omitempty"`
	IsActive      bool             `json:"is_active"`
	Earnings      *decimal.Decimal `json:"earnings,omitempty"`
}

type SellerInput struct {
	Email         string `json:"email" binding:"required"`
	Password      string `json:"password" binding:"required"`
	BinanceWallet string `json:"binance_wallet"`
}
