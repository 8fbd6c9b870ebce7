package cart

import (
	"strings"

	"silva_storefront/internal/models"

	"github.com/shopspring/decimal"
)

// Line est une ligne du panier : un produit, son prix capturé à l'ajout et sa quantité (≥ 1)
type Line struct {
	ProductID int64           `json:"product_id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
}

// Subtotal = prix unitaire × quantité
func (l Line) Subtotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Contact saisi au moment du paiement, ne fait pas partie du panier
type Contact struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Notes string `json:"notes"`
}

// Snapshot est la vue sérialisée du panier (API JSON et websocket)
type Snapshot struct {
	Items []Line          `json:"items"`
	Total decimal.Decimal `json:"total"`
	Count int             `json:"count"`
}

// Cart garde les lignes dans l'ordre d'insertion, une seule ligne par produit.
// Il n'est pas sûr pour un usage concurrent : le propriétaire (la session) sérialise les accès.
type Cart struct {
	lines []Line
}

func New() *Cart {
	return &Cart{lines: []Line{}}
}

// MaxQuantity borne la quantité d'une ligne
const MaxQuantity = 999

// Add incrémente la ligne existante ou en crée une avec quantité 1 au prix courant du produit.
// Aucun contrôle de stock ici : l'appelant filtre les produits épuisés.
func (c *Cart) Add(p models.Product) {
	for i := range c.lines {
		if c.lines[i].ProductID == p.ID {
			if c.lines[i].Quantity < MaxQuantity {
				c.lines[i].Quantity++
			}
			return
		}
	}
	c.lines = append(c.lines, Line{
		ProductID: p.ID,
		Name:      p.Name,
		UnitPrice: p.Price,
		Quantity:  1,
	})
}

// UpdateQuantity applique delta en bornant la quantité entre 1 et MaxQuantity ; ne supprime jamais la ligne.
// Renvoie false si le produit n'est pas dans le panier.
func (c *Cart) UpdateQuantity(productID int64, delta int) bool {
	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			c.lines[i].Quantity = clampQuantity(c.lines[i].Quantity, delta)
			return true
		}
	}
	return false
}

// clampQuantity calcule q+delta sans débordement, borné à [1, MaxQuantity]
func clampQuantity(q, delta int) int {
	switch {
	case delta > MaxQuantity-q:
		return MaxQuantity
	case delta < 1-q:
		return 1
	default:
		return q + delta
	}
}

// Remove supprime la ligne ; sans effet si le produit est absent
func (c *Cart) Remove(productID int64) {
	kept := c.lines[:0]
	for _, l := range c.lines {
		if l.ProductID != productID {
			kept = append(kept, l)
		}
	}
	c.lines = kept
}

// Total = Σ prix unitaire × quantité, 0 pour un panier vide
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, l := range c.lines {
		total = total.Add(l.Subtotal())
	}
	return total
}

// Lines renvoie une copie des lignes, dans l'ordre d'insertion
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *Cart) Len() int { return len(c.lines) }

func (c *Cart) IsEmpty() bool { return len(c.lines) == 0 }

// Quantity renvoie la quantité d'un produit, 0 s'il est absent
func (c *Cart) Quantity(productID int64) int {
	for _, l := range c.lines {
		if l.ProductID == productID {
			return l.Quantity
		}
	}
	return 0
}

func (c *Cart) Snapshot() Snapshot {
	return Snapshot{
		Items: c.Lines(),
		Total: c.Total(),
		Count: len(c.lines),
	}
}

// ToOrderRequest construit le corps de POST /api/orders.
// Les prix ne sont pas transmis : le serveur fait foi.
func (c *Cart) ToOrderRequest(contact Contact) (models.OrderRequest, error) {
	if strings.TrimSpace(contact.Name) == "" {
		return models.OrderRequest{}, newValidationError("name", "le nom est obligatoire")
	}
	if strings.TrimSpace(contact.Email) == "" {
		return models.OrderRequest{}, newValidationError("email", "l'email est obligatoire")
	}
	if c.IsEmpty() {
		return models.OrderRequest{}, newValidationError("items", "le panier est vide")
	}

	items := make([]models.OrderRequestItem, 0, len(c.lines))
	for _, l := range c.lines {
		items = append(items, models.OrderRequestItem{ProductID: l.ProductID, Quantity: l.Quantity})
	}

	return models.OrderRequest{
		Items:        items,
		ContactName:  strings.TrimSpace(contact.Name),
		ContactEmail: strings.TrimSpace(contact.Email),
		ContactPhone: strings.TrimSpace(contact.Phone),
		ContactInfo:  strings.TrimSpace(contact.Notes),
	}, nil
}

// Settle retire ce qu'une commande acceptée a soumis.
// Les lignes ajoutées pendant la soumission restent, tout comme les quantités ajoutées en plus.
func (c *Cart) Settle(items []models.OrderRequestItem) {
	submitted := make(map[int64]int, len(items))
	for _, it := range items {
		submitted[it.ProductID] += it.Quantity
	}

	kept := c.lines[:0]
	for _, l := range c.lines {
		if q, ok := submitted[l.ProductID]; ok {
			if l.Quantity <= q {
				continue
			}
			l.Quantity -= q
		}
		kept = append(kept, l)
	}
	c.lines = kept
}

// Clear vide le panier (après une commande réussie ou sur demande)
func (c *Cart) Clear() {
	c.lines = []Line{}
}
