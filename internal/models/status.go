package models

type OrderStatus string

const (
	StatusPending    OrderStatus = "pending"
	StatusProcessing OrderStatus = "processing"
	StatusCompleted  OrderStatus = "completed"
	StatusCancelled  OrderStatus = "cancelled"
)

// NextStatuses liste les transitions proposées à l'écran.
// Le backend reste seul juge de la validité d'une transition.
func (s OrderStatus) NextStatuses() []OrderStatus {
	switch s {
	case StatusPending:
		return []OrderStatus{StatusProcessing}
	case StatusProcessing:
		return []OrderStatus{StatusCompleted, StatusCancelled}
	default:
		return nil
	}
}

// IsFinal indique un statut sans transition sortante
func (s OrderStatus) IsFinal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// OrderView est une commande telle qu'affichée au vendeur ou à l'admin,
// avec les boutons de transition à proposer.
type OrderView struct {
	Order
	Actions []OrderStatus `json:"actions"`
	Final   bool          `json:"final"`
}

func ViewOrders(orders []Order) []OrderView {
	views := make([]OrderView, 0, len(orders))
	for _, o := range orders {
		actions := o.Status.NextStatuses()
		if actions == nil {
			actions = []OrderStatus{}
		}
		views = append(views, OrderView{Order: o, Actions: actions, Final: o.Status.IsFinal()})
	}
	return views
}
