package auth

import "fmt"

// Role est le variant fermé des profils de l'application.
// Tout switch sur Role doit traiter les trois cas.
type Role int

const (
	RoleBuyer Role = iota + 1
	RoleSeller
	RoleAdmin
)

// ParseRole convertit le rôle renvoyé par l'API ("buyer", "seller", "superuser")
func ParseRole(s string) (Role, error) {
	switch s {
	case "buyer":
		return RoleBuyer, nil
	case "seller":
		return RoleSeller, nil
	case "superuser", "admin":
		return RoleAdmin, nil
	default:
		return 0, fmt.Errorf("rôle inconnu: %q", s)
	}
}

func (r Role) String() string {
	switch r {
	case RoleBuyer:
		return "buyer"
	case RoleSeller:
		return "seller"
	case RoleAdmin:
		return "superuser"
	default:
		return fmt.Sprintf("Role(%d)", int(r))
	}
}

// HomePath est le tableau de bord vers lequel l'accueil redirige
func (r Role) HomePath() string {
	switch r {
	case RoleBuyer:
		return "/buyer"
	case RoleSeller:
		return "/seller"
	case RoleAdmin:
		return "/admin"
	default:
		return "/"
	}
}

// Allows indique si ce rôle peut ouvrir une page réservée à required.
// Le super-utilisateur passe partout.
func (r Role) Allows(required Role) bool {
	switch r {
	case RoleAdmin:
		return true
	case RoleBuyer, RoleSeller:
		return r == required
	default:
		return false
	}
}
