package domain

type UserRole string

const (
	UserRoleAdmin UserRole = "admin"
	UserRoleUser  UserRole = "user"
)

type User struct {
	ID         int      `json:"id"`
	Email      string   `json:"email"`
	Password   string   `json:"password"` // stored verbatim; credential matching is trivial equality
	Role       UserRole `json:"role"`
	Name       string   `json:"name"`
	JoinedDate string   `json:"joined_date"`
}

// Admin is the single seeded administrator record.
type Admin struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}
