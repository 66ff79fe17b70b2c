package model

// UserRole distinguishes the two user variants.
type UserRole string

const (
	RoleAdmin    UserRole = "ADMIN"
	RoleCustomer UserRole = "CUSTOMER"
)

func (r UserRole) IsValid() bool {
	switch r {
	case RoleAdmin, RoleCustomer:
		return true
	}
	return false
}

// User is either an admin or a customer. FullName, Email and Tickets are
// only populated for customers. Passwords are stored and compared as
// plaintext; hashing is a known follow-up if this ever leaves admin tooling.
type User struct {
	Username string   `json:"username" db:"username"`
	Password string   `json:"-" db:"password"`
	Role     UserRole `json:"role" db:"user_type"`
	FullName string   `json:"full_name,omitempty" db:"full_name"`
	Email    string   `json:"email,omitempty" db:"email"`

	Tickets []*Ticket `json:"-" db:"-"`
}

func NewAdmin(username, password string) *User {
	return &User{Username: username, Password: password, Role: RoleAdmin}
}

func NewCustomer(username, password, fullName, email string) *User {
	return &User{
		Username: username,
		Password: password,
		Role:     RoleCustomer,
		FullName: fullName,
		Email:    email,
		Tickets:  make([]*Ticket, 0),
	}
}

// Authenticate compares the provided password with the stored one.
func (u *User) Authenticate(password string) bool {
	return u.Password == password
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

func (u *User) IsCustomer() bool {
	return u.Role == RoleCustomer
}

// AddTicket records a purchased ticket on the customer. Tickets are never
// removed.
func (u *User) AddTicket(ticket *Ticket) {
	u.Tickets = append(u.Tickets, ticket)
}
