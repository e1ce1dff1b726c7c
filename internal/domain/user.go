package domain

import "time"

type UserRole string

const (
	UserRoleUser  UserRole = "USER"
	UserRoleAdmin UserRole = "ADMIN"
)

type User struct {
	ID          string     `json:"id"`
	FirstName   string     `json:"firstName"`
	MiddleName  *string    `json:"middleName,omitempty"`
	LastName    string     `json:"lastName"`
	Email       string     `json:"email"`
	Password    string     `json:"password"`
	Role        UserRole   `json:"role"`
	PhoneNumber *string    `json:"phoneNumber,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
}

// ValidateNewUser checks the create-time required fields and defaults the
// role to USER when absent.
func ValidateNewUser(u *User) error {
	if u.FirstName == "" || u.LastName == "" || u.Email == "" || u.Password == "" {
		return badRequest("Pass the required fields")
	}
	if u.Role == "" {
		u.Role = UserRoleUser
	}
	return nil
}

type UserPatch struct {
	FirstName   *string   `json:"firstName"`
	MiddleName  *string   `json:"middleName"`
	LastName    *string   `json:"lastName"`
	Email       *string   `json:"email"`
	Password    *string   `json:"password"`
	Role        *UserRole `json:"role"`
	PhoneNumber *string   `json:"phoneNumber"`
}

func (p UserPatch) Apply(u *User) {
	if p.FirstName != nil {
		u.FirstName = *p.FirstName
	}
	// middleName is overwritten unconditionally: a patch that omits it clears
	// it. Inherited from the original backend and kept so existing clients
	// see identical behavior.
	u.MiddleName = p.MiddleName
	if p.LastName != nil {
		u.LastName = *p.LastName
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.Password != nil {
		u.Password = *p.Password
	}
	if p.Role != nil {
		u.Role = *p.Role
	}
	if p.PhoneNumber != nil {
		u.PhoneNumber = p.PhoneNumber
	}
}
