package permissions

// User is a named account and the roles granted to it.
type User struct {
	Username string    `json:"username" yaml:"username"`
	Roles    StringSet `json:"roles" yaml:"roles"`
}

// HasRole checks whether the user has a specific role.
func (u User) HasRole(role string) bool {
	return u.Roles.Contains(role)
}

func (u User) Equal(other User) bool {
	return u.Username == other.Username && u.Roles.Equal(other.Roles)
}

// Roster is the ordered list of known users.
type Roster []User

// Find returns the user with the given username.
func (r Roster) Find(username string) (User, bool) {
	for _, u := range r {
		if u.Username == username {
			return User{Username: u.Username, Roles: u.Roles.clone()}, true
		}
	}
	return User{}, false
}

// Usernames returns the usernames in roster order.
func (r Roster) Usernames() []string {
	names := make([]string, len(r))
	for i, u := range r {
		names[i] = u.Username
	}
	return names
}

// Equal compares rosters position by position.
func (r Roster) Equal(other Roster) bool {
	if len(r) != len(other) {
		return false
	}
	for i := range r {
		if !r[i].Equal(other[i]) {
			return false
		}
	}
	return true
}

func (r Roster) clone() Roster {
	out := make(Roster, len(r))
	for i, u := range r {
		out[i] = User{Username: u.Username, Roles: u.Roles.clone()}
	}
	return out
}
