package tracker

import "taskmanager/local-app/internal/models"

// UserRegistry maps usernames to users and remembers registration order.
// It only grows.
type UserRegistry struct {
	users []models.User
	index map[string]int
}

// NewUserRegistry builds a registry from stored users. A repeated username
// keeps its first position and takes the later password.
func NewUserRegistry(users []models.User) *UserRegistry {
	r := &UserRegistry{index: make(map[string]int, len(users))}
	for _, u := range users {
		if i, ok := r.index[u.Username]; ok {
			r.users[i] = u
			continue
		}
		r.index[u.Username] = len(r.users)
		r.users = append(r.users, u)
	}
	return r
}

// Exists reports whether username is registered.
func (r *UserRegistry) Exists(username string) bool {
	_, ok := r.index[username]
	return ok
}

// Get returns the user registered as username.
func (r *UserRegistry) Get(username string) (models.User, bool) {
	i, ok := r.index[username]
	if !ok {
		return models.User{}, false
	}
	return r.users[i], true
}

// Add registers u, rejecting duplicates.
func (r *UserRegistry) Add(u models.User) error {
	if r.Exists(u.Username) {
		return ErrUserExists
	}
	r.index[u.Username] = len(r.users)
	r.users = append(r.users, u)
	return nil
}

// removeLast undoes the most recent Add.
func (r *UserRegistry) removeLast() {
	if len(r.users) == 0 {
		return
	}
	last := r.users[len(r.users)-1]
	delete(r.index, last.Username)
	r.users = r.users[:len(r.users)-1]
}

// Users returns a copy of all users in registration order.
func (r *UserRegistry) Users() []models.User {
	out := make([]models.User, len(r.users))
	copy(out, r.users)
	return out
}

// Len returns the number of registered users.
func (r *UserRegistry) Len() int {
	return len(r.users)
}
