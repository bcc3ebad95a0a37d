package models

import "sort"

// User is a registered account. Identity is the username; two users with the
// same username are the same user regardless of other fields.
type User struct {
	Username string
	Email    string
}

// OwnerSet is the set of users allowed to view and modify an entity.
// Unordered, duplicate-free, possibly empty. Construct with NewOwnerSet;
// mutating methods panic on a nil set like any nil map write.
type OwnerSet map[string]User

// NewOwnerSet returns a set containing the given users, deduplicated by username.
func NewOwnerSet(users ...User) OwnerSet {
	s := make(OwnerSet, len(users))
	for _, u := range users {
		s.Add(u)
	}
	return s
}

// Add inserts a user. Users with an empty username are ignored.
func (s OwnerSet) Add(u User) {
	if u.Username == "" {
		return
	}
	s[u.Username] = u
}

// AddAll unions other into s and returns the users that were actually added,
// sorted by username for deterministic iteration.
func (s OwnerSet) AddAll(other OwnerSet) []User {
	var added []User
	for name, u := range other {
		if _, ok := s[name]; ok {
			continue
		}
		s[name] = u
		added = append(added, u)
	}
	sort.Slice(added, func(i, j int) bool { return added[i].Username < added[j].Username })
	return added
}

// Clear removes all members.
func (s OwnerSet) Clear() {
	for name := range s {
		delete(s, name)
	}
}

// Contains reports whether a user with the given username is a member.
func (s OwnerSet) Contains(username string) bool {
	_, ok := s[username]
	return ok
}

// Len returns the number of members.
func (s OwnerSet) Len() int {
	return len(s)
}

// Clone returns an independent copy; mutating the clone does not affect s.
func (s OwnerSet) Clone() OwnerSet {
	c := make(OwnerSet, len(s))
	for name, u := range s {
		c[name] = u
	}
	return c
}

// Members returns the users sorted by username.
func (s OwnerSet) Members() []User {
	members := make([]User, 0, len(s))
	for _, u := range s {
		members = append(members, u)
	}
	sort.Slice(members, func(i, j int) bool { return members[i].Username < members[j].Username })
	return members
}

// Usernames returns the member usernames sorted alphabetically.
func (s OwnerSet) Usernames() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Equal reports whether both sets contain exactly the same usernames.
func (s OwnerSet) Equal(other OwnerSet) bool {
	if len(s) != len(other) {
		return false
	}
	for name := range s {
		if !other.Contains(name) {
			return false
		}
	}
	return true
}
