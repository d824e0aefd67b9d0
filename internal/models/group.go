package models

// Group represents a set of people sharing expenses.
type Group struct {
	// ID is the unique identifier for the group (UUID format).
	ID string

	// PublicID is the human-shareable identifier used to join the group.
	// It defaults to ID and can be changed by an admin.
	PublicID string

	// Name is the display name of the group (e.g., "Roommates", "Lisbon Trip").
	Name string

	// Members is the roster of the group, in join order.
	// Only populated by reads that load members.
	Members []*Member

	// CreatedAt is the Unix timestamp when the group was created.
	CreatedAt int64
}

// MemberNames returns a lookup of member ID to display name.
func (g *Group) MemberNames() map[string]string {
	names := make(map[string]string, len(g.Members))
	for _, m := range g.Members {
		names[m.ID] = m.Name
	}
	return names
}

// MemberIDs returns the IDs of every member of the group.
func (g *Group) MemberIDs() []string {
	ids := make([]string, len(g.Members))
	for i, m := range g.Members {
		ids[i] = m.ID
	}
	return ids
}

// FindMember returns the member with the given ID, or nil.
func (g *Group) FindMember(memberID string) *Member {
	for _, m := range g.Members {
		if m.ID == memberID {
			return m
		}
	}
	return nil
}
