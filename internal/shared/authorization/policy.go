package authorization

// Actor is the authenticated caller performing an operation.
type Actor struct {
	ID   uint
	Role UserRole
}

// TicketRefs carries the two user references a visibility decision needs.
type TicketRefs struct {
	CreatorID  uint
	AssigneeID *uint
}

// CanViewTicket decides read access to a single ticket: MANAGER always,
// SUPPORT only when the ticket is assigned to them, USER only when they
// created it. Callers must resolve existence first so that an absent
// ticket yields not-found rather than access-denied.
func CanViewTicket(actor Actor, ticket TicketRefs) bool {
	switch actor.Role {
	case RoleManager:
		return true
	case RoleSupport:
		return ticket.AssigneeID != nil && *ticket.AssigneeID == actor.ID
	case RoleUser:
		return ticket.CreatorID == actor.ID
	}
	return false
}

// ListScope is the query-time restriction for ticket listings.
type ListScope struct {
	// All means no restriction (MANAGER).
	All bool
	// CreatorID, when non-nil, restricts to tickets created by that user.
	CreatorID *uint
	// AssigneeID, when non-nil, restricts to tickets assigned to that user.
	AssigneeID *uint
}

// ListScopeFor returns the listing restriction for the actor's role.
// The filter is applied in the storage query, never post-filtered.
func ListScopeFor(actor Actor) ListScope {
	switch actor.Role {
	case RoleManager:
		return ListScope{All: true}
	case RoleSupport:
		id := actor.ID
		return ListScope{AssigneeID: &id}
	default:
		id := actor.ID
		return ListScope{CreatorID: &id}
	}
}

// CanMutateComment decides edit/delete access to a comment: the author
// or a MANAGER. Deliberately independent of ticket visibility, so an
// author keeps control of their comment even after a reassignment.
func CanMutateComment(actor Actor, authorID uint) bool {
	return actor.Role.IsManager() || actor.ID == authorID
}

// CanCreateTicket: USER or MANAGER only. SUPPORT cannot open tickets.
func CanCreateTicket(role UserRole) bool {
	return role == RoleUser || role == RoleManager
}

// CanManageTicket covers assignment and status changes: MANAGER or SUPPORT.
func CanManageTicket(role UserRole) bool {
	return role == RoleManager || role == RoleSupport
}

// CanDeleteTicket: MANAGER only.
func CanDeleteTicket(role UserRole) bool {
	return role == RoleManager
}
