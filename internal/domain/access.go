package domain

// Access predicates consulted by the services. Every check is a pure function
// of the actor id and the target record; there is no hidden state.

// CanMutateItem reports whether the actor may update or delete the item.
func CanMutateItem(actorID int32, item *RentalItem) bool {
	return actorID == item.OwnerID
}

// CanRequestItem reports whether the actor may submit a rental request for
// the item. Owners may not rent their own listings.
func CanRequestItem(actorID int32, item *RentalItem) bool {
	return actorID != 0 &&
		actorID != item.OwnerID &&
		item.IsAvailable &&
		item.Status == ItemStatusActive
}

// CanViewRequest reports whether the actor is a party to the request.
func CanViewRequest(actorID int32, req *RentalRequest) bool {
	return actorID == req.RenterID || actorID == req.ListerID
}

// CanRespondToRequest reports whether the actor may approve or reject the
// request. Only the lister may respond; the renter may not.
func CanRespondToRequest(actorID int32, req *RentalRequest) bool {
	return actorID == req.ListerID
}
