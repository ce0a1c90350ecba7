package classifier

import "errors"

// ErrUnsortedEvents is returned by Partition when sorted-input validation is
// enabled and the event sequence is not strictly ascending.
var ErrUnsortedEvents = errors.New("event sequence not sorted ascending")
