// Package events decodes raw ledger events into a closed set of typed
// variants.
//
// Decode matches the fully-qualified Move event name exactly against
// "<package>::<module>::<Name>". Every known name has its own struct with
// a typed payload; anything else becomes Unknown so new on-chain events
// never break the sync loop. A known event missing its primary identifier
// yields an error wrapping ErrMalformed.
//
// Consumers route with a type switch:
//
//	switch ev := ev.(type) {
//	case events.RoomBooked:
//	    ...
//	case events.Unknown:
//	    // ignore
//	}
package events
