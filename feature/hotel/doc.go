// Package hotel reconciles HotelCreated events into the mirror and serves
// the hotel endpoints. The image URL is the only hotel field written from
// the API; indexing leaves it alone.
//
// Routes (under /api):
//
//	GET /hotels/all?owner=<address>
//	GET /hotels/:hotelId
//	PUT /hotels/:hotelId/image
package hotel
