// Package favorite stores wallet favourites for rooms in the SQL database.
//
// Favourites are off-chain data: the indexer never touches them and they are
// not part of the mirror. The table is unique on (room_id, user_id), so adding
// the same favourite twice returns the existing row.
//
// # HTTP Endpoints
//
//   - POST /rooms/:roomId/favorites : Adds a favourite ({"userId": ...}).
//   - DELETE /rooms/:roomId/favorites : Removes a favourite.
//   - GET /favorites?userId= : Lists a user's favourites.
package favorite
