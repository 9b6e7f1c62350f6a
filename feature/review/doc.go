// Package review reconciles ReviewPosted events into the mirror and lists
// a hotel's reviews at GET /api/hotels/:hotelId/reviews.
package review
