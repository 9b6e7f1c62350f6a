// Package media uploads room and hotel images to object storage (MinIO or any S3
// compatible service) and hands back the public URL.
//
// The indexer never reads these objects. A client uploads first and then
// passes the URL on-chain as the room's image_blob_id, which is what the
// mirror ends up showing as imageUrl. Hotels carry no image on-chain; their
// URL is attached with PUT /hotels/:hotelId/image.
package media
