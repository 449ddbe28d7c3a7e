// Package grid flattens one or more tessellations into the grid
// representation the excluded serializer consumes: a shared vertex table,
// a flat triangle table, and per-level/per-tessellation index ranges into
// it, content-hashed for reproducibility.
package grid
