// Package merge builds a primary tessellation whose subdivision is at
// least as fine as every input tessellation everywhere, then rewrites each
// input's vertex references onto the primary's shared vertex table.
package merge
