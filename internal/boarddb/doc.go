// Package boarddb provides access to the board database: a bundled
// offline snapshot for fast lookup of known public boards, an online
// HTTP client for the live database, and a lookup layer that selects
// between the two according to the configured database mode. In AUTO
// mode the offline snapshot is consulted first and the online database
// only when the board is unknown offline.
package boarddb
