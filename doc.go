// Package binuuid converts UUIDs between the canonical 36 character text form
// and the compact 16 byte binary form used for BINARY(16) columns.
//
// Besides the plain conversion the package can reorder the time fields of a
// UUID for storage. Version 1 UUIDs put the fast changing time_low field
// first, which scatters inserts across a clustered index. Storage order moves
// time_hi_and_version to the front instead:
//
//	natural: time_low(0-3) time_mid(4-5) time_hi_and_version(6-7) clock_seq+node(8-15)
//	storage: time_hi_and_version(6-7) time_mid(4-5) time_low(0-3) clock_seq+node(8-15)
//
// Basic Usage:
//
//	// Text to binary, in storage order
//	bin, err := binuuid.TextToBinary("6ccd780c-baba-1026-9564-5b8c656024db", true)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// And back
//	text := binuuid.BinaryToText(bin, true)
//
// Database Usage:
//
//	// Ordered writes storage order bytes and reads them back into natural order
//	_, err = db.Exec("INSERT INTO events (id) VALUES (?)", binuuid.Ordered(id))
//
// Thread Safety:
//
// Every function in this package is pure. UUIDs are plain arrays and can be
// shared between goroutines freely.
//
// The udf subpackage models the argument checking and NULL handling of the
// UUID_TO_BIN and BIN_TO_UUID SQL functions on top of this package.
package binuuid
