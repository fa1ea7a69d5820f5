// Package fakelib stands in for the native Client-Library when driving a
// ctmsg.Bridge in tests and tools.
//
// Lib raises server and client messages the way the native dispatcher does:
// it calls the bridge's entry points with a context handle, a connection
// handle and a record pointer. The handles are sentinels that do not point
// at anything, so a bridge that touched them would be caught.
package fakelib
