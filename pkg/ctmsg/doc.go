// Package ctmsg connects the Open Client Client-Library message callbacks to
// Go code.
//
// Client-Library reports server messages (CS_SERVERMSG) and its own client
// messages (CS_CLIENTMSG) through callbacks registered on a context. The
// Bridge type is the Go shape of those two callbacks: each entry point takes
// the context handle, the connection handle and the message record, passes
// the record to one handler and returns the handler's Status untouched.
//
// # Default wiring
//
// Open allocates a native context and installs a Bridge whose handlers decode
// each record into a ServerMessage or ClientMessage and publish it to
// GlobalServerMessageBroker or GlobalClientMessageBroker. Register handlers
// on the brokers to see the messages:
//
//	rec := ctmsg.NewMessageRecorder()
//	deregister := ctmsg.GlobalServerMessageBroker.RegisterHandler(rec.HandleMessage)
//	defer deregister()
//
// Builds without cgo or without the ctlib build tag compile the same API;
// Open then returns ErrCGONotEnabled or ErrNotBuilt.
//
// # Custom records
//
// Bridge is generic over the record types so it can be driven by the fake
// library in package fakelib or by any other dispatcher with the same
// calling shape.
package ctmsg
