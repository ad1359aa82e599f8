// Command cofaudev is an in-memory stub of the Cofau backend for local
// development: run it, then point the client at it with
//
//	cofau --base http://127.0.0.1:8790 login --email demo@cofau.app -p pass
//
// Any password is accepted; fixtures are baked in and uploads live only in
// process memory.
package main
