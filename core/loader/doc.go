// Package loader registers HTTP features on the server.
//
// A feature reports its name and whether it should be mounted, then adds its
// routes to the router it is given. The Manager mounts features in the order
// they were registered and stops at the first one that fails.
package loader
