package core

// Entity is an opaque handle; components attached to it live in the world stores
type Entity uint64

// NoEntity is never allocated by a world
const NoEntity Entity = 0
