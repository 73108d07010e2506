// Package pb holds the messages exchanged with the swarm actor.
package pb

//go:generate protoc --go_out=. --go_opt=paths=source_relative swarm.proto
