// Package proto holds the wire definitions. Stubs are generated into
// gen/proto and are not committed.
package proto

//go:generate protoc --proto_path=. --go_out=../gen/proto --go_opt=paths=source_relative --go-grpc_out=../gen/proto --go-grpc_opt=paths=source_relative leases/v1/leases.proto
