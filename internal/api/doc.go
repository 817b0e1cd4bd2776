// Package api is the wire contract between the LiftLog server and its
// clients. liftlog.pb.go and liftlog_grpc.pb.go are generated from
// liftlog.proto; run go generate after editing it.
package api

//go:generate protoc -I . --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative liftlog.proto
