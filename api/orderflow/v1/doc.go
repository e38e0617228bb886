// Package orderflowv1 содержит protobuf-сообщения и gRPC-стабы OrderService,
// сгенерированные из order_service.proto.
//
// Генераторы устанавливаются вручную:
//
//	go install google.golang.org/protobuf/cmd/protoc-gen-go@latest
//	go install google.golang.org/grpc/cmd/protoc-gen-go-grpc@latest
package orderflowv1

//go:generate protoc -I ../.. --go_out=../.. --go_opt=paths=source_relative --go-grpc_out=../.. --go-grpc_opt=paths=source_relative orderflow/v1/order_service.proto
