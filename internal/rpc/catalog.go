// Package rpc holds the catalog of service contracts the resolver can
// construct clients for. It is the compile-time analogue of loading a proto
// interface definition by file and namespace.
package rpc

import (
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/AnnaRychkova1/smart-recruitment-grpc/internal/rpc/authpb"
	"github.com/AnnaRychkova1/smart-recruitment-grpc/internal/rpc/filteringpb"
	"github.com/AnnaRychkova1/smart-recruitment-grpc/internal/rpc/hiringpb"
	"github.com/AnnaRychkova1/smart-recruitment-grpc/internal/rpc/interviewpb"
	"github.com/AnnaRychkova1/smart-recruitment-grpc/internal/rpc/jsoncodec"
)

// Descriptor binds a logical service name to its gRPC contract.
type Descriptor struct {
	// Service is the fully-qualified gRPC service name.
	Service string
	// NewClient wraps a connection in the service's typed client. Callers
	// assert the concrete client interface.
	NewClient func(cc grpc.ClientConnInterface) any
}

var catalog = map[string]Descriptor{
	"HiringService": {
		Service:   hiringpb.ServiceName,
		NewClient: func(cc grpc.ClientConnInterface) any { return hiringpb.NewHiringServiceClient(cc) },
	},
	"FilteringService": {
		Service:   filteringpb.ServiceName,
		NewClient: func(cc grpc.ClientConnInterface) any { return filteringpb.NewFilteringServiceClient(cc) },
	},
	"InterviewService": {
		Service:   interviewpb.ServiceName,
		NewClient: func(cc grpc.ClientConnInterface) any { return interviewpb.NewInterviewServiceClient(cc) },
	},
	"AuthService": {
		Service:   authpb.ServiceName,
		NewClient: func(cc grpc.ClientConnInterface) any { return authpb.NewAuthServiceClient(cc) },
	},
}

// LookupDescriptor returns the contract registered under logicalName.
func LookupDescriptor(logicalName string) (Descriptor, bool) {
	d, ok := catalog[logicalName]
	return d, ok
}

// DialOptions are the options every client connection in the platform needs:
// plaintext transport and the JSON content subtype.
func DialOptions() []grpc.DialOption {
	return []grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultCallOptions(grpc.CallContentSubtype(jsoncodec.Name)),
	}
}
