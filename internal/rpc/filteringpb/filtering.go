// Package filteringpb is the hand-maintained gRPC contract of the filtering
// service.
//
// FilterCandidates reads like a query but is a destructive rebuild: it clears
// the whole previously filtered set before repopulating it from the current
// candidate pool. Callers depend on that contract; do not make it additive.
package filteringpb

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	_ "github.com/AnnaRychkova1/smart-recruitment-grpc/internal/rpc/jsoncodec"
)

const ServiceName = "filtering.FilteringService"

type FilterRequest struct {
	MinExperience int32 `json:"minExperience"`
	// MaxExperience <= 0 means unbounded.
	MaxExperience int32 `json:"maxExperience"`
	// Position is matched case-insensitively and exactly; empty matches any.
	Position string `json:"position"`
}

// FilteredCandidate is a candidate judged relevant for the filtered position.
type FilteredCandidate struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Position   string `json:"position"`
	Experience int32  `json:"experience"`
	PathCV     string `json:"pathCV"`
}

type DeleteCandidateRequest struct {
	ID string `json:"id"`
}

type DeleteCandidateResponse struct {
	Message string `json:"message"`
	ID      string `json:"id"`
	Found   bool   `json:"found"`
}

type FilteringServiceClient interface {
	FilterCandidates(ctx context.Context, in *FilterRequest, opts ...grpc.CallOption) (FilteringService_FilterCandidatesClient, error)
	DeleteCandidate(ctx context.Context, in *DeleteCandidateRequest, opts ...grpc.CallOption) (*DeleteCandidateResponse, error)
}

type filteringServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewFilteringServiceClient(cc grpc.ClientConnInterface) FilteringServiceClient {
	return &filteringServiceClient{cc}
}

func (c *filteringServiceClient) FilterCandidates(ctx context.Context, in *FilterRequest, opts ...grpc.CallOption) (FilteringService_FilterCandidatesClient, error) {
	stream, err := c.cc.NewStream(ctx, &FilteringService_ServiceDesc.Streams[0], "/"+ServiceName+"/FilterCandidates", opts...)
	if err != nil {
		return nil, err
	}
	x := &filteringServiceFilterCandidatesClient{stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

type FilteringService_FilterCandidatesClient interface {
	Recv() (*FilteredCandidate, error)
	grpc.ClientStream
}

type filteringServiceFilterCandidatesClient struct {
	grpc.ClientStream
}

func (x *filteringServiceFilterCandidatesClient) Recv() (*FilteredCandidate, error) {
	m := new(FilteredCandidate)
	if err := x.ClientStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

func (c *filteringServiceClient) DeleteCandidate(ctx context.Context, in *DeleteCandidateRequest, opts ...grpc.CallOption) (*DeleteCandidateResponse, error) {
	out := new(DeleteCandidateResponse)
	if err := c.cc.Invoke(ctx, "/"+ServiceName+"/DeleteCandidate", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

type FilteringServiceServer interface {
	FilterCandidates(*FilterRequest, FilteringService_FilterCandidatesServer) error
	DeleteCandidate(context.Context, *DeleteCandidateRequest) (*DeleteCandidateResponse, error)
	mustEmbedUnimplementedFilteringServiceServer()
}

// UnimplementedFilteringServiceServer must be embedded for forward compatibility.
type UnimplementedFilteringServiceServer struct{}

func (UnimplementedFilteringServiceServer) FilterCandidates(*FilterRequest, FilteringService_FilterCandidatesServer) error {
	return status.Error(codes.Unimplemented, "method FilterCandidates not implemented")
}
func (UnimplementedFilteringServiceServer) DeleteCandidate(context.Context, *DeleteCandidateRequest) (*DeleteCandidateResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method DeleteCandidate not implemented")
}
func (UnimplementedFilteringServiceServer) mustEmbedUnimplementedFilteringServiceServer() {}

type FilteringService_FilterCandidatesServer interface {
	Send(*FilteredCandidate) error
	grpc.ServerStream
}

type filteringServiceFilterCandidatesServer struct {
	grpc.ServerStream
}

func (x *filteringServiceFilterCandidatesServer) Send(m *FilteredCandidate) error {
	return x.ServerStream.SendMsg(m)
}

func RegisterFilteringServiceServer(s grpc.ServiceRegistrar, srv FilteringServiceServer) {
	s.RegisterService(&FilteringService_ServiceDesc, srv)
}

func _FilteringService_FilterCandidates_Handler(srv interface{}, stream grpc.ServerStream) error {
	m := new(FilterRequest)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(FilteringServiceServer).FilterCandidates(m, &filteringServiceFilterCandidatesServer{stream})
}

func _FilteringService_DeleteCandidate_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DeleteCandidateRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FilteringServiceServer).DeleteCandidate(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + ServiceName + "/DeleteCandidate"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FilteringServiceServer).DeleteCandidate(ctx, req.(*DeleteCandidateRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// FilteringService_ServiceDesc is the grpc.ServiceDesc for the filtering service.
var FilteringService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*FilteringServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "DeleteCandidate", Handler: _FilteringService_DeleteCandidate_Handler},
	},
	Streams: []grpc.StreamDesc{
		{StreamName: "FilterCandidates", Handler: _FilteringService_FilterCandidates_Handler, ServerStreams: true},
	},
	Metadata: "filtering",
}
