// Package hiringpb is the hand-maintained gRPC contract of the hiring
// service. Messages are serialized with the JSON codec (see
// internal/rpc/jsoncodec); field tags define the wire names.
package hiringpb

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	_ "github.com/AnnaRychkova1/smart-recruitment-grpc/internal/rpc/jsoncodec"
)

const ServiceName = "hiring.HiringService"

// Candidate is the canonical candidate record exchanged with the service.
type Candidate struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Position   string `json:"position"`
	Experience int32  `json:"experience"`
	PathCV     string `json:"pathCV"`
}

type AddCandidateRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Position   string `json:"position"`
	Experience int32  `json:"experience"`
	PathCV     string `json:"pathCV"`
}

type AddCandidateResponse struct {
	Message   string     `json:"message"`
	Candidate *Candidate `json:"candidate,omitempty"`
}

// CVChunk is one element of the bulk-add client stream: a CV reference only,
// full candidate fields are derived by the extraction collaborator.
type CVChunk struct {
	PathCV string `json:"pathCV"`
}

type AddManySummary struct {
	AddedCount int32  `json:"addedCount"`
	Message    string `json:"message"`
}

type GetAllCandidatesRequest struct{}

type UpdateCandidateRequest struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Position   string `json:"position"`
	Experience int32  `json:"experience"`
	// PathCV left empty keeps the stored CV reference untouched.
	PathCV string `json:"pathCV"`
}

type UpdateCandidateResponse struct {
	Message   string     `json:"message"`
	Candidate *Candidate `json:"candidate,omitempty"`
}

type DeleteCandidateRequest struct {
	ID string `json:"id"`
}

// DeleteCandidateResponse is informational even when the id was absent:
// the desired end-state (record gone) already holds, so Found=false is not
// an error.
type DeleteCandidateResponse struct {
	Message string `json:"message"`
	ID      string `json:"id"`
	Found   bool   `json:"found"`
}

// HiringServiceClient is the client API for the hiring service.
type HiringServiceClient interface {
	AddCandidate(ctx context.Context, in *AddCandidateRequest, opts ...grpc.CallOption) (*AddCandidateResponse, error)
	AddManyCandidates(ctx context.Context, opts ...grpc.CallOption) (HiringService_AddManyCandidatesClient, error)
	GetAllCandidates(ctx context.Context, in *GetAllCandidatesRequest, opts ...grpc.CallOption) (HiringService_GetAllCandidatesClient, error)
	UpdateCandidate(ctx context.Context, in *UpdateCandidateRequest, opts ...grpc.CallOption) (*UpdateCandidateResponse, error)
	DeleteCandidate(ctx context.Context, in *DeleteCandidateRequest, opts ...grpc.CallOption) (*DeleteCandidateResponse, error)
}

type hiringServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewHiringServiceClient(cc grpc.ClientConnInterface) HiringServiceClient {
	return &hiringServiceClient{cc}
}

func (c *hiringServiceClient) AddCandidate(ctx context.Context, in *AddCandidateRequest, opts ...grpc.CallOption) (*AddCandidateResponse, error) {
	out := new(AddCandidateResponse)
	if err := c.cc.Invoke(ctx, "/"+ServiceName+"/AddCandidate", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *hiringServiceClient) AddManyCandidates(ctx context.Context, opts ...grpc.CallOption) (HiringService_AddManyCandidatesClient, error) {
	stream, err := c.cc.NewStream(ctx, &HiringService_ServiceDesc.Streams[0], "/"+ServiceName+"/AddManyCandidates", opts...)
	if err != nil {
		return nil, err
	}
	return &hiringServiceAddManyCandidatesClient{stream}, nil
}

type HiringService_AddManyCandidatesClient interface {
	Send(*CVChunk) error
	CloseAndRecv() (*AddManySummary, error)
	grpc.ClientStream
}

type hiringServiceAddManyCandidatesClient struct {
	grpc.ClientStream
}

func (x *hiringServiceAddManyCandidatesClient) Send(m *CVChunk) error {
	return x.ClientStream.SendMsg(m)
}

func (x *hiringServiceAddManyCandidatesClient) CloseAndRecv() (*AddManySummary, error) {
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	m := new(AddManySummary)
	if err := x.ClientStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

func (c *hiringServiceClient) GetAllCandidates(ctx context.Context, in *GetAllCandidatesRequest, opts ...grpc.CallOption) (HiringService_GetAllCandidatesClient, error) {
	stream, err := c.cc.NewStream(ctx, &HiringService_ServiceDesc.Streams[1], "/"+ServiceName+"/GetAllCandidates", opts...)
	if err != nil {
		return nil, err
	}
	x := &hiringServiceGetAllCandidatesClient{stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

type HiringService_GetAllCandidatesClient interface {
	Recv() (*Candidate, error)
	grpc.ClientStream
}

type hiringServiceGetAllCandidatesClient struct {
	grpc.ClientStream
}

func (x *hiringServiceGetAllCandidatesClient) Recv() (*Candidate, error) {
	m := new(Candidate)
	if err := x.ClientStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

func (c *hiringServiceClient) UpdateCandidate(ctx context.Context, in *UpdateCandidateRequest, opts ...grpc.CallOption) (*UpdateCandidateResponse, error) {
	out := new(UpdateCandidateResponse)
	if err := c.cc.Invoke(ctx, "/"+ServiceName+"/UpdateCandidate", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *hiringServiceClient) DeleteCandidate(ctx context.Context, in *DeleteCandidateRequest, opts ...grpc.CallOption) (*DeleteCandidateResponse, error) {
	out := new(DeleteCandidateResponse)
	if err := c.cc.Invoke(ctx, "/"+ServiceName+"/DeleteCandidate", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// HiringServiceServer is the server API for the hiring service.
type HiringServiceServer interface {
	AddCandidate(context.Context, *AddCandidateRequest) (*AddCandidateResponse, error)
	AddManyCandidates(HiringService_AddManyCandidatesServer) error
	GetAllCandidates(*GetAllCandidatesRequest, HiringService_GetAllCandidatesServer) error
	UpdateCandidate(context.Context, *UpdateCandidateRequest) (*UpdateCandidateResponse, error)
	DeleteCandidate(context.Context, *DeleteCandidateRequest) (*DeleteCandidateResponse, error)
	mustEmbedUnimplementedHiringServiceServer()
}

// UnimplementedHiringServiceServer must be embedded for forward compatibility.
type UnimplementedHiringServiceServer struct{}

func (UnimplementedHiringServiceServer) AddCandidate(context.Context, *AddCandidateRequest) (*AddCandidateResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method AddCandidate not implemented")
}
func (UnimplementedHiringServiceServer) AddManyCandidates(HiringService_AddManyCandidatesServer) error {
	return status.Error(codes.Unimplemented, "method AddManyCandidates not implemented")
}
func (UnimplementedHiringServiceServer) GetAllCandidates(*GetAllCandidatesRequest, HiringService_GetAllCandidatesServer) error {
	return status.Error(codes.Unimplemented, "method GetAllCandidates not implemented")
}
func (UnimplementedHiringServiceServer) UpdateCandidate(context.Context, *UpdateCandidateRequest) (*UpdateCandidateResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method UpdateCandidate not implemented")
}
func (UnimplementedHiringServiceServer) DeleteCandidate(context.Context, *DeleteCandidateRequest) (*DeleteCandidateResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method DeleteCandidate not implemented")
}
func (UnimplementedHiringServiceServer) mustEmbedUnimplementedHiringServiceServer() {}

type HiringService_AddManyCandidatesServer interface {
	SendAndClose(*AddManySummary) error
	Recv() (*CVChunk, error)
	grpc.ServerStream
}

type hiringServiceAddManyCandidatesServer struct {
	grpc.ServerStream
}

func (x *hiringServiceAddManyCandidatesServer) SendAndClose(m *AddManySummary) error {
	return x.ServerStream.SendMsg(m)
}

func (x *hiringServiceAddManyCandidatesServer) Recv() (*CVChunk, error) {
	m := new(CVChunk)
	if err := x.ServerStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

type HiringService_GetAllCandidatesServer interface {
	Send(*Candidate) error
	grpc.ServerStream
}

type hiringServiceGetAllCandidatesServer struct {
	grpc.ServerStream
}

func (x *hiringServiceGetAllCandidatesServer) Send(m *Candidate) error {
	return x.ServerStream.SendMsg(m)
}

// RegisterHiringServiceServer registers the implementation with the gRPC server.
func RegisterHiringServiceServer(s grpc.ServiceRegistrar, srv HiringServiceServer) {
	s.RegisterService(&HiringService_ServiceDesc, srv)
}

func _HiringService_AddCandidate_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(AddCandidateRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(HiringServiceServer).AddCandidate(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + ServiceName + "/AddCandidate"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(HiringServiceServer).AddCandidate(ctx, req.(*AddCandidateRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _HiringService_UpdateCandidate_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(UpdateCandidateRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(HiringServiceServer).UpdateCandidate(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + ServiceName + "/UpdateCandidate"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(HiringServiceServer).UpdateCandidate(ctx, req.(*UpdateCandidateRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _HiringService_DeleteCandidate_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DeleteCandidateRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(HiringServiceServer).DeleteCandidate(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + ServiceName + "/DeleteCandidate"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(HiringServiceServer).DeleteCandidate(ctx, req.(*DeleteCandidateRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _HiringService_AddManyCandidates_Handler(srv interface{}, stream grpc.ServerStream) error {
	return srv.(HiringServiceServer).AddManyCandidates(&hiringServiceAddManyCandidatesServer{stream})
}

func _HiringService_GetAllCandidates_Handler(srv interface{}, stream grpc.ServerStream) error {
	m := new(GetAllCandidatesRequest)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(HiringServiceServer).GetAllCandidates(m, &hiringServiceGetAllCandidatesServer{stream})
}

// HiringService_ServiceDesc is the grpc.ServiceDesc for the hiring service.
var HiringService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*HiringServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "AddCandidate", Handler: _HiringService_AddCandidate_Handler},
		{MethodName: "UpdateCandidate", Handler: _HiringService_UpdateCandidate_Handler},
		{MethodName: "DeleteCandidate", Handler: _HiringService_DeleteCandidate_Handler},
	},
	Streams: []grpc.StreamDesc{
		{StreamName: "AddManyCandidates", Handler: _HiringService_AddManyCandidates_Handler, ClientStreams: true},
		{StreamName: "GetAllCandidates", Handler: _HiringService_GetAllCandidates_Handler, ServerStreams: true},
	},
	Metadata: "hiring",
}
