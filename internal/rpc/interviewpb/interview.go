// Package interviewpb is the hand-maintained gRPC contract of the interview
// service.
//
// ScheduleInterviews and StreamAndReschedule are destructive rebuilds: both
// clear every previously persisted interview before writing new ones. Callers
// depend on that contract; do not make them merge.
package interviewpb

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	_ "github.com/AnnaRychkova1/smart-recruitment-grpc/internal/rpc/jsoncodec"
)

const ServiceName = "interview.InterviewService"

// Interview is one scheduled interview slot.
type Interview struct {
	ID            string `json:"id"`
	CandidateName string `json:"candidateName"`
	Date          string `json:"date"` // YYYY-MM-DD
	Time          string `json:"time"` // HH:mm
}

type ScheduleRequest struct {
	Date string `json:"date"` // YYYY-MM-DD
}

type ScheduleResponse struct {
	Message   string       `json:"message"`
	Scheduled []*Interview `json:"scheduled"`
}

type UpdateInterviewRequest struct {
	ID      string `json:"id"`
	NewDate string `json:"newDate"`
	NewTime string `json:"newTime"`
}

type UpdateInterviewResponse struct {
	Message string     `json:"message"`
	Updated *Interview `json:"updated,omitempty"`
}

type DeleteInterviewRequest struct {
	ID string `json:"id"`
}

type DeleteInterviewResponse struct {
	Message string `json:"message"`
	ID      string `json:"id"`
	Found   bool   `json:"found"`
}

type InterviewServiceClient interface {
	ScheduleInterviews(ctx context.Context, in *ScheduleRequest, opts ...grpc.CallOption) (*ScheduleResponse, error)
	UpdateInterview(ctx context.Context, in *UpdateInterviewRequest, opts ...grpc.CallOption) (*UpdateInterviewResponse, error)
	DeleteInterview(ctx context.Context, in *DeleteInterviewRequest, opts ...grpc.CallOption) (*DeleteInterviewResponse, error)
	StreamAndReschedule(ctx context.Context, opts ...grpc.CallOption) (InterviewService_StreamAndRescheduleClient, error)
}

type interviewServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewInterviewServiceClient(cc grpc.ClientConnInterface) InterviewServiceClient {
	return &interviewServiceClient{cc}
}

func (c *interviewServiceClient) ScheduleInterviews(ctx context.Context, in *ScheduleRequest, opts ...grpc.CallOption) (*ScheduleResponse, error) {
	out := new(ScheduleResponse)
	if err := c.cc.Invoke(ctx, "/"+ServiceName+"/ScheduleInterviews", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *interviewServiceClient) UpdateInterview(ctx context.Context, in *UpdateInterviewRequest, opts ...grpc.CallOption) (*UpdateInterviewResponse, error) {
	out := new(UpdateInterviewResponse)
	if err := c.cc.Invoke(ctx, "/"+ServiceName+"/UpdateInterview", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *interviewServiceClient) DeleteInterview(ctx context.Context, in *DeleteInterviewRequest, opts ...grpc.CallOption) (*DeleteInterviewResponse, error) {
	out := new(DeleteInterviewResponse)
	if err := c.cc.Invoke(ctx, "/"+ServiceName+"/DeleteInterview", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *interviewServiceClient) StreamAndReschedule(ctx context.Context, opts ...grpc.CallOption) (InterviewService_StreamAndRescheduleClient, error) {
	stream, err := c.cc.NewStream(ctx, &InterviewService_ServiceDesc.Streams[0], "/"+ServiceName+"/StreamAndReschedule", opts...)
	if err != nil {
		return nil, err
	}
	return &interviewServiceStreamAndRescheduleClient{stream}, nil
}

type InterviewService_StreamAndRescheduleClient interface {
	Send(*Interview) error
	Recv() (*Interview, error)
	grpc.ClientStream
}

type interviewServiceStreamAndRescheduleClient struct {
	grpc.ClientStream
}

func (x *interviewServiceStreamAndRescheduleClient) Send(m *Interview) error {
	return x.ClientStream.SendMsg(m)
}

func (x *interviewServiceStreamAndRescheduleClient) Recv() (*Interview, error) {
	m := new(Interview)
	if err := x.ClientStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

type InterviewServiceServer interface {
	ScheduleInterviews(context.Context, *ScheduleRequest) (*ScheduleResponse, error)
	UpdateInterview(context.Context, *UpdateInterviewRequest) (*UpdateInterviewResponse, error)
	DeleteInterview(context.Context, *DeleteInterviewRequest) (*DeleteInterviewResponse, error)
	StreamAndReschedule(InterviewService_StreamAndRescheduleServer) error
	mustEmbedUnimplementedInterviewServiceServer()
}

// UnimplementedInterviewServiceServer must be embedded for forward compatibility.
type UnimplementedInterviewServiceServer struct{}

func (UnimplementedInterviewServiceServer) ScheduleInterviews(context.Context, *ScheduleRequest) (*ScheduleResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ScheduleInterviews not implemented")
}
func (UnimplementedInterviewServiceServer) UpdateInterview(context.Context, *UpdateInterviewRequest) (*UpdateInterviewResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method UpdateInterview not implemented")
}
func (UnimplementedInterviewServiceServer) DeleteInterview(context.Context, *DeleteInterviewRequest) (*DeleteInterviewResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method DeleteInterview not implemented")
}
func (UnimplementedInterviewServiceServer) StreamAndReschedule(InterviewService_StreamAndRescheduleServer) error {
	return status.Error(codes.Unimplemented, "method StreamAndReschedule not implemented")
}
func (UnimplementedInterviewServiceServer) mustEmbedUnimplementedInterviewServiceServer() {}

type InterviewService_StreamAndRescheduleServer interface {
	Send(*Interview) error
	Recv() (*Interview, error)
	grpc.ServerStream
}

type interviewServiceStreamAndRescheduleServer struct {
	grpc.ServerStream
}

func (x *interviewServiceStreamAndRescheduleServer) Send(m *Interview) error {
	return x.ServerStream.SendMsg(m)
}

func (x *interviewServiceStreamAndRescheduleServer) Recv() (*Interview, error) {
	m := new(Interview)
	if err := x.ServerStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

func RegisterInterviewServiceServer(s grpc.ServiceRegistrar, srv InterviewServiceServer) {
	s.RegisterService(&InterviewService_ServiceDesc, srv)
}

func _InterviewService_ScheduleInterviews_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ScheduleRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(InterviewServiceServer).ScheduleInterviews(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + ServiceName + "/ScheduleInterviews"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(InterviewServiceServer).ScheduleInterviews(ctx, req.(*ScheduleRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _InterviewService_UpdateInterview_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(UpdateInterviewRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(InterviewServiceServer).UpdateInterview(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + ServiceName + "/UpdateInterview"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(InterviewServiceServer).UpdateInterview(ctx, req.(*UpdateInterviewRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _InterviewService_DeleteInterview_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DeleteInterviewRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(InterviewServiceServer).DeleteInterview(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + ServiceName + "/DeleteInterview"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(InterviewServiceServer).DeleteInterview(ctx, req.(*DeleteInterviewRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _InterviewService_StreamAndReschedule_Handler(srv interface{}, stream grpc.ServerStream) error {
	return srv.(InterviewServiceServer).StreamAndReschedule(&interviewServiceStreamAndRescheduleServer{stream})
}

// InterviewService_ServiceDesc is the grpc.ServiceDesc for the interview service.
var InterviewService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*InterviewServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "ScheduleInterviews", Handler: _InterviewService_ScheduleInterviews_Handler},
		{MethodName: "UpdateInterview", Handler: _InterviewService_UpdateInterview_Handler},
		{MethodName: "DeleteInterview", Handler: _InterviewService_DeleteInterview_Handler},
	},
	Streams: []grpc.StreamDesc{
		{StreamName: "StreamAndReschedule", Handler: _InterviewService_StreamAndReschedule_Handler, ServerStreams: true, ClientStreams: true},
	},
	Metadata: "interview",
}
