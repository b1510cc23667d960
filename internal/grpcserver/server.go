// Package grpcserver implements the JobBoard gRPC service.
//
// It delegates all business logic to jobs.Service and handles only the gRPC
// transport concerns: metadata extraction, error mapping, and conversion
// between the domain model and google.protobuf.Struct messages.
package grpcserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ecodeclub/ekit/slice"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"jobmate/board-service/internal/jobs"
	"jobmate/board-service/internal/matching"
	"jobmate/board-service/internal/model"
)

// ServiceName is the fully qualified gRPC service name.
const ServiceName = "jobboard.v1.JobBoard"

// JobBoardServer is the server API of the JobBoard service.
type JobBoardServer interface {
	SearchJobs(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ScoreCompatibility(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

// ServiceDesc describes JobBoard for grpc.Server.RegisterService.
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*JobBoardServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "SearchJobs", Handler: searchJobsHandler},
		{MethodName: "ScoreCompatibility", Handler: scoreCompatibilityHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "jobboard/v1/jobboard.proto",
}

// Register mounts srv on s.
func Register(s grpc.ServiceRegistrar, srv JobBoardServer) {
	s.RegisterService(&ServiceDesc, srv)
}

func searchJobsHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(JobBoardServer).SearchJobs(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + ServiceName + "/SearchJobs"}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(JobBoardServer).SearchJobs(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

func scoreCompatibilityHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(JobBoardServer).ScoreCompatibility(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + ServiceName + "/ScoreCompatibility"}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(JobBoardServer).ScoreCompatibility(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

// Server implements JobBoardServer.
type Server struct {
	svc *jobs.Service
}

// NewServer constructs a gRPC Server backed by the given jobs.Service.
func NewServer(svc *jobs.Service) *Server {
	return &Server{svc: svc}
}

// ─── RPC implementations ──────────────────────────────────────────────────────

type searchRequest struct {
	model.SearchCriteria
	Sort        string  `json:"sort"`
	MaxDistance float64 `json:"maxDistance"`
}

// jobSummary is the compact job shape returned by SearchJobs.
type jobSummary struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Company      string   `json:"company"`
	Location     string   `json:"location"`
	Remote       bool     `json:"remote"`
	Category     string   `json:"category"`
	Type         string   `json:"type"`
	Salary       string   `json:"salary"`
	Skills       []string `json:"skills"`
	PostedDate   string   `json:"postedDate"`
	AIMatchScore *int     `json:"aiMatchScore,omitempty"`
}

// SearchJobs filters and sorts the catalogue.
func (s *Server) SearchJobs(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in searchRequest
	if err := fromStruct(req, &in); err != nil {
		return nil, err
	}
	sortBy, ok := matching.ParseSortBy(in.Sort)
	if !ok {
		return nil, status.Errorf(codes.InvalidArgument, "unknown sort %q", in.Sort)
	}
	if in.MaxDistance < 0 {
		return nil, status.Error(codes.InvalidArgument, "maxDistance must not be negative")
	}

	found, err := s.svc.Search(ctx, in.SearchCriteria, jobs.SearchOptions{SortBy: sortBy, MaxDistance: in.MaxDistance})
	if err != nil {
		return nil, toGRPCError(err)
	}

	return toStruct(map[string]any{
		"jobs": slice.Map(found, func(_ int, j model.Job) jobSummary {
			return jobSummary{
				ID: j.ID, Title: j.Title, Company: j.Company, Location: j.Location,
				Remote: j.Remote, Category: j.Category, Type: j.Type, Salary: j.Salary,
				Skills: j.Skills, PostedDate: j.PostedDate, AIMatchScore: j.AIMatchScore,
			}
		}),
		"total": len(found),
	})
}

type scoreRequest struct {
	JobID     string                  `json:"jobId"`
	Candidate *model.CandidateContext `json:"candidate"`
}

// ScoreCompatibility returns the "Should I apply?" verdict for jobId. Without
// a candidate in the request, the caller's saved profile is used.
func (s *Server) ScoreCompatibility(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in scoreRequest
	if err := fromStruct(req, &in); err != nil {
		return nil, err
	}
	if in.JobID == "" {
		return nil, status.Error(codes.InvalidArgument, "jobId is required")
	}

	var (
		rec model.Recommendation
		err error
	)
	if in.Candidate != nil {
		rec, err = s.svc.ShouldApply(ctx, in.JobID, *in.Candidate)
	} else {
		userID, uerr := userIDFromCtx(ctx)
		if uerr != nil {
			return nil, uerr
		}
		rec, err = s.svc.ShouldApplyForUser(ctx, in.JobID, userID)
	}
	if err != nil {
		return nil, toGRPCError(err)
	}
	return toStruct(rec)
}

// ─── Helpers ─────────────────────────────────────────────────────────────────

// userIDFromCtx extracts the x-user-id value forwarded by the gateway
// via gRPC metadata.
func userIDFromCtx(ctx context.Context) (string, error) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return "", status.Error(codes.Unauthenticated, "missing metadata")
	}
	vals := md.Get("x-user-id")
	if len(vals) == 0 || vals[0] == "" {
		return "", status.Error(codes.Unauthenticated, "missing x-user-id metadata")
	}
	return vals[0], nil
}

// toGRPCError maps domain errors to gRPC status errors.
func toGRPCError(err error) error {
	if errors.Is(err, jobs.ErrNotFound) || errors.Is(err, jobs.ErrProfileNotFound) {
		return status.Error(codes.NotFound, err.Error())
	}
	if errors.Is(err, context.Canceled) {
		return status.Error(codes.Canceled, err.Error())
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return status.Error(codes.DeadlineExceeded, err.Error())
	}
	return status.Error(codes.Internal, "internal server error")
}

// fromStruct decodes a Struct message into dst through its JSON form.
func fromStruct(in *structpb.Struct, dst any) error {
	raw, err := json.Marshal(in.AsMap())
	if err != nil {
		return status.Errorf(codes.InvalidArgument, "decode request: %v", err)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return status.Errorf(codes.InvalidArgument, "decode request: %v", err)
	}
	return nil
}

// toStruct encodes v into a Struct message through its JSON form.
func toStruct(v any) (*structpb.Struct, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, status.Error(codes.Internal, fmt.Sprintf("encode response: %v", err))
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, status.Error(codes.Internal, fmt.Sprintf("encode response: %v", err))
	}
	out, err := structpb.NewStruct(m)
	if err != nil {
		return nil, status.Error(codes.Internal, fmt.Sprintf("encode response: %v", err))
	}
	return out, nil
}
