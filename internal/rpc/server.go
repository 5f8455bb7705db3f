// Package rpc предоставляет реестр ссылок по gRPC как сервис tinylink.Links,
// описанный в internal/proto/links.proto.
package rpc

//go:generate protoc --go_out=../.. --go_opt=paths=source_relative --go-grpc_out=../.. --go-grpc_opt=paths=source_relative -I ../.. internal/proto/links.proto

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/darkseear/tinylink/internal/logger"
	"github.com/darkseear/tinylink/internal/models"
	pb "github.com/darkseear/tinylink/internal/proto"
	"github.com/darkseear/tinylink/internal/registry"
)

// LinkRegistry - операции реестра, доступные по gRPC.
type LinkRegistry interface {
	Create(url, code string) (models.LinkView, error)
	List() []models.LinkView
	Get(code string) (models.LinkView, bool)
	Delete(code string) (bool, error)
}

// Server - tinylink.Links поверх реестра ссылок.
type Server struct {
	pb.UnimplementedLinksServer
	Links LinkRegistry
}

// NewServer - gRPC сервер с сервисом ссылок и логированием запросов.
func NewServer(links LinkRegistry) *grpc.Server {
	s := grpc.NewServer(grpc.UnaryInterceptor(LoggingInterceptor))
	pb.RegisterLinksServer(s, &Server{Links: links})
	return s
}

// Create регистрирует ссылку.
func (s *Server) Create(ctx context.Context, req *pb.CreateRequest) (*pb.LinkResponse, error) {
	if req.GetUrl() == "" {
		return nil, status.Error(codes.InvalidArgument, "url is required")
	}
	link, err := s.Links.Create(req.GetUrl(), req.GetCode())
	switch {
	case err == nil:
		return &pb.LinkResponse{Link: toProto(link)}, nil
	case errors.Is(err, registry.ErrCodeExists):
		return nil, status.Error(codes.AlreadyExists, err.Error())
	case errors.Is(err, registry.ErrInvalidURL), errors.Is(err, registry.ErrInvalidCodeFormat):
		return nil, status.Error(codes.InvalidArgument, err.Error())
	default:
		return nil, status.Error(codes.Internal, err.Error())
	}
}

// Get возвращает активную ссылку.
func (s *Server) Get(ctx context.Context, req *pb.CodeRequest) (*pb.LinkResponse, error) {
	link, ok := s.Links.Get(req.GetCode())
	if !ok {
		return nil, status.Error(codes.NotFound, "not found")
	}
	return &pb.LinkResponse{Link: toProto(link)}, nil
}

// List возвращает активные ссылки.
func (s *Server) List(ctx context.Context, req *pb.ListRequest) (*pb.ListResponse, error) {
	links := s.Links.List()
	resp := &pb.ListResponse{Links: make([]*pb.Link, 0, len(links))}
	for _, l := range links {
		resp.Links = append(resp.Links, toProto(l))
	}
	return resp, nil
}

// Delete помечает ссылку удалённой.
func (s *Server) Delete(ctx context.Context, req *pb.CodeRequest) (*pb.DeleteResponse, error) {
	deleted, err := s.Links.Delete(req.GetCode())
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	if !deleted {
		return nil, status.Error(codes.NotFound, "not found")
	}
	return &pb.DeleteResponse{}, nil
}

// LoggingInterceptor пишет одну запись лога на вызов.
func LoggingInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	start := time.Now()
	resp, err := handler(ctx, req)
	logger.Log.Info("request gRPC",
		zap.String("method", info.FullMethod),
		zap.Duration("duration", time.Since(start)),
		zap.String("code", status.Code(err).String()),
	)
	return resp, err
}
