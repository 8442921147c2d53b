package service

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

const RequestIDHeader = "x-request-id"

// RequestLogger помечает каждый вызов request id (берёт из входящих
// метаданных или генерирует новый), отдаёт его в заголовке ответа
// и пишет в лог метод, код ответа и длительность.
func RequestLogger() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		requestID := incomingRequestID(ctx)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		if err := grpc.SetHeader(ctx, metadata.Pairs(RequestIDHeader, requestID)); err != nil {
			log.Printf("grpc %s request_id=%s set header: %v", info.FullMethod, requestID, err)
		}

		start := time.Now()
		resp, err := handler(ctx, req)
		log.Printf("grpc %s request_id=%s code=%s duration=%s",
			info.FullMethod, requestID, status.Code(err), time.Since(start))
		return resp, err
	}
}

func incomingRequestID(ctx context.Context) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	if v := md.Get(RequestIDHeader); len(v) > 0 {
		return v[0]
	}
	return ""
}
