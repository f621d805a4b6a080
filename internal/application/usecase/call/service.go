package call

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"

	"mbxcall/internal/application/port"
	"mbxcall/internal/application/service"
)

type ServiceDeps struct {
	Resolver   *service.PayloadResolver
	Dispatcher port.Dispatcher
	Sink       port.Sink
	// Preview prints the command instead of a response.
	Preview bool
}

// Service 单次 API 调用: 解析签名 -> 发送 -> 输出
type Service struct {
	deps ServiceDeps
}

func NewService(deps ServiceDeps) *Service {
	return &Service{deps: deps}
}

// Run resolves and dispatches one call.
// Only resolution failures (e.g. a missing secret) are returned as errors.
// Dispatch failures are logged and reported as a nil result, which the sink
// prints as "null".
func (s *Service) Run(ctx context.Context, req service.CallRequest) (*port.Result, error) {
	if s.deps.Resolver == nil || s.deps.Dispatcher == nil {
		return nil, errors.New("call service: resolver and dispatcher are required")
	}

	signed, err := s.deps.Resolver.Resolve(req)
	if err != nil {
		return nil, err
	}

	res, err := s.deps.Dispatcher.Dispatch(ctx, signed)
	if err != nil {
		log.Error().
			Err(err).
			Str("dispatcher", s.deps.Dispatcher.Name()).
			Str("method", signed.Method).
			Str("url", signed.URL).
			Msg("api call failed")
		res = nil
	}

	switch {
	case s.deps.Sink == nil:
	case res != nil && res.Streamed:
		// passthrough: the tool already wrote to the terminal
	case s.deps.Preview && res != nil:
		_ = s.deps.Sink.WriteCommand(res.Command)
	default:
		_ = s.deps.Sink.WriteResult(s.deps.Dispatcher.Name(), res)
	}
	return res, nil
}
