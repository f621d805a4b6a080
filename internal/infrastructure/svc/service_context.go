package svc

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"mbxcall/internal/application/port"
	"mbxcall/internal/application/service"
	"mbxcall/internal/application/usecase/call"
	"mbxcall/internal/infrastructure/config"
	"mbxcall/internal/infrastructure/exchange/binance"
	"mbxcall/internal/interfaces/console"
)

// ExecuteMode 对应命令行 --execute
type ExecuteMode int

const (
	ExecCurl        ExecuteMode = 0 // curl, capture output
	ExecRestful     ExecuteMode = 1 // direct HTTP
	ExecPreview     ExecuteMode = 2 // print the curl command only
	ExecPassthrough ExecuteMode = 3 // curl, output straight to the terminal
)

func (m ExecuteMode) String() string {
	switch m {
	case ExecCurl:
		return "curl"
	case ExecRestful:
		return "restful"
	case ExecPreview:
		return "preview"
	case ExecPassthrough:
		return "passthrough"
	default:
		return fmt.Sprintf("execute(%d)", int(m))
	}
}

type Options struct {
	Execute ExecuteMode
	Tool    string        // external HTTP tool, curl by default
	Timeout time.Duration // direct HTTP timeout, 0 = none
	Sink    port.Sink     // stdout when nil
}

type ServiceContext struct {
	Ctx      context.Context
	Settings config.Settings
	Options  Options

	credentials *binance.Credentials
	httpClient  *http.Client
	resolver    *service.PayloadResolver
	dispatcher  port.Dispatcher

	Sink port.Sink

	closerChain []func() error
}

// New 创建并初始化 ServiceContext
// settings 必须是已合并 (flag > file > env) 的结果
func New(ctx context.Context, settings config.Settings, opts Options) (*ServiceContext, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	sc := &ServiceContext{
		Ctx:         ctx,
		Settings:    settings,
		Options:     opts,
		credentials: binance.NewCredentials(settings.APIKey, settings.APISecret),
		Sink:        opts.Sink,
		closerChain: make([]func() error, 0),
	}
	if sc.Sink == nil {
		sc.Sink = console.NewSink()
	}

	if err := sc.initializeComponents(); err != nil {
		_ = sc.Close()
		return nil, err
	}
	return sc, nil
}

func (sc *ServiceContext) initializeComponents() error {
	sc.resolver = service.NewPayloadResolver(sc.credentials, binance.APIKeyHeader)
	if !sc.credentials.HasSecret() {
		log.Warn().Msg("api secret not set, only public requests can be made")
	}

	switch sc.Options.Execute {
	case ExecCurl:
		sc.dispatcher = binance.NewCommandClient(sc.Options.Tool, binance.ModeCapture)
	case ExecPreview:
		sc.dispatcher = binance.NewCommandClient(sc.Options.Tool, binance.ModePreview)
	case ExecPassthrough:
		sc.dispatcher = binance.NewCommandClient(sc.Options.Tool, binance.ModePassthrough)
	case ExecRestful:
		sc.httpClient = &http.Client{Timeout: sc.Options.Timeout}
		sc.dispatcher = binance.NewRestClient(sc.httpClient)
		sc.closerChain = append(sc.closerChain, func() error {
			sc.httpClient.CloseIdleConnections()
			return nil
		})
	default:
		return fmt.Errorf("%w: %d", ErrUnknownExecuteMode, int(sc.Options.Execute))
	}

	log.Debug().
		Str("execute", sc.Options.Execute.String()).
		Str("dispatcher", sc.dispatcher.Name()).
		Msg("components initialized")
	return nil
}

// CallRequest 由合并后的配置构建调用请求
func (sc *ServiceContext) CallRequest() service.CallRequest {
	return service.CallRequest{
		URL:            sc.Settings.URL,
		Method:         sc.Settings.Method,
		Params:         sc.Settings.Params,
		Message:        sc.Settings.Message,
		TimestampDelta: sc.Settings.TimestampDelta,
	}
}

// BuildCallServiceDeps 构建 call use case 所需依赖
func (sc *ServiceContext) BuildCallServiceDeps() call.ServiceDeps {
	return call.ServiceDeps{
		Resolver:   sc.resolver,
		Dispatcher: sc.dispatcher,
		Sink:       sc.Sink,
		Preview:    sc.Options.Execute == ExecPreview,
	}
}

func (sc *ServiceContext) GetDispatcher() port.Dispatcher {
	return sc.dispatcher
}

// Close 按相反顺序释放资源
func (sc *ServiceContext) Close() error {
	for i := len(sc.closerChain) - 1; i >= 0; i-- {
		if err := sc.closerChain[i](); err != nil {
			log.Error().Err(err).Msg("error closing resource")
		}
	}
	sc.closerChain = nil
	return nil
}
