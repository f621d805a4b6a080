package binance

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/rs/zerolog/log"

	"mbxcall/internal/application/port"
	"mbxcall/internal/domain/payload"
)

// DefaultTool 默认外部 HTTP 工具
const DefaultTool = "curl"

// Mode 命令执行方式
type Mode int

const (
	// ModeCapture 执行并返回输出
	ModeCapture Mode = iota
	// ModePassthrough 执行，输出直接写到终端，不返回内容
	ModePassthrough
	// ModePreview 只返回命令，不执行
	ModePreview
)

func (m Mode) String() string {
	switch m {
	case ModeCapture:
		return "capture"
	case ModePassthrough:
		return "passthrough"
	case ModePreview:
		return "preview"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// Command 外部工具命令
type Command struct {
	Tool string
	Args []string
}

// String renders the shell form, e.g.
// curl -H "X-MBX-APIKEY:<key>" -X POST "<url>?<query>&signature=<sig>"
func (c Command) String() string {
	parts := make([]string, 0, len(c.Args)+1)
	parts = append(parts, c.Tool)
	for _, a := range c.Args {
		if isBareWord(a) {
			parts = append(parts, a)
			continue
		}
		parts = append(parts, `"`+dquoteEscaper.Replace(a)+`"`)
	}
	return strings.Join(parts, " ")
}

// characters still special inside a double-quoted shell word
var dquoteEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`, "$", `\$`, "`", "\\`")

func isBareWord(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
		default:
			return false
		}
	}
	return true
}

// BuildCommand 由签名请求生成 curl 命令
func BuildCommand(tool string, req *payload.SignedRequest) Command {
	if tool == "" {
		tool = DefaultTool
	}
	var args []string
	for _, v := range req.Header.Values(APIKeyHeader) {
		args = append(args, "-H", APIKeyHeader+":"+v)
	}
	args = append(args, "-X", req.Method, req.Target())
	return Command{Tool: tool, Args: args}
}

// CommandClient 通过外部 HTTP 工具发送请求 (execute mode 0 / 2)
type CommandClient struct {
	tool   string
	mode   Mode
	stdout io.Writer
	stderr io.Writer
}

// NewCommandClient 创建命令客户端
func NewCommandClient(tool string, mode Mode) *CommandClient {
	if tool == "" {
		tool = DefaultTool
	}
	return &CommandClient{
		tool:   tool,
		mode:   mode,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
}

// WithOutput redirects passthrough output.
func (c *CommandClient) WithOutput(stdout, stderr io.Writer) *CommandClient {
	c.stdout = stdout
	c.stderr = stderr
	return c
}

func (c *CommandClient) Name() string { return "command:" + c.mode.String() }

func (c *CommandClient) Dispatch(ctx context.Context, req *payload.SignedRequest) (*port.Result, error) {
	cmd := BuildCommand(c.tool, req)
	line := cmd.String()

	if c.mode == ModePreview {
		return &port.Result{Command: line}, nil
	}

	log.Info().Str("command", line).Msg("executing command")

	proc := exec.CommandContext(ctx, cmd.Tool, cmd.Args...)
	var stdout, stderr bytes.Buffer
	if c.mode == ModePassthrough {
		proc.Stdout = c.stdout
		proc.Stderr = io.MultiWriter(c.stderr, &stderr)
	} else {
		proc.Stdout = &stdout
		proc.Stderr = &stderr
	}

	if err := proc.Run(); err != nil {
		perr := &ProcessError{Command: line, ExitCode: -1, Stderr: stderr.String(), Err: err}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			perr.ExitCode = exitErr.ExitCode()
		}
		return nil, perr
	}

	if c.mode == ModePassthrough {
		return &port.Result{Command: line, Streamed: true}, nil
	}
	return &port.Result{Command: line, Body: stdout.Bytes()}, nil
}
