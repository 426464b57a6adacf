package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/hello-hub/hello-hub/internal/accesslog"
	"github.com/hello-hub/hello-hub/internal/config"
	"github.com/hello-hub/hello-hub/internal/logging"
	"github.com/hello-hub/hello-hub/internal/server"
	"github.com/hello-hub/hello-hub/internal/server/routes"
	"github.com/hello-hub/hello-hub/internal/version"
)

// cliOptions 汇总 CLI 标志解析后的结果，便于在测试中注入。
type cliOptions struct {
	configPath  string
	checkOnly   bool
	showVersion bool
}

var (
	stdOut io.Writer = os.Stdout
	stdErr io.Writer = os.Stderr
)

func main() {
	opts, err := parseCLIFlags(os.Args[1:])
	if err != nil {
		fmt.Fprintln(stdErr, err.Error())
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, opts)
	stop()
	os.Exit(code)
}

// run 根据解析到的 CLI 选项执行业务流程，并返回退出码，方便测试。
// ctx 取消时触发优雅关闭。
func run(ctx context.Context, opts cliOptions) int {
	if opts.showVersion {
		printVersion()
		return 0
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		fmt.Fprintf(stdErr, "加载配置失败: %v\n", err)
		return 1
	}

	logger, err := logging.InitLogger(cfg.Global)
	if err != nil {
		fmt.Fprintf(stdErr, "初始化日志失败: %v\n", err)
		return 1
	}

	if !logging.AccessLogVisible(logger) {
		fmt.Fprintf(stdErr, "警告: LogLevel=%s 高于 info，访问日志将被过滤\n", cfg.Global.LogLevel)
		logger.WithField("action", "access_log_filtered").Warn("LogLevel 高于 info，访问日志将被过滤")
	}

	maxThreads, minThreads, idleMillis := cfg.PoolBounds()
	fields := logging.BaseFields("startup", opts.configPath)
	if opts.checkOnly {
		fields["action"] = "check_config"
	}
	fields["listen_addr"] = cfg.ListenAddr()
	fields["pool_mode"] = cfg.PoolMode()
	fields["access_log_format"] = cfg.Global.AccessLogFormat
	fields["version"] = version.Full()

	if opts.checkOnly {
		fields["result"] = "ok"
		logger.WithFields(fields).Info("配置校验通过")
		return 0
	}
	logger.WithFields(fields).Info("配置加载完成")

	// 启动顺序：配置 → 日志 → 访问日志 Sink → 服务端 → 路由，
	// logger 只在此处创建一次并显式传递，不依赖全局实例。
	sink, err := accesslog.NewSink(logging.AccessLogger(logger))
	if err != nil {
		fmt.Fprintf(stdErr, "初始化访问日志失败: %v\n", err)
		return 1
	}

	handle, err := server.Build(server.BuildOptions{
		Pool: server.ThreadPoolConfig{
			MaxThreads:        maxThreads,
			MinThreads:        minThreads,
			IdleTimeoutMillis: idleMillis,
		},
		RequestLog:      sink,
		Logger:          logger,
		AccessLogFormat: cfg.Global.AccessLogFormat,
		ShutdownTimeout: cfg.Global.ShutdownTimeout.DurationValue(),
	})
	if err != nil {
		fmt.Fprintf(stdErr, "构建 HTTP 服务失败: %v\n", err)
		return 1
	}

	if err := startHTTPServer(ctx, cfg, handle); err != nil {
		fmt.Fprintf(stdErr, "HTTP 服务启动失败: %v\n", err)
		return 1
	}
	return 0
}

// parseCLIFlags 解析 CLI 参数，并结合环境变量计算最终的配置路径。
func parseCLIFlags(args []string) (cliOptions, error) {
	fs := flag.NewFlagSet("hello-hub", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		configFlag string
		checkOnly  bool
		showVer    bool
	)

	fs.StringVar(&configFlag, "config", "", "配置文件路径（默认 ./config.toml，可被 HELLO_HUB_CONFIG 覆盖）")
	fs.BoolVar(&checkOnly, "check-config", false, "仅校验配置后退出")
	fs.BoolVar(&showVer, "version", false, "显示版本信息")

	if err := fs.Parse(args); err != nil {
		return cliOptions{}, fmt.Errorf("解析参数失败: %w", err)
	}

	path := os.Getenv("HELLO_HUB_CONFIG")
	if configFlag != "" {
		path = configFlag
	}
	if path == "" {
		path = "config.toml"
	}

	return cliOptions{
		configPath:  path,
		checkOnly:   checkOnly,
		showVersion: showVer,
	}, nil
}

// printVersion 输出注入的版本 + 提交信息。
func printVersion() {
	fmt.Fprintln(stdOut, version.Full())
}

// startHTTPServer 注册路由后阻塞监听；监听成功与关闭事件由 server 包的生命周期钩子记录。
func startHTTPServer(ctx context.Context, cfg *config.Config, handle *server.Handle) error {
	routes.RegisterHelloRoutes(handle.App())
	routes.RegisterRuntimeRoutes(handle.App(), handle)
	return handle.ListenAndServe(ctx, cfg.ListenAddr())
}
