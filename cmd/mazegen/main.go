package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"mazegen/pkg/errorutil"
	"mazegen/pkg/initutil"
	"mazegen/pkg/logutil"
	"mazegen/pkg/mazecmd"
)

const TOOL_VERSION = "1.0.0+20261019"

func newRootCmd() *cobra.Command {
	var rootCmd = &cobra.Command{
		Use:     "mazegen",
		Version: TOOL_VERSION,
		Short:   fmt.Sprintf("Mazegen v%s 随机完美迷宫生成工具，支持 generate/render/check/dot/diff 子命令", TOOL_VERSION),
		Long: "  +--+--+--+--+\n" +
			"        |     |    _ __ ___   __ _ _______  __ _  ___ _ __\n" +
			"  +  +--+  +  +   | '_ ` _ \\ / _` |_  / _ \\/ _` |/ _ \\ '_ \\\n" +
			"  |  |     |  |   | | | | | | (_| |/ /  __/ (_| |  __/ | | |\n" +
			"  +  +  +--+  +   |_| |_| |_|\\__,_/___\\___|\\__, |\\___|_| |_|\n" +
			"  |     |                                  |___/\n" +
			"  +--+--+--+--+\n" +
			fmt.Sprintf("\nMazegen v%s 用并查集生成随机完美迷宫，并提供查看、校验和导出工具\n", TOOL_VERSION),
	}

	rootCmd.AddCommand(
		mazecmd.GenerateCmd(),
		mazecmd.RenderCmd(),
		mazecmd.CheckCmd(),
		mazecmd.DotCmd(),
		mazecmd.DiffCmd(),
	)

	var cfgFile string
	logLevel := logutil.WARN

	// 定义全局flag(屁股后面带P的函数才支持短选项)
	rootCmd.PersistentFlags().VarP(&logLevel, "log-level", "e", "日志等级(DEBUG/INFO/WARN/ERROR)")
	rootCmd.PersistentFlags().StringP("log-file", "l", "stderr", "日志文件名(stderr/stdout 表示标准错误/标准输出)")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "配置文件(默认 ./.mazegen.yaml 或 ~/.mazegen.yaml)")
	// 阻止 Cobra 在命令参数错误时输出帮助
	rootCmd.SilenceUsage = true
	// 阻止Cobra自动打印RunEs返回的错误内容
	rootCmd.SilenceErrors = true

	// flag 解析失败(比如 generate -1 5)也算用法错误
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return errorutil.NewExitError(errorutil.CodeInvalidUsage, err)
	})

	// PersistentPreRunE 回调，这个钩子会在用户的命令解析完成、flag 值填充后执行
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		flags := cmd.Root().PersistentFlags()
		if err := viper.BindPFlag("log_level", flags.Lookup("log-level")); err != nil {
			return errorutil.NewExitError(errorutil.CodeInternalErr, err)
		}
		if err := viper.BindPFlag("log_file", flags.Lookup("log-file")); err != nil {
			return errorutil.NewExitError(errorutil.CodeInternalErr, err)
		}
		if _, err := initutil.InitSystem(cfgFile); err != nil {
			return errorutil.NewExitError(errorutil.CodeConfigError, err)
		}
		return nil
	}
	return rootCmd
}

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		code := errorutil.ExitCodeFromError(err)
		logutil.Info("命令执行失败(退出码 %d): %v", code, err)
		fmt.Fprintf(os.Stderr, "mazegen: %v\n", err)
		logutil.CloseLogger()
		os.Exit(code)
	}

	// 不要用defer，因为defer是在函数返回前执行的，而不是os.Exit()执行前执行
	logutil.CloseLogger()
	os.Exit(errorutil.CodeSuccess)
}
