package mazecmd

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"mazegen/pkg/errorutil"
	"mazegen/pkg/initutil"
	"mazegen/pkg/logutil"
	"mazegen/pkg/maze"
)

// stdioPath 表示标准输入或标准输出
const stdioPath = "-"

// formatValue 输出格式，实现了 pflag.Value 接口
type formatValue string

func (f *formatValue) String() string { return string(*f) }

func (f *formatValue) Set(val string) error {
	switch val {
	case initutil.FormatText, initutil.FormatJSON:
		*f = formatValue(val)
		return nil
	default:
		return fmt.Errorf("无效的 format 值: %s (text|json)", val)
	}
}

func (f *formatValue) Type() string {
	return "format"
}

// bindFlags 把子命令的 flag 绑定到 viper，key 和 flag 名相同
// 放在 PreRunE 里做，保证只绑定真正执行的那个子命令
func bindFlags(cmd *cobra.Command, names ...string) error {
	for _, name := range names {
		if err := viper.BindPFlag(name, cmd.Flags().Lookup(name)); err != nil {
			return errorutil.NewExitError(errorutil.CodeInternalErr, err)
		}
	}
	return nil
}

// loadConfig 取出合并后的配置
func loadConfig() (initutil.Config, error) {
	cfg, err := initutil.Load()
	if err != nil {
		return cfg, errorutil.NewExitError(errorutil.CodeConfigError, err)
	}
	return cfg, nil
}

// inputPath 可选的输入文件参数，缺省为标准输入
func inputPath(args []string) string {
	if len(args) == 0 {
		return stdioPath
	}
	return args[0]
}

// readInput 读取整个输入
func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == stdioPath {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, errorutil.NewExitErrorWithMessage(errorutil.CodeIOError, "读取标准输入失败", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errorutil.NewExitErrorWithMessage(errorutil.CodeIOError, "无法读取迷宫文件", err)
	}
	return data, nil
}

// decodeMaze 根据第一个非空白字符判断是 JSON 还是文本格式
func decodeMaze(data []byte) (*maze.Maze, error) {
	var (
		m   *maze.Maze
		err error
	)
	if trimmed := bytes.TrimSpace(data); len(trimmed) > 0 && trimmed[0] == '{' {
		m, err = maze.DecodeJSON(data)
	} else {
		m, err = maze.Decode(bytes.NewReader(data))
	}
	if err != nil {
		return nil, errorutil.NewExitErrorWithMessage(errorutil.CodeInvalidData, "迷宫数据无效", err)
	}
	return m, nil
}

// loadMaze 读取并解码一个迷宫
func loadMaze(cmd *cobra.Command, path string) (*maze.Maze, error) {
	data, err := readInput(cmd, path)
	if err != nil {
		return nil, err
	}
	m, err := decodeMaze(data)
	if err != nil {
		return nil, err
	}
	logutil.Debug("读取迷宫 %s: %d x %d", path, m.Rows, m.Cols)
	return m, nil
}
